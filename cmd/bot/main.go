package main

import (
	"log"

	"gymlog/internal/bot"
	"gymlog/internal/config"
	"gymlog/internal/i18n"
	"gymlog/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.CheckBot(); err != nil {
		log.Fatal(err)
	}

	if err := i18n.Load(); err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Бот авторизован: @%s", api.Self.UserName)

	telegramBot := bot.New(api, store, cfg)
	if err := telegramBot.Start(); err != nil {
		log.Fatal(err)
	}
}
