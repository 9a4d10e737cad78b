package bot

import (
	"log"

	"gymlog/clients/ai"
	"gymlog/internal/config"
	"gymlog/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot представляет Telegram бота
type Bot struct {
	api    *tgbotapi.BotAPI
	store  storage.Store
	parser *ai.WorkoutParser
	cfg    *config.Config
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, store storage.Store, cfg *config.Config) *Bot {
	var parser *ai.WorkoutParser
	if cfg.GoogleAPIKey != "" {
		client := ai.NewClient(cfg.GoogleAPIKey)
		if cfg.GeminiModel != "" {
			client.SetModel(cfg.GeminiModel)
		}
		parser = ai.NewWorkoutParser(client)
		log.Println("Gemini парсер инициализирован")
	} else {
		log.Println("GOOGLE_API_KEY не задан, работает только локальный парсер")
	}

	return &Bot{
		api:    api,
		store:  store,
		parser: parser,
		cfg:    cfg,
	}
}

// Start запускает бота
func (b *Bot) Start() error {
	if err := b.startReminders(); err != nil {
		log.Printf("Напоминания не запущены: %v", err)
	}

	updates := b.initUpdatesChannel()
	b.handleUpdates(updates)
	return nil
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}

		b.handleMessage(update.Message)
	}
}

func (b *Bot) initUpdatesChannel() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	return b.api.GetUpdatesChan(u)
}
