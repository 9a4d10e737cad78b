package main

import (
	"log"

	"gymlog/internal/config"
	"gymlog/internal/storage"
	"gymlog/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.CheckStorage(); err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	router := web.NewRouter(store, cfg)

	log.Printf("Веб-сервер запущен на порту %s", cfg.Port)
	if err := router.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
