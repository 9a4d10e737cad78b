package main

import (
	"database/sql"
	"log"

	"gymlog/internal/config"
	"gymlog/internal/repository"

	_ "github.com/lib/pq"
)

// Применяет схему таблиц тренировок. Для Supabase тот же SQL можно
// выполнить через SQL Editor, DATABASE_URL берётся из настроек проекта.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL не задан")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	if _, err := db.Exec(repository.Schema); err != nil {
		log.Fatalf("Ошибка применения схемы: %v", err)
	}

	log.Println("Схема применена")
}
