package storage

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"gymlog/clients/supabase"
	"gymlog/internal/config"
	"gymlog/internal/models"
	"gymlog/internal/repository"

	_ "github.com/lib/pq"
)

// Store — хранилище записей тренировок
type Store interface {
	// LogEntries сохраняет записи и возвращает id созданных тренировок
	LogEntries(entries []models.Entry) ([]string, error)
	// RecentWorkouts возвращает последние тренировки пользователя
	RecentWorkouts(userID string, limit int) ([]models.Workout, error)
	// ExerciseTotals возвращает суммарные повторы по упражнениям с указанной даты
	ExerciseTotals(userID string, since time.Time) ([]models.ExerciseTotal, error)
	// UserIDs возвращает всех пользователей, у которых есть записи
	UserIDs() ([]string, error)
	Close() error
}

// New выбирает бэкенд хранилища по конфигурации:
// DATABASE_URL — прямое подключение к Postgres, иначе Supabase PostgREST
func New(cfg *config.Config) (Store, error) {
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("база данных недоступна: %w", err)
		}
		log.Println("Хранилище: Postgres (прямое подключение)")
		return repository.NewWorkoutRepository(db), nil
	}

	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		log.Println("Хранилище: Supabase (PostgREST)")
		return supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey), nil
	}

	return nil, fmt.Errorf("не задано хранилище: нужен DATABASE_URL или SUPABASE_URL + SUPABASE_ANON_KEY")
}
