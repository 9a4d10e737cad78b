package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config содержит конфигурацию приложения
type Config struct {
	BotToken string

	// Google AI Studio (Gemini)
	GoogleAPIKey string
	GeminiModel  string // модель, например gemini-2.5-flash

	// Supabase (PostgREST)
	SupabaseURL string
	SupabaseKey string

	// Прямое подключение к Postgres (если задано — используется вместо PostgREST)
	DatabaseURL string

	// Веб-сервер
	Port string

	// Расписание напоминаний (формат robfig/cron, пустая строка отключает)
	ReminderCron string
}

// Load загружает конфигурацию из переменных окружения или .env файла
func Load() (*Config, error) {
	env, err := loadEnvFile(".env")
	if err != nil {
		env = make(map[string]string)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	// SUPABASE_KEY и SUPABASE_ANON_KEY — синонимы
	supabaseKey := getEnv("SUPABASE_KEY", "")
	if supabaseKey == "" {
		supabaseKey = getEnv("SUPABASE_ANON_KEY", "")
	}

	cfg := &Config{
		BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),

		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", ""),

		SupabaseURL: strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseKey: supabaseKey,

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port: getEnv("PORT", "8000"),

		ReminderCron: getEnv("REMINDER_CRON", "0 0 19 * * *"),
	}

	return cfg, nil
}

// CheckStorage проверяет, что задано хотя бы одно хранилище
func (c *Config) CheckStorage() error {
	if c.DatabaseURL != "" {
		return nil
	}
	if c.SupabaseURL != "" && c.SupabaseKey != "" {
		return nil
	}
	return fmt.Errorf("не задано хранилище: нужен DATABASE_URL или SUPABASE_URL + SUPABASE_ANON_KEY")
}

// CheckBot проверяет конфигурацию для запуска бота
func (c *Config) CheckBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN не задан")
	}
	return c.CheckStorage()
}

// loadEnvFile читает .env файл
func loadEnvFile(filename string) (map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	env := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		env[key] = value
	}

	return env, scanner.Err()
}
