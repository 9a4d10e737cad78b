package parser

import (
	"log"
	"time"

	"gymlog/clients/ai"
	"gymlog/internal/models"
)

// ParseInput разбирает текст тренировки: сначала через Gemini (если настроен),
// при ошибке — локальным парсером
func ParseInput(wp *ai.WorkoutParser, text, userID, username string, now time.Time) (*models.ParsedWorkout, error) {
	if wp != nil {
		workout, err := wp.ParseWorkout(text, userID, username, now)
		if err == nil {
			return workout, nil
		}
		log.Printf("Gemini не справился, используем локальный парсер: %v", err)
	}
	return Parse(text, userID, username, now)
}
