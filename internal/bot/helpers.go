package bot

import (
	"fmt"
	"log"
	"strings"

	"gymlog/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения %d: %v", chatID, err)
	}
}

// sendError логирует ошибку и отправляет пользователю локализованный текст
func (b *Bot) sendError(chatID int64, key string, err error) {
	log.Printf("Ошибка для %d: %v", chatID, err)
	b.sendMessage(chatID, b.t(key, chatID))
}

// displayName возвращает имя пользователя для записи
func displayName(message *tgbotapi.Message) string {
	if message.From == nil {
		return "User"
	}
	if message.From.UserName != "" {
		return message.From.UserName
	}
	if message.From.FirstName != "" {
		return message.From.FirstName
	}
	return "User"
}

// firstLine возвращает первую строку текста
func firstLine(s string) string {
	if idx := strings.Index(s, "\n"); idx != -1 {
		return s[:idx]
	}
	return s
}

// formatWorkoutList собирает список упражнений для подтверждения
func formatWorkoutList(workout *models.ParsedWorkout) string {
	var sb strings.Builder
	for _, entry := range workout.Entries {
		for _, ex := range entry.Exercises {
			sb.WriteString("• ")
			sb.WriteString(entry.Date)
			sb.WriteString(" — ")
			sb.WriteString(formatExercise(ex))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatExercise форматирует одно упражнение: "squats 3x8 60kg"
func formatExercise(ex models.Exercise) string {
	if len(ex.Sets) == 0 {
		return ex.Name
	}

	var reps, weight, distance, seconds float64
	for _, m := range ex.Sets[0].Metrics {
		switch m.Type {
		case models.MetricReps:
			reps = m.Value
		case models.MetricWeight:
			weight = m.Value
		case models.MetricDistance:
			distance = m.Value
		case models.MetricTime:
			seconds = m.Value
		}
	}

	s := ex.Name
	switch {
	case reps > 0 && len(ex.Sets) > 1:
		s += fmt.Sprintf(" %dx%.0f", len(ex.Sets), reps)
	case reps > 0:
		s += fmt.Sprintf(" %.0f", reps)
	}
	if weight > 0 {
		s += fmt.Sprintf(" %.4gkg", weight)
	}
	if distance > 0 {
		s += fmt.Sprintf(" %.4gkm", distance)
	}
	if seconds > 0 {
		s += " " + formatSeconds(seconds)
	}
	return s
}

// formatSeconds форматирует секунды как mm:ss
func formatSeconds(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
