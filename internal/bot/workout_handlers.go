package bot

import (
	"log"
	"strconv"
	"time"

	"gymlog/internal/excel"
	"gymlog/internal/parser"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// logWorkout разбирает текст тренировки и сохраняет записи
func (b *Bot) logWorkout(message *tgbotapi.Message, text string) {
	chatID := message.Chat.ID
	userID := strconv.FormatInt(chatID, 10)

	workout, err := parser.ParseInput(b.parser, text, userID, displayName(message), time.Now())
	if err != nil {
		log.Printf("Не удалось разобрать сообщение от %d: %v", chatID, err)
		b.sendMessage(chatID, b.t("parse_error", chatID))
		return
	}

	if _, err := b.store.LogEntries(workout.Entries); err != nil {
		log.Printf("Ошибка сохранения тренировки от %d: %v", chatID, err)
		b.sendMessage(chatID, b.t("store_error", chatID))
		return
	}

	summary := formatWorkoutList(workout)
	b.sendMessage(chatID, b.tf("logged_summary", chatID,
		workout.TotalExercises(), len(workout.Entries), summary))
}

// handleStats отправляет итоги за последние 7 дней
func (b *Bot) handleStats(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := strconv.FormatInt(chatID, 10)

	totals, err := b.store.ExerciseTotals(userID, time.Now().AddDate(0, 0, -7))
	if err != nil {
		b.sendError(chatID, "stats_error", err)
		return
	}

	if len(totals) == 0 {
		b.sendMessage(chatID, b.t("stats_empty", chatID))
		return
	}

	text := b.t("stats_title", chatID) + "\n"
	for _, total := range totals {
		text += b.tf("stats_row", chatID, total.Name, total.TotalReps, total.Sets) + "\n"
	}
	b.sendMessage(chatID, text)
}

// handleRecent отправляет последние записи
func (b *Bot) handleRecent(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := strconv.FormatInt(chatID, 10)

	workouts, err := b.store.RecentWorkouts(userID, 5)
	if err != nil {
		b.sendError(chatID, "recent_error", err)
		return
	}

	if len(workouts) == 0 {
		b.sendMessage(chatID, b.t("recent_empty", chatID))
		return
	}

	text := b.t("recent_title", chatID) + "\n"
	for _, w := range workouts {
		text += b.tf("recent_row", chatID, w.Date, firstLine(w.RawInput)) + "\n"
	}
	b.sendMessage(chatID, text)
}

// handleExport выгружает тренировки за 30 дней в xlsx
func (b *Bot) handleExport(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := strconv.FormatInt(chatID, 10)

	workouts, err := b.store.RecentWorkouts(userID, 500)
	if err != nil {
		b.sendError(chatID, "export_error", err)
		return
	}
	if len(workouts) == 0 {
		b.sendMessage(chatID, b.t("export_empty", chatID))
		return
	}

	totals, err := b.store.ExerciseTotals(userID, time.Now().AddDate(0, 0, -30))
	if err != nil {
		b.sendError(chatID, "export_error", err)
		return
	}

	data, err := excel.BuildWorkoutReport(workouts, totals)
	if err != nil {
		b.sendError(chatID, "export_error", err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "workouts_" + time.Now().Format("2006-01-02") + ".xlsx",
		Bytes: data,
	})
	doc.Caption = b.t("export_caption", chatID)

	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Ошибка отправки выгрузки %d: %v", chatID, err)
	}
}
