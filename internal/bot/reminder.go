package bot

import (
	"fmt"
	"log"
	"strconv"

	"github.com/robfig/cron"
)

// startReminders запускает ежедневное напоминание о записи тренировки
func (b *Bot) startReminders() error {
	if b.cfg.ReminderCron == "" {
		log.Println("Напоминания отключены")
		return nil
	}

	c := cron.New()
	if err := c.AddFunc(b.cfg.ReminderCron, b.sendReminders); err != nil {
		return fmt.Errorf("некорректное расписание %q: %w", b.cfg.ReminderCron, err)
	}
	c.Start()

	log.Printf("Напоминания запущены: %s", b.cfg.ReminderCron)
	return nil
}

// sendReminders рассылает напоминание всем пользователям с записями
func (b *Bot) sendReminders() {
	ids, err := b.store.UserIDs()
	if err != nil {
		log.Printf("Ошибка получения пользователей для напоминаний: %v", err)
		return
	}

	sent := 0
	for _, id := range ids {
		// Записи с веба идут под нечисловыми id, им напоминание не отправить
		chatID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		b.sendMessage(chatID, b.t("reminder_text", chatID))
		sent++
	}

	log.Printf("Отправлено напоминаний: %d", sent)
}
