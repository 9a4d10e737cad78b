package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	commandStart    = "start"
	commandHelp     = "help"
	commandStats    = "stats"
	commandRecent   = "recent"
	commandExport   = "export"
	commandLanguage = "language"
)

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case commandStart:
		b.rememberLanguage(message)
		b.sendMessage(chatID, b.t("start_welcome", chatID))
	case commandHelp:
		b.sendMessage(chatID, b.t("help", chatID))
	case commandStats:
		b.handleStats(message)
	case commandRecent:
		b.handleRecent(message)
	case commandExport:
		b.handleExport(message)
	case commandLanguage:
		b.handleLanguage(chatID, strings.TrimSpace(message.CommandArguments()))
	default:
		b.sendMessage(chatID, b.t("unknown_command", chatID))
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	b.rememberLanguage(message)

	text := strings.TrimSpace(message.Text)
	if text == "" {
		b.sendMessage(message.Chat.ID, b.t("empty_message", message.Chat.ID))
		return
	}

	b.logWorkout(message, text)
}
