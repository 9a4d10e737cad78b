package bot

import (
	"sync"

	"gymlog/internal/i18n"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// langCache хранит язык пользователей (в памяти, по chat id)
var langCache = struct {
	sync.RWMutex
	cache map[int64]i18n.Language
}{cache: make(map[int64]i18n.Language)}

// getLanguage возвращает язык пользователя
func (b *Bot) getLanguage(chatID int64) i18n.Language {
	langCache.RLock()
	defer langCache.RUnlock()

	if lang, ok := langCache.cache[chatID]; ok {
		return lang
	}
	return i18n.DefaultLang
}

// setLanguage устанавливает язык пользователя
func (b *Bot) setLanguage(chatID int64, lang i18n.Language) {
	langCache.Lock()
	defer langCache.Unlock()
	langCache.cache[chatID] = lang
}

// rememberLanguage запоминает язык из настроек Telegram при первом сообщении
func (b *Bot) rememberLanguage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	langCache.Lock()
	defer langCache.Unlock()

	if _, ok := langCache.cache[message.Chat.ID]; ok {
		return
	}
	if i18n.IsValidLanguage(message.From.LanguageCode) {
		langCache.cache[message.Chat.ID] = i18n.ParseLanguage(message.From.LanguageCode)
	}
}

// handleLanguage обрабатывает команду /language
func (b *Bot) handleLanguage(chatID int64, arg string) {
	if !i18n.IsValidLanguage(arg) {
		b.sendMessage(chatID, b.t("language_usage", chatID))
		return
	}

	lang := i18n.ParseLanguage(arg)
	b.setLanguage(chatID, lang)
	b.sendMessage(chatID, b.tf("language_set", chatID, i18n.GetLanguageName(lang)))
}

// t возвращает перевод для пользователя
func (b *Bot) t(key string, chatID int64) string {
	return i18n.T(key, b.getLanguage(chatID))
}

// tf возвращает форматированный перевод для пользователя
func (b *Bot) tf(key string, chatID int64, args ...interface{}) string {
	return i18n.Tf(key, b.getLanguage(chatID), args...)
}
