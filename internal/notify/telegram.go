package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

// Telegram sends event messages to a fixed chat via a bot.
// It satisfies Notifier and never returns errors to callers — delivery
// problems are logged and dropped.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram authenticates the bot and returns a Telegram notifier posting
// into chatID.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("notify.NewTelegram: %w", err)
	}
	slog.Info("telegram notifier ready", "bot", api.Self.UserName, "chat_id", chatID)
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) PaymentAdded(amount float64, user string) {
	t.send(paymentAddedMessage(amount, user))
}

func (t *Telegram) PaymentDeleted() {
	t.send(paymentDeletedMessage())
}

func (t *Telegram) GoalReached(goal string) {
	t.send(goalReachedMessage(goal))
}

func (t *Telegram) send(text string) {
	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		slog.Warn("telegram notification failed", "error", err)
	}
}

// Message bodies are kept as pure functions so formatting is testable
// without a live bot.

func paymentAddedMessage(amount float64, user string) string {
	return fmt.Sprintf("Yeni yolcu eklendi! 🚖\n%s - ₺%.2f", user, amount)
}

func paymentDeletedMessage() string {
	return "Kayıt silindi.\nYolcu kaydı başarıyla silindi."
}

func goalReachedMessage(goal string) string {
	if goal == "weekly" {
		return "Haftalık hedef tamamlandı! 🏆\nTebrikler, hedefinize ulaştınız!"
	}
	return "Günlük hedef tamamlandı! 🎉\nTebrikler, hedefinize ulaştınız!"
}
