package notifier

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/sleeperbot/internal/metrics"
)

// Telegram rejects messages longer than this.
const telegramMessageLimit = 4096

// TelegramSender is the part of *tgbotapi.BotAPI we use.
type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Telegram struct {
	api     TelegramSender
	chatID  int64
	metrics metrics.Metrics
}

var _ Notifier = (*Telegram)(nil)

func NewTelegram(api TelegramSender, chatID int64, m metrics.Metrics) *Telegram {
	return &Telegram{api: api, chatID: chatID, metrics: m}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) Send(ctx context.Context, text string) error {
	if t.chatID == 0 {
		slog.Error("Chat ID not set")
		return fmt.Errorf("chat ID not set")
	}

	for _, part := range chunk(text, telegramMessageLimit) {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := tgbotapi.NewMessage(t.chatID, part)
		if _, err := t.api.Send(msg); err != nil {
			t.metrics.IncNotifFailed(t.Name())
			slog.Error("Error sending message", "error", err)
			return fmt.Errorf("error sending telegram message: %w", err)
		}
	}

	t.metrics.IncNotifSent(t.Name())
	return nil
}
