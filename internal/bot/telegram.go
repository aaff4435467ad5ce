package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/sleeperbot/internal/metrics"
	"github.com/omarshaarawi/sleeperbot/internal/notifier"
)

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	metrics metrics.Metrics
}

func NewTelegramBot(token string, handler *Handler, m metrics.Metrics) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramBot{
		bot:     bot,
		handler: handler,
		metrics: m,
	}, nil
}

// API exposes the underlying client so notifiers can share it.
func (t *TelegramBot) API() *tgbotapi.BotAPI {
	return t.bot
}

func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			if update.Message.IsCommand() {
				msg := t.handler.HandleCommand(ctx, update)
				// Reports can exceed Telegram's message limit; the notifier splits them.
				reply := notifier.NewTelegram(t.bot, msg.ChatID, t.metrics)
				if err := reply.Send(ctx, msg.Text); err != nil {
					slog.Error("Error sending message", "error", err)
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}
