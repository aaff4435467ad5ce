package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/sleeperbot/internal/service"
)

type Handler struct {
	reporter  service.Reporter
	lineups   service.LineupOptions
	trashTalk service.TrashTalkOptions
}

// NewHandler uses lineups and trashTalk as defaults; commands may override
// the week and owner.
func NewHandler(reporter service.Reporter, lineups service.LineupOptions, trashTalk service.TrashTalkOptions) *Handler {
	return &Handler{reporter: reporter, lineups: lineups, trashTalk: trashTalk}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())

	switch command {
	case "start":
		msg.Text = "Welcome to the trash talk bot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/trashtalk [week] - Roast this week's losers\n/lineups [week] - Show every starting lineup\n/lineup <owner> - Show one owner's starting lineup"
	case "trashtalk":
		h.handleTrashTalk(ctx, &msg, args)
	case "lineups":
		h.handleLineups(ctx, &msg, args)
	case "lineup":
		h.handleLineup(ctx, &msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleTrashTalk(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	opts := h.trashTalk
	week, err := h.week(ctx, args, opts.Sport, opts.Week)
	if err != nil {
		msg.Text = err.Error()
		return
	}
	opts.Week = week

	var sb strings.Builder
	if err := h.reporter.TrashTalk(ctx, &sb, opts); err != nil {
		msg.Text = fmt.Sprintf("Error generating trash talk: %v", err)
		return
	}
	msg.Text = sb.String()
}

func (h *Handler) handleLineups(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	opts := h.lineups
	week, err := h.week(ctx, args, opts.Sport, opts.Week)
	if err != nil {
		msg.Text = err.Error()
		return
	}
	opts.Week = week

	var sb strings.Builder
	if err := h.reporter.Lineups(ctx, &sb, opts); err != nil {
		msg.Text = fmt.Sprintf("Error fetching lineups: %v", err)
		return
	}
	msg.Text = sb.String()
}

func (h *Handler) handleLineup(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide an owner name. Usage: /lineup <owner>"
		return
	}

	opts := h.lineups
	week, err := h.week(ctx, "", opts.Sport, opts.Week)
	if err != nil {
		msg.Text = err.Error()
		return
	}
	opts.Week = week
	opts.Owner = args

	var sb strings.Builder
	if err := h.reporter.Lineups(ctx, &sb, opts); err != nil {
		msg.Text = fmt.Sprintf("Error fetching lineup: %v", err)
		return
	}
	msg.Text = sb.String()
}

// week parses an explicit week argument, otherwise asks Sleeper for the
// current week and falls back to the configured one.
func (h *Handler) week(ctx context.Context, args, sport string, fallback int) (int, error) {
	if args != "" {
		week, err := strconv.Atoi(args)
		if err != nil || week < 1 {
			return 0, fmt.Errorf("invalid week %q, expected a positive number", args)
		}
		return week, nil
	}

	week, err := h.reporter.GetCurrentWeek(ctx, sport)
	if err != nil || week < 1 {
		slog.Warn("Falling back to configured week", "week", fallback, "error", err)
		return fallback, nil
	}
	return week, nil
}
