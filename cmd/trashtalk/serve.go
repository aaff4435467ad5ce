package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omarshaarawi/sleeperbot/internal/bot"
	"github.com/omarshaarawi/sleeperbot/internal/config"
	"github.com/omarshaarawi/sleeperbot/internal/metrics"
	"github.com/omarshaarawi/sleeperbot/internal/notifier"
	"github.com/omarshaarawi/sleeperbot/internal/scheduler"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot and the weekly report schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.OutOrStdout())
		if err != nil || cfg == nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(parent context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.NewService()
	fantasyService := newFantasyService(cfg, m)
	lineups := lineupOptions(cfg)
	trashTalk := trashTalkOptions(cfg)

	var notifiers notifier.Multi

	if cfg.TelegramBot.Enabled() {
		handler := bot.NewHandler(fantasyService, lineups, trashTalk)
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, handler, m)
		if err != nil {
			return err
		}
		if cfg.TelegramBot.ChatID != 0 {
			notifiers = append(notifiers, notifier.NewTelegram(telegramBot.API(), cfg.TelegramBot.ChatID, m))
		}

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	}

	if cfg.Slack.Enabled() {
		notifiers = append(notifiers, notifier.NewSlack(cfg.Slack.Token, cfg.Slack.ChannelID, m))
	}

	if len(notifiers) == 0 {
		slog.Warn("No chat notifier configured, scheduled reports go to stdout")
		notifiers = append(notifiers, notifier.NewWriter(os.Stdout, m))
	}

	sched, err := scheduler.NewScheduler(fantasyService, notifiers, cfg.Server.Timezone, lineups, trashTalk)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()
	slog.Info("Scheduler started", "jobs", sched.Jobs(), "notifiers", notifiers.Name())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthCheckHandler)
	mux.Handle("/metrics", metrics.NewMetricsHandler())
	server := &http.Server{Addr: cfg.Server.Addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
