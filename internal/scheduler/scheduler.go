package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/sleeperbot/internal/notifier"
	"github.com/omarshaarawi/sleeperbot/internal/service"
)

type Scheduler struct {
	s         gocron.Scheduler
	reporter  service.Reporter
	notifier  notifier.Notifier
	lineups   service.LineupOptions
	trashTalk service.TrashTalkOptions
}

func NewScheduler(reporter service.Reporter, n notifier.Notifier, timezone string, lineups service.LineupOptions, trashTalk service.TrashTalkOptions) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:         s,
		reporter:  reporter,
		notifier:  n,
		lineups:   lineups,
		trashTalk: trashTalk,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Trash talk - Tuesday 7:30, after Monday night football
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendTrashTalk),
		gocron.WithName("trash_talk"),
	)
	if err != nil {
		return fmt.Errorf("failed to create trash talk job: %w", err)
	}

	// Lineups - Thursday 18:30, before kickoff
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(18, 30, 0))),
		gocron.NewTask(s.sendLineups),
		gocron.WithName("lineups"),
	)
	if err != nil {
		return fmt.Errorf("failed to create lineups job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// Jobs lists the names of the registered jobs.
func (s *Scheduler) Jobs() []string {
	var names []string
	for _, j := range s.s.Jobs() {
		names = append(names, j.Name())
	}
	return names
}

func (s *Scheduler) sendTrashTalk() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	opts := s.trashTalk
	opts.Week = s.currentWeek(ctx, opts.Sport, opts.Week)

	var sb strings.Builder
	if err := s.reporter.TrashTalk(ctx, &sb, opts); err != nil {
		slog.Error("Failed to generate trash talk", "week", opts.Week, "error", err)
		return
	}
	s.send(ctx, sb.String())
}

func (s *Scheduler) sendLineups() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	opts := s.lineups
	opts.Week = s.currentWeek(ctx, opts.Sport, opts.Week)

	var sb strings.Builder
	if err := s.reporter.Lineups(ctx, &sb, opts); err != nil {
		slog.Error("Failed to get lineups", "week", opts.Week, "error", err)
		return
	}
	s.send(ctx, sb.String())
}

func (s *Scheduler) currentWeek(ctx context.Context, sport string, fallback int) int {
	week, err := s.reporter.GetCurrentWeek(ctx, sport)
	if err != nil || week < 1 {
		slog.Error("Failed to get current week, using configured week", "week", fallback, "error", err)
		return fallback
	}
	return week
}

func (s *Scheduler) send(ctx context.Context, text string) {
	if err := s.notifier.Send(ctx, text); err != nil {
		slog.Error("Failed to send report", "notifier", s.notifier.Name(), "error", err)
	}
}
