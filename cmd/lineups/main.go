package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/sleeperbot/internal/api/fantasy"
	"github.com/omarshaarawi/sleeperbot/internal/api/sleeper"
	"github.com/omarshaarawi/sleeperbot/internal/config"
	"github.com/omarshaarawi/sleeperbot/internal/logging"
	"github.com/omarshaarawi/sleeperbot/internal/metrics"
	"github.com/omarshaarawi/sleeperbot/internal/repository/memory"
	"github.com/omarshaarawi/sleeperbot/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	sport  string
	season string
	league string
	week   int
)

var rootCmd = &cobra.Command{
	Use:   "lineups",
	Short: "Print every starting lineup for one week of a Sleeper league",
	Long: `Looks up the Sleeper user named by SLEEPER_USER, finds the league with the
configured name and prints each roster's starters for the configured week.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, cmd, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&sport, "sport", "", "Sport to list leagues for (default from SPORT)")
	rootCmd.Flags().StringVar(&season, "season", "", "Season to list leagues for (default from SEASON)")
	rootCmd.Flags().StringVar(&league, "league", "", "Exact league name (default from LINEUP_LEAGUE)")
	rootCmd.Flags().IntVar(&week, "week", 0, "Week to report (default from LINEUP_WEEK)")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("Error running lineups", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cobra.Command, out io.Writer) error {
	envErr := godotenv.Load()

	cfg, err := config.New()
	if cfg != nil {
		logging.Setup(os.Stderr, cfg.Server.LogLevel)
	}
	if envErr != nil {
		slog.Debug("No .env file found, reading from environment variables")
	}
	if errors.Is(err, config.ErrMissingUsername) {
		fmt.Fprintln(out, "Error: SLEEPER_USER not found in .env file")
		fmt.Fprintln(out, "run: echo 'SLEEPER_USER=your_sleeper_username' > .env")
		return nil
	}
	if err != nil {
		return err
	}

	opts := service.LineupOptions{
		Username:   cfg.Sleeper.Username,
		Sport:      cfg.Sleeper.Sport,
		Season:     cfg.Sleeper.Season,
		LeagueName: cfg.Lineups.LeagueName,
		Week:       cfg.Lineups.Week,
	}
	if cmd.Flags().Changed("sport") {
		opts.Sport = sport
	}
	if cmd.Flags().Changed("season") {
		opts.Season = season
	}
	if cmd.Flags().Changed("league") {
		opts.LeagueName = league
	}
	if cmd.Flags().Changed("week") {
		opts.Week = week
	}

	sleeperAPI := sleeper.NewAPI(sleeper.NewClient(cfg.Sleeper.BaseURL, cfg.Sleeper.Timeout))
	fantasyAPI := fantasy.NewAPI(sleeperAPI)
	fantasyService := service.NewFantasyService(
		fantasyAPI,
		memory.NewRepository(),
		rand.New(rand.NewSource(time.Now().UnixNano())),
		metrics.NewService(prometheus.NewRegistry()),
	)

	return fantasyService.Lineups(ctx, out, opts)
}
