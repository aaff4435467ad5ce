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
	sport       string
	season      string
	week        int
	leagueIndex int
	seed        int64
)

var rootCmd = &cobra.Command{
	Use:   "trashtalk",
	Short: "Generate a trash talk line for every matchup of a Sleeper week",
	Long: `Looks up the Sleeper user named by SLEEPER_USER, picks one of their leagues by
index and prints a trash talk line for every decided matchup of the week.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runOnce(ctx, cmd, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sport, "sport", "", "Sport to list leagues for (default from SPORT)")
	rootCmd.PersistentFlags().StringVar(&season, "season", "", "Season to list leagues for (default from SEASON)")
	rootCmd.Flags().IntVar(&week, "week", 0, "Week to roast (default from TRASH_TALK_WEEK)")
	rootCmd.Flags().IntVar(&leagueIndex, "league-index", 0, "Position of the league in the user's league list (default from TRASH_TALK_LEAGUE_INDEX)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for template selection, 0 seeds from the clock")

	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("Error running trashtalk", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads .env and the environment. A nil config with a nil error
// means the remediation hint was already written to out.
func loadConfig(out io.Writer) (*config.Config, error) {
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
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if sport != "" {
		cfg.Sleeper.Sport = sport
	}
	if season != "" {
		cfg.Sleeper.Season = season
	}
	return cfg, nil
}

func newFantasyService(cfg *config.Config, m metrics.Metrics) *service.FantasyService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sleeperAPI := sleeper.NewAPI(sleeper.NewClient(cfg.Sleeper.BaseURL, cfg.Sleeper.Timeout))
	fantasyAPI := fantasy.NewAPI(sleeperAPI)
	return service.NewFantasyService(fantasyAPI, memory.NewRepository(), rand.New(rand.NewSource(seed)), m)
}

func trashTalkOptions(cfg *config.Config) service.TrashTalkOptions {
	return service.TrashTalkOptions{
		Username:    cfg.Sleeper.Username,
		Sport:       cfg.Sleeper.Sport,
		Season:      cfg.Sleeper.Season,
		LeagueIndex: cfg.TrashTalk.LeagueIndex,
		Week:        cfg.TrashTalk.Week,
	}
}

func lineupOptions(cfg *config.Config) service.LineupOptions {
	return service.LineupOptions{
		Username:   cfg.Sleeper.Username,
		Sport:      cfg.Sleeper.Sport,
		Season:     cfg.Sleeper.Season,
		LeagueName: cfg.Lineups.LeagueName,
		Week:       cfg.Lineups.Week,
	}
}

func runOnce(ctx context.Context, cmd *cobra.Command, out io.Writer) error {
	cfg, err := loadConfig(out)
	if err != nil || cfg == nil {
		return err
	}

	opts := trashTalkOptions(cfg)
	if cmd.Flags().Changed("week") {
		opts.Week = week
	}
	if cmd.Flags().Changed("league-index") {
		opts.LeagueIndex = leagueIndex
	}

	fantasyService := newFantasyService(cfg, metrics.NewService(prometheus.NewRegistry()))
	return fantasyService.TrashTalk(ctx, out, opts)
}
