package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/omarshaarawi/sleeperbot/internal/metrics"
	"github.com/omarshaarawi/sleeperbot/internal/models"
	"github.com/omarshaarawi/sleeperbot/internal/repository/memory"
	"github.com/omarshaarawi/sleeperbot/internal/trashtalk"
)

const cacheTTL = 24 * time.Hour

// LeagueAPI is the league data source. *fantasy.API implements it.
type LeagueAPI interface {
	ResolveUser(ctx context.Context, username string) (string, error)
	ListLeagues(ctx context.Context, userID, sport, season string) ([]models.League, error)
	GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error)
	GetUsers(ctx context.Context, leagueID string) ([]models.LeagueUser, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]models.Matchup, error)
	GetAllPlayers(ctx context.Context, sport string) (models.PlayerDirectory, error)
	GetState(ctx context.Context, sport string) (*models.SportState, error)
}

// Reporter produces the text reports. *FantasyService implements it.
type Reporter interface {
	Lineups(ctx context.Context, w io.Writer, opts LineupOptions) error
	TrashTalk(ctx context.Context, w io.Writer, opts TrashTalkOptions) error
	GetCurrentWeek(ctx context.Context, sport string) (int, error)
}

var _ Reporter = (*FantasyService)(nil)

type FantasyService struct {
	api     LeagueAPI
	repo    *memory.Repository
	picker  trashtalk.Picker
	metrics metrics.Metrics
}

func NewFantasyService(api LeagueAPI, repo *memory.Repository, picker trashtalk.Picker, m metrics.Metrics) *FantasyService {
	return &FantasyService{
		api:     api,
		repo:    repo,
		picker:  trashtalk.NewSyncPicker(picker),
		metrics: m,
	}
}

// GetCurrentWeek returns the sport's current week from Sleeper's state,
// refreshed at most once a day.
func (s *FantasyService) GetCurrentWeek(ctx context.Context, sport string) (int, error) {
	state := s.repo.GetState()
	if state == nil || state.Sport != sport || time.Since(state.LastUpdated) > cacheTTL {
		newState, err := s.api.GetState(ctx, sport)
		if err != nil {
			s.metrics.IncFetchFailures("state")
			return 0, fmt.Errorf("error fetching %s state: %w", sport, err)
		}
		s.repo.SaveState(newState)
		state = newState
	}

	slog.Info("Current week", "sport", sport, "week", state.Week)
	return state.Week, nil
}

// getPlayers returns the player directory, fetching it when the cached copy
// is missing or older than a day.
func (s *FantasyService) getPlayers(ctx context.Context, sport string) (models.PlayerDirectory, error) {
	players, updated := s.repo.GetPlayers()
	if players != nil && time.Since(updated) <= cacheTTL {
		return players, nil
	}

	players, err := s.api.GetAllPlayers(ctx, sport)
	if err != nil {
		s.metrics.IncFetchFailures("players")
		return nil, err
	}
	slog.Info("Loaded player directory", "sport", sport, "players", len(players))
	s.repo.SavePlayers(players)
	return players, nil
}

// findLeagues resolves username and lists their leagues. ok is false when the
// run should stop; the reason has already been written to w.
func (s *FantasyService) findLeagues(ctx context.Context, w *report, username, sport, season, noLeagues string) ([]models.League, bool) {
	userID, err := s.api.ResolveUser(ctx, username)
	if err != nil {
		s.metrics.IncFetchFailures("user")
		slog.Error("Error resolving user", "username", username, "error", err)
	}
	if userID == "" {
		w.printf("Error: Could not find user '%s'\n", username)
		return nil, false
	}

	leagues, err := s.api.ListLeagues(ctx, userID, sport, season)
	if err != nil {
		s.metrics.IncFetchFailures("leagues")
		slog.Error("Error listing leagues", "user_id", userID, "error", err)
	}
	if len(leagues) == 0 {
		w.printf("%s\n", noLeagues)
		return nil, false
	}

	return leagues, true
}

func banner(w *report, title string) {
	rule := strings.Repeat("=", 60)
	w.printf("%s\n%s\n%s\n\n", rule, title, rule)
}
