package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/omarshaarawi/sleeperbot/internal/models"
	"github.com/omarshaarawi/sleeperbot/internal/trashtalk"
)

const unknownPlayer = "Unknown Player"

type TrashTalkOptions struct {
	Username    string
	Sport       string
	Season      string
	LeagueIndex int
	Week        int
}

// TrashTalk writes one line of commentary per head-to-head matchup of the
// week in the user's league at opts.LeagueIndex.
func (s *FantasyService) TrashTalk(ctx context.Context, w io.Writer, opts TrashTalkOptions) error {
	out := newReport(w)
	s.metrics.IncReportRuns("trash_talk")

	out.printf("🗑️  WELCOME TO TRASH TALK TIME! 🗑️\n")
	slog.Debug("Generating trash talk", "username", opts.Username, "week", opts.Week)

	leagues, ok := s.findLeagues(ctx, out, opts.Username, opts.Sport, opts.Season, "No leagues found")
	if !ok {
		return out.err
	}

	out.printf("Loading player data...\n\n")
	players, err := s.getPlayers(ctx, opts.Sport)
	if err != nil {
		out.printf("Could not load player data: %v\n", err)
		return fmt.Errorf("error loading player data: %w", err)
	}

	if opts.LeagueIndex < 0 || opts.LeagueIndex >= len(leagues) {
		out.printf("No league at index %d (found %d)\n", opts.LeagueIndex, len(leagues))
		return out.err
	}
	league := leagues[opts.LeagueIndex]

	banner(out, fmt.Sprintf("🗑️  TRASH TALK TIME - %s  🗑️", league.Name))

	rosters, err := s.api.GetRosters(ctx, league.ID)
	if err != nil {
		s.metrics.IncFetchFailures("rosters")
		out.printf("Could not fetch rosters\n")
		return out.err
	}
	users, err := s.api.GetUsers(ctx, league.ID)
	if err != nil {
		s.metrics.IncFetchFailures("users")
		out.printf("Could not fetch league users\n")
		return out.err
	}
	owners := RosterOwners(rosters, UserNames(users))
	rostersByID := RostersByID(rosters)

	matchups, err := s.api.GetMatchups(ctx, league.ID, opts.Week)
	if err != nil {
		s.metrics.IncFetchFailures("matchups")
		slog.Error("Error fetching matchups", "league_id", league.ID, "week", opts.Week, "error", err)
		out.printf("Could not fetch matchups\n")
		return out.err
	}
	if len(matchups) == 0 {
		out.printf("No matchups found\n")
		return out.err
	}

	lowest := trashtalk.LowestScore(matchups)
	name := trashTalkPlayerName(players)

	for _, pair := range trashtalk.GroupMatchups(matchups) {
		winner, loser := pair.Decide()

		details := trashtalk.Analyze(loser, rostersByID[loser.RosterID], name)
		details.LowestScore = loser.Points == lowest

		line, kind := trashtalk.Generate(s.picker, trashtalk.Result{
			WinnerName:  ownerName(owners, winner.RosterID),
			LoserName:   ownerName(owners, loser.RosterID),
			WinnerScore: winner.Points,
			LoserScore:  loser.Points,
			Context:     details,
		})
		s.metrics.IncTrashTalkLines(string(kind))

		out.printf("📢 %s\n\n", line)
	}

	rule := strings.Repeat("=", 60)
	out.printf("%s\nWeek over. See you next Sunday! 🏈\n%s\n", rule, rule)

	return out.err
}

func trashTalkPlayerName(players models.PlayerDirectory) trashtalk.NameFunc {
	return func(playerID string) string {
		if name, ok := players.Name(playerID); ok {
			return name
		}
		return unknownPlayer
	}
}
