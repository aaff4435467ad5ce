package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/sleeperbot/internal/models"
)

type LineupOptions struct {
	Username   string
	Sport      string
	Season     string
	LeagueName string
	Week       int
	// Owner, when set, limits the report to the closest matching owner.
	Owner string
}

// Lineups prints each roster's starters for one week in the league named
// opts.LeagueName. Handled failures are written to w; the returned error is
// reserved for infrastructure problems such as a failed write.
func (s *FantasyService) Lineups(ctx context.Context, w io.Writer, opts LineupOptions) error {
	out := newReport(w)
	s.metrics.IncReportRuns("lineups")

	out.printf("Fetching leagues for user: %s\n\n", opts.Username)

	leagues, ok := s.findLeagues(ctx, out, opts.Username, opts.Sport, opts.Season,
		fmt.Sprintf("No leagues found for %s season", opts.Season))
	if !ok {
		return out.err
	}

	out.printf("Loading player data...\n\n")
	players, err := s.getPlayers(ctx, opts.Sport)
	if err != nil {
		out.printf("Could not load player data: %v\n", err)
		return fmt.Errorf("error loading player data: %w", err)
	}

	matched := false
	for _, league := range leagues {
		if league.Name != opts.LeagueName {
			continue
		}
		matched = true
		s.leagueLineups(ctx, out, league, players, opts)
		out.println()
	}

	if !matched {
		out.printf("No league named '%s' found\n", opts.LeagueName)
		if hint := closestLeague(opts.LeagueName, leagues); hint != "" {
			out.printf("Did you mean '%s'?\n", hint)
		}
	}

	return out.err
}

func (s *FantasyService) leagueLineups(ctx context.Context, out *report, league models.League, players models.PlayerDirectory, opts LineupOptions) {
	banner(out, fmt.Sprintf("League: %s", league.Name))

	rosters, err := s.api.GetRosters(ctx, league.ID)
	if err != nil {
		s.metrics.IncFetchFailures("rosters")
		out.printf("Could not fetch rosters: %v\n\n", err)
		return
	}
	users, err := s.api.GetUsers(ctx, league.ID)
	if err != nil {
		s.metrics.IncFetchFailures("users")
		out.printf("Could not fetch league users: %v\n\n", err)
		return
	}
	owners := RosterOwners(rosters, UserNames(users))

	matchups, err := s.api.GetMatchups(ctx, league.ID, opts.Week)
	if err != nil {
		s.metrics.IncFetchFailures("matchups")
		slog.Error("Error fetching matchups", "league_id", league.ID, "week", opts.Week, "error", err)
		out.printf("Could not fetch week %d matchups: %v\n\n", opts.Week, err)
		return
	}
	if len(matchups) == 0 {
		out.printf("No matchups found for week %d\n\n", opts.Week)
		return
	}

	if opts.Owner != "" {
		m, ok := findOwnerMatchup(opts.Owner, matchups, owners)
		if !ok {
			out.printf("No lineup found for '%s'\n", opts.Owner)
			return
		}
		matchups = []models.Matchup{m}
	}

	for _, m := range matchups {
		writeLineup(out, ownerName(owners, m.RosterID), opts.Week, m.Starters, players)
	}
}

func writeLineup(out *report, owner string, week int, starters []string, players models.PlayerDirectory) {
	out.printf("\n%s's Week %d Lineup:\n", owner, week)
	out.printf("%s\n", strings.Repeat("-", 40))

	if len(starters) == 0 {
		out.printf("  No starters set\n")
	} else {
		for i, playerID := range starters {
			out.printf("  %d. %s\n", i+1, lineupPlayerName(players, playerID))
		}
	}
	out.println()
}

// lineupPlayerName falls back to the raw id for players missing from the
// directory, such as team defenses keyed by abbreviation.
func lineupPlayerName(players models.PlayerDirectory, playerID string) string {
	if name, ok := players.Name(playerID); ok {
		return name
	}
	return playerID
}

// findOwnerMatchup picks the matchup whose owner name is most similar to
// query, requiring a similarity above 0.6.
func findOwnerMatchup(query string, matchups []models.Matchup, owners map[int]string) (models.Matchup, bool) {
	var best models.Matchup
	bestScore := 0.0
	threshold := 0.6

	for _, m := range matchups {
		name := ownerName(owners, m.RosterID)
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(name))
		maxLen := float64(max(len(query), len(name)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			best = m
		}
	}

	return best, bestScore > 0
}

// closestLeague suggests the league whose name best contains name's
// characters, ignoring case.
func closestLeague(name string, leagues []models.League) string {
	names := make([]string, len(leagues))
	for i, l := range leagues {
		names[i] = l.Name
	}

	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
