package fantasy

import (
	"context"
	"time"

	"github.com/omarshaarawi/sleeperbot/internal/api/sleeper"
	"github.com/omarshaarawi/sleeperbot/internal/models"
)

// API turns Sleeper wire records into domain models. All defaulting rules
// for missing or null fields live here.
type API struct {
	sleeperAPI *sleeper.API
}

func NewAPI(sleeperAPI *sleeper.API) *API {
	return &API{sleeperAPI: sleeperAPI}
}

// ResolveUser returns the user id for username, or "" when Sleeper has no
// such user.
func (a *API) ResolveUser(ctx context.Context, username string) (string, error) {
	user, err := a.sleeperAPI.GetUser(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.UserID, nil
}

func (a *API) ListLeagues(ctx context.Context, userID, sport, season string) ([]models.League, error) {
	resp, err := a.sleeperAPI.GetUserLeagues(ctx, userID, sport, season)
	if err != nil {
		return nil, err
	}

	leagues := make([]models.League, len(resp))
	for i, l := range resp {
		leagues[i] = models.League{ID: l.LeagueID, Name: l.Name, Season: l.Season}
	}
	return leagues, nil
}

func (a *API) GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	resp, err := a.sleeperAPI.GetRosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	rosters := make([]models.Roster, len(resp))
	for i, r := range resp {
		rosters[i] = models.Roster{
			ID:      r.RosterID,
			OwnerID: deref(r.OwnerID),
			Players: r.Players,
		}
	}
	return rosters, nil
}

func (a *API) GetUsers(ctx context.Context, leagueID string) ([]models.LeagueUser, error) {
	resp, err := a.sleeperAPI.GetLeagueUsers(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	users := make([]models.LeagueUser, len(resp))
	for i, u := range resp {
		users[i] = models.LeagueUser{
			ID:          u.UserID,
			DisplayName: displayName(u),
			TeamName:    u.Metadata.TeamName,
		}
	}
	return users, nil
}

// displayName resolves display_name, then username, then "Unknown".
func displayName(u models.LeagueUserResponse) string {
	if name := deref(u.DisplayName); name != "" {
		return name
	}
	if name := deref(u.Username); name != "" {
		return name
	}
	return "Unknown"
}

func (a *API) GetMatchups(ctx context.Context, leagueID string, week int) ([]models.Matchup, error) {
	resp, err := a.sleeperAPI.GetMatchups(ctx, leagueID, week)
	if err != nil {
		return nil, err
	}

	matchups := make([]models.Matchup, len(resp))
	for i, m := range resp {
		matchup := models.Matchup{
			RosterID:       m.RosterID,
			Starters:       m.Starters,
			StartersPoints: m.StartersPoints,
			PlayersPoints:  m.PlayersPoints,
		}
		if m.MatchupID != nil {
			matchup.MatchupID = *m.MatchupID
		}
		if m.Points != nil {
			matchup.Points = *m.Points
		}
		if matchup.Starters == nil {
			matchup.Starters = []string{}
		}
		matchups[i] = matchup
	}
	return matchups, nil
}

func (a *API) GetAllPlayers(ctx context.Context, sport string) (models.PlayerDirectory, error) {
	resp, err := a.sleeperAPI.GetAllPlayers(ctx, sport)
	if err != nil {
		return nil, err
	}

	players := make(models.PlayerDirectory, len(resp))
	for id, p := range resp {
		players[id] = models.Player{
			ID:        id,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Position:  p.Position,
			Team:      deref(p.Team),
		}
	}
	return players, nil
}

func (a *API) GetState(ctx context.Context, sport string) (*models.SportState, error) {
	resp, err := a.sleeperAPI.GetState(ctx, sport)
	if err != nil {
		return nil, err
	}

	return &models.SportState{
		Sport:       sport,
		Season:      resp.Season,
		Week:        resp.Week,
		DisplayWeek: resp.DisplayWeek,
		SeasonType:  resp.SeasonType,
		LastUpdated: time.Now(),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
