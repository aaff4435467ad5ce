package sleeper

import (
	"context"
	"fmt"
	"net/url"

	"github.com/omarshaarawi/sleeperbot/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetUser looks up a user by username or id. A nil user with a nil error
// means Sleeper does not know the user.
func (a *API) GetUser(ctx context.Context, username string) (*models.UserResponse, error) {
	var user *models.UserResponse
	endpoint := fmt.Sprintf("/user/%s", url.PathEscape(username))

	if err := a.client.Get(ctx, endpoint, &user); err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	return user, nil
}

func (a *API) GetUserLeagues(ctx context.Context, userID, sport, season string) ([]models.LeagueResponse, error) {
	var leagues []models.LeagueResponse
	endpoint := fmt.Sprintf("/user/%s/leagues/%s/%s", url.PathEscape(userID), sport, season)

	if err := a.client.Get(ctx, endpoint, &leagues); err != nil {
		return nil, fmt.Errorf("fetching leagues: %w", err)
	}

	return leagues, nil
}

func (a *API) GetRosters(ctx context.Context, leagueID string) ([]models.RosterResponse, error) {
	var rosters []models.RosterResponse
	endpoint := fmt.Sprintf("/league/%s/rosters", url.PathEscape(leagueID))

	if err := a.client.Get(ctx, endpoint, &rosters); err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}

	return rosters, nil
}

func (a *API) GetLeagueUsers(ctx context.Context, leagueID string) ([]models.LeagueUserResponse, error) {
	var users []models.LeagueUserResponse
	endpoint := fmt.Sprintf("/league/%s/users", url.PathEscape(leagueID))

	if err := a.client.Get(ctx, endpoint, &users); err != nil {
		return nil, fmt.Errorf("fetching league users: %w", err)
	}

	return users, nil
}

func (a *API) GetMatchups(ctx context.Context, leagueID string, week int) ([]models.MatchupResponse, error) {
	var matchups []models.MatchupResponse
	endpoint := fmt.Sprintf("/league/%s/matchups/%d", url.PathEscape(leagueID), week)

	if err := a.client.Get(ctx, endpoint, &matchups); err != nil {
		return nil, fmt.Errorf("fetching matchups: %w", err)
	}

	return matchups, nil
}

// GetAllPlayers downloads the full player directory for a sport. The payload
// is several megabytes; Sleeper asks callers to fetch it at most once a day.
func (a *API) GetAllPlayers(ctx context.Context, sport string) (map[string]models.PlayerResponse, error) {
	var players map[string]models.PlayerResponse
	endpoint := fmt.Sprintf("/players/%s", sport)

	if err := a.client.Get(ctx, endpoint, &players); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}

	return players, nil
}

func (a *API) GetState(ctx context.Context, sport string) (*models.StateResponse, error) {
	var state models.StateResponse
	endpoint := fmt.Sprintf("/state/%s", sport)

	if err := a.client.Get(ctx, endpoint, &state); err != nil {
		return nil, fmt.Errorf("fetching state: %w", err)
	}

	return &state, nil
}
