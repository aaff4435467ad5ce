package service

import (
	"context"
	"errors"
	"sync"

	"github.com/omarshaarawi/sleeperbot/internal/metrics"
	"github.com/omarshaarawi/sleeperbot/internal/models"
	"github.com/omarshaarawi/sleeperbot/internal/repository/memory"
)

// fakeAPI is an in-memory LeagueAPI. Errors, when set, are returned instead
// of data.
type fakeAPI struct {
	mu sync.Mutex

	userID   string
	leagues  []models.League
	rosters  map[string][]models.Roster
	users    map[string][]models.LeagueUser
	matchups map[string][]models.Matchup
	players  models.PlayerDirectory
	state    *models.SportState

	userErr, leaguesErr, rostersErr, usersErr, matchupsErr, playersErr, stateErr error

	playerFetches int
	stateFetches  int
	matchupWeeks  []int
}

var _ LeagueAPI = (*fakeAPI)(nil)

func (f *fakeAPI) ResolveUser(ctx context.Context, username string) (string, error) {
	return f.userID, f.userErr
}

func (f *fakeAPI) ListLeagues(ctx context.Context, userID, sport, season string) ([]models.League, error) {
	if f.leaguesErr != nil {
		return nil, f.leaguesErr
	}
	return f.leagues, nil
}

func (f *fakeAPI) GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	if f.rostersErr != nil {
		return nil, f.rostersErr
	}
	return f.rosters[leagueID], nil
}

func (f *fakeAPI) GetUsers(ctx context.Context, leagueID string) ([]models.LeagueUser, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users[leagueID], nil
}

func (f *fakeAPI) GetMatchups(ctx context.Context, leagueID string, week int) ([]models.Matchup, error) {
	f.mu.Lock()
	f.matchupWeeks = append(f.matchupWeeks, week)
	f.mu.Unlock()
	if f.matchupsErr != nil {
		return nil, f.matchupsErr
	}
	return f.matchups[leagueID], nil
}

func (f *fakeAPI) GetAllPlayers(ctx context.Context, sport string) (models.PlayerDirectory, error) {
	f.mu.Lock()
	f.playerFetches++
	f.mu.Unlock()
	if f.playersErr != nil {
		return nil, f.playersErr
	}
	return f.players, nil
}

func (f *fakeAPI) GetState(ctx context.Context, sport string) (*models.SportState, error) {
	f.mu.Lock()
	f.stateFetches++
	f.mu.Unlock()
	if f.stateErr != nil {
		return nil, f.stateErr
	}
	return f.state, nil
}

var errFetch = errors.New("unexpected status code: 500")

// fixedPicker always picks the same index, wrapped to the family size.
type fixedPicker int

func (p fixedPicker) Intn(n int) int {
	return int(p) % n
}

func newTestService(api *fakeAPI) (*FantasyService, *metrics.Mock) {
	m := metrics.NewMock()
	return NewFantasyService(api, memory.NewRepository(), fixedPicker(0), m), m
}

// holdoutLeague is a four team league with two head-to-head matchups.
func holdoutLeague() *fakeAPI {
	return &fakeAPI{
		userID: "u1",
		leagues: []models.League{
			{ID: "L0", Name: "Work League"},
			{ID: "L1", Name: "Jerry Jones' Holdout Club"},
		},
		rosters: map[string][]models.Roster{
			"L1": {
				{ID: 1, OwnerID: "u1", Players: []string{"p1", "p2", "p3"}},
				{ID: 2, OwnerID: "u2", Players: []string{"p4", "p5", "p6"}},
				{ID: 3, OwnerID: "u3", Players: []string{"p7"}},
				{ID: 4, OwnerID: "", Players: nil},
			},
		},
		users: map[string][]models.LeagueUser{
			"L1": {
				{ID: "u1", DisplayName: "Jerry"},
				{ID: "u2", DisplayName: "Dak"},
				{ID: "u3", DisplayName: "Ceedee"},
			},
		},
		matchups: map[string][]models.Matchup{
			"L1": {
				{RosterID: 1, MatchupID: 1, Points: 100, Starters: []string{"p1", "p2"}, StartersPoints: []float64{10, 90},
					PlayersPoints: map[string]float64{"p1": 10, "p2": 90, "p3": 1}},
				{RosterID: 2, MatchupID: 1, Points: 96, Starters: []string{"p4", "DAL"}, StartersPoints: []float64{2, 94},
					PlayersPoints: map[string]float64{"p4": 2, "DAL": 94, "p5": 30, "p6": 5}},
				{RosterID: 3, MatchupID: 2, Points: 150, Starters: []string{"p7"}, StartersPoints: []float64{150}},
				{RosterID: 4, MatchupID: 2, Points: 50, Starters: []string{}},
			},
		},
		players: models.PlayerDirectory{
			"p1": {ID: "p1", FirstName: "Dak", LastName: "Prescott"},
			"p2": {ID: "p2", FirstName: "Ceedee", LastName: "Lamb"},
			"p4": {ID: "p4", FirstName: "Brandin", LastName: "Cooks"},
			"p5": {ID: "p5", FirstName: "Javonte", LastName: "Williams"},
			"p7": {ID: "p7", FirstName: " George", LastName: "Pickens "},
		},
		state: &models.SportState{Sport: "nfl", Week: 6},
	}
}
