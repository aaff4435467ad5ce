package models

// Wire types for the Sleeper v1 REST API. Nullable fields are pointers so the
// fantasy facade can tell "absent" from "zero".

type UserResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

type LeagueResponse struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Sport        string `json:"sport"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

type LeagueUserResponse struct {
	UserID      string             `json:"user_id"`
	Username    *string            `json:"username"`
	DisplayName *string            `json:"display_name"`
	IsOwner     bool               `json:"is_owner"`
	Metadata    LeagueUserMetadata `json:"metadata"`
}

type LeagueUserMetadata struct {
	TeamName string `json:"team_name"`
}

type RosterResponse struct {
	RosterID int      `json:"roster_id"`
	OwnerID  *string  `json:"owner_id"`
	LeagueID string   `json:"league_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
	Reserve  []string `json:"reserve"`
}

type MatchupResponse struct {
	RosterID       int                `json:"roster_id"`
	MatchupID      *int               `json:"matchup_id"`
	Points         *float64           `json:"points"`
	CustomPoints   *float64           `json:"custom_points"`
	Starters       []string           `json:"starters"`
	StartersPoints []float64          `json:"starters_points"`
	Players        []string           `json:"players"`
	PlayersPoints  map[string]float64 `json:"players_points"`
}

type PlayerResponse struct {
	PlayerID     string   `json:"player_id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Position     string   `json:"position"`
	Team         *string  `json:"team"`
	Status       string   `json:"status"`
	InjuryStatus *string  `json:"injury_status"`
	FantasyPos   []string `json:"fantasy_positions"`
}

type StateResponse struct {
	Week           int    `json:"week"`
	Leg            int    `json:"leg"`
	Season         string `json:"season"`
	SeasonType     string `json:"season_type"`
	DisplayWeek    int    `json:"display_week"`
	LeagueSeason   string `json:"league_season"`
	PreviousSeason string `json:"previous_season"`
}
