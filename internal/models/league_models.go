package models

import (
	"strings"
	"time"
)

type League struct {
	ID     string
	Name   string
	Season string
}

type LeagueUser struct {
	ID          string
	DisplayName string
	TeamName    string
}

type Roster struct {
	ID      int
	OwnerID string
	Players []string
}

// Matchup is one roster's scoring record for a week. Rosters sharing a
// MatchupID play each other.
type Matchup struct {
	RosterID       int
	MatchupID      int
	Points         float64
	Starters       []string
	StartersPoints []float64
	PlayersPoints  map[string]float64
}

// PlayerPoints returns the points a player scored in this matchup, or 0.
func (m Matchup) PlayerPoints(playerID string) float64 {
	return m.PlayersPoints[playerID]
}

type Player struct {
	ID        string
	FirstName string
	LastName  string
	Position  string
	Team      string
}

// FullName is the trimmed "First Last" name.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PlayerDirectory maps player ids to players.
type PlayerDirectory map[string]Player

// Name resolves a player id. ok is false when the id is unknown.
func (d PlayerDirectory) Name(playerID string) (name string, ok bool) {
	p, ok := d[playerID]
	if !ok {
		return "", false
	}
	return p.FullName(), true
}

type SportState struct {
	Sport       string
	Season      string
	Week        int
	DisplayWeek int
	SeasonType  string
	LastUpdated time.Time
}
