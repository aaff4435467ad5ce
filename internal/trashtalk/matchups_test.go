package trashtalk

import (
	"testing"

	"github.com/omarshaarawi/sleeperbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMatchups(t *testing.T) {
	matchups := []models.Matchup{
		{RosterID: 1, MatchupID: 2, Points: 100},
		{RosterID: 2, MatchupID: 1, Points: 90},
		{RosterID: 3, MatchupID: 2, Points: 80},
		{RosterID: 4, MatchupID: 1, Points: 70},
		{RosterID: 5, MatchupID: 3, Points: 60},
		{RosterID: 6, MatchupID: 4, Points: 50},
		{RosterID: 7, MatchupID: 4, Points: 40},
		{RosterID: 8, MatchupID: 4, Points: 30},
	}

	pairs := GroupMatchups(matchups)
	require.Len(t, pairs, 2, "groups of 1 and 3 are skipped")

	assert.Equal(t, 2, pairs[0].MatchupID, "first-appearance order")
	assert.Equal(t, 1, pairs[0].Team1.RosterID)
	assert.Equal(t, 3, pairs[0].Team2.RosterID)

	assert.Equal(t, 1, pairs[1].MatchupID)
	assert.Equal(t, 2, pairs[1].Team1.RosterID)
	assert.Equal(t, 4, pairs[1].Team2.RosterID)
}

func TestGroupMatchups_Empty(t *testing.T) {
	assert.Empty(t, GroupMatchups(nil))
}

func TestLowestScore(t *testing.T) {
	assert.Equal(t, 0.0, LowestScore(nil))
	assert.Equal(t, 61.3, LowestScore([]models.Matchup{
		{Points: 100}, {Points: 61.3}, {Points: 99.9}, {Points: 70},
	}))
}

func TestPairDecide(t *testing.T) {
	t.Run("team1 wins with more points", func(t *testing.T) {
		p := Pair{Team1: models.Matchup{RosterID: 1, Points: 101}, Team2: models.Matchup{RosterID: 2, Points: 100}}
		winner, loser := p.Decide()
		assert.Equal(t, 1, winner.RosterID)
		assert.Equal(t, 2, loser.RosterID)
	})

	t.Run("team2 wins with more points", func(t *testing.T) {
		p := Pair{Team1: models.Matchup{RosterID: 1, Points: 80}, Team2: models.Matchup{RosterID: 2, Points: 100}}
		winner, loser := p.Decide()
		assert.Equal(t, 2, winner.RosterID)
		assert.Equal(t, 1, loser.RosterID)
	})

	t.Run("tie goes to the second listed roster", func(t *testing.T) {
		p := Pair{Team1: models.Matchup{RosterID: 1, Points: 95.5}, Team2: models.Matchup{RosterID: 2, Points: 95.5}}
		winner, loser := p.Decide()
		assert.Equal(t, 2, winner.RosterID)
		assert.Equal(t, 1, loser.RosterID)
		assert.GreaterOrEqual(t, winner.Points, loser.Points)
	})
}
