package trashtalk

import (
	"testing"

	"github.com/omarshaarawi/sleeperbot/internal/models"
	"github.com/stretchr/testify/assert"
)

func upperName(id string) string {
	if id == "" {
		return "Unknown Player"
	}
	return "Player " + id
}

func TestAnalyze_BenchWouldHaveWon(t *testing.T) {
	loser := models.Matchup{
		Starters:       []string{"qb", "rb", "wr"},
		StartersPoints: []float64{20, 3.5, 12},
		PlayersPoints:  map[string]float64{"qb": 20, "rb": 3.5, "wr": 12, "b1": 4, "b2": 18, "b3": 18},
	}
	roster := models.Roster{Players: []string{"qb", "b1", "rb", "b2", "wr", "b3"}}

	ctx := Analyze(loser, roster, upperName)

	assert.True(t, ctx.HasWorstStarter)
	assert.Equal(t, "Player rb", ctx.WorstStarter)
	assert.Equal(t, 3.5, ctx.WorstStarterPoints)
	assert.True(t, ctx.HasBestBench)
	assert.Equal(t, "Player b2", ctx.BestBench, "ties keep the first bench player")
	assert.Equal(t, 18.0, ctx.BestBenchPoints)
	assert.True(t, ctx.BenchWouldHaveWon)
	assert.False(t, ctx.LowestScore)
}

func TestAnalyze_WorstStarterTieKeepsFirst(t *testing.T) {
	loser := models.Matchup{
		Starters:       []string{"a", "b", "c"},
		StartersPoints: []float64{5, 2, 2},
	}
	ctx := Analyze(loser, models.Roster{Players: []string{"a", "b", "c"}}, upperName)

	assert.Equal(t, "Player b", ctx.WorstStarter)
	assert.False(t, ctx.HasBestBench)
	assert.False(t, ctx.BenchWouldHaveWon)
}

func TestAnalyze_BenchNotBetter(t *testing.T) {
	loser := models.Matchup{
		Starters:       []string{"a"},
		StartersPoints: []float64{10},
		PlayersPoints:  map[string]float64{"a": 10, "b": 10},
	}
	ctx := Analyze(loser, models.Roster{Players: []string{"a", "b"}}, upperName)

	assert.True(t, ctx.HasBestBench)
	assert.False(t, ctx.BenchWouldHaveWon, "equal points is not better")
}

func TestAnalyze_NoStarterPoints(t *testing.T) {
	loser := models.Matchup{
		Starters:      []string{"a"},
		PlayersPoints: map[string]float64{"b": 30},
	}
	ctx := Analyze(loser, models.Roster{Players: []string{"a", "b"}}, upperName)

	assert.False(t, ctx.HasWorstStarter)
	assert.True(t, ctx.HasBestBench)
	assert.Equal(t, 30.0, ctx.BestBenchPoints)
	assert.False(t, ctx.BenchWouldHaveWon)
}

func TestAnalyze_MissingBenchPointsDefaultToZero(t *testing.T) {
	loser := models.Matchup{
		Starters:       []string{"a"},
		StartersPoints: []float64{-1},
	}
	ctx := Analyze(loser, models.Roster{Players: []string{"a", "b"}}, upperName)

	assert.Equal(t, "Player b", ctx.BestBench)
	assert.Equal(t, 0.0, ctx.BestBenchPoints)
	assert.True(t, ctx.BenchWouldHaveWon)
}

func TestAnalyze_MissingRoster(t *testing.T) {
	loser := models.Matchup{
		Starters:       []string{"a", "b"},
		StartersPoints: []float64{7, 9},
	}
	ctx := Analyze(loser, models.Roster{}, upperName)

	assert.Equal(t, "Player a", ctx.WorstStarter)
	assert.False(t, ctx.HasBestBench)
	assert.False(t, ctx.BenchWouldHaveWon)
}

func TestAnalyze_MorePointsThanStarters(t *testing.T) {
	loser := models.Matchup{
		Starters:       []string{"a"},
		StartersPoints: []float64{9, 1},
	}
	ctx := Analyze(loser, models.Roster{}, upperName)

	assert.Equal(t, "Unknown Player", ctx.WorstStarter)
	assert.Equal(t, 1.0, ctx.WorstStarterPoints)
}

func TestBench(t *testing.T) {
	roster := models.Roster{Players: []string{"d", "a", "c", "b"}}
	assert.Equal(t, []string{"d", "c"}, Bench(roster, []string{"a", "b"}))
	assert.Nil(t, Bench(roster, []string{"a", "b", "c", "d"}))
	assert.Equal(t, []string{"d", "a", "c", "b"}, Bench(roster, nil))
}
