package trashtalk

import "github.com/omarshaarawi/sleeperbot/internal/models"

// NameFunc resolves a player id to a display name.
type NameFunc func(playerID string) string

// Context is what we know about how a losing roster lost.
type Context struct {
	HasWorstStarter    bool
	WorstStarter       string
	WorstStarterPoints float64

	HasBestBench    bool
	BestBench       string
	BestBenchPoints float64

	// BenchWouldHaveWon is set only when both starter points and bench
	// players exist.
	BenchWouldHaveWon bool
	LowestScore       bool
}

// Analyze inspects the loser's lineup against its full roster. LowestScore
// is left to the caller since it depends on the whole week.
func Analyze(loser models.Matchup, roster models.Roster, name NameFunc) Context {
	var ctx Context

	if len(loser.StartersPoints) > 0 {
		worst := 0
		for i, pts := range loser.StartersPoints {
			if pts < loser.StartersPoints[worst] {
				worst = i
			}
		}
		ctx.HasWorstStarter = true
		ctx.WorstStarterPoints = loser.StartersPoints[worst]
		if worst < len(loser.Starters) {
			ctx.WorstStarter = name(loser.Starters[worst])
		} else {
			ctx.WorstStarter = name("")
		}
	}

	bench := Bench(roster, loser.Starters)
	if len(bench) > 0 {
		best := bench[0]
		bestPts := loser.PlayerPoints(best)
		for _, p := range bench[1:] {
			if pts := loser.PlayerPoints(p); pts > bestPts {
				best, bestPts = p, pts
			}
		}
		ctx.HasBestBench = true
		ctx.BestBench = name(best)
		ctx.BestBenchPoints = bestPts

		if ctx.HasWorstStarter {
			ctx.BenchWouldHaveWon = bestPts > ctx.WorstStarterPoints
		}
	}

	return ctx
}

// Bench lists rostered players that did not start, in roster order.
func Bench(roster models.Roster, starters []string) []string {
	started := make(map[string]bool, len(starters))
	for _, s := range starters {
		started[s] = true
	}

	var bench []string
	for _, p := range roster.Players {
		if !started[p] {
			bench = append(bench, p)
		}
	}
	return bench
}
