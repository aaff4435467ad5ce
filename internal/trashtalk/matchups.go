package trashtalk

import "github.com/omarshaarawi/sleeperbot/internal/models"

// Pair is a head-to-head matchup: the two rosters sharing a matchup id, in
// the order the API listed them.
type Pair struct {
	MatchupID int
	Team1     models.Matchup
	Team2     models.Matchup
}

// GroupMatchups pairs matchups by matchup id in order of first appearance.
// Groups without exactly two members are dropped.
func GroupMatchups(matchups []models.Matchup) []Pair {
	var order []int
	groups := make(map[int][]models.Matchup)
	for _, m := range matchups {
		if _, ok := groups[m.MatchupID]; !ok {
			order = append(order, m.MatchupID)
		}
		groups[m.MatchupID] = append(groups[m.MatchupID], m)
	}

	pairs := make([]Pair, 0, len(order))
	for _, id := range order {
		teams := groups[id]
		if len(teams) != 2 {
			continue
		}
		pairs = append(pairs, Pair{MatchupID: id, Team1: teams[0], Team2: teams[1]})
	}
	return pairs
}

// LowestScore is the minimum point total across every matchup of the week,
// or 0 when there are none.
func LowestScore(matchups []models.Matchup) float64 {
	if len(matchups) == 0 {
		return 0
	}
	lowest := matchups[0].Points
	for _, m := range matchups[1:] {
		if m.Points < lowest {
			lowest = m.Points
		}
	}
	return lowest
}

// Decide returns the winner and loser of the pair. Team1 wins only with
// strictly more points, so a tie goes to Team2.
func (p Pair) Decide() (winner, loser models.Matchup) {
	if p.Team1.Points > p.Team2.Points {
		return p.Team1, p.Team2
	}
	return p.Team2, p.Team1
}
