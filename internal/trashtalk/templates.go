package trashtalk

import (
	"fmt"
	"sync"
)

const (
	CloseGameMargin = 5.0
	BlowoutMargin   = 30.0
)

// Kind names a family of trash talk templates.
type Kind string

const (
	KindCloseGame   Kind = "close_game"
	KindBlowout     Kind = "blowout"
	KindBench       Kind = "bench"
	KindLowestScore Kind = "lowest_score"
	KindDefault     Kind = "default"
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Result is a decided head-to-head plus the loser's context.
type Result struct {
	WinnerName  string
	LoserName   string
	WinnerScore float64
	LoserScore  float64
	Context     Context
}

func (r Result) Margin() float64 {
	return r.WinnerScore - r.LoserScore
}

type template func(r Result) string

var closeGame = []template{
	func(r Result) string {
		return fmt.Sprintf("%s, you were THIS close 🤏 Maybe next week you'll actually win one.", r.LoserName)
	},
	func(r Result) string {
		return fmt.Sprintf("%s squeaked by with a %.2f point win. %s basically gave them the W.", r.WinnerName, r.Margin(), r.LoserName)
	},
	func(r Result) string {
		return fmt.Sprintf("That was close, but close only counts in horseshoes. %s takes the L!", r.LoserName)
	},
	func(r Result) string {
		return fmt.Sprintf("%s lost by %.2f points. That's gotta sting.", r.LoserName, r.Margin())
	},
}

var blowout = []template{
	func(r Result) string {
		return fmt.Sprintf("%s got absolutely DEMOLISHED by %s. Final score: %.2f - %.2f. Yikes. 💀", r.LoserName, r.WinnerName, r.WinnerScore, r.LoserScore)
	},
	func(r Result) string {
		return fmt.Sprintf("Did %s even show up this week? Lost by %.2f points. Embarrassing.", r.LoserName, r.Margin())
	},
	func(r Result) string {
		return fmt.Sprintf("%s put up %.2f points. %s? A measly %.2f. Not even close.", r.WinnerName, r.WinnerScore, r.LoserName, r.LoserScore)
	},
	func(r Result) string {
		return fmt.Sprintf("Breaking news: %s found missing after %.2f point beatdown.", r.LoserName, r.Margin())
	},
	func(r Result) string {
		return fmt.Sprintf("%s, you might want to check if your players are still in the NFL after that performance.", r.LoserName)
	},
}

var lowestScore = []template{
	func(r Result) string {
		return fmt.Sprintf("%s had the LOWEST score in the entire league this week. Congrats on the achievement! 🏆", r.LoserName)
	},
	func(r Result) string {
		return fmt.Sprintf("Everyone scored more than %s this week. Everyone.", r.LoserName)
	},
	func(r Result) string {
		return fmt.Sprintf("%s putting up %.2f points like it's a bye week. It's not.", r.LoserName, r.LoserScore)
	},
}

var defaults = []template{
	func(r Result) string {
		return fmt.Sprintf("%s takes down %s, %.2f to %.2f. Better luck next week!", r.WinnerName, r.LoserName, r.WinnerScore, r.LoserScore)
	},
	func(r Result) string {
		return fmt.Sprintf("%s thought they had a chance. They didn't. %s wins by %.2f.", r.LoserName, r.WinnerName, r.Margin())
	},
	func(r Result) string {
		return fmt.Sprintf("Another week, another L for %s. Tale as old as time.", r.LoserName)
	},
	func(r Result) string {
		return fmt.Sprintf("%s cooking 👨‍🍳 %s getting cooked 🔥", r.WinnerName, r.LoserName)
	},
}

func benchTemplate(r Result) string {
	return fmt.Sprintf("%s left %s on the bench while starting %s. You played yourself. 🤡", r.LoserName, r.Context.BestBench, r.Context.WorstStarter)
}

// Select returns the template family for r. The first matching rule wins:
// close game, blowout, bench, lowest score, default.
func Select(r Result) Kind {
	margin := r.Margin()
	switch {
	case margin < CloseGameMargin:
		return KindCloseGame
	case margin >= BlowoutMargin:
		return KindBlowout
	case r.Context.BenchWouldHaveWon:
		return KindBench
	case r.Context.LowestScore:
		return KindLowestScore
	default:
		return KindDefault
	}
}

// Generate renders one line of trash talk for r, using p to choose among the
// variants of the selected family.
func Generate(p Picker, r Result) (string, Kind) {
	kind := Select(r)
	switch kind {
	case KindCloseGame:
		return pick(p, closeGame)(r), kind
	case KindBlowout:
		return pick(p, blowout)(r), kind
	case KindBench:
		return benchTemplate(r), kind
	case KindLowestScore:
		return pick(p, lowestScore)(r), kind
	default:
		return pick(p, defaults)(r), kind
	}
}

// Variants reports how many templates a family has.
func Variants(kind Kind) int {
	switch kind {
	case KindCloseGame:
		return len(closeGame)
	case KindBlowout:
		return len(blowout)
	case KindBench:
		return 1
	case KindLowestScore:
		return len(lowestScore)
	default:
		return len(defaults)
	}
}

func pick(p Picker, templates []template) template {
	return templates[p.Intn(len(templates))]
}

// SyncPicker makes a Picker safe for concurrent use.
type SyncPicker struct {
	mu sync.Mutex
	p  Picker
}

func NewSyncPicker(p Picker) *SyncPicker {
	return &SyncPicker{p: p}
}

func (s *SyncPicker) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Intn(n)
}
