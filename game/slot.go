// Package game implements the slot-machine prize selector used by the
// gamified page widget.
package game

import (
	"math/rand"
	"time"
)

// Prize is one slot-machine outcome. Probability is a percentage;
// a machine's prize table must sum to 100.
type Prize struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// TryAgainID marks the losing outcome.
const TryAgainID = "try-again"

// DefaultPrizes is the fixed prize table. Probabilities sum to 100.
var DefaultPrizes = []Prize{
	{ID: "jackpot", Label: "Grand Prize", Probability: 1},
	{ID: "free-month", Label: "Free Month", Probability: 4},
	{ID: "discount-50", Label: "50% Off", Probability: 10},
	{ID: "discount-20", Label: "20% Off", Probability: 25},
	{ID: TryAgainID, Label: "Try Again", Probability: 60},
}

// Machine tracks play count and draws prizes. Every WinEvery-th play
// forces a win drawn uniformly from the non-losing prizes; all other
// plays use cumulative-probability weighted sampling.
type Machine struct {
	Prizes   []Prize
	WinEvery int

	plays int
	rng   *rand.Rand
}

// NewMachine builds a machine over the default prize table.
// winEvery <= 0 disables forced wins.
func NewMachine(winEvery int) *Machine {
	return NewMachineWith(DefaultPrizes, winEvery)
}

// NewMachineWith builds a machine over a custom prize table.
func NewMachineWith(prizes []Prize, winEvery int) *Machine {
	return &Machine{
		Prizes:   prizes,
		WinEvery: winEvery,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Plays returns how many plays the machine has seen.
func (m *Machine) Plays() int { return m.plays }

// Play runs one spin and returns the outcome.
func (m *Machine) Play() Prize {
	m.plays++
	if m.WinEvery > 0 && m.plays%m.WinEvery == 0 {
		return m.forcedWin()
	}
	return m.Draw(m.rng.Float64() * 100)
}

// forcedWin draws uniformly from the winning prizes.
func (m *Machine) forcedWin() Prize {
	winners := make([]Prize, 0, len(m.Prizes))
	for _, p := range m.Prizes {
		if p.ID != TryAgainID {
			winners = append(winners, p)
		}
	}
	if len(winners) == 0 {
		// Degenerate table; nothing to win
		return m.Draw(m.rng.Float64() * 100)
	}
	return winners[m.rng.Intn(len(winners))]
}

// Draw maps r in [0,100) onto the prize table by cumulative probability.
// The last prize absorbs any residual mass from floating rounding, so a
// match always occurs for r in [0,100).
func (m *Machine) Draw(r float64) Prize {
	cumulative := 0.0
	for _, p := range m.Prizes {
		cumulative += p.Probability
		if r < cumulative {
			return p
		}
	}
	return m.Prizes[len(m.Prizes)-1]
}

// TotalProbability sums a prize table's probabilities.
func TotalProbability(prizes []Prize) float64 {
	total := 0.0
	for _, p := range prizes {
		total += p.Probability
	}
	return total
}
