package mockdice

import (
	"fmt"
	"sync"

	"github.com/mothlight/delve/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu          sync.Mutex
	rolls       []int
	rollIndex   int
	chances     []float64
	chanceIndex int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetRolls sets the predetermined die results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetChances sets the predetermined Chance() results
func (m *ManualMockRoller) SetChances(chances []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chances = chances
	m.chanceIndex = 0
}

// Reset clears all predetermined results
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = nil
	m.rollIndex = 0
	m.chances = nil
	m.chanceIndex = 0
}

func (m *ManualMockRoller) nextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}
	r := m.rolls[m.rollIndex]
	m.rollIndex++
	return r, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	total := 0
	highest, lowest := 0, 0

	for i := 0; i < count; i++ {
		r, err := m.nextRoll()
		if err != nil {
			return nil, err
		}
		rolls[i] = r
		total += r
		if i == 0 {
			highest, lowest = r, r
		}
		if r > highest {
			highest = r
		}
		if r < lowest {
			lowest = r
		}
	}

	return &dice.RollResult{
		Total:   total + bonus,
		Highest: highest,
		Lowest:  lowest,
		Rolls:   rolls,
		Bonus:   bonus,
	}, nil
}

// Chance implements dice.Roller.Chance. It panics when the predetermined
// values run out so a test can never silently fall back to real randomness.
func (m *ManualMockRoller) Chance() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.chanceIndex >= len(m.chances) {
		panic(fmt.Sprintf("no more predetermined chances available (used %d of %d)", m.chanceIndex, len(m.chances)))
	}
	c := m.chances[m.chanceIndex]
	m.chanceIndex++
	return c
}
