package dice

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller over a math/rand source
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the wall clock.
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with a fixed seed so runs can be replayed.
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return roll(r.rng, count, sides, bonus)
}

// Chance implements Roller.Chance
func (r *randomRoller) Chance() float64 {
	return r.rng.Float64()
}
