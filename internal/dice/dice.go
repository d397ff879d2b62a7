package dice

import (
	"errors"
	"math/rand"
)

// RollResult holds the outcome of one dice roll.
type RollResult struct {
	Total   int
	Highest int
	Lowest  int
	Rolls   []int
	Bonus   int
}

func roll(rng *rand.Rand, count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	maxValue, minValue, total := 0, 0, 0

	out := make([]int, count)
	for i := 0; i < count; i++ {
		r := rng.Intn(sides) + 1
		total += r
		if i == 0 {
			minValue = r
			maxValue = r
		}
		if minValue > r {
			minValue = r
		}
		if maxValue < r {
			maxValue = r
		}
		out[i] = r
	}

	return &RollResult{
		Total:   total + bonus,
		Highest: maxValue,
		Lowest:  minValue,
		Rolls:   out,
		Bonus:   bonus,
	}, nil
}
