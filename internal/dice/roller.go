package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for the game's randomness.
// This allows us to inject different implementations for testing.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Chance returns a uniform value in [0, 1) for probability gates
	// such as triggered sub-effects.
	Chance() float64
}
