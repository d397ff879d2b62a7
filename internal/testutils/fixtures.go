package testutils

import (
	"fmt"

	"github.com/mothlight/delve/internal/effects"
)

// CreateTestEffect builds a minimal materialized effect for repository and
// service tests. Fields match factory defaults so fixtures stay comparable
// with factory output.
func CreateTestEffect(id, name string) *effects.Effect {
	return &effects.Effect{
		ID:                id,
		Name:              name,
		EffectType:        effects.TypeBuff,
		Category:          effects.CategoryStatModifier,
		Triggers:          []effects.Trigger{effects.TriggerPassive},
		DurationType:      effects.DurationTurns,
		DurationValue:     3,
		DurationRemaining: 3,
		StackBehavior:     effects.StackNone,
		CurrentStacks:     1,
		MaxStacks:         1,
		StackModifier:     1,
		PowerLevel:        3,
	}
}

// CreateTestDebuff builds a cleansable debuff fixture.
func CreateTestDebuff(id, name string, resistance int) *effects.Effect {
	e := CreateTestEffect(id, name)
	e.EffectType = effects.TypeDebuff
	e.Cleansable = true
	e.CleanseResistance = resistance
	e.Modifiers = map[effects.Stat]float64{effects.StatAttack: -2}
	return e
}

// CreateTestEffects builds n distinct effect fixtures.
func CreateTestEffects(n int) []*effects.Effect {
	out := make([]*effects.Effect, n)
	for i := range out {
		out[i] = CreateTestEffect(
			fmt.Sprintf("effect-%d", i+1),
			fmt.Sprintf("Test Effect %d", i+1),
		)
	}
	return out
}
