package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func materialize(t *testing.T, factory *Factory, desc *Description) *Effect {
	t.Helper()
	effect, err := factory.New(desc)
	require.NoError(t, err)
	return effect
}

func TestApplyEffect_FirstApplicationAppends(t *testing.T) {
	factory := newTestFactory()
	burning := materialize(t, factory, BurningTemplate())

	active, narrative := ApplyEffect(nil, burning)

	require.Len(t, active, 1)
	assert.Same(t, burning, active[0])
	assert.Equal(t, "Flames catch and cling to you.", narrative)
}

func TestApplyEffect_NoneRefreshesNotDuplicates(t *testing.T) {
	factory := newTestFactory()
	desc := StonehideTemplate() // stack behavior none

	var active []*Effect
	for i := 0; i < 4; i++ {
		active, _ = ApplyEffect(active, materialize(t, factory, desc))
	}

	require.Len(t, active, 1, "none-stacking never duplicates")
	assert.Equal(t, 4, active[0].DurationRemaining, "duration equals the latest application's value")
	assert.Equal(t, 1, active[0].CurrentStacks)
}

func TestApplyEffect_DurationExtends(t *testing.T) {
	factory := newTestFactory()
	desc := RegenerationTemplate() // duration stacking, 5 turns

	active, _ := ApplyEffect(nil, materialize(t, factory, desc))
	active, narrative := ApplyEffect(active, materialize(t, factory, desc))

	require.Len(t, active, 1)
	assert.Equal(t, 10, active[0].DurationRemaining)
	assert.Contains(t, narrative, "extended by 5")
}

func TestApplyEffect_IntensityCeiling(t *testing.T) {
	factory := newTestFactory()
	desc := BurningTemplate() // intensity, max 5 stacks

	var active []*Effect
	for i := 0; i < 8; i++ {
		active, _ = ApplyEffect(active, materialize(t, factory, desc))
	}

	require.Len(t, active, 1)
	assert.Equal(t, 5, active[0].CurrentStacks, "stacks never exceed the ceiling")
}

func TestApplyEffect_IntensityNarrativeAndDuration(t *testing.T) {
	factory := newTestFactory()
	desc := BurningTemplate()

	active, _ := ApplyEffect(nil, materialize(t, factory, desc))

	// age the existing instance, then reapply
	active[0].DurationRemaining = 1
	active, narrative := ApplyEffect(active, materialize(t, factory, desc))

	require.Len(t, active, 1)
	assert.Equal(t, 2, active[0].CurrentStacks)
	assert.Equal(t, 3, active[0].DurationRemaining, "raised to the new application's duration")
	assert.Equal(t, "Burning intensifies (2/5)", narrative)
}

func TestApplyEffect_IndependentKeepsEveryInstance(t *testing.T) {
	factory := newTestFactory()
	desc := ChilledTemplate()
	desc.StackBehavior = StackIndependent

	var active []*Effect
	for i := 0; i < 3; i++ {
		active, _ = ApplyEffect(active, materialize(t, factory, desc))
	}

	require.Len(t, active, 3)
	seen := map[string]bool{}
	for _, e := range active {
		assert.False(t, seen[e.ID], "each application keeps its own id")
		seen[e.ID] = true
	}
}

func TestApplyEffect_DoesNotMutateInputs(t *testing.T) {
	factory := newTestFactory()
	desc := BurningTemplate()

	first := materialize(t, factory, desc)
	original, _ := ApplyEffect(nil, first)

	before := original[0].CurrentStacks
	updated, _ := ApplyEffect(original, materialize(t, factory, desc))

	assert.Equal(t, before, original[0].CurrentStacks, "input collection untouched")
	assert.Equal(t, before+1, updated[0].CurrentStacks)
	assert.NotSame(t, original[0], updated[0], "changed instance is a clone")
}
