package effects

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqIDs is a deterministic uuid.Generator for tests.
type seqIDs struct{ n int }

func (s *seqIDs) New() string {
	s.n++
	return fmt.Sprintf("effect-%d", s.n)
}

func newTestFactory() *Factory {
	return NewFactory(&FactoryConfig{IDs: &seqIDs{}})
}

func TestFactory_New_Defaults(t *testing.T) {
	factory := newTestFactory()

	effect, err := factory.New(&Description{
		Name:       "Bare Minimum",
		EffectType: TypeBuff,
	})
	require.NoError(t, err)

	assert.Equal(t, "effect-1", effect.ID)
	assert.Equal(t, CategoryStatModifier, effect.Category)
	assert.Equal(t, []Trigger{TriggerPassive}, effect.Triggers)
	assert.Equal(t, DurationTurns, effect.DurationType)
	assert.Equal(t, 3, effect.DurationValue)
	assert.Equal(t, 3, effect.DurationRemaining)
	assert.Equal(t, StackNone, effect.StackBehavior)
	assert.Equal(t, 1, effect.CurrentStacks)
	assert.Equal(t, 1, effect.MaxStacks)
	assert.Equal(t, 3, effect.PowerLevel)
	assert.False(t, effect.Cleansable, "buffs are not cleansable by default")
}

func TestFactory_New_DebuffCleansableByDefault(t *testing.T) {
	factory := newTestFactory()

	effect, err := factory.New(&Description{Name: "Hex", EffectType: TypeDebuff})
	require.NoError(t, err)
	assert.True(t, effect.Cleansable)

	// explicit override wins
	locked, err := factory.New(&Description{
		Name:       "Sealed Hex",
		EffectType: TypeDebuff,
		Cleansable: BoolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, locked.Cleansable)
}

func TestFactory_New_RequiredFields(t *testing.T) {
	factory := newTestFactory()

	_, err := factory.New(nil)
	assert.Error(t, err)

	_, err = factory.New(&Description{EffectType: TypeBuff})
	assert.Error(t, err)

	_, err = factory.New(&Description{Name: "Typeless"})
	assert.Error(t, err)
}

func TestFactory_New_SingularTriggerBecomesSet(t *testing.T) {
	factory := newTestFactory()

	effect, err := factory.New(&Description{
		Name:       "Counterstance",
		EffectType: TypeBuff,
		Trigger:    TriggerOnDefend,
	})
	require.NoError(t, err)
	assert.Equal(t, []Trigger{TriggerOnDefend}, effect.Triggers)
}

func TestFactory_New_PermanentDefaultsSentinel(t *testing.T) {
	factory := newTestFactory()

	effect, err := factory.New(&Description{
		Name:         "Brand",
		EffectType:   TypeNeutral,
		DurationType: DurationPermanent,
	})
	require.NoError(t, err)
	assert.Equal(t, PermanentDuration, effect.DurationValue)
	assert.Equal(t, PermanentDuration, effect.DurationRemaining)
}

func TestFactory_New_IntensityStackDefaults(t *testing.T) {
	factory := newTestFactory()

	effect, err := factory.New(&Description{
		Name:          "Venom",
		EffectType:    TypeDebuff,
		StackBehavior: StackIntensity,
		Stacks:        IntPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, effect.MaxStacks)
	assert.Equal(t, 1, effect.CurrentStacks)
	assert.Equal(t, DefaultStackModifier, effect.StackModifier)
}

func TestFactory_New_CopiesModifiers(t *testing.T) {
	factory := newTestFactory()

	mods := map[Stat]float64{StatAttack: 2}
	effect, err := factory.New(&Description{
		Name:       "Sharpened",
		EffectType: TypeBuff,
		Modifiers:  mods,
	})
	require.NoError(t, err)

	mods[StatAttack] = 99
	assert.Equal(t, float64(2), effect.Modifiers[StatAttack],
		"instance must not alias the description's map")
}

func TestFactory_CompleteFromPartial(t *testing.T) {
	factory := newTestFactory()

	t.Run("missing name produces nothing", func(t *testing.T) {
		assert.Nil(t, factory.CompleteFromPartial(&Description{}, SourceItem))
		assert.Nil(t, factory.CompleteFromPartial(nil, SourceItem))
	})

	t.Run("negative additive modifier infers debuff", func(t *testing.T) {
		effect := factory.CompleteFromPartial(&Description{
			Name:      "Sapping Mist",
			Modifiers: map[Stat]float64{StatAttack: -3},
		}, SourceEnvironment)
		require.NotNil(t, effect)
		assert.Equal(t, TypeDebuff, effect.EffectType)
		assert.Equal(t, SourceEnvironment, effect.SourceType)
	})

	t.Run("sub-1 multiplier infers debuff", func(t *testing.T) {
		effect := factory.CompleteFromPartial(&Description{
			Name:      "Miser's Shadow",
			Modifiers: map[Stat]float64{StatGoldMultiplier: 0.8},
		}, SourceCurse)
		require.NotNil(t, effect)
		assert.Equal(t, TypeDebuff, effect.EffectType)
	})

	t.Run("otherwise infers buff", func(t *testing.T) {
		effect := factory.CompleteFromPartial(&Description{
			Name:      "Gleaming Edge",
			Modifiers: map[Stat]float64{StatAttack: 4, StatGoldMultiplier: 1.2},
		}, SourceItem)
		require.NotNil(t, effect)
		assert.Equal(t, TypeBuff, effect.EffectType)
	})

	t.Run("explicit effect type is preserved", func(t *testing.T) {
		effect := factory.CompleteFromPartial(&Description{
			Name:       "Odd Blessing",
			EffectType: TypeNeutral,
			Modifiers:  map[Stat]float64{StatAttack: -1},
		}, SourceShrine)
		require.NotNil(t, effect)
		assert.Equal(t, TypeNeutral, effect.EffectType)
	})
}

func TestTemplates_AllMaterialize(t *testing.T) {
	factory := newTestFactory()

	for name, template := range Templates() {
		effect, err := factory.New(template)
		require.NoError(t, err, name)
		assert.Equal(t, name, effect.Name)
	}
}
