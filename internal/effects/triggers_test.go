package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/mothlight/delve/internal/dice/mock"
)

func newTestProcessor() (*Processor, *mockdice.ManualMockRoller, *Factory) {
	roller := mockdice.NewManualMockRoller()
	factory := newTestFactory()
	processor := NewProcessor(&ProcessorConfig{
		Roller:  roller,
		Factory: factory,
	})
	return processor, roller, factory
}

func TestProcess_BurningTickDamage(t *testing.T) {
	processor, _, factory := newTestProcessor()

	// three applications of Burning: 3 stacks at 1.5 per extra stack
	var active []*Effect
	for i := 0; i < 3; i++ {
		active, _ = ApplyEffect(active, materialize(t, factory, BurningTemplate()))
	}
	require.Equal(t, 3, active[0].CurrentStacks)

	result := processor.Process(active, TriggerTurnEnd)

	// floor(4 * (1 + (3-1)*0.5)) = floor(4*2) = 8
	assert.Equal(t, 8, result.Damage)
	assert.Zero(t, result.Healing)
	assert.Contains(t, result.Narratives[0], "8 damage")
}

func TestProcess_HealOverTime(t *testing.T) {
	processor, _, factory := newTestProcessor()

	active, _ := ApplyEffect(nil, materialize(t, factory, RegenerationTemplate()))
	result := processor.Process(active, TriggerTurnStart)

	assert.Equal(t, 3, result.Healing)
	assert.Zero(t, result.Damage)
}

func TestProcess_DoTOnlyTicksOnTurnBoundaries(t *testing.T) {
	processor, _, factory := newTestProcessor()

	burning := materialize(t, factory, BurningTemplate())
	burning.Triggers = []Trigger{TriggerPassive} // listens to everything

	result := processor.Process([]*Effect{burning}, TriggerOnAttack)
	assert.Zero(t, result.Damage, "no tick outside turn_start/turn_end")
}

func TestProcess_ExpiryAfterOneTurn(t *testing.T) {
	processor, _, factory := newTestProcessor()

	desc := BurningTemplate()
	desc.Duration = IntPtr(1)
	active, _ := ApplyEffect(nil, materialize(t, factory, desc))

	result := processor.Process(active, TriggerTurnEnd)

	assert.Empty(t, result.Active)
	require.Len(t, result.Expired, 1)
	assert.Equal(t, "Burning", result.Expired[0].Name)
	assert.Contains(t, result.Narratives, "The flames gutter out.")

	// a further trigger finds nothing
	again := processor.Process(result.Active, TriggerTurnEnd)
	assert.Empty(t, again.Active)
	assert.Empty(t, again.Expired)
}

func TestProcess_PermanenceInvariant(t *testing.T) {
	processor, _, factory := newTestProcessor()

	charm := materialize(t, factory, LuckyCharmTemplate())
	active := []*Effect{charm}

	for _, trigger := range Triggers {
		result := processor.Process(active, trigger)
		require.Len(t, result.Active, 1)
		assert.Equal(t, PermanentDuration, result.Active[0].DurationRemaining,
			"permanent duration is never touched by %s", trigger)
		active = result.Active
	}
}

func TestProcess_DurationTypeTriggerMapping(t *testing.T) {
	cases := []struct {
		durationType DurationType
		decrements   []Trigger
	}{
		{DurationTurns, []Trigger{TriggerTurnEnd}},
		{DurationActions, []Trigger{TriggerOnAttack, TriggerOnDefend, TriggerOnHeal}},
		{DurationRooms, []Trigger{TriggerOnRoomEnter}},
		{DurationHits, []Trigger{TriggerOnDamageTaken, TriggerOnDamageDealt}},
		{DurationConditional, nil},
	}

	for _, tc := range cases {
		t.Run(string(tc.durationType), func(t *testing.T) {
			processor, _, factory := newTestProcessor()

			shouldDecrement := map[Trigger]bool{}
			for _, trig := range tc.decrements {
				shouldDecrement[trig] = true
			}

			for _, trigger := range Triggers {
				if trigger == TriggerPassive {
					continue
				}
				effect := materialize(t, factory, &Description{
					Name:         "Probe",
					EffectType:   TypeNeutral,
					Category:     CategoryUtility,
					Triggers:     []Trigger{TriggerPassive},
					DurationType: tc.durationType,
					Duration:     IntPtr(5),
				})

				result := processor.Process([]*Effect{effect}, trigger)
				require.Len(t, result.Active, 1)

				want := 5
				if shouldDecrement[trigger] {
					want = 4
				}
				assert.Equal(t, want, result.Active[0].DurationRemaining,
					"%s under %s", tc.durationType, trigger)
			}
		})
	}
}

func TestProcess_NonListeningEffectPassesThrough(t *testing.T) {
	processor, _, factory := newTestProcessor()

	effect := materialize(t, factory, &Description{
		Name:       "Riposte",
		EffectType: TypeBuff,
		Category:   CategoryUtility,
		Triggers:   []Trigger{TriggerOnDefend},
		Duration:   IntPtr(3),
	})

	result := processor.Process([]*Effect{effect}, TriggerTurnEnd)
	require.Len(t, result.Active, 1)
	assert.Same(t, effect, result.Active[0], "untouched effects are not cloned")
	assert.Equal(t, 3, result.Active[0].DurationRemaining)
}

func TestProcess_InputCollectionNotMutated(t *testing.T) {
	processor, _, factory := newTestProcessor()

	burning := materialize(t, factory, BurningTemplate())
	input := []*Effect{burning}

	result := processor.Process(input, TriggerTurnEnd)

	assert.Equal(t, 3, burning.DurationRemaining, "input instance untouched")
	assert.Equal(t, 2, result.Active[0].DurationRemaining)
	assert.NotSame(t, burning, result.Active[0])
}

func TestProcess_TriggeredSubEffects(t *testing.T) {
	t.Run("certain chance always fires", func(t *testing.T) {
		processor, roller, factory := newTestProcessor()
		roller.SetChances([]float64{0.999999})

		effect := materialize(t, factory, &Description{
			Name:       "Unstable Ward",
			EffectType: TypeNeutral,
			Category:   CategoryTriggered,
			Triggers:   []Trigger{TriggerOnDamageTaken},
			Duration:   IntPtr(PermanentDuration),
			TriggeredEffects: []TriggeredEffect{
				{
					Trigger:   TriggerOnDamageTaken,
					Chance:    1.0,
					Action:    ActionRemoveSelf,
					Narrative: "The ward shatters.",
				},
			},
			ExpireNarrative: "Shards of light scatter.",
		})

		result := processor.Process([]*Effect{effect}, TriggerOnDamageTaken)
		assert.Empty(t, result.Active)
		require.Len(t, result.Expired, 1)
		assert.Contains(t, result.Narratives, "The ward shatters.")
		assert.Contains(t, result.Narratives, "Shards of light scatter.")
	})

	t.Run("zero chance never fires", func(t *testing.T) {
		processor, roller, factory := newTestProcessor()
		roller.SetChances([]float64{0.0})

		effect := materialize(t, factory, &Description{
			Name:       "Dormant Ward",
			EffectType: TypeNeutral,
			Category:   CategoryTriggered,
			Triggers:   []Trigger{TriggerOnDamageTaken},
			Duration:   IntPtr(PermanentDuration),
			TriggeredEffects: []TriggeredEffect{
				{Trigger: TriggerOnDamageTaken, Chance: 0.0, Action: ActionRemoveSelf},
			},
		})

		result := processor.Process([]*Effect{effect}, TriggerOnDamageTaken)
		require.Len(t, result.Active, 1)
		assert.Empty(t, result.Expired)
	})

	t.Run("template payload is spawned, not inserted", func(t *testing.T) {
		processor, roller, factory := newTestProcessor()
		roller.SetChances([]float64{0.1}) // under the 0.5 gate, fires

		hunger := materialize(t, factory, VampiricHungerTemplate())
		result := processor.Process([]*Effect{hunger}, TriggerOnDamageDealt)

		require.Len(t, result.Spawned, 1)
		assert.Equal(t, "Stolen Vitality", result.Spawned[0].Name)
		assert.Equal(t, hunger.ID, result.Spawned[0].SourceID)
		require.Len(t, result.Active, 1, "spawn joins on the next pass, not this one")
		assert.Equal(t, "Vampiric Hunger", result.Active[0].Name)
		assert.Contains(t, result.Narratives, "You drink the heat of the wound.")
	})

	t.Run("sub-entries only react to their own trigger", func(t *testing.T) {
		processor, _, factory := newTestProcessor()
		// no chances queued: a roll would panic, proving none happens

		hunger := materialize(t, factory, VampiricHungerTemplate())
		hunger.Triggers = []Trigger{TriggerPassive}

		result := processor.Process([]*Effect{hunger}, TriggerTurnStart)
		assert.Empty(t, result.Spawned)
	})
}
