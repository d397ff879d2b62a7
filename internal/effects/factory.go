package effects

import (
	"fmt"

	"github.com/mothlight/delve/internal/uuid"
)

// Factory defaults. Every optional field of a description materializes to one
// of these when absent.
const (
	DefaultCategory      = CategoryStatModifier
	DefaultDurationType  = DurationTurns
	DefaultDurationValue = 3
	DefaultStackBehavior = StackNone
	DefaultPowerLevel    = 3

	// DefaultStackModifier applies only to intensity stacking: each stack
	// past the first adds half the base magnitude.
	DefaultStackModifier = 1.5
)

// Factory is the only way an Effect comes into existence. It assigns ids via
// an injected generator so tests can pin them.
type Factory struct {
	ids uuid.Generator
}

// FactoryConfig holds the factory's dependencies.
type FactoryConfig struct {
	IDs uuid.Generator
}

// NewFactory creates a factory.
func NewFactory(cfg *FactoryConfig) *Factory {
	if cfg == nil || cfg.IDs == nil {
		panic("FactoryConfig and IDs are required")
	}
	return &Factory{ids: cfg.IDs}
}

// New materializes a description into an effect instance. Name and EffectType
// are required; everything else receives a documented default.
func (f *Factory) New(desc *Description) (*Effect, error) {
	if desc == nil {
		return nil, fmt.Errorf("effect description is required")
	}
	if desc.Name == "" {
		return nil, fmt.Errorf("effect must have a name")
	}
	if desc.EffectType == "" {
		return nil, fmt.Errorf("effect %q must have an effect type", desc.Name)
	}

	effect := &Effect{
		ID:         f.ids.New(),
		Name:       desc.Name,
		EffectType: desc.EffectType,
		Category:   desc.Category,

		DurationType:  desc.DurationType,
		StackBehavior: desc.StackBehavior,
		CurrentStacks: 1,
		MaxStacks:     1,

		PowerLevel:        DefaultPowerLevel,
		CleanseResistance: desc.CleanseResistance,

		ApplyNarrative:  desc.ApplyNarrative,
		ExpireNarrative: desc.ExpireNarrative,

		SourceType: desc.SourceType,
		SourceID:   desc.SourceID,
	}

	if effect.Category == "" {
		effect.Category = DefaultCategory
	}
	if effect.DurationType == "" {
		effect.DurationType = DefaultDurationType
	}
	if effect.StackBehavior == "" {
		effect.StackBehavior = DefaultStackBehavior
	}

	switch {
	case len(desc.Triggers) > 0:
		effect.Triggers = append([]Trigger{}, desc.Triggers...)
	case desc.Trigger != "":
		effect.Triggers = []Trigger{desc.Trigger}
	default:
		effect.Triggers = []Trigger{TriggerPassive}
	}

	switch {
	case desc.Duration != nil:
		effect.DurationValue = *desc.Duration
	case effect.DurationType == DurationPermanent:
		effect.DurationValue = PermanentDuration
	default:
		effect.DurationValue = DefaultDurationValue
	}
	effect.DurationRemaining = effect.DurationValue

	if desc.Stacks != nil && *desc.Stacks > 1 {
		effect.MaxStacks = *desc.Stacks
	}
	switch {
	case desc.StackModifier != nil:
		effect.StackModifier = *desc.StackModifier
	case effect.StackBehavior == StackIntensity:
		effect.StackModifier = DefaultStackModifier
	default:
		effect.StackModifier = 1
	}

	if desc.Power != nil {
		effect.PowerLevel = *desc.Power
	}

	if desc.Cleansable != nil {
		effect.Cleansable = *desc.Cleansable
	} else {
		effect.Cleansable = desc.EffectType == TypeDebuff
	}

	if len(desc.Modifiers) > 0 {
		effect.Modifiers = make(map[Stat]float64, len(desc.Modifiers))
		for k, v := range desc.Modifiers {
			effect.Modifiers[k] = v
		}
	}
	if len(desc.TriggeredEffects) > 0 {
		effect.TriggeredEffects = append([]TriggeredEffect{}, desc.TriggeredEffects...)
	}

	return effect, nil
}

// CompleteFromPartial materializes a description that may omit the effect
// type, the shape raw model output arrives in. Polarity is inferred from the
// modifiers: any negative additive or sub-1 multiplicative value reads as a
// debuff, otherwise a buff. A description with no name produces nil — the
// caller must discard it, not apply it.
func (f *Factory) CompleteFromPartial(desc *Description, fallbackSource SourceType) *Effect {
	if desc == nil || desc.Name == "" {
		return nil
	}

	completed := *desc
	if completed.EffectType == "" {
		completed.EffectType = inferEffectType(desc.Modifiers)
	}
	if completed.SourceType == "" {
		completed.SourceType = fallbackSource
	}

	effect, err := f.New(&completed)
	if err != nil {
		return nil
	}
	return effect
}

func inferEffectType(modifiers map[Stat]float64) EffectType {
	for stat, value := range modifiers {
		if stat.IsMultiplicative() {
			if value < 1 {
				return TypeDebuff
			}
		} else if value < 0 {
			return TypeDebuff
		}
	}
	return TypeBuff
}
