package effects

import "encoding/json"

// Description is the boundary shape for an effect before materialization.
// Both origins — hand-authored templates and structured output from the
// narrative model — arrive in this form and are validated identically before
// the factory turns them into an Effect.
//
// Every field is optional. Numeric fields use pointers so "absent" and "zero"
// stay distinguishable: a candidate that omits duration gets the factory
// default, a candidate that says duration 0 does not.
type Description struct {
	Name       string     `json:"name" yaml:"name"`
	EffectType EffectType `json:"effectType,omitempty" yaml:"effectType,omitempty"`
	Category   Category   `json:"category,omitempty" yaml:"category,omitempty"`

	// Trigger (singular) is the validation-time key; Triggers (plural)
	// populates the materialized instance. When only the singular is
	// present it becomes the instance's sole trigger.
	Trigger  Trigger   `json:"trigger,omitempty" yaml:"trigger,omitempty"`
	Triggers []Trigger `json:"triggers,omitempty" yaml:"triggers,omitempty"`

	Power        *int         `json:"power,omitempty" yaml:"power,omitempty"`
	Duration     *int         `json:"duration,omitempty" yaml:"duration,omitempty"`
	DurationType DurationType `json:"durationType,omitempty" yaml:"durationType,omitempty"`

	Stacks        *int          `json:"stacks,omitempty" yaml:"stacks,omitempty"`
	StackBehavior StackBehavior `json:"stackBehavior,omitempty" yaml:"stackBehavior,omitempty"`
	StackModifier *float64      `json:"stackModifier,omitempty" yaml:"stackModifier,omitempty"`

	Modifiers map[Stat]float64 `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`

	Cleansable        *bool `json:"cleansable,omitempty" yaml:"cleansable,omitempty"`
	CleanseResistance int   `json:"cleanseResistance,omitempty" yaml:"cleanseResistance,omitempty"`

	TriggeredEffects []TriggeredEffect `json:"triggeredEffects,omitempty" yaml:"triggeredEffects,omitempty"`

	ApplyNarrative  string `json:"applyNarrative,omitempty" yaml:"applyNarrative,omitempty"`
	ExpireNarrative string `json:"expireNarrative,omitempty" yaml:"expireNarrative,omitempty"`

	SourceType SourceType `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`
	SourceID   string     `json:"sourceId,omitempty" yaml:"sourceId,omitempty"`
}

// DecodeDescription parses a single JSON effect description, the shape the
// narrative model is prompted to produce.
func DecodeDescription(data []byte) (*Description, error) {
	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

// helpers for building literal descriptions in templates and tests

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
