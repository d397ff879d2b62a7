package effects

import "encoding/json"

// EffectType classifies an effect's polarity, not its mechanics.
type EffectType string

const (
	TypeBuff    EffectType = "buff"
	TypeDebuff  EffectType = "debuff"
	TypeNeutral EffectType = "neutral"
)

// Category determines which branch of the trigger processor handles an effect.
type Category string

const (
	CategoryDamageOverTime Category = "damage_over_time"
	CategoryHealOverTime   Category = "heal_over_time"
	CategoryStatModifier   Category = "stat_modifier"
	CategoryDamageModifier Category = "damage_modifier"
	CategoryResistance     Category = "resistance"
	CategoryVulnerability  Category = "vulnerability"
	CategoryControl        Category = "control"
	CategoryUtility        Category = "utility"
	CategoryTriggered      Category = "triggered"
	CategoryTransformation Category = "transformation"
	CategoryAura           Category = "aura"
	CategoryCompound       Category = "compound"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryDamageOverTime,
	CategoryHealOverTime,
	CategoryStatModifier,
	CategoryDamageModifier,
	CategoryResistance,
	CategoryVulnerability,
	CategoryControl,
	CategoryUtility,
	CategoryTriggered,
	CategoryTransformation,
	CategoryAura,
	CategoryCompound,
}

// Trigger is a named game moment effects may react to. TriggerPassive is the
// wildcard: a passive effect is evaluated on every trigger.
type Trigger string

const (
	TriggerPassive       Trigger = "passive"
	TriggerTurnStart     Trigger = "turn_start"
	TriggerTurnEnd       Trigger = "turn_end"
	TriggerOnAttack      Trigger = "on_attack"
	TriggerOnDefend      Trigger = "on_defend"
	TriggerOnHeal        Trigger = "on_heal"
	TriggerOnDamageTaken Trigger = "on_damage_taken"
	TriggerOnDamageDealt Trigger = "on_damage_dealt"
	TriggerOnCriticalHit Trigger = "on_critical_hit"
	TriggerOnKill        Trigger = "on_kill"
	TriggerOnRoomEnter   Trigger = "on_room_enter"
	TriggerOnCombatStart Trigger = "on_combat_start"
	TriggerOnDeath       Trigger = "on_death"
)

// Triggers lists every valid trigger key.
var Triggers = []Trigger{
	TriggerPassive,
	TriggerTurnStart,
	TriggerTurnEnd,
	TriggerOnAttack,
	TriggerOnDefend,
	TriggerOnHeal,
	TriggerOnDamageTaken,
	TriggerOnDamageDealt,
	TriggerOnCriticalHit,
	TriggerOnKill,
	TriggerOnRoomEnter,
	TriggerOnCombatStart,
	TriggerOnDeath,
}

// DurationType selects which trigger decrements the remaining-duration counter.
type DurationType string

const (
	DurationTurns       DurationType = "turns"
	DurationActions     DurationType = "actions"
	DurationRooms       DurationType = "rooms"
	DurationHits        DurationType = "hits"
	DurationPermanent   DurationType = "permanent"
	DurationConditional DurationType = "conditional"
)

// PermanentDuration is the sentinel duration value meaning "never expires".
const PermanentDuration = -1

// StackBehavior is the policy applied when an effect of the same name is
// reapplied to the same holder.
type StackBehavior string

const (
	StackNone        StackBehavior = "none"        // refresh duration, nothing else
	StackDuration    StackBehavior = "duration"    // extend remaining duration
	StackIntensity   StackBehavior = "intensity"   // add a stack up to MaxStacks
	StackIndependent StackBehavior = "independent" // every application is its own instance
)

// SourceType records what kind of thing applied an effect.
type SourceType string

const (
	SourceItem        SourceType = "item"
	SourceEnemy       SourceType = "enemy"
	SourceShrine      SourceType = "shrine"
	SourceCurse       SourceType = "curse"
	SourceEnvironment SourceType = "environment"
	SourceCrafted     SourceType = "crafted"
	SourceEffect      SourceType = "effect" // spawned by another effect
)

// Stat keys for the sparse modifier map. Additive stats default to 0,
// multiplicative stats to 1.
type Stat string

const (
	StatAttack           Stat = "attack"
	StatDefense          Stat = "defense"
	StatMaxHealth        Stat = "maxHealth"
	StatHealthRegen      Stat = "healthRegen"
	StatCritChance       Stat = "critChance"
	StatCritDamage       Stat = "critDamage"
	StatDodgeChance      Stat = "dodgeChance"
	StatGoldMultiplier   Stat = "goldMultiplier"
	StatExpMultiplier    Stat = "expMultiplier"
	StatDamageMultiplier Stat = "damageMultiplier"
	StatDamageTaken      Stat = "damageTaken"
)

// IsMultiplicative reports whether a stat folds by multiplication rather than
// addition when aggregating.
func (s Stat) IsMultiplicative() bool {
	switch s {
	case StatGoldMultiplier, StatExpMultiplier, StatDamageMultiplier, StatDamageTaken:
		return true
	}
	return false
}

// TriggeredEffect is a probabilistic sub-effect attached to a triggered-category
// parent. At most one of Effect (a full template materialized on fire) or
// Action (a scripted outcome key, e.g. "remove_self") is set.
type TriggeredEffect struct {
	Trigger   Trigger      `json:"trigger" yaml:"trigger"`
	Chance    float64      `json:"chance" yaml:"chance"`
	Effect    *Description `json:"-" yaml:"effect,omitempty"`
	Action    string       `json:"-" yaml:"action,omitempty"`
	Narrative string       `json:"narrative,omitempty" yaml:"narrative,omitempty"`
}

// ActionRemoveSelf is the scripted outcome that expires the parent effect.
const ActionRemoveSelf = "remove_self"

// triggeredEffectJSON mirrors TriggeredEffect on the wire, where "effect" is
// either a scripted-action string or a full description object.
type triggeredEffectJSON struct {
	Trigger   Trigger         `json:"trigger"`
	Chance    float64         `json:"chance"`
	Effect    json.RawMessage `json:"effect,omitempty"`
	Narrative string          `json:"narrative,omitempty"`
}

// UnmarshalJSON accepts both payload shapes: {"effect": "remove_self"} and
// {"effect": {...description...}}.
func (t *TriggeredEffect) UnmarshalJSON(data []byte) error {
	var raw triggeredEffectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Trigger = raw.Trigger
	t.Chance = raw.Chance
	t.Narrative = raw.Narrative
	t.Effect = nil
	t.Action = ""
	if len(raw.Effect) == 0 {
		return nil
	}
	if raw.Effect[0] == '"' {
		return json.Unmarshal(raw.Effect, &t.Action)
	}
	var desc Description
	if err := json.Unmarshal(raw.Effect, &desc); err != nil {
		return err
	}
	t.Effect = &desc
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (t TriggeredEffect) MarshalJSON() ([]byte, error) {
	raw := triggeredEffectJSON{
		Trigger:   t.Trigger,
		Chance:    t.Chance,
		Narrative: t.Narrative,
	}
	switch {
	case t.Action != "":
		b, err := json.Marshal(t.Action)
		if err != nil {
			return nil, err
		}
		raw.Effect = b
	case t.Effect != nil:
		b, err := json.Marshal(t.Effect)
		if err != nil {
			return nil, err
		}
		raw.Effect = b
	}
	return json.Marshal(raw)
}

// Effect is a fully materialized status effect on a holder. Instances are
// created only by the Factory and owned exclusively by the holder's
// active-effect collection.
type Effect struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	EffectType EffectType `json:"effectType"`
	Category   Category   `json:"category"`
	Triggers   []Trigger  `json:"triggers"`

	DurationType      DurationType `json:"durationType"`
	DurationValue     int          `json:"durationValue"`
	DurationRemaining int          `json:"durationRemaining"`

	StackBehavior StackBehavior `json:"stackBehavior"`
	CurrentStacks int           `json:"currentStacks"`
	MaxStacks     int           `json:"maxStacks"`
	StackModifier float64       `json:"stackModifier"`

	Modifiers  map[Stat]float64 `json:"modifiers,omitempty"`
	PowerLevel int              `json:"powerLevel"`

	Cleansable        bool `json:"cleansable"`
	CleanseResistance int  `json:"cleanseResistance,omitempty"`

	TriggeredEffects []TriggeredEffect `json:"triggeredEffects,omitempty"`

	ApplyNarrative  string `json:"applyNarrative,omitempty"`
	ExpireNarrative string `json:"expireNarrative,omitempty"`

	SourceType SourceType `json:"sourceType,omitempty"`
	SourceID   string     `json:"sourceId,omitempty"`
}

// RespondsTo reports whether the effect is evaluated when trigger fires.
// Passive effects respond to everything.
func (e *Effect) RespondsTo(trigger Trigger) bool {
	for _, t := range e.Triggers {
		if t == trigger || t == TriggerPassive {
			return true
		}
	}
	return false
}

// IsPermanent reports whether the effect never expires on its own.
func (e *Effect) IsPermanent() bool {
	return e.DurationType == DurationPermanent || e.DurationValue == PermanentDuration
}

// StackMultiplier is the magnitude scale from stacking: intensity effects
// contribute 1 + (stacks-1)*(stackModifier-1), everything else contributes 1.
func (e *Effect) StackMultiplier() float64 {
	if e.StackBehavior != StackIntensity || e.CurrentStacks <= 1 {
		return 1
	}
	return 1 + float64(e.CurrentStacks-1)*(e.StackModifier-1)
}

// Clone returns a deep copy. The engine never mutates a caller's instance;
// every state change happens on a clone inside a freshly built collection.
func (e *Effect) Clone() *Effect {
	if e == nil {
		return nil
	}
	out := *e
	if e.Triggers != nil {
		out.Triggers = make([]Trigger, len(e.Triggers))
		copy(out.Triggers, e.Triggers)
	}
	if e.Modifiers != nil {
		out.Modifiers = make(map[Stat]float64, len(e.Modifiers))
		for k, v := range e.Modifiers {
			out.Modifiers[k] = v
		}
	}
	if e.TriggeredEffects != nil {
		out.TriggeredEffects = make([]TriggeredEffect, len(e.TriggeredEffects))
		copy(out.TriggeredEffects, e.TriggeredEffects)
	}
	return &out
}
