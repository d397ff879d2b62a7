package effects

import (
	"fmt"
	"math"

	"github.com/mothlight/delve/internal/dice"
)

// TickResult is everything one trigger pass produced. Active is the surviving
// collection (fresh slice, changed instances cloned); Spawned holds effects
// materialized by triggered sub-entries, which the caller folds in so they
// take part in the next pass rather than this one.
type TickResult struct {
	Active     []*Effect
	Damage     int
	Healing    int
	Narratives []string
	Expired    []*Effect
	Spawned    []*Effect
}

// Processor evaluates a holder's active effects against firing triggers.
// Randomness comes from the injected roller so a run can be replayed exactly.
type Processor struct {
	roller  dice.Roller
	factory *Factory
}

// ProcessorConfig holds the processor's dependencies.
type ProcessorConfig struct {
	Roller  dice.Roller
	Factory *Factory
}

// NewProcessor creates a trigger processor.
func NewProcessor(cfg *ProcessorConfig) *Processor {
	if cfg == nil || cfg.Roller == nil || cfg.Factory == nil {
		panic("ProcessorConfig, Roller and Factory are required")
	}
	return &Processor{
		roller:  cfg.Roller,
		factory: cfg.Factory,
	}
}

// Process runs one trigger against the collection. Effects that don't listen
// to the trigger pass through untouched. For the rest: damage/heal ticks are
// accumulated, triggered sub-effects are rolled, and duration counters advance
// according to the effect's duration type. Expired effects move to Expired and
// leave the live collection.
func (p *Processor) Process(active []*Effect, trigger Trigger) *TickResult {
	result := &TickResult{
		Active: make([]*Effect, 0, len(active)),
	}

	for _, effect := range active {
		if !effect.RespondsTo(trigger) {
			result.Active = append(result.Active, effect)
			continue
		}

		current := effect.Clone()
		removeSelf := false

		switch current.Category {
		case CategoryDamageOverTime, CategoryHealOverTime:
			p.tickOverTime(current, trigger, result)

		case CategoryTriggered:
			removeSelf = p.fireSubEffects(current, trigger, result)

		case CategoryStatModifier, CategoryDamageModifier, CategoryResistance,
			CategoryVulnerability, CategoryControl, CategoryUtility,
			CategoryTransformation, CategoryAura, CategoryCompound:
			// Stat contributions are read by Aggregate on demand, not
			// recomputed per tick. These only advance duration here.
		}

		if removeSelf {
			p.expire(current, result)
			continue
		}

		if decrementsOn(current.DurationType, trigger) && current.DurationRemaining > 0 {
			current.DurationRemaining--
			if current.DurationRemaining == 0 {
				p.expire(current, result)
				continue
			}
		}

		result.Active = append(result.Active, current)
	}

	return result
}

// tickOverTime applies a DoT/HoT pulse. The magnitude lives in the effect's
// healthRegen modifier: negative values damage the holder, positive values
// heal, scaled by the stack multiplier and floored.
func (p *Processor) tickOverTime(effect *Effect, trigger Trigger, result *TickResult) {
	if trigger != TriggerTurnStart && trigger != TriggerTurnEnd {
		return
	}

	base := effect.Modifiers[StatHealthRegen]
	amount := int(math.Floor(math.Abs(base) * effect.StackMultiplier()))
	if amount == 0 {
		return
	}

	if base < 0 {
		result.Damage += amount
		result.Narratives = append(result.Narratives,
			fmt.Sprintf("%s deals %d damage", effect.Name, amount))
	} else {
		result.Healing += amount
		result.Narratives = append(result.Narratives,
			fmt.Sprintf("%s restores %d health", effect.Name, amount))
	}
}

// fireSubEffects rolls each matching triggered sub-entry. Spawned templates
// are materialized immediately but queued for the next pass. Returns true when
// a fired entry scripts the parent's removal.
func (p *Processor) fireSubEffects(effect *Effect, trigger Trigger, result *TickResult) bool {
	removeSelf := false

	for _, sub := range effect.TriggeredEffects {
		if sub.Trigger != trigger {
			continue
		}
		if p.roller.Chance() >= sub.Chance {
			continue
		}

		if sub.Narrative != "" {
			result.Narratives = append(result.Narratives, sub.Narrative)
		}

		switch {
		case sub.Action == ActionRemoveSelf:
			removeSelf = true
		case sub.Effect != nil:
			spawned := p.factory.CompleteFromPartial(sub.Effect, SourceEffect)
			if spawned != nil {
				if spawned.SourceID == "" {
					spawned.SourceID = effect.ID
				}
				result.Spawned = append(result.Spawned, spawned)
			}
		}
	}

	return removeSelf
}

func (p *Processor) expire(effect *Effect, result *TickResult) {
	result.Expired = append(result.Expired, effect)
	if effect.ExpireNarrative != "" {
		result.Narratives = append(result.Narratives, effect.ExpireNarrative)
	}
}

// decrementsOn maps duration types to the triggers that advance them.
// Permanent durations never advance; conditional durations are resolved by a
// caller-supplied predicate, never here.
func decrementsOn(durationType DurationType, trigger Trigger) bool {
	switch durationType {
	case DurationTurns:
		return trigger == TriggerTurnEnd
	case DurationActions:
		return trigger == TriggerOnAttack || trigger == TriggerOnDefend || trigger == TriggerOnHeal
	case DurationRooms:
		return trigger == TriggerOnRoomEnter
	case DurationHits:
		return trigger == TriggerOnDamageTaken || trigger == TriggerOnDamageDealt
	case DurationPermanent, DurationConditional:
		return false
	}
	return false
}
