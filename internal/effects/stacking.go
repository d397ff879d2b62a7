package effects

import "fmt"

// ApplyEffect folds a newly materialized effect into a holder's active
// collection and returns the new collection plus a narrative describing what
// happened. Inputs are never mutated: the returned slice is fresh and any
// changed instance is a clone.
//
// The stacking policy only engages when an instance with the same name is
// already active. Independent stacking bypasses the name match entirely — each
// application keeps its own id.
func ApplyEffect(active []*Effect, incoming *Effect) ([]*Effect, string) {
	if incoming == nil {
		return append([]*Effect{}, active...), ""
	}

	existingIdx := -1
	if incoming.StackBehavior != StackIndependent {
		for i, e := range active {
			if e.Name == incoming.Name {
				existingIdx = i
				break
			}
		}
	}

	if existingIdx < 0 {
		out := make([]*Effect, 0, len(active)+1)
		out = append(out, active...)
		out = append(out, incoming)
		narrative := incoming.ApplyNarrative
		if narrative == "" {
			narrative = fmt.Sprintf("%s takes hold", incoming.Name)
		}
		return out, narrative
	}

	out := make([]*Effect, len(active))
	copy(out, active)
	updated := active[existingIdx].Clone()
	out[existingIdx] = updated

	var narrative string
	switch incoming.StackBehavior {
	case StackNone:
		updated.DurationRemaining = incoming.DurationValue
		narrative = fmt.Sprintf("%s refreshed", updated.Name)

	case StackDuration:
		updated.DurationRemaining += incoming.DurationValue
		narrative = fmt.Sprintf("%s extended by %d", updated.Name, incoming.DurationValue)

	case StackIntensity:
		if updated.CurrentStacks < updated.MaxStacks {
			updated.CurrentStacks++
			if incoming.DurationValue > updated.DurationRemaining {
				updated.DurationRemaining = incoming.DurationValue
			}
			narrative = fmt.Sprintf("%s intensifies (%d/%d)",
				updated.Name, updated.CurrentStacks, updated.MaxStacks)
		} else {
			// At the ceiling another application only refreshes.
			updated.DurationRemaining = incoming.DurationValue
			narrative = fmt.Sprintf("%s refreshed", updated.Name)
		}

	default:
		updated.DurationRemaining = incoming.DurationValue
		narrative = fmt.Sprintf("%s refreshed", updated.Name)
	}

	return out, narrative
}
