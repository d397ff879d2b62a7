package effects

import "fmt"

// SourceCategory identifies which content source produced a candidate
// description. The set is closed: profiles exist for exactly these nine keys.
type SourceCategory string

const (
	SourceCategoryCommon        SourceCategory = "common_item"
	SourceCategoryUncommon      SourceCategory = "uncommon_item"
	SourceCategoryRare          SourceCategory = "rare_item"
	SourceCategoryLegendary     SourceCategory = "legendary_item"
	SourceCategoryEnemy         SourceCategory = "enemy_attack"
	SourceCategoryShrine        SourceCategory = "shrine"
	SourceCategoryCurse         SourceCategory = "curse"
	SourceCategoryEnvironmental SourceCategory = "environmental"
	SourceCategoryCrafted       SourceCategory = "crafted"
)

// ConstraintProfile is the power budget one source category may spend.
// MaxDuration <= 0 disables the duration ceiling: those categories are
// bounded by context (shrines end with the floor, curses with the cleanse)
// rather than a fixed turn count.
type ConstraintProfile struct {
	MaxPower          int
	MaxDuration       int
	MaxStacks         int
	AllowedCategories map[Category]bool
	ForbiddenTriggers map[Trigger]bool
}

func categorySet(cats ...Category) map[Category]bool {
	out := make(map[Category]bool, len(cats))
	for _, c := range cats {
		out[c] = true
	}
	return out
}

func triggerSet(trigs ...Trigger) map[Trigger]bool {
	out := make(map[Trigger]bool, len(trigs))
	for _, t := range trigs {
		out[t] = true
	}
	return out
}

// constraintProfiles is built once at init and never mutated.
var constraintProfiles = map[SourceCategory]*ConstraintProfile{
	SourceCategoryCommon: {
		MaxPower:    2,
		MaxDuration: 5,
		MaxStacks:   3,
		AllowedCategories: categorySet(
			CategoryStatModifier, CategoryDamageOverTime,
			CategoryHealOverTime, CategoryUtility,
		),
		ForbiddenTriggers: triggerSet(TriggerOnKill, TriggerOnCriticalHit, TriggerOnDeath),
	},
	SourceCategoryUncommon: {
		MaxPower:    4,
		MaxDuration: 8,
		MaxStacks:   3,
		AllowedCategories: categorySet(
			CategoryStatModifier, CategoryDamageOverTime, CategoryHealOverTime,
			CategoryDamageModifier, CategoryResistance, CategoryUtility,
		),
		ForbiddenTriggers: triggerSet(TriggerOnKill, TriggerOnDeath),
	},
	SourceCategoryRare: {
		MaxPower:    6,
		MaxDuration: 12,
		MaxStacks:   5,
		AllowedCategories: categorySet(
			CategoryStatModifier, CategoryDamageOverTime, CategoryHealOverTime,
			CategoryDamageModifier, CategoryResistance, CategoryVulnerability,
			CategoryTriggered, CategoryAura, CategoryUtility,
		),
		ForbiddenTriggers: triggerSet(TriggerOnDeath),
	},
	SourceCategoryLegendary: {
		MaxPower:          10,
		MaxDuration:       PermanentDuration,
		MaxStacks:         10,
		AllowedCategories: categorySet(Categories...),
		ForbiddenTriggers: triggerSet(),
	},
	SourceCategoryEnemy: {
		MaxPower:    7,
		MaxDuration: 6,
		MaxStacks:   5,
		AllowedCategories: categorySet(
			CategoryDamageOverTime, CategoryStatModifier, CategoryControl,
			CategoryVulnerability, CategoryTriggered,
		),
		ForbiddenTriggers: triggerSet(TriggerOnKill),
	},
	SourceCategoryShrine: {
		MaxPower:    8,
		MaxDuration: PermanentDuration,
		MaxStacks:   3,
		AllowedCategories: categorySet(
			CategoryStatModifier, CategoryHealOverTime, CategoryDamageModifier,
			CategoryResistance, CategoryUtility, CategoryAura, CategoryTransformation,
		),
		ForbiddenTriggers: triggerSet(),
	},
	SourceCategoryCurse: {
		MaxPower:    9,
		MaxDuration: PermanentDuration,
		MaxStacks:   5,
		AllowedCategories: categorySet(
			CategoryDamageOverTime, CategoryStatModifier, CategoryVulnerability,
			CategoryControl, CategoryTriggered, CategoryTransformation, CategoryCompound,
		),
		ForbiddenTriggers: triggerSet(),
	},
	SourceCategoryEnvironmental: {
		MaxPower:    5,
		MaxDuration: 4,
		MaxStacks:   3,
		AllowedCategories: categorySet(
			CategoryDamageOverTime, CategoryControl,
			CategoryVulnerability, CategoryUtility,
		),
		ForbiddenTriggers: triggerSet(TriggerOnKill, TriggerOnCriticalHit),
	},
	SourceCategoryCrafted: {
		MaxPower:    6,
		MaxDuration: 10,
		MaxStacks:   5,
		AllowedCategories: categorySet(
			CategoryStatModifier, CategoryDamageModifier, CategoryResistance,
			CategoryHealOverTime, CategoryTriggered, CategoryUtility,
		),
		ForbiddenTriggers: triggerSet(TriggerOnDeath),
	},
}

// ProfileFor returns the constraint profile for a source category. The
// category set is closed and known at build time, so an unknown key is a
// programming error, not a runtime condition.
func ProfileFor(source SourceCategory) *ConstraintProfile {
	profile, ok := constraintProfiles[source]
	if !ok {
		panic(fmt.Sprintf("effects: unknown source category %q", source))
	}
	return profile
}

// ValidationResult is the validator's only output. Violations are
// plain-language strings for the content pipeline to log or feed back to the
// narrative model; they are never errors.
type ValidationResult struct {
	Valid      bool
	Violations []string
}

// Validate checks a candidate description against the bounds profile of its
// source category. Each present field is checked independently and violations
// accumulate; absent fields never violate. Unknown source categories panic via
// ProfileFor.
func Validate(candidate *Description, source SourceCategory) ValidationResult {
	profile := ProfileFor(source)

	var violations []string

	if candidate.Power != nil && *candidate.Power > profile.MaxPower {
		violations = append(violations, fmt.Sprintf(
			"power %d exceeds maximum %d for %s", *candidate.Power, profile.MaxPower, source))
	}
	if candidate.Duration != nil && profile.MaxDuration > 0 && *candidate.Duration > profile.MaxDuration {
		violations = append(violations, fmt.Sprintf(
			"duration %d exceeds maximum %d for %s", *candidate.Duration, profile.MaxDuration, source))
	}
	if candidate.Stacks != nil && *candidate.Stacks > profile.MaxStacks {
		violations = append(violations, fmt.Sprintf(
			"stacks %d exceeds maximum %d for %s", *candidate.Stacks, profile.MaxStacks, source))
	}
	if candidate.Category != "" && !profile.AllowedCategories[candidate.Category] {
		violations = append(violations, fmt.Sprintf(
			"category %q is not allowed for %s", candidate.Category, source))
	}
	if candidate.Trigger != "" && profile.ForbiddenTriggers[candidate.Trigger] {
		violations = append(violations, fmt.Sprintf(
			"trigger %q is forbidden for %s", candidate.Trigger, source))
	}

	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
