package effects

// Hand-authored effect templates. These go through the same validate +
// materialize pipeline as model-generated descriptions; nothing here is a
// finished instance.

// BurningTemplate is the canonical stacking damage-over-time.
func BurningTemplate() *Description {
	return &Description{
		Name:            "Burning",
		EffectType:      TypeDebuff,
		Category:        CategoryDamageOverTime,
		Triggers:        []Trigger{TriggerTurnEnd},
		Duration:        IntPtr(3),
		DurationType:    DurationTurns,
		StackBehavior:   StackIntensity,
		Stacks:          IntPtr(5),
		StackModifier:   FloatPtr(1.5),
		Modifiers:       map[Stat]float64{StatHealthRegen: -4},
		Power:           IntPtr(3),
		ApplyNarrative:  "Flames catch and cling to you.",
		ExpireNarrative: "The flames gutter out.",
	}
}

// RegenerationTemplate is a simple heal-over-time whose reapplication extends
// the remaining duration.
func RegenerationTemplate() *Description {
	return &Description{
		Name:            "Regeneration",
		EffectType:      TypeBuff,
		Category:        CategoryHealOverTime,
		Triggers:        []Trigger{TriggerTurnStart},
		Duration:        IntPtr(5),
		DurationType:    DurationTurns,
		StackBehavior:   StackDuration,
		Modifiers:       map[Stat]float64{StatHealthRegen: 3},
		Power:           IntPtr(2),
		ApplyNarrative:  "Warmth knits your wounds closed.",
		ExpireNarrative: "The warmth fades.",
	}
}

// StonehideTemplate is a flat defensive buff measured in hits taken.
func StonehideTemplate() *Description {
	return &Description{
		Name:           "Stonehide",
		EffectType:     TypeBuff,
		Category:       CategoryStatModifier,
		Duration:       IntPtr(4),
		DurationType:   DurationHits,
		Modifiers:      map[Stat]float64{StatDefense: 5},
		Power:          IntPtr(3),
		ApplyNarrative: "Your skin hardens to gray stone.",
	}
}

// CursedGreedTemplate is a permanent curse until cleansed: more gold, much
// more pain.
func CursedGreedTemplate() *Description {
	return &Description{
		Name:              "Cursed Greed",
		EffectType:        TypeDebuff,
		Category:          CategoryCompound,
		Duration:          IntPtr(PermanentDuration),
		DurationType:      DurationPermanent,
		Modifiers:         map[Stat]float64{StatGoldMultiplier: 1.5, StatDamageTaken: 1.25},
		Power:             IntPtr(6),
		Cleansable:        BoolPtr(true),
		CleanseResistance: 4,
		SourceType:        SourceCurse,
		ApplyNarrative:    "Gold gleams brighter; so do your enemies' blades.",
		ExpireNarrative:   "The hunger for gold releases its grip.",
	}
}

// VampiricHungerTemplate heals on dealt damage by spawning a short
// regeneration effect.
func VampiricHungerTemplate() *Description {
	regen := RegenerationTemplate()
	regen.Name = "Stolen Vitality"
	regen.Duration = IntPtr(2)
	regen.ApplyNarrative = ""
	return &Description{
		Name:         "Vampiric Hunger",
		EffectType:   TypeBuff,
		Category:     CategoryTriggered,
		Triggers:     []Trigger{TriggerOnDamageDealt},
		Duration:     IntPtr(6),
		DurationType: DurationHits,
		Power:        IntPtr(5),
		TriggeredEffects: []TriggeredEffect{
			{
				Trigger:   TriggerOnDamageDealt,
				Chance:    0.5,
				Effect:    regen,
				Narrative: "You drink the heat of the wound.",
			},
		},
		ApplyNarrative: "Your teeth ache with borrowed hunger.",
	}
}

// ChilledTemplate is an action-sapping control debuff applied by cold rooms.
func ChilledTemplate() *Description {
	return &Description{
		Name:            "Chilled",
		EffectType:      TypeDebuff,
		Category:        CategoryControl,
		Duration:        IntPtr(2),
		DurationType:    DurationRooms,
		Triggers:        []Trigger{TriggerOnRoomEnter},
		Modifiers:       map[Stat]float64{StatDodgeChance: -10},
		Power:           IntPtr(2),
		SourceType:      SourceEnvironment,
		ApplyNarrative:  "Frost stiffens your joints.",
		ExpireNarrative: "Feeling returns to your fingers.",
	}
}

// LuckyCharmTemplate is a permanent trinket aura.
func LuckyCharmTemplate() *Description {
	return &Description{
		Name:           "Lucky Charm",
		EffectType:     TypeBuff,
		Category:       CategoryAura,
		Duration:       IntPtr(PermanentDuration),
		DurationType:   DurationPermanent,
		Modifiers:      map[Stat]float64{StatGoldMultiplier: 1.1, StatCritChance: 2},
		Power:          IntPtr(2),
		SourceType:     SourceItem,
		ApplyNarrative: "The little charm hums when you pocket it.",
	}
}

// Templates returns the hand-authored library keyed by effect name.
// The map is rebuilt per call so callers can't corrupt the canonical set.
func Templates() map[string]*Description {
	list := []*Description{
		BurningTemplate(),
		RegenerationTemplate(),
		StonehideTemplate(),
		CursedGreedTemplate(),
		VampiricHungerTemplate(),
		ChilledTemplate(),
		LuckyCharmTemplate(),
	}
	out := make(map[string]*Description, len(list))
	for _, d := range list {
		out[d.Name] = d
	}
	return out
}
