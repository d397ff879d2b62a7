package effects

// NetModifiers is the folded stat adjustment of a whole active-effect
// collection, consumed by the combat and economy layers. Additive fields start
// at 0, multiplicative fields at 1.
type NetModifiers struct {
	Attack      float64
	Defense     float64
	MaxHealth   float64
	HealthRegen float64
	CritChance  float64
	DodgeChance float64

	GoldMultiplier        float64
	ExpMultiplier         float64
	DamageMultiplier      float64
	DamageTakenMultiplier float64
}

// Aggregate folds the active collection into a single net adjustment record.
// Additive stats sum value times the per-effect stack multiplier; multiplicative
// stats multiply across effects. Addition and multiplication commute, so the
// result is identical for any ordering of the collection.
func Aggregate(active []*Effect) *NetModifiers {
	net := &NetModifiers{
		GoldMultiplier:        1,
		ExpMultiplier:         1,
		DamageMultiplier:      1,
		DamageTakenMultiplier: 1,
	}

	for _, effect := range active {
		mult := effect.StackMultiplier()
		for stat, value := range effect.Modifiers {
			switch stat {
			case StatAttack:
				net.Attack += value * mult
			case StatDefense:
				net.Defense += value * mult
			case StatMaxHealth:
				net.MaxHealth += value * mult
			case StatHealthRegen:
				net.HealthRegen += value * mult
			case StatCritChance:
				net.CritChance += value * mult
			case StatDodgeChance:
				net.DodgeChance += value * mult
			case StatGoldMultiplier:
				net.GoldMultiplier *= value
			case StatExpMultiplier:
				net.ExpMultiplier *= value
			case StatDamageMultiplier:
				net.DamageMultiplier *= value
			case StatDamageTaken:
				net.DamageTakenMultiplier *= value
			}
		}
	}

	return net
}
