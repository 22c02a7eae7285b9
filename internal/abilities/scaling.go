package abilities

import "math"

// Нижние границы масштабирования
const (
	MinCooldown = 0.1
	MinManaCost = 1.0
)

func (a *Ability) clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if a.MaxLevel > 0 && level > a.MaxLevel {
		return a.MaxLevel
	}
	return level
}

// DamageAt: base + damagePerLevel*(l-1)
func (a *Ability) DamageAt(level int) float64 {
	l := float64(a.clampLevel(level) - 1)
	return a.BaseDamage + a.Scaling.DamagePerLevel*l
}

// CooldownAt: max(0.1, base - reduction*(l-1))
func (a *Ability) CooldownAt(level int) float64 {
	l := float64(a.clampLevel(level) - 1)
	return math.Max(MinCooldown, a.Cooldown-a.Scaling.CooldownReduction*l)
}

// ManaCostAt: max(1, base - reduction*(l-1))
func (a *Ability) ManaCostAt(level int) float64 {
	l := float64(a.clampLevel(level) - 1)
	return math.Max(MinManaCost, a.ManaCost-a.Scaling.ManaCostReduction*l)
}

// RangeAt: base + increase*(l-1)
func (a *Ability) RangeAt(level int) float64 {
	l := float64(a.clampLevel(level) - 1)
	return a.Range + a.Scaling.RangeIncrease*l
}

// PowerAt масштабирует значения эффектов (лечение, сила статуса): +10% за уровень
func (a *Ability) PowerAt(level int, value float64) float64 {
	l := float64(a.clampLevel(level) - 1)
	return value * (1 + 0.1*l)
}
