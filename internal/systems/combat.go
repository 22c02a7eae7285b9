package systems

import (
	"math"
	"new-haven-server/internal/domain"
	"new-haven-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BerserkMultiplier - множитель урона атакующего под berserk
const BerserkMultiplier = 1.5

// DealDamage - единственная точка нанесения урона.
// Итоговый урон = max(1, raw - defense): защита никогда не обнуляет удар.
// Щит цели поглощает часть raw до вычета защиты.
//
// 0 означает, что удар проигнорирован и цель не изменилась: у нее нет боя,
// она мертва или это неуязвимый игрок (рывок, окно после контакта).
// Пол в 1 действует только для примененных ударов.
func DealDamage(attacker, target *domain.Entity, raw float64) float64 {
	if target == nil || target.Combat == nil || target.Combat.Dead {
		return 0
	}
	if target.Player != nil && target.Player.IsInvulnerable() {
		return 0
	}

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"target_id": target.ID,
	})

	if attacker != nil && attacker.Combat != nil && attacker.Combat.HasStatus(domain.StatusBerserk) {
		raw *= BerserkMultiplier
	}

	tc := target.Combat
	absorbed := 0.0
	if shield := tc.Status(domain.StatusShield); shield != nil && shield.Potency > 0 {
		absorbed = math.Min(raw, shield.Potency)
		shield.Potency -= absorbed
		raw -= absorbed
		if shield.Potency <= 0 {
			// Пробитый щит уходит на следующем тике боя
			shield.Duration = 0
		}
	}

	final := raw - tc.Defense
	if final < 1 {
		final = 1
	}

	hpBefore := tc.Health
	tc.TakeDamage(final)

	fields := logrus.Fields{
		"raw_damage":   raw + absorbed,
		"absorbed":     absorbed,
		"defense":      tc.Defense,
		"final_damage": final,
		"hp_before":    hpBefore,
		"hp_after":     tc.Health,
	}
	if attacker != nil {
		fields["attacker_id"] = attacker.ID
	}
	combatLogger.WithFields(fields).Debug("Damage applied.")

	return final
}

// ApplyStatus вешает эффект с учетом иммунитетов и стаков
func ApplyStatus(target *domain.Entity, effect domain.StatusEffect) bool {
	if target == nil || target.Combat == nil || !target.Active {
		return false
	}
	return target.Combat.AddStatus(effect)
}

// UpdateCombat тикает перезарядку атаки и статусы, фиксирует смерти.
func UpdateCombat(w *domain.World, dt float64, sink Sink) {
	sink = sinkOrNop(sink)

	for _, e := range w.ActiveWith(domain.KindCombat) {
		c := e.Combat

		c.AttackCooldown -= dt
		if c.AttackCooldown < 0 {
			c.AttackCooldown = 0
		}

		tickStatuses(e, dt)

		if c.Health <= 0 {
			Kill(e, sink)
		}
	}
}

func tickStatuses(e *domain.Entity, dt float64) {
	c := e.Combat
	if len(c.StatusEffects) == 0 {
		return
	}

	kept := c.StatusEffects[:0]
	for _, s := range c.StatusEffects {
		s.Duration -= dt
		s.TickTimer -= dt

		if s.TickTimer <= 0 {
			applyTick(e, s)
			s.TickTimer = domain.StatusTickInterval
		}
		// Истекший эффект снимается в тот же тик
		if s.Duration > 0 {
			kept = append(kept, s)
		}
	}
	c.StatusEffects = kept
}

func applyTick(e *domain.Entity, s domain.StatusEffect) {
	amount := s.Potency * float64(s.Stacks)
	switch s.Type {
	case domain.StatusPoison, domain.StatusBurn:
		// DoT идет мимо защиты: это не удар
		e.Combat.TakeDamage(amount)
	case domain.StatusRegeneration:
		e.Combat.Heal(amount)
	}
}

// Kill переводит сущность в смерть. Повторный вызов ничего не делает.
func Kill(e *domain.Entity, sink Sink) {
	c := e.Combat
	if c == nil || c.Dead || !e.Active {
		return
	}

	c.Dead = true
	c.Health = 0
	c.StatusEffects = nil
	e.Active = false
	if e.Physics != nil {
		e.Physics.Velocity = domain.Vec2{}
	}
	if e.Animation != nil {
		e.Animation.Play("dead", 0)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"entity_id": e.ID,
		"type":      e.Type.String(),
	}).Info("Entity died.")

	if c.OnDeath != nil {
		c.OnDeath(e)
	}
	sinkOrNop(sink).OnDeath(e)
}
