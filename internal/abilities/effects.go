package abilities

import (
	"new-haven-server/internal/domain"
	"new-haven-server/internal/systems"
	"new-haven-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Параметры порождаемых сущностей
const (
	ProjectileSpeed    = 12.0
	ProjectileSize     = 12.0
	SummonSize         = 24.0
	SummonHealth       = 30.0
	SummonAttackPeriod = 0.5
)

// targetPlan вычисляется до любых изменений мира
type targetPlan struct {
	primary *domain.Entity
	area    []*domain.Entity
	point   domain.Vec2
	dir     domain.Vec2
}

func (p *targetPlan) targets() []*domain.Entity {
	if p.primary != nil {
		return []*domain.Entity{p.primary}
	}
	return p.area
}

func facing(e *domain.Entity) float64 {
	if e.Player != nil && e.Player.Facing != 0 {
		return e.Player.Facing
	}
	if e.AI != nil && e.AI.Direction != 0 {
		return e.AI.Direction
	}
	return 1
}

func (s *System) planTargets(w *domain.World, a *Ability, level int, req UseRequest) (*targetPlan, error) {
	caster := req.Caster.Entity
	origin := caster.Center()
	rng := a.RangeAt(level)
	plan := &targetPlan{point: origin, dir: domain.Vec2{X: facing(caster)}}

	switch a.Target {
	case TargetEnemy:
		if req.TargetID != "" {
			t, err := systems.ValidateTarget(caster, req.TargetID, rng, w)
			switch err {
			case nil:
			case systems.ErrTargetTooFar:
				return nil, ErrOutOfRange
			default:
				return nil, ErrNoTarget
			}
			if t.ID == caster.ID || t.Combat == nil {
				return nil, ErrNoTarget
			}
			plan.primary = t
		} else {
			plan.primary = nearest(origin, systems.FindInRadius(w, origin, rng, caster.ID))
			if plan.primary == nil {
				return nil, ErrNoTarget
			}
		}
		plan.point = plan.primary.Center()

	case TargetArea:
		if req.TargetPos != nil {
			if !systems.InRange(caster, *req.TargetPos, rng) {
				return nil, ErrOutOfRange
			}
			plan.point = *req.TargetPos
		}
		plan.area = systems.FindInRadius(w, plan.point, a.Area, caster.ID)

	case TargetPoint:
		dest := origin.Add(plan.dir.Scale(rng))
		if req.TargetPos != nil {
			dest = *req.TargetPos
			// Дальше дальности не прыгаем: режем по направлению
			if off := dest.Sub(origin); rng > 0 && off.Len() > rng {
				dest = origin.Add(off.Normalize().Scale(rng))
			}
		}
		plan.point = dest

	case TargetDirection:
		if req.TargetPos != nil {
			if d := req.TargetPos.Sub(origin).Normalize(); d.Len() > 0 {
				plan.dir = d
			}
		} else if t := w.GetEntity(req.TargetID); t != nil && t.ID != caster.ID {
			if d := t.Center().Sub(origin).Normalize(); d.Len() > 0 {
				plan.dir = d
			}
		}
	}
	return plan, nil
}

func nearest(origin domain.Vec2, candidates []*domain.Entity) *domain.Entity {
	var best *domain.Entity
	bestDist := 0.0
	for _, e := range candidates {
		d := origin.DistanceTo(e.Center())
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func (s *System) execute(w *domain.World, a *Ability, level int, eff Effect, caster *domain.Entity, plan *targetPlan, res *Result) {
	effLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "ability_system",
		"ability_id": a.ID,
		"effect":     string(eff.Type),
	})

	switch eff.Type {
	case EffectDamage:
		amount := a.DamageAt(level)
		if eff.Projectile {
			id := s.spawnProjectile(w, a, level, eff, caster, plan, amount)
			if id != "" {
				res.Spawned = append(res.Spawned, id)
			}
			return
		}
		for _, t := range plan.targets() {
			dmg := systems.DealDamage(caster, t, amount)
			hit := Hit{TargetID: t.ID, Damage: dmg}
			if eff.Status != "" && systems.ApplyStatus(t, statusFor(a, level, eff, caster.ID)) {
				hit.Status = eff.Status
			}
			res.Hits = append(res.Hits, hit)
		}

	case EffectHeal:
		before := caster.Combat.Health
		caster.Combat.Heal(a.PowerAt(level, eff.Value))
		res.Healed += caster.Combat.Health - before

	case EffectBuff:
		systems.ApplyStatus(caster, statusFor(a, level, eff, caster.ID))

	case EffectDebuff:
		for _, t := range plan.targets() {
			if systems.ApplyStatus(t, statusFor(a, level, eff, caster.ID)) {
				res.Hits = append(res.Hits, Hit{TargetID: t.ID, Status: eff.Status})
			}
		}

	case EffectTeleport:
		caster.SetPosition(plan.point.X-caster.Size.W/2, plan.point.Y-caster.Size.H/2)
		if caster.Physics != nil {
			caster.Physics.Velocity = domain.Vec2{}
		}
		res.Teleported = true

	case EffectSummon:
		if id := s.spawnSummon(w, a, level, eff, caster); id != "" {
			res.Spawned = append(res.Spawned, id)
		}

	case EffectTransform:
		if caster.Player != nil {
			caster.Player.Form = eff.Form
			caster.Player.FormTimer = eff.Duration
		}
		systems.ApplyStatus(caster, domain.NewStatusEffect(domain.StatusBerserk, eff.Duration, 0))
		res.Form = eff.Form

	default:
		effLogger.Warn("Unknown effect skipped.")
	}
}

func statusFor(a *Ability, level int, eff Effect, sourceID string) domain.StatusEffect {
	st := domain.NewStatusEffect(eff.Status, eff.Duration, a.PowerAt(level, eff.Value))
	st.SourceID = sourceID
	return st
}

func (s *System) spawnProjectile(w *domain.World, a *Ability, level int, eff Effect, caster *domain.Entity, plan *targetPlan, damage float64) string {
	origin := caster.Center()
	p := domain.NewEntity(s.newID("proj_"),
		domain.NewTransform(origin.X-ProjectileSize/2, origin.Y-ProjectileSize/2),
		domain.Size{W: ProjectileSize, H: ProjectileSize})
	p.Type = domain.EntityTypeProjectile
	p.Name = a.Name
	p.Physics = domain.NewPhysicsComponent(func(c *domain.PhysicsComponent) {
		c.GravityEnabled = false
		c.Friction = 1
		c.Velocity = plan.dir.Scale(ProjectileSpeed)
	})
	p.Collider = domain.NewColliderComponent(domain.ColliderProjectile, func(c *domain.ColliderComponent) {
		c.IsTrigger = true
	})
	p.Projectile = domain.NewProjectileComponent(caster.ID, damage, func(c *domain.ProjectileComponent) {
		c.Origin = origin
		c.AbilityID = a.ID
		if rng := a.RangeAt(level); rng > 0 {
			c.MaxRange = rng
		}
		if eff.Status != "" {
			st := statusFor(a, level, eff, caster.ID)
			c.Status = &st
		}
	})
	p.Animation = domain.NewAnimationComponent()

	if err := w.Spawn(p); err != nil {
		return ""
	}
	return p.ID
}

func (s *System) spawnSummon(w *domain.World, a *Ability, level int, eff Effect, caster *domain.Entity) string {
	pos := caster.Transform.Position
	e := domain.NewEntity(s.newID("summon_"),
		domain.NewTransform(pos.X+facing(caster)*40, pos.Y),
		domain.Size{W: SummonSize, H: SummonSize})
	e.Type = domain.EntityTypeSummon
	e.Name = eff.Summon
	e.Physics = domain.NewPhysicsComponent(func(c *domain.PhysicsComponent) {
		c.GravityEnabled = false
		c.Friction = 1
	})
	e.Collider = domain.NewColliderComponent(domain.ColliderSummon, func(c *domain.ColliderComponent) {
		c.IsTrigger = true
	})
	e.Combat = domain.NewCombatComponent(func(c *domain.CombatComponent) {
		c.Health, c.MaxHealth = SummonHealth, SummonHealth
		c.Mana, c.MaxMana = 0, 0
		c.Damage = a.PowerAt(level, eff.Value)
		c.MaxAttackCooldown = SummonAttackPeriod
	})
	// Призванный союзник живет ограниченное время, как снаряд
	e.Projectile = domain.NewProjectileComponent(caster.ID, 0, func(c *domain.ProjectileComponent) {
		c.Lifetime = eff.Duration
		c.MaxRange = 0
		c.AbilityID = a.ID
	})
	e.Animation = domain.NewAnimationComponent()

	if err := w.Spawn(e); err != nil {
		return ""
	}
	return e.ID
}
