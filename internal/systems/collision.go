package systems

import (
	"new-haven-server/internal/domain"
	"new-haven-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// UpdateCollisions выполняет два прохода:
//  1. сущность-сущность: все пары i<j тел с Physics+Collider, строгий AABB, диспетчеризация по паре типов;
//  2. сущность-платформа: сброс OnGround и разрешение по стороне проникновения.
func UpdateCollisions(w *domain.World, sink Sink) {
	sink = sinkOrNop(sink)

	resolveEntityPairs(w.ActiveWith(domain.KindPhysics, domain.KindCollider), sink)
	resolvePlatforms(w)
}

func resolveEntityPairs(bodies []*domain.Entity, sink Sink) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			// Снаряд мог погаснуть на предыдущей паре
			if !a.Active || !b.Active {
				continue
			}
			if !a.Bounds.Intersects(b.Bounds) {
				continue
			}
			dispatchPair(a, b, sink)
		}
	}
}

// pick упорядочивает пару так, чтобы первым шел тип x
func pick(a, b *domain.Entity, x, y domain.ColliderType) (*domain.Entity, *domain.Entity, bool) {
	ta, tb := a.Collider.Type, b.Collider.Type
	switch {
	case ta == x && tb == y:
		return a, b, true
	case ta == y && tb == x:
		return b, a, true
	}
	return nil, nil, false
}

func dispatchPair(a, b *domain.Entity, sink Sink) {
	if player, enemy, ok := pick(a, b, domain.ColliderPlayer, domain.ColliderEnemy); ok {
		sink.OnContact(player, enemy)
		return
	}
	if proj, enemy, ok := pick(a, b, domain.ColliderProjectile, domain.ColliderEnemy); ok {
		// Один снаряд - одна цель
		proj.Active = false
		logger.Log.WithFields(logrus.Fields{
			"component":  "collision_system",
			"projectile": proj.ID,
			"target_id":  enemy.ID,
		}).Debug("Projectile hit.")
		sink.OnProjectileHit(proj, enemy)
		return
	}
	if player, pickup, ok := pick(a, b, domain.ColliderPlayer, domain.ColliderPickup); ok {
		sink.OnPickup(player, pickup)
		return
	}
	if summon, enemy, ok := pick(a, b, domain.ColliderSummon, domain.ColliderEnemy); ok {
		sink.OnSummonContact(summon, enemy)
	}
	// Остальные пары игнорируем
}

func resolvePlatforms(w *domain.World) {
	platforms := w.ActiveWith(domain.KindPlatform)
	bodies := w.ActiveWith(domain.KindPhysics)

	for _, e := range bodies {
		e.Physics.OnGround = false
	}

	for _, e := range bodies {
		if e.Platform != nil {
			continue
		}
		// Триггеры (снаряды, пикапы) позицию не разрешают
		if e.Collider != nil && e.Collider.IsTrigger {
			continue
		}
		for _, pl := range platforms {
			resolvePlatform(e, pl)
		}
	}
}

// resolvePlatform исправляет одну ось; первый подходящий случай побеждает
func resolvePlatform(e, pl *domain.Entity) {
	p := e.Physics

	reach := e.Bounds
	if p.Velocity.Y >= 0 {
		// Щуп под ногами: стоящее тело остается на опоре
		reach.H += domain.GroundTolerance
	}
	if !reach.Intersects(pl.Bounds) {
		return
	}

	center := e.Center()
	oneWay := pl.Platform.OneWay

	switch {
	case p.Velocity.Y >= 0 && center.Y < pl.Bounds.Y:
		// Приземление
		e.SetPosition(e.Transform.Position.X, pl.Bounds.Y-e.Size.H)
		p.Velocity.Y = 0
		p.OnGround = true

	case oneWay:
		// Односторонняя платформа держит только сверху

	case p.Velocity.Y < 0 && center.Y > pl.Bounds.Bottom():
		// Удар головой
		e.SetPosition(e.Transform.Position.X, pl.Bounds.Bottom())
		p.Velocity.Y = 0

	default:
		// Щуп мог задеть платформу только снизу: это не боковой контакт
		if !e.Bounds.Intersects(pl.Bounds) {
			return
		}
		if center.X < pl.Center().X {
			e.SetPosition(pl.Bounds.X-e.Size.W, e.Transform.Position.Y)
		} else {
			e.SetPosition(pl.Bounds.Right(), e.Transform.Position.Y)
		}
		p.Velocity.X = 0
	}
}
