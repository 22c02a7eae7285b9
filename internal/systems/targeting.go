package systems

import (
	"errors"
	"new-haven-server/internal/domain"
)

var (
	ErrTargetNotFound = errors.New("target not found")
	ErrTargetTooFar   = errors.New("target out of range")
	ErrTargetDead     = errors.New("target is dead")
)

// EntityProvider - интерфейс для поиска сущностей (чтобы не зависеть от World напрямую)
type EntityProvider interface {
	GetEntity(id string) *domain.Entity
}

// ValidateTarget проверяет, может ли actor дотянуться до targetID.
// rangeLimit <= 0 - без ограничения дистанции.
func ValidateTarget(actor *domain.Entity, targetID string, rangeLimit float64, finder EntityProvider) (*domain.Entity, error) {
	// 1. Поиск цели
	target := finder.GetEntity(targetID)
	if target == nil {
		return nil, ErrTargetNotFound
	}

	// 2. Живая ли цель
	if !target.IsAlive() {
		return nil, ErrTargetDead
	}

	// 3. Проверка дистанции
	if rangeLimit > 0 && actor.Center().DistanceTo(target.Center()) > rangeLimit {
		return nil, ErrTargetTooFar
	}

	return target, nil
}

// InRange проверяет дистанцию до точки
func InRange(actor *domain.Entity, point domain.Vec2, rangeLimit float64) bool {
	return rangeLimit <= 0 || actor.Center().DistanceTo(point) <= rangeLimit
}

// FindMeleeTargets - живые враги перед лицом атакующего в пределах дальности
func FindMeleeTargets(w *domain.World, attacker *domain.Entity, facing, rangeLimit float64) []*domain.Entity {
	origin := attacker.Center()
	var out []*domain.Entity
	for _, e := range w.ActiveWith(domain.KindCombat, domain.KindAI) {
		if e.ID == attacker.ID || !e.IsAlive() {
			continue
		}
		c := e.Center()
		dx := c.X - origin.X
		// За спиной не бьем (с небольшим допуском на перекрытие)
		if facing != 0 && dx*facing < -attacker.Size.W/2 {
			continue
		}
		if origin.DistanceTo(c) <= rangeLimit {
			out = append(out, e)
		}
	}
	return out
}

// FindInRadius - живые враги в круге (area-эффекты способностей)
func FindInRadius(w *domain.World, center domain.Vec2, radius float64, excludeID string) []*domain.Entity {
	var out []*domain.Entity
	for _, e := range w.ActiveWith(domain.KindCombat, domain.KindAI) {
		if e.ID == excludeID || !e.IsAlive() {
			continue
		}
		if center.DistanceTo(e.Center()) <= radius {
			out = append(out, e)
		}
	}
	return out
}
