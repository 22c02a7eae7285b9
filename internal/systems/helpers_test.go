package systems

import (
	"new-haven-server/internal/domain"
)

// recordSink запоминает события систем
type recordSink struct {
	NopSink
	contacts []string
	hits     []string
	pickups  []string
	deaths   []string
	attacks  []float64
	enraged  []string
}

func (r *recordSink) OnContact(p, e *domain.Entity)       { r.contacts = append(r.contacts, e.ID) }
func (r *recordSink) OnProjectileHit(p, e *domain.Entity) { r.hits = append(r.hits, e.ID) }
func (r *recordSink) OnPickup(p, item *domain.Entity)     { r.pickups = append(r.pickups, item.ID) }
func (r *recordSink) OnDeath(e *domain.Entity)            { r.deaths = append(r.deaths, e.ID) }
func (r *recordSink) OnEnemyAttack(e, t *domain.Entity, dmg float64) {
	r.attacks = append(r.attacks, dmg)
}
func (r *recordSink) OnBossEnrage(e *domain.Entity) { r.enraged = append(r.enraged, e.ID) }

func newBody(id string, x, y float64, collider domain.ColliderType) *domain.Entity {
	e := domain.NewEntity(id, domain.NewTransform(x, y), domain.Size{W: domain.PlayerWidth, H: domain.PlayerHeight})
	e.Physics = domain.NewPhysicsComponent()
	if collider != "" {
		e.Collider = domain.NewColliderComponent(collider)
	}
	return e
}

func newPlayer(id string, x, y float64) *domain.Entity {
	e := newBody(id, x, y, domain.ColliderPlayer)
	e.Type = domain.EntityTypePlayer
	e.Player = domain.NewPlayerComponent()
	e.Combat = domain.NewCombatComponent()
	return e
}

func newEnemy(id string, x, y float64) *domain.Entity {
	e := newBody(id, x, y, domain.ColliderEnemy)
	e.Type = domain.EntityTypeEnemy
	e.Combat = domain.NewCombatComponent()
	e.AI = domain.NewAIComponent()
	return e
}

func newPlatform(id string, x, y, w, h float64) *domain.Entity {
	e := domain.NewEntity(id, domain.NewTransform(x, y), domain.Size{W: w, H: h})
	e.Type = domain.EntityTypePlatform
	e.Platform = domain.NewPlatformComponent()
	return e
}

func spawnAll(entities ...*domain.Entity) *domain.World {
	w := domain.NewWorld()
	for _, e := range entities {
		if err := w.Spawn(e); err != nil {
			panic(err)
		}
	}
	return w
}
