package domain

// Entity - симулируемый объект. Поведение определяется набором компонентов:
// если указатель nil - компонента нет, и система сущность пропускает.
type Entity struct {
	// Идентификация
	ID   string     `json:"id"`
	Type EntityType `json:"type"`
	Name string     `json:"name"`

	Transform Transform `json:"transform"`
	Size      Size      `json:"size"`
	Bounds    Rect      `json:"bounds"`
	Active    bool      `json:"active"`

	// Компоненты
	Physics    *PhysicsComponent         `json:"physics,omitempty"`
	Combat     *CombatComponent          `json:"combat,omitempty"`
	AI         *AIComponent              `json:"ai,omitempty"`
	Collider   *ColliderComponent        `json:"collider,omitempty"`
	Player     *PlayerComponent          `json:"player,omitempty"`
	Animation  *AnimationComponent       `json:"animation,omitempty"`
	Platform   *PlatformComponent        `json:"platform,omitempty"`
	Loot       *LootComponent            `json:"loot,omitempty"`
	Ability    *AbilityComponent         `json:"ability,omitempty"`
	Projectile *ProjectileComponent      `json:"projectile,omitempty"`
	Emitter    *ParticleEmitterComponent `json:"emitter,omitempty"`
	Boss       *BossComponent            `json:"boss,omitempty"`
}

// NewEntity создает активную сущность с выведенными границами
func NewEntity(id string, t Transform, size Size) *Entity {
	e := &Entity{ID: id, Transform: t, Size: size, Active: true}
	e.SyncBounds()
	return e
}

// SyncBounds пересчитывает AABB из позиции. Вызывается после каждой записи позиции.
func (e *Entity) SyncBounds() {
	e.Bounds = Rect{
		X: e.Transform.Position.X,
		Y: e.Transform.Position.Y,
		W: e.Size.W,
		H: e.Size.H,
	}
}

// SetPosition пишет позицию и сразу границы: по отдельности их менять нельзя
func (e *Entity) SetPosition(x, y float64) {
	e.Transform.Position.X = x
	e.Transform.Position.Y = y
	e.SyncBounds()
}

// Center - центр AABB
func (e *Entity) Center() Vec2 {
	return e.Bounds.Center()
}

// Has проверяет наличие компонента
func (e *Entity) Has(kind ComponentKind) bool {
	_, ok := e.Component(kind)
	return ok
}

// HasAll проверяет наличие всех перечисленных компонентов
func (e *Entity) HasAll(kinds ...ComponentKind) bool {
	for _, k := range kinds {
		if !e.Has(k) {
			return false
		}
	}
	return true
}

// Component возвращает компонент по виду. Отсутствие - (nil, false), не ошибка.
func (e *Entity) Component(kind ComponentKind) (Component, bool) {
	var c Component
	switch kind {
	case KindPhysics:
		if e.Physics != nil {
			c = e.Physics
		}
	case KindCombat:
		if e.Combat != nil {
			c = e.Combat
		}
	case KindAI:
		if e.AI != nil {
			c = e.AI
		}
	case KindCollider:
		if e.Collider != nil {
			c = e.Collider
		}
	case KindPlayer:
		if e.Player != nil {
			c = e.Player
		}
	case KindAnimation:
		if e.Animation != nil {
			c = e.Animation
		}
	case KindPlatform:
		if e.Platform != nil {
			c = e.Platform
		}
	case KindLoot:
		if e.Loot != nil {
			c = e.Loot
		}
	case KindAbility:
		if e.Ability != nil {
			c = e.Ability
		}
	case KindProjectile:
		if e.Projectile != nil {
			c = e.Projectile
		}
	case KindEmitter:
		if e.Emitter != nil {
			c = e.Emitter
		}
	case KindBoss:
		if e.Boss != nil {
			c = e.Boss
		}
	}
	return c, c != nil
}

// Attach кладет компонент в соответствующий слот (заменяя старый)
func (e *Entity) Attach(c Component) bool {
	switch v := c.(type) {
	case *PhysicsComponent:
		e.Physics = v
	case *CombatComponent:
		e.Combat = v
	case *AIComponent:
		e.AI = v
	case *ColliderComponent:
		e.Collider = v
	case *PlayerComponent:
		e.Player = v
	case *AnimationComponent:
		e.Animation = v
	case *PlatformComponent:
		e.Platform = v
	case *LootComponent:
		e.Loot = v
	case *AbilityComponent:
		e.Ability = v
	case *ProjectileComponent:
		e.Projectile = v
	case *ParticleEmitterComponent:
		e.Emitter = v
	case *BossComponent:
		e.Boss = v
	default:
		return false
	}
	return true
}

// Detach убирает компонент. Возвращает false, если его не было.
func (e *Entity) Detach(kind ComponentKind) bool {
	if !e.Has(kind) {
		return false
	}
	switch kind {
	case KindPhysics:
		e.Physics = nil
	case KindCombat:
		e.Combat = nil
	case KindAI:
		e.AI = nil
	case KindCollider:
		e.Collider = nil
	case KindPlayer:
		e.Player = nil
	case KindAnimation:
		e.Animation = nil
	case KindPlatform:
		e.Platform = nil
	case KindLoot:
		e.Loot = nil
	case KindAbility:
		e.Ability = nil
	case KindProjectile:
		e.Projectile = nil
	case KindEmitter:
		e.Emitter = nil
	case KindBoss:
		e.Boss = nil
	}
	return true
}

// IsAlive - активна и (если есть бой) не мертва
func (e *Entity) IsAlive() bool {
	if !e.Active {
		return false
	}
	return e.Combat == nil || !e.Combat.Dead
}
