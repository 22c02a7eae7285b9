package levels

import (
	"new-haven-server/internal/domain"

	"github.com/pkg/errors"
)

// Стартовый набор способностей игрока
var StarterAbilities = []string{"plasma_bolt", "nano_heal"}

// CreatePlayer собирает сущность игрока в точке спавна
func CreatePlayer(id string, spawn domain.Vec2) *domain.Entity {
	p := domain.NewEntity(id, domain.NewTransform(spawn.X, spawn.Y), domain.Size{W: domain.PlayerWidth, H: domain.PlayerHeight})
	p.Type = domain.EntityTypePlayer
	p.Name = "Runner"

	p.Physics = domain.NewPhysicsComponent()
	p.Collider = domain.NewColliderComponent(domain.ColliderPlayer)
	p.Combat = domain.NewCombatComponent(func(c *domain.CombatComponent) {
		c.AttackRange = domain.PlayerAttackRange
		c.MaxAttackCooldown = domain.PlayerAttackCooldown
	})
	p.Player = domain.NewPlayerComponent()
	p.Animation = domain.NewAnimationComponent()
	p.Ability = domain.NewAbilityComponent(func(a *domain.AbilityComponent) {
		a.Learned = append(a.Learned, StarterAbilities...)
		for i, id := range StarterAbilities {
			a.Equipped[i] = id
		}
	})
	return p
}

// ResetPlayer возвращает игрока на спавн с полным здоровьем (рестарт уровня)
func ResetPlayer(p *domain.Entity, spawn domain.Vec2) {
	p.SetPosition(spawn.X, spawn.Y)
	p.Active = true
	if p.Physics != nil {
		p.Physics.Velocity = domain.Vec2{}
		p.Physics.OnGround = false
	}
	if p.Combat != nil {
		p.Combat.Dead = false
		p.Combat.Health = p.Combat.MaxHealth
		p.Combat.Mana = p.Combat.MaxMana
		p.Combat.AttackCooldown = 0
		p.Combat.ClearStatuses()
	}
	if p.Player != nil {
		p.Player.DashTimer = 0
		p.Player.DashCooldown = 0
		p.Player.InvulnerableTimer = 0
		p.Player.Form = ""
		p.Player.FormTimer = 0
	}
	if p.Animation != nil {
		p.Animation.Lock = 0
		p.Animation.Play("idle", 0)
	}
}

// NewEnemy собирает сущность врага из описания
func NewEnemy(spec EnemySpawn) *domain.Entity {
	e := domain.NewEntity(spec.ID, domain.NewTransform(spec.Position.X, spec.Position.Y), spec.Size)
	e.Type = domain.EntityTypeEnemy
	e.Name = spec.Name

	e.Physics = domain.NewPhysicsComponent()
	e.Collider = domain.NewColliderComponent(domain.ColliderEnemy)
	e.Combat = domain.NewCombatComponent(func(c *domain.CombatComponent) {
		c.Health = spec.Health
		c.MaxHealth = spec.Health
		c.Mana, c.MaxMana = 0, 0
		c.Damage = spec.Damage
		c.Defense = spec.Defense
		c.AttackRange = spec.AttackRange
		c.MaxAttackCooldown = spec.AttackCooldown
	})
	e.AI = domain.NewAIComponent(func(a *domain.AIComponent) {
		a.DetectionRange = spec.DetectionRange
		a.AttackRange = spec.AttackRange
		a.MoveSpeed = spec.MoveSpeed
		if len(spec.PatrolPath) > 0 {
			a.PatrolPath = append([]domain.Vec2(nil), spec.PatrolPath...)
		}
	})
	e.Animation = domain.NewAnimationComponent()
	e.Loot = domain.NewLootComponent(domain.LootCredits, spec.LootCredits, func(l *domain.LootComponent) {
		l.DropChance = spec.LootChance
		l.Experience = spec.Experience
	})

	if spec.IsBoss {
		e.Type = domain.EntityTypeBoss
		e.Boss = domain.NewBossComponent(func(b *domain.BossComponent) {
			b.BaseMoveSpeed = spec.MoveSpeed
			b.MinionsPending = len(MinionDelays)
		})
	}
	return e
}

// NewPlatform - статическая платформа без физики
func NewPlatform(spec PlatformSpec) *domain.Entity {
	p := domain.NewEntity(spec.ID, domain.NewTransform(spec.Bounds.X, spec.Bounds.Y), domain.Size{W: spec.Bounds.W, H: spec.Bounds.H})
	p.Type = domain.EntityTypePlatform
	p.Platform = domain.NewPlatformComponent(func(c *domain.PlatformComponent) {
		c.OneWay = spec.OneWay
		c.Material = spec.Material
	})
	return p
}

// NewPickup - предмет висит в воздухе и ловится триггером
func NewPickup(spec PickupSpec) *domain.Entity {
	p := domain.NewEntity(spec.ID, domain.NewTransform(spec.Position.X, spec.Position.Y), domain.Size{W: 16, H: 16})
	p.Type = domain.EntityTypePickup
	p.Name = string(spec.Kind)
	p.Physics = domain.NewPhysicsComponent(func(c *domain.PhysicsComponent) { c.GravityEnabled = false })
	p.Collider = domain.NewColliderComponent(domain.ColliderPickup, func(c *domain.ColliderComponent) { c.IsTrigger = true })
	p.Loot = domain.NewLootComponent(spec.Kind, spec.Amount)
	return p
}

// Populate заселяет мир уровнем. Враги с задержкой не создаются,
// а возвращаются вызывающему для очереди появления.
func Populate(w *domain.World, data *LevelData) ([]EnemySpawn, error) {
	for _, spec := range data.Platforms {
		if err := w.Spawn(NewPlatform(spec)); err != nil {
			return nil, errors.Wrapf(err, "platform %s", spec.ID)
		}
	}
	for _, spec := range data.Pickups {
		if err := w.Spawn(NewPickup(spec)); err != nil {
			return nil, errors.Wrapf(err, "pickup %s", spec.ID)
		}
	}

	var pending []EnemySpawn
	for _, spec := range data.Enemies {
		if spec.SpawnDelay > 0 {
			pending = append(pending, spec)
			continue
		}
		if err := w.Spawn(NewEnemy(spec)); err != nil {
			return nil, errors.Wrapf(err, "enemy %s", spec.ID)
		}
	}
	return pending, nil
}
