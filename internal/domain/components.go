package domain

import (
	"strings"

	"github.com/looplab/fsm"
)

// ComponentKind - закрытый перечень видов компонентов.
// Системы объявляют интересующие их виды через World.With(...).
type ComponentKind uint8

const (
	KindUnknown ComponentKind = iota
	KindPhysics
	KindCombat
	KindAI
	KindCollider
	KindPlayer
	KindAnimation
	KindPlatform
	KindLoot
	KindAbility
	KindProjectile
	KindEmitter
	KindBoss
)

var kindToString = map[ComponentKind]string{
	KindPhysics:    "physics",
	KindCombat:     "combat",
	KindAI:         "ai",
	KindCollider:   "collider",
	KindPlayer:     "player",
	KindAnimation:  "animation",
	KindPlatform:   "platform",
	KindLoot:       "loot",
	KindAbility:    "ability",
	KindProjectile: "projectile",
	KindEmitter:    "particle_emitter",
	KindBoss:       "boss",
}

func (k ComponentKind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return "unknown"
}

// ParseComponentKind конвертирует имя вида (из debug-запросов) в Enum
func ParseComponentKind(s string) ComponentKind {
	lower := strings.ToLower(s)
	for k, name := range kindToString {
		if name == lower {
			return k
		}
	}
	return KindUnknown
}

// Component реализуют все компоненты сущности
type Component interface {
	Kind() ComponentKind
}

// --- ФИЗИКА ---

// PhysicsComponent - скорость, ускорение, гравитация
type PhysicsComponent struct {
	Velocity       Vec2    `json:"velocity"`
	Acceleration   Vec2    `json:"acceleration"`
	Mass           float64 `json:"mass"`
	Friction       float64 `json:"friction"`
	MaxSpeed       float64 `json:"maxSpeed"` // 0 - без ограничения
	GravityEnabled bool    `json:"gravityEnabled"`
	OnGround       bool    `json:"onGround"`
}

func (*PhysicsComponent) Kind() ComponentKind { return KindPhysics }

func NewPhysicsComponent(overrides ...func(*PhysicsComponent)) *PhysicsComponent {
	c := &PhysicsComponent{Mass: 1, Friction: DefaultFriction, GravityEnabled: true}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// --- БОЙ ---

// CombatComponent - здоровье, мана, урон и статусы
type CombatComponent struct {
	Health            float64        `json:"health"`
	MaxHealth         float64        `json:"maxHealth"`
	Mana              float64        `json:"mana"`
	MaxMana           float64        `json:"maxMana"`
	Damage            float64        `json:"damage"`
	Defense           float64        `json:"defense"`
	AttackRange       float64        `json:"attackRange"`
	AttackCooldown    float64        `json:"attackCooldown"`
	MaxAttackCooldown float64        `json:"maxAttackCooldown"`
	StatusEffects     []StatusEffect `json:"statusEffects,omitempty"`
	Immunities        []StatusType   `json:"immunities,omitempty"`
	Dead              bool           `json:"dead"`

	// OnDeath вызывается ровно один раз при переходе в смерть
	OnDeath func(e *Entity) `json:"-"`
}

func (*CombatComponent) Kind() ComponentKind { return KindCombat }

func NewCombatComponent(overrides ...func(*CombatComponent)) *CombatComponent {
	c := &CombatComponent{
		Health: 100, MaxHealth: 100,
		Mana: 50, MaxMana: 50,
		Damage:            10,
		AttackRange:       50,
		MaxAttackCooldown: 1.0,
	}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// --- ИИ ---

// AIState - состояние конечного автомата врага
type AIState string

const (
	AIStatePatrol AIState = "patrol"
	AIStateChase  AIState = "chase"
	AIStateAttack AIState = "attack"
)

// AIComponent - мозги врага
type AIComponent struct {
	DetectionRange float64 `json:"detectionRange"`
	AttackRange    float64 `json:"attackRange"`
	MoveSpeed      float64 `json:"moveSpeed"`
	Direction      float64 `json:"direction"` // -1, 0 (не выбрано), 1
	PatrolPath     []Vec2  `json:"patrolPath,omitempty"`
	TargetID       string  `json:"targetId,omitempty"`
	Personality    string  `json:"personality,omitempty"`

	// FSM живет вместе с компонентом, состояние читаем через State()
	FSM *fsm.FSM `json:"-"`
}

func (*AIComponent) Kind() ComponentKind { return KindAI }

// AIEvent - события автомата
const (
	AIEventDetect  = "detect"
	AIEventLose    = "lose"
	AIEventEngage  = "engage"
	AIEventRecover = "recover"
)

// NewAIFSM собирает автомат patrol -> chase -> attack -> chase
func NewAIFSM() *fsm.FSM {
	return fsm.NewFSM(
		string(AIStatePatrol),
		fsm.Events{
			{Name: AIEventDetect, Src: []string{string(AIStatePatrol)}, Dst: string(AIStateChase)},
			{Name: AIEventLose, Src: []string{string(AIStateChase)}, Dst: string(AIStatePatrol)},
			{Name: AIEventEngage, Src: []string{string(AIStateChase)}, Dst: string(AIStateAttack)},
			{Name: AIEventRecover, Src: []string{string(AIStateAttack)}, Dst: string(AIStateChase)},
		},
		fsm.Callbacks{},
	)
}

func NewAIComponent(overrides ...func(*AIComponent)) *AIComponent {
	c := &AIComponent{
		DetectionRange: 300,
		AttackRange:    50,
		MoveSpeed:      3,
		FSM:            NewAIFSM(),
	}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// --- КОЛЛАЙДЕР ---

// ColliderType - роль сущности в парных коллизиях
type ColliderType string

const (
	ColliderPlayer     ColliderType = "player"
	ColliderEnemy      ColliderType = "enemy"
	ColliderProjectile ColliderType = "projectile"
	ColliderPickup     ColliderType = "pickup"
	ColliderSummon     ColliderType = "summon"
)

type ColliderComponent struct {
	Type      ColliderType `json:"type"`
	IsTrigger bool         `json:"isTrigger"`
	Layer     int          `json:"layer"`
}

func (*ColliderComponent) Kind() ComponentKind { return KindCollider }

func NewColliderComponent(t ColliderType, overrides ...func(*ColliderComponent)) *ColliderComponent {
	c := &ColliderComponent{Type: t}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// --- ИГРОК ---

// PlayerComponent - состояние управляемого персонажа
type PlayerComponent struct {
	MoveSpeed         float64 `json:"moveSpeed"`
	JumpForce         float64 `json:"jumpForce"`
	Facing            float64 `json:"facing"` // -1 влево, 1 вправо
	DashTimer         float64 `json:"dashTimer"`
	DashCooldown      float64 `json:"dashCooldown"`
	InvulnerableTimer float64 `json:"invulnerableTimer"`
	Credits           int     `json:"credits"`
	Form              string  `json:"form,omitempty"` // трансформация (ability transform)
	FormTimer         float64 `json:"formTimer"`
}

func (*PlayerComponent) Kind() ComponentKind { return KindPlayer }

func NewPlayerComponent(overrides ...func(*PlayerComponent)) *PlayerComponent {
	c := &PlayerComponent{MoveSpeed: PlayerMoveSpeed, JumpForce: PlayerJumpForce, Facing: 1}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// IsDashing - идет ли рывок
func (p *PlayerComponent) IsDashing() bool { return p.DashTimer > 0 }

// IsInvulnerable - неуязвимость после удара или во время рывка
func (p *PlayerComponent) IsInvulnerable() bool { return p.InvulnerableTimer > 0 || p.DashTimer > 0 }

// --- АНИМАЦИЯ ---

type AnimationComponent struct {
	State      string  `json:"state"` // idle, run, jump, fall, attack, hurt, dead
	Frame      int     `json:"frame"`
	FrameCount int     `json:"frameCount"`
	FrameTime  float64 `json:"frameTime"`
	Timer      float64 `json:"-"`
	// Lock удерживает одноразовую анимацию (attack, hurt) до истечения
	Lock float64 `json:"-"`
}

func (*AnimationComponent) Kind() ComponentKind { return KindAnimation }

func NewAnimationComponent(overrides ...func(*AnimationComponent)) *AnimationComponent {
	c := &AnimationComponent{State: "idle", FrameCount: 4, FrameTime: 0.1}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// Play переключает анимацию; lock > 0 удерживает ее указанное время
func (a *AnimationComponent) Play(state string, lock float64) {
	if a.State != state {
		a.State = state
		a.Frame = 0
		a.Timer = 0
	}
	if lock > a.Lock {
		a.Lock = lock
	}
}

// --- ПЛАТФОРМА ---

type PlatformComponent struct {
	OneWay   bool   `json:"oneWay"`
	Material string `json:"material,omitempty"`
}

func (*PlatformComponent) Kind() ComponentKind { return KindPlatform }

func NewPlatformComponent(overrides ...func(*PlatformComponent)) *PlatformComponent {
	c := &PlatformComponent{Material: "concrete"}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// --- ЛУТ ---

// LootKind - что дает подбираемый предмет
type LootKind string

const (
	LootHealth  LootKind = "health"
	LootMana    LootKind = "mana"
	LootCredits LootKind = "credits"
)

// LootComponent - на пикапе описывает содержимое, на враге - что выпадет при смерти
type LootComponent struct {
	Item       LootKind `json:"item"`
	Amount     float64  `json:"amount"`
	DropChance float64  `json:"dropChance,omitempty"`
	Experience int      `json:"experience,omitempty"`
	Collected  bool     `json:"collected"`
}

func (*LootComponent) Kind() ComponentKind { return KindLoot }

func NewLootComponent(kind LootKind, amount float64, overrides ...func(*LootComponent)) *LootComponent {
	c := &LootComponent{Item: kind, Amount: amount}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// --- СПОСОБНОСТИ ---

// AbilityComponent - какие способности знает и носит сущность
type AbilityComponent struct {
	Learned  []string       `json:"learned"`
	Levels   map[string]int `json:"levels"`
	Equipped [6]string      `json:"equipped"`
}

func (*AbilityComponent) Kind() ComponentKind { return KindAbility }

func NewAbilityComponent(overrides ...func(*AbilityComponent)) *AbilityComponent {
	c := &AbilityComponent{Levels: make(map[string]int)}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// LevelOf возвращает уровень способности (минимум 1)
func (a *AbilityComponent) LevelOf(id string) int {
	if lvl, ok := a.Levels[id]; ok && lvl > 0 {
		return lvl
	}
	return 1
}

// --- СНАРЯД ---

type ProjectileComponent struct {
	OwnerID   string        `json:"ownerId"`
	Damage    float64       `json:"damage"`
	Lifetime  float64       `json:"lifetime"`
	MaxRange  float64       `json:"maxRange"`
	Origin    Vec2          `json:"origin"`
	AbilityID string        `json:"abilityId,omitempty"`
	Status    *StatusEffect `json:"status,omitempty"`
}

func (*ProjectileComponent) Kind() ComponentKind { return KindProjectile }

func NewProjectileComponent(owner string, damage float64, overrides ...func(*ProjectileComponent)) *ProjectileComponent {
	c := &ProjectileComponent{OwnerID: owner, Damage: damage, Lifetime: 2, MaxRange: 800}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// --- ЧАСТИЦЫ ---

// Particle - одна частица (симулируется как данные, рисует клиент)
type Particle struct {
	Position Vec2    `json:"position"`
	Velocity Vec2    `json:"velocity"`
	Life     float64 `json:"life"`
}

type ParticleEmitterComponent struct {
	Effect    string     `json:"effect"` // spark, burst, smoke
	Rate      float64    `json:"rate"`   // частиц в секунду
	Lifetime  float64    `json:"lifetime"`
	Duration  float64    `json:"duration"` // сколько еще излучать (0 - одноразовый выброс)
	Burst     int        `json:"burst"`
	Particles []Particle `json:"particles,omitempty"`
	Spawned   int        `json:"spawned"`
	carry     float64
}

func (*ParticleEmitterComponent) Kind() ComponentKind { return KindEmitter }

func NewParticleEmitterComponent(effect string, overrides ...func(*ParticleEmitterComponent)) *ParticleEmitterComponent {
	c := &ParticleEmitterComponent{Effect: effect, Rate: 30, Lifetime: 0.5}
	for _, o := range overrides {
		o(c)
	}
	return c
}

// Accumulate копит дробную часть частиц между тиками и возвращает сколько выпустить
func (p *ParticleEmitterComponent) Accumulate(dt float64) int {
	p.carry += p.Rate * dt
	n := int(p.carry)
	p.carry -= float64(n)
	return n
}

// --- БОСС ---

type BossComponent struct {
	Phase          int     `json:"phase"`
	Enraged        bool    `json:"enraged"`
	MinionsPending int     `json:"minionsPending"`
	BaseMoveSpeed  float64 `json:"-"`
}

func (*BossComponent) Kind() ComponentKind { return KindBoss }

func NewBossComponent(overrides ...func(*BossComponent)) *BossComponent {
	c := &BossComponent{Phase: 1}
	for _, o := range overrides {
		o(c)
	}
	return c
}
