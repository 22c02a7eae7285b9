package domain

// Физика. Скорости измеряются в единицах за тик 1/60 с.
const (
	Gravity          = 0.8
	TerminalVelocity = 20.0
	DefaultFriction  = 0.8
	TickScale        = 60.0

	// GroundTolerance - допуск под ногами, чтобы стоящее тело не теряло опору каждый второй тик
	GroundTolerance = 0.5
)

// Параметры игрока
const (
	PlayerWidth          = 32.0
	PlayerHeight         = 48.0
	PlayerMoveSpeed      = 5.0
	PlayerJumpForce      = 15.0
	PlayerDashSpeed      = 15.0
	PlayerDashDuration   = 0.2
	PlayerDashCooldown   = 1.0
	PlayerInvulnerable   = 1.0
	PlayerAttackRange    = 60.0
	PlayerAttackCooldown = 0.4
)

// Параметры ИИ
const (
	EnemyJumpVelocity   = -15.0
	EnemyJumpThreshold  = 50.0
	PatrolSpeedFactor   = 0.5
	PatrolReverseChance = 0.01
	ChaseLoseFactor     = 1.5
	BossEnrageThreshold = 0.5
)

// Статусы
const (
	StatusTickInterval = 1.0
	StatusMaxStacks    = 5
)
