package levels

import (
	"new-haven-server/internal/domain"
)

// EnemyTemplate - заготовка врага одной роли. Числа урона и здоровья
// берутся из базовых значений уровня и умножаются на факторы шаблона.
type EnemyTemplate struct {
	Role           string
	Size           domain.Size
	HealthFactor   float64
	DamageFactor   float64
	MoveSpeed      float64
	DetectionRange float64
	AttackRange    float64
	AttackCooldown float64
	ExpFactor      int
	LootChance     float64
}

// --- РОЛИ ---

var Grunt = EnemyTemplate{
	Role:           "grunt",
	Size:           domain.Size{W: 32, H: 48},
	HealthFactor:   1,
	DamageFactor:   1,
	MoveSpeed:      3,
	DetectionRange: 300,
	AttackRange:    50,
	AttackCooldown: 1.0,
	ExpFactor:      1,
	LootChance:     0.5,
}

var Minion = EnemyTemplate{
	Role:           "minion",
	Size:           domain.Size{W: 24, H: 36},
	HealthFactor:   MinionHealthFactor,
	DamageFactor:   MinionDamageFactor,
	MoveSpeed:      3.5,
	DetectionRange: 400,
	AttackRange:    40,
	AttackCooldown: 0.8,
	ExpFactor:      1,
	LootChance:     0.25,
}

var Boss = EnemyTemplate{
	Role:           "boss",
	Size:           domain.Size{W: 64, H: 96},
	HealthFactor:   BossHealthFactor,
	DamageFactor:   BossDamageFactor,
	MoveSpeed:      2,
	DetectionRange: 500,
	AttackRange:    80,
	AttackCooldown: 1.5,
	ExpFactor:      10,
	LootChance:     1,
}

// Spawn собирает описание врага для уровня id, стоящего ногами на groundY
func (t EnemyTemplate) Spawn(id int, kind, spawnID string, x, groundY float64) EnemySpawn {
	return EnemySpawn{
		ID:             spawnID,
		Kind:           kind,
		Name:           kind,
		Position:       domain.Vec2{X: x, Y: groundY - t.Size.H},
		Size:           t.Size,
		Health:         BaseHealth(id) * t.HealthFactor,
		Damage:         BaseDamage(id) * t.DamageFactor,
		Defense:        float64(id / 10 * 2),
		MoveSpeed:      t.MoveSpeed,
		DetectionRange: t.DetectionRange,
		AttackRange:    t.AttackRange,
		AttackCooldown: t.AttackCooldown,
		IsBoss:         t.Role == Boss.Role,
		Experience:     (10 + 2*id) * t.ExpFactor,
		LootCredits:    float64(5+id) * float64(t.ExpFactor),
		LootChance:     t.LootChance,
	}
}
