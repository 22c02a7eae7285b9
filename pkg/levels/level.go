package levels

import (
	"new-haven-server/internal/domain"
)

// Environment - тематическая зона уровня
type Environment string

const (
	EnvStreet         Environment = "street"
	EnvBuilding       Environment = "building"
	EnvRooftop        Environment = "rooftop"
	EnvSubway         Environment = "subway"
	EnvSewer          Environment = "sewer"
	EnvLaboratory     Environment = "laboratory"
	EnvCorporateTower Environment = "corporate_tower"
	EnvCyberspace     Environment = "cyberspace"
	EnvOrbitalStation Environment = "orbital_station"
	EnvVoidSpace      Environment = "void_space"
)

// Difficulty - полоса сложности
type Difficulty string

const (
	DifficultyNormal     Difficulty = "normal"
	DifficultyDifficult  Difficulty = "difficult"
	DifficultyImpossible Difficulty = "impossible"
)

// ObjectiveType - тип цели уровня
type ObjectiveType string

const (
	ObjectiveKillAll        ObjectiveType = "kill_all"
	ObjectiveKillBoss       ObjectiveType = "kill_boss"
	ObjectiveCollectPickups ObjectiveType = "collect_pickups"
)

// EnemySpawn - описание врага. SpawnDelay > 0 - появится позже (миньоны босса).
type EnemySpawn struct {
	ID             string        `json:"id" yaml:"id"`
	Kind           string        `json:"kind" yaml:"kind"`
	Name           string        `json:"name" yaml:"name"`
	Position       domain.Vec2   `json:"position" yaml:"position"`
	Size           domain.Size   `json:"size" yaml:"size"`
	Health         float64       `json:"health" yaml:"health"`
	Damage         float64       `json:"damage" yaml:"damage"`
	Defense        float64       `json:"defense" yaml:"defense"`
	MoveSpeed      float64       `json:"moveSpeed" yaml:"move_speed"`
	DetectionRange float64       `json:"detectionRange" yaml:"detection_range"`
	AttackRange    float64       `json:"attackRange" yaml:"attack_range"`
	AttackCooldown float64       `json:"attackCooldown" yaml:"attack_cooldown"`
	IsBoss         bool          `json:"isBoss" yaml:"is_boss"`
	SpawnDelay     float64       `json:"spawnDelay,omitempty" yaml:"spawn_delay,omitempty"`
	PatrolPath     []domain.Vec2 `json:"patrolPath,omitempty" yaml:"patrol_path,omitempty"`
	Experience     int           `json:"experience" yaml:"experience"`
	LootCredits    float64       `json:"lootCredits" yaml:"loot_credits"`
	LootChance     float64       `json:"lootChance" yaml:"loot_chance"`
}

// PlatformSpec - статическая платформа
type PlatformSpec struct {
	ID       string      `json:"id" yaml:"id"`
	Bounds   domain.Rect `json:"bounds" yaml:"bounds"`
	OneWay   bool        `json:"oneWay" yaml:"one_way"`
	Material string      `json:"material" yaml:"material"`
}

// PickupSpec - подбираемый предмет
type PickupSpec struct {
	ID       string          `json:"id" yaml:"id"`
	Kind     domain.LootKind `json:"kind" yaml:"kind"`
	Amount   float64         `json:"amount" yaml:"amount"`
	Position domain.Vec2     `json:"position" yaml:"position"`
}

// Objective - цель уровня. Прогресс ведет менеджер на своей копии.
type Objective struct {
	Type        ObjectiveType `json:"type" yaml:"type"`
	Description string        `json:"description" yaml:"description"`
	Target      int           `json:"target" yaml:"target"`
	Progress    int           `json:"progress" yaml:"progress"`
	Optional    bool          `json:"optional" yaml:"optional"`
	Completed   bool          `json:"completed" yaml:"completed"`
}

// Advance двигает прогресс и возвращает true, если цель только что выполнена
func (o *Objective) Advance(n int) bool {
	if o.Completed {
		return false
	}
	o.Progress += n
	if o.Progress >= o.Target {
		o.Progress = o.Target
		o.Completed = true
		return true
	}
	return false
}

// Lighting - параметры освещения для рендера
type Lighting struct {
	Ambient   string   `json:"ambient" yaml:"ambient"`
	Palette   []string `json:"palette" yaml:"palette"`
	Intensity float64  `json:"intensity" yaml:"intensity"`
	Flicker   bool     `json:"flicker" yaml:"flicker"`
}

// Weather - погодный эффект
type Weather struct {
	Effect    string  `json:"effect" yaml:"effect"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
}

// Bounds - размеры уровня и зоны мгновенной смерти
type Bounds struct {
	Width      float64       `json:"width" yaml:"width"`
	Height     float64       `json:"height" yaml:"height"`
	DeathZones []domain.Rect `json:"deathZones" yaml:"death_zones"`
}

// LevelData - полное описание уровня. Генерируется один раз и далее только читается.
type LevelData struct {
	ID          int            `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Environment Environment    `json:"environment" yaml:"environment"`
	Difficulty  Difficulty     `json:"difficulty" yaml:"difficulty"`
	IsBossLevel bool           `json:"isBossLevel" yaml:"is_boss_level"`
	Enemies     []EnemySpawn   `json:"enemies" yaml:"enemies"`
	Platforms   []PlatformSpec `json:"platforms" yaml:"platforms"`
	Pickups     []PickupSpec   `json:"pickups" yaml:"pickups"`
	Objectives  []Objective    `json:"objectives" yaml:"objectives"`
	Lighting    Lighting       `json:"lighting" yaml:"lighting"`
	Weather     Weather        `json:"weather" yaml:"weather"`
	Bounds      Bounds         `json:"bounds" yaml:"bounds"`
	PlayerSpawn domain.Vec2    `json:"playerSpawn" yaml:"player_spawn"`
}

// AllComplete - проверка для копии целей, которую ведет менеджер
func AllComplete(objs []Objective) bool {
	for _, o := range objs {
		if !o.Optional && !o.Completed {
			return false
		}
	}
	return true
}

// CopyObjectives возвращает свежую копию целей для отслеживания прогресса
func (l *LevelData) CopyObjectives() []Objective {
	out := make([]Objective, len(l.Objectives))
	copy(out, l.Objectives)
	for i := range out {
		out[i].Progress = 0
		out[i].Completed = false
	}
	return out
}

// Bosses - враги-боссы уровня
func (l *LevelData) Bosses() []EnemySpawn {
	var out []EnemySpawn
	for _, e := range l.Enemies {
		if e.IsBoss {
			out = append(out, e)
		}
	}
	return out
}

// DelayedSpawns - враги, появляющиеся по таймеру
func (l *LevelData) DelayedSpawns() []EnemySpawn {
	var out []EnemySpawn
	for _, e := range l.Enemies {
		if e.SpawnDelay > 0 {
			out = append(out, e)
		}
	}
	return out
}
