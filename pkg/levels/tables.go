package levels

// Параметры генерации
const (
	MinLevel = 1
	MaxLevel = 100

	BossInterval = 5

	LevelHeight     = 900.0
	BaseLevelWidth  = 2400.0
	WidthPerLevel   = 40.0
	GroundThickness = 100.0

	EnemyStartX    = 400.0
	EnemyJitter    = 50.0
	PatrolRadius   = 100.0
	MaxRegular     = 5
	MaxFloating    = 8
	OneWayFromLvl  = 30
	FlickerFromLvl = 40

	BossHealthFactor   = 5.0
	BossDamageFactor   = 2.0
	MinionHealthFactor = 0.6
	MinionDamageFactor = 0.75
)

// MinionDelays - задержки появления миньонов босса (секунды)
var MinionDelays = []float64{5, 10, 15}

// environmentInfo - все, что зависит от зоны
type environmentInfo struct {
	Env         Environment
	Title       string
	Description string
	Enemies     []string // виды рядовых врагов
	Boss        string
	Material    string
	Ambient     string
	Palette     []string
	Weather     string
}

// environments идут полосами по 10 уровней в порядке таблицы
var environments = []environmentInfo{
	{
		Env: EnvStreet, Title: "Neon Streets", Description: "Мокрые улицы под вечным неоном.",
		Enemies: []string{"street_punk", "gang_enforcer"}, Boss: "gang_boss",
		Material: "asphalt", Ambient: "#1a1033", Palette: []string{"#ff2a6d", "#05d9e8", "#d1f7ff"}, Weather: "rain",
	},
	{
		Env: EnvBuilding, Title: "Abandoned Block", Description: "Брошенный жилой блок, захваченный бандами.",
		Enemies: []string{"squatter", "scav_drone"}, Boss: "block_warlord",
		Material: "concrete", Ambient: "#20201d", Palette: []string{"#f5b942", "#8f8f8f", "#403c35"}, Weather: "dust",
	},
	{
		Env: EnvRooftop, Title: "Rooftops", Description: "Крыши над смогом, ветер сбивает с ног.",
		Enemies: []string{"sniper", "jet_runner"}, Boss: "sky_hunter",
		Material: "metal", Ambient: "#0f1b2d", Palette: []string{"#7afcff", "#feff9c", "#ff7eb9"}, Weather: "wind",
	},
	{
		Env: EnvSubway, Title: "Dead Subway", Description: "Тоннели метро, где давно не ходят поезда.",
		Enemies: []string{"tunnel_rat", "maint_bot"}, Boss: "rail_golem",
		Material: "steel", Ambient: "#111111", Palette: []string{"#ffdd00", "#444444", "#b22222"}, Weather: "sparks",
	},
	{
		Env: EnvSewer, Title: "Sewers", Description: "Токсичные стоки под городом.",
		Enemies: []string{"mutant", "sludge_crawler"}, Boss: "sewer_king",
		Material: "brick", Ambient: "#0d1f0d", Palette: []string{"#39ff14", "#2e4600", "#486b00"}, Weather: "toxic_fog",
	},
	{
		Env: EnvLaboratory, Title: "Black Lab", Description: "Лаборатория, где делали то, о чем не говорят.",
		Enemies: []string{"lab_guard", "failed_experiment"}, Boss: "chief_scientist",
		Material: "ceramic", Ambient: "#e8f1f2", Palette: []string{"#ffffff", "#00ffcc", "#ff0055"}, Weather: "steam",
	},
	{
		Env: EnvCorporateTower, Title: "Corporate Tower", Description: "Башня корпорации, охрана стреляет без предупреждения.",
		Enemies: []string{"corp_security", "combat_android"}, Boss: "ceo_exosuit",
		Material: "glass", Ambient: "#0a0a23", Palette: []string{"#c0c0c0", "#1e90ff", "#ffd700"}, Weather: "none",
	},
	{
		Env: EnvCyberspace, Title: "Cyberspace", Description: "Сеть изнутри: данные режут как лезвия.",
		Enemies: []string{"ice_program", "daemon"}, Boss: "rogue_ai",
		Material: "data", Ambient: "#000814", Palette: []string{"#00ff41", "#008f11", "#003b00"}, Weather: "glitch",
	},
	{
		Env: EnvOrbitalStation, Title: "Orbital Station", Description: "Станция на орбите, воздух на исходе.",
		Enemies: []string{"void_marine", "turret_drone"}, Boss: "station_overseer",
		Material: "titanium", Ambient: "#02010a", Palette: []string{"#e0e0e0", "#ff4500", "#4169e1"}, Weather: "meteor_shower",
	},
	{
		Env: EnvVoidSpace, Title: "The Void", Description: "Пустота за краем карты.",
		Enemies: []string{"void_wraith", "null_entity"}, Boss: "the_architect",
		Material: "void", Ambient: "#000000", Palette: []string{"#8a2be2", "#4b0082", "#ffffff"}, Weather: "void_storm",
	},
}

// environmentFor - полоса окружения по номеру уровня
func environmentFor(id int) environmentInfo {
	idx := (id - 1) / 10
	if idx < 0 {
		idx = 0
	}
	if idx >= len(environments) {
		idx = len(environments) - 1
	}
	return environments[idx]
}

// DifficultyFor: <=25 normal, <=75 difficult, дальше impossible
func DifficultyFor(id int) Difficulty {
	switch {
	case id <= 25:
		return DifficultyNormal
	case id <= 75:
		return DifficultyDifficult
	}
	return DifficultyImpossible
}

var difficultyMultiplier = map[Difficulty]float64{
	DifficultyNormal:     1.0,
	DifficultyDifficult:  1.25,
	DifficultyImpossible: 1.5,
}

var lightIntensity = map[Difficulty]float64{
	DifficultyNormal:     1.0,
	DifficultyDifficult:  0.8,
	DifficultyImpossible: 0.6,
}

var weatherIntensity = map[Difficulty]float64{
	DifficultyNormal:     0.3,
	DifficultyDifficult:  0.6,
	DifficultyImpossible: 0.9,
}

// IsBossLevel - каждые 5 уровней
func IsBossLevel(id int) bool {
	return id >= MinLevel && id <= MaxLevel && id%BossInterval == 0
}

// BaseHealth - базовое здоровье рядового врага с учетом сложности
func BaseHealth(id int) float64 {
	return (50 + 10*float64(id)) * difficultyMultiplier[DifficultyFor(id)]
}

// BaseDamage - базовый урон рядового врага с учетом сложности
func BaseDamage(id int) float64 {
	return (8 + 2*float64(id)) * difficultyMultiplier[DifficultyFor(id)]
}

// RegularEnemyCount: min(5, 2 + id/10)
func RegularEnemyCount(id int) int {
	return min(MaxRegular, 2+id/10)
}

// FloatingPlatformCount: min(8, 3 + id/15)
func FloatingPlatformCount(id int) int {
	return min(MaxFloating, 3+id/15)
}

// PickupCounts - (health, mana, credits)
func PickupCounts(id int) (int, int, int) {
	return 1 + id/25, 1 + id/34, 2 + id/20
}

// LevelWidth: 2400 + 40*id
func LevelWidth(id int) float64 {
	return BaseLevelWidth + WidthPerLevel*float64(id)
}
