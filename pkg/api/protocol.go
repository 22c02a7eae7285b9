package api

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы сообщений сервера
const (
	TypeSnapshot = "SNAPSHOT"
	TypeEvent    = "EVENT"
	TypeError    = "ERROR"
)

// Snapshot - полный снимок матча после кадра. Клиент рисует только по нему.
// По WebSocket уходит в msgpack, в debug-эндпоинтах - в JSON.
type Snapshot struct {
	// Type всегда "SNAPSHOT"
	Type string `json:"type" msgpack:"type"`

	// Protocol версия формата, проставляет публикатор
	Protocol int `json:"protocol" msgpack:"protocol"`

	// Tick номер кадра симуляции
	Tick uint64 `json:"tick" msgpack:"tick"`

	// Elapsed секунды игрового времени на уровне
	Elapsed float64 `json:"elapsed" msgpack:"elapsed"`

	State  StateView   `json:"state" msgpack:"state"`
	Camera Point       `json:"camera" msgpack:"camera"`
	Level  *LevelView  `json:"level,omitempty" msgpack:"level,omitempty"`
	Player *PlayerView `json:"player,omitempty" msgpack:"player,omitempty"`

	Entities   []EntityView    `json:"entities" msgpack:"entities"`
	Objectives []ObjectiveView `json:"objectives,omitempty" msgpack:"objectives,omitempty"`
}

// Point - точка в мировых координатах
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// StateView - флаги матча
type StateView struct {
	Running       bool   `json:"running" msgpack:"running"`
	Paused        bool   `json:"paused" msgpack:"paused"`
	GameOver      bool   `json:"gameOver" msgpack:"game_over"`
	LevelComplete bool   `json:"levelComplete" msgpack:"level_complete"`
	LevelID       int    `json:"levelId" msgpack:"level_id"`
	Score         int    `json:"score" msgpack:"score"`
	PlayerID      string `json:"playerId,omitempty" msgpack:"player_id,omitempty"`
}

// LevelView - то, что клиенту нужно знать об уровне для фона и освещения
type LevelView struct {
	ID               int      `json:"id" msgpack:"id"`
	Name             string   `json:"name" msgpack:"name"`
	Environment      string   `json:"environment" msgpack:"environment"`
	Difficulty       string   `json:"difficulty" msgpack:"difficulty"`
	IsBossLevel      bool     `json:"isBossLevel" msgpack:"is_boss_level"`
	Width            float64  `json:"width" msgpack:"width"`
	Height           float64  `json:"height" msgpack:"height"`
	Ambient          string   `json:"ambient" msgpack:"ambient"`
	Palette          []string `json:"palette,omitempty" msgpack:"palette,omitempty"`
	LightIntensity   float64  `json:"lightIntensity" msgpack:"light_intensity"`
	Flicker          bool     `json:"flicker" msgpack:"flicker"`
	Weather          string   `json:"weather" msgpack:"weather"`
	WeatherIntensity float64  `json:"weatherIntensity" msgpack:"weather_intensity"`
}

// PlayerView - RPG-профиль игрока и перезарядки способностей
type PlayerView struct {
	Class            string             `json:"class" msgpack:"class"`
	Level            int                `json:"level" msgpack:"level"`
	Experience       int                `json:"experience" msgpack:"experience"`
	ExperienceToNext int                `json:"experienceToNext" msgpack:"experience_to_next"`
	StatPoints       int                `json:"statPoints" msgpack:"stat_points"`
	SkillPoints      int                `json:"skillPoints" msgpack:"skill_points"`
	Credits          int                `json:"credits" msgpack:"credits"`
	Equipped         []string           `json:"equipped" msgpack:"equipped"`
	Cooldowns        map[string]float64 `json:"cooldowns,omitempty" msgpack:"cooldowns,omitempty"`
}

// EntityView - DTO одной сущности. Поля боя есть только у сущностей с боем.
type EntityView struct {
	ID   string `json:"id" msgpack:"id"`
	Type string `json:"type" msgpack:"type"` // PLAYER, ENEMY, BOSS, PROJECTILE, ...
	Name string `json:"name,omitempty" msgpack:"name,omitempty"`

	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	W float64 `json:"w" msgpack:"w"`
	H float64 `json:"h" msgpack:"h"`

	VX       float64 `json:"vx,omitempty" msgpack:"vx,omitempty"`
	VY       float64 `json:"vy,omitempty" msgpack:"vy,omitempty"`
	OnGround bool    `json:"onGround,omitempty" msgpack:"on_ground,omitempty"`
	Facing   float64 `json:"facing,omitempty" msgpack:"facing,omitempty"`

	Animation string `json:"animation,omitempty" msgpack:"animation,omitempty"`
	Frame     int    `json:"frame,omitempty" msgpack:"frame,omitempty"`

	Stats     *StatsView     `json:"stats,omitempty" msgpack:"stats,omitempty"`
	AIState   string         `json:"aiState,omitempty" msgpack:"ai_state,omitempty"`
	OneWay    bool           `json:"oneWay,omitempty" msgpack:"one_way,omitempty"`
	Material  string         `json:"material,omitempty" msgpack:"material,omitempty"`
	Loot      string         `json:"loot,omitempty" msgpack:"loot,omitempty"`
	Particles []ParticleView `json:"particles,omitempty" msgpack:"particles,omitempty"`
}

// StatsView - бой сущности
type StatsView struct {
	Health    float64  `json:"health" msgpack:"health"`
	MaxHealth float64  `json:"maxHealth" msgpack:"max_health"`
	Mana      float64  `json:"mana,omitempty" msgpack:"mana,omitempty"`
	MaxMana   float64  `json:"maxMana,omitempty" msgpack:"max_mana,omitempty"`
	Statuses  []string `json:"statuses,omitempty" msgpack:"statuses,omitempty"`
	Dead      bool     `json:"dead" msgpack:"dead"`
}

// ParticleView - одна частица для отрисовки
type ParticleView struct {
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	Life float64 `json:"life" msgpack:"life"`
}

// ObjectiveView - цель и прогресс
type ObjectiveView struct {
	Type        string `json:"type" msgpack:"type"`
	Description string `json:"description" msgpack:"description"`
	Progress    int    `json:"progress" msgpack:"progress"`
	Target      int    `json:"target" msgpack:"target"`
	Optional    bool   `json:"optional,omitempty" msgpack:"optional,omitempty"`
	Completed   bool   `json:"completed" msgpack:"completed"`
}

// EventMessage - событие игры для слоя представления (звук, эффекты, тосты)
type EventMessage struct {
	Type     string         `json:"type" msgpack:"type"` // всегда "EVENT"
	Event    string         `json:"event" msgpack:"event"`
	EntityID string         `json:"entityId,omitempty" msgpack:"entity_id,omitempty"`
	SourceID string         `json:"sourceId,omitempty" msgpack:"source_id,omitempty"`
	Amount   float64        `json:"amount,omitempty" msgpack:"amount,omitempty"`
	Level    int            `json:"level,omitempty" msgpack:"level,omitempty"`
	Data     map[string]any `json:"data,omitempty" msgpack:"data,omitempty"`
}

// ErrorMessage - ответ на некорректное сообщение клиента
type ErrorMessage struct {
	Type    string `json:"type" msgpack:"type"` // всегда "ERROR"
	Message string `json:"message" msgpack:"message"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// Типы сообщений клиента
const (
	MessageInput   = "input"
	MessageControl = "control"
)

// Команды управления матчем
const (
	ControlStart   = "start"
	ControlPause   = "pause"
	ControlResume  = "resume"
	ControlRestart = "restart"
	ControlStop    = "stop"
	ControlLoad    = "load"
)

// ClientMessage - корневой объект всех сообщений клиента.
//
//	{"type":"input","action":"jump","pressed":true}
//	{"type":"control","command":"load","level":5}
type ClientMessage struct {
	Type string `json:"type"`

	// Action имя действия ввода (move_left, jump, ability_0, ...). Только для input.
	Action  string `json:"action,omitempty"`
	Pressed bool   `json:"pressed,omitempty"`

	// Command команда управления. Только для control.
	Command string `json:"command,omitempty"`
	Level   int    `json:"level,omitempty"`
}
