package domain

import "strings"

// EventType - Внутренний числовой идентификатор события для слоя представления
type EventType uint8

const (
	EventUnknown EventType = iota
	EventGameStarted
	EventGamePaused
	EventGameResumed
	EventGameStopped
	EventLevelRestarted
	EventLevelLoaded
	EventLevelComplete
	EventPlayerDeath
	EventEnemyDeath
	EventLevelUp
	EventAbilityUsed
	EventExperienceGained
	EventItemCollected
	EventDamageDealt
	EventPlayerAttack
	EventPlayerDash
	EventObjectiveComplete
	EventBossSpawned
	EventMinionSpawned
)

// Маппинг для логов и клиента Domain -> String
var eventTypeToString = map[EventType]string{
	EventGameStarted:       "game_started",
	EventGamePaused:        "game_paused",
	EventGameResumed:       "game_resumed",
	EventGameStopped:       "game_stopped",
	EventLevelRestarted:    "level_restarted",
	EventLevelLoaded:       "level_loaded",
	EventLevelComplete:     "level_complete",
	EventPlayerDeath:       "player_death",
	EventEnemyDeath:        "enemy_death",
	EventLevelUp:           "level_up",
	EventAbilityUsed:       "ability_used",
	EventExperienceGained:  "experience_gained",
	EventItemCollected:     "item_collected",
	EventDamageDealt:       "damage_dealt",
	EventPlayerAttack:      "player_attack",
	EventPlayerDash:        "player_dash",
	EventObjectiveComplete: "objective_complete",
	EventBossSpawned:       "boss_spawned",
	EventMinionSpawned:     "minion_spawned",
}

// ParseEvent конвертирует строку в EventType
func ParseEvent(s string) EventType {
	lower := strings.ToLower(s)
	for t, name := range eventTypeToString {
		if name == lower {
			return t
		}
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (t EventType) String() string {
	if val, ok := eventTypeToString[t]; ok {
		return val
	}
	return "unknown"
}

// Event - событие с небольшим payload. Поля заполняются по смыслу типа.
type Event struct {
	Type     EventType      `json:"type"`
	EntityID string         `json:"entityId,omitempty"`
	SourceID string         `json:"sourceId,omitempty"`
	Amount   float64        `json:"amount,omitempty"`
	Level    int            `json:"level,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// NewEvent - короткий конструктор
func NewEvent(t EventType, entityID string) Event {
	return Event{Type: t, EntityID: entityID}
}

// With добавляет поле в Data
func (e Event) With(key string, value any) Event {
	data := make(map[string]any, len(e.Data)+1)
	for k, v := range e.Data {
		data[k] = v
	}
	data[key] = value
	e.Data = data
	return e
}
