package engine

import (
	"new-haven-server/internal/domain"
)

// GameState - авторитетное состояние матча, которым владеет менеджер
type GameState struct {
	Running       bool              `json:"running"`
	Paused        bool              `json:"paused"`
	GameOver      bool              `json:"gameOver"`
	LevelComplete bool              `json:"levelComplete"`
	LevelID       int               `json:"levelId"`
	Score         int               `json:"score"`
	Elapsed       float64           `json:"elapsed"` // секунды на текущем уровне
	Tick          uint64            `json:"tick"`
	PlayerID      string            `json:"playerId"`
	Camera        domain.Vec2       `json:"camera"`
	Input         domain.InputState `json:"input"`
}

// Очки
const (
	ScoreEnemyKill = 100
	ScoreBossKill  = 1000
	ScorePickup    = 10
)
