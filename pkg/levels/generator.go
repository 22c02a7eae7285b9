package levels

import (
	"new-haven-server/pkg/logger"
	"new-haven-server/pkg/utils"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrLevelOutOfRange - номер уровня вне 1..100
var ErrLevelOutOfRange = errors.New("level out of range")

// Generator - детерминированный генератор уровней с кэшем.
// Кэш читают и игровой цикл, и debug-эндпоинты, поэтому под мьютексом.
type Generator struct {
	masterSeed int64

	mu    sync.Mutex
	cache map[int]*LevelData
}

func NewGenerator(masterSeed int64) *Generator {
	return &Generator{
		masterSeed: masterSeed,
		cache:      make(map[int]*LevelData),
	}
}

// Generate возвращает уровень id. Повторный вызов отдает тот же указатель.
func (g *Generator) Generate(id int) (*LevelData, error) {
	if id < MinLevel || id > MaxLevel {
		return nil, errors.Wrapf(ErrLevelOutOfRange, "level %d", id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if data, ok := g.cache[id]; ok {
		return data, nil
	}

	rng := utils.NewRand(g.masterSeed, id)
	data := NewLevel(id, rng).
		WithBounds().
		WithPlatforms().
		WithEnemies().
		WithPickups().
		WithObjectives().
		WithAtmosphere().
		Build()

	g.cache[id] = data

	logger.Log.WithFields(logrus.Fields{
		"component":   "level_generator",
		"level":       id,
		"environment": data.Environment,
		"difficulty":  data.Difficulty,
		"enemies":     len(data.Enemies),
		"platforms":   len(data.Platforms),
		"boss":        data.IsBossLevel,
	}).Debug("Level generated")

	return data, nil
}

// Seed - мастер-сид генератора
func (g *Generator) Seed() int64 {
	return g.masterSeed
}

// Cached - сколько уровней уже в кэше
func (g *Generator) Cached() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.cache)
}
