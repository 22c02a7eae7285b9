package engine

import (
	"math/rand"
	"new-haven-server/internal/abilities"
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine/handlers"
	"new-haven-server/internal/engine/handlers/actions"
	"new-haven-server/pkg/levels"
	"new-haven-server/pkg/logger"
	"new-haven-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// FrameHook вызывается после каждого кадра на горутине цикла
type FrameHook func(m *Manager)

// Manager - владелец матча: мир, состояние, профиль игрока, способности,
// генератор уровней, очередь появлений и шина событий.
// Все методы, кроме Submit и подписок на шину, вызываются с горутины цикла.
type Manager struct {
	cfg Config

	world  *domain.World
	player *domain.Entity
	state  GameState
	stats  PlayerStats

	level      *levels.LevelData
	objectives []levels.Objective
	pickups    map[string]struct{} // пикапы уровня (для цели collect_pickups)

	generator *levels.Generator
	abilities *abilities.System
	spawns    *SpawnScheduler
	bus       *EventBus
	handlers  map[domain.InputAction]handlers.HandlerFunc
	sink      *eventSink

	commands chan Command
	hooks    []FrameHook
	rng      *rand.Rand
	log      *logrus.Entry
}

// NewManager собирает менеджер. Матч не запущен до StartGame.
func NewManager(cfg Config, catalog *abilities.Catalog) *Manager {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.CommandBuffer <= 0 {
		cfg.CommandBuffer = 256
	}
	if cfg.StartLevel < levels.MinLevel || cfg.StartLevel > levels.MaxLevel {
		cfg.StartLevel = levels.MinLevel
	}
	if cfg.PlayerID == "" {
		cfg.PlayerID = "player"
	}

	m := &Manager{
		cfg:       cfg,
		world:     domain.NewWorld(),
		stats:     NewPlayerStats(cfg.PlayerClass, levels.StarterAbilities...),
		generator: levels.NewGenerator(cfg.Seed),
		abilities: abilities.NewSystem(catalog),
		spawns:    NewSpawnScheduler(),
		bus:       NewEventBus(),
		handlers:  actions.Registry(),
		commands:  make(chan Command, cfg.CommandBuffer),
		rng:       utils.NewRand(cfg.Seed, 0),
		log:       logger.For("game_manager"),
	}
	m.sink = &eventSink{m: m}
	m.state.LevelID = cfg.StartLevel
	m.state.PlayerID = cfg.PlayerID
	return m
}

// OnFrame регистрирует хук кадра (до Run)
func (m *Manager) OnFrame(h FrameHook) {
	m.hooks = append(m.hooks, h)
}

// SetPlayerStats подменяет профиль (загрузка сохранения) и проецирует его в игрока
func (m *Manager) SetPlayerStats(s PlayerStats) {
	if !IsValidClass(s.Class) {
		s.Class = m.cfg.PlayerClass
	}
	if s.Level < 1 {
		s.Level = 1
	}
	m.stats = s.Clone()
	if m.player != nil {
		m.stats.Apply(m.player, true)
	}
}

func (m *Manager) emit(ev domain.Event) {
	m.bus.Emit(ev)
}

// --- ЖИЗНЕННЫЙ ЦИКЛ ---

// StartGame создает игрока и грузит текущий уровень. Повторный вызов во время игры ничего не делает.
func (m *Manager) StartGame() bool {
	if m.state.Running {
		return true
	}

	if m.player == nil {
		m.player = levels.CreatePlayer(m.cfg.PlayerID, domain.Vec2{})
		m.stats.Apply(m.player, true)
		if err := m.world.Spawn(m.player); err != nil {
			m.log.WithError(err).Error("Failed to spawn player")
			m.player = nil
			return false
		}
		m.state.Score = 0
	}

	if !m.LoadLevel(m.state.LevelID) {
		return false
	}

	m.state.Running = true
	m.state.Paused = false
	m.state.GameOver = false

	m.log.WithFields(logrus.Fields{
		"level":  m.state.LevelID,
		"class":  m.stats.Class,
		"player": m.player.ID,
	}).Info("Game started")
	m.emit(domain.Event{Type: domain.EventGameStarted, EntityID: m.player.ID, Level: m.state.LevelID})
	return true
}

// PauseGame - цикл перестает тикать мир, команды продолжают приниматься
func (m *Manager) PauseGame() bool {
	if !m.state.Running || m.state.Paused {
		return false
	}
	m.state.Paused = true
	m.emit(domain.NewEvent(domain.EventGamePaused, m.state.PlayerID))
	return true
}

func (m *Manager) ResumeGame() bool {
	if !m.state.Running || !m.state.Paused {
		return false
	}
	m.state.Paused = false
	m.emit(domain.NewEvent(domain.EventGameResumed, m.state.PlayerID))
	return true
}

// StopGame останавливает матч и освобождает мир. Профиль игрока сохраняется.
func (m *Manager) StopGame() bool {
	if !m.state.Running {
		return false
	}
	m.state.Running = false
	m.state.Paused = false
	m.state.Input = domain.InputState{}

	m.world = domain.NewWorld()
	m.player = nil
	m.level = nil
	m.objectives = nil
	m.pickups = nil
	m.spawns.Clear()
	m.abilities.Cooldowns().Reset()

	m.log.WithField("score", m.state.Score).Info("Game stopped")
	m.emit(domain.Event{Type: domain.EventGameStopped, EntityID: m.state.PlayerID, Amount: float64(m.state.Score)})
	return true
}

// RestartLevel перезагружает уровень и возвращает игрока в исходное состояние,
// не пересоздавая сущность
func (m *Manager) RestartLevel() bool {
	if m.player == nil {
		return false
	}
	if !m.LoadLevel(m.state.LevelID) {
		return false
	}
	levels.ResetPlayer(m.player, m.level.PlayerSpawn)
	m.stats.Apply(m.player, true)
	m.abilities.Cooldowns().Reset()
	m.state.GameOver = false
	m.state.Input = domain.InputState{}

	m.emit(domain.Event{Type: domain.EventLevelRestarted, EntityID: m.player.ID, Level: m.state.LevelID})
	return true
}

// LoadLevel убирает все, кроме игрока, и заселяет мир уровнем id
func (m *Manager) LoadLevel(id int) bool {
	data, err := m.generator.Generate(id)
	if err != nil {
		m.log.WithError(err).WithField("level", id).Warn("Level load rejected")
		return false
	}

	keep := []string{}
	if m.player != nil {
		keep = append(keep, m.player.ID)
	}
	m.world.Clear(keep...)
	m.spawns.Clear()

	pending, err := levels.Populate(m.world, data)
	if err != nil {
		m.log.WithError(err).WithField("level", id).Error("Level populate failed")
		m.world.Clear(keep...)
		return false
	}
	for _, spec := range pending {
		m.spawns.Schedule(spec, spec.SpawnDelay)
	}

	m.level = data
	m.objectives = data.CopyObjectives()
	m.pickups = make(map[string]struct{}, len(data.Pickups))
	for _, p := range data.Pickups {
		m.pickups[p.ID] = struct{}{}
	}

	m.state.LevelID = id
	m.state.Elapsed = 0
	m.state.LevelComplete = false

	if m.player != nil {
		m.player.SetPosition(data.PlayerSpawn.X, data.PlayerSpawn.Y)
		if m.player.Physics != nil {
			m.player.Physics.Velocity = domain.Vec2{}
			m.player.Physics.OnGround = false
		}
		m.snapCamera()
	}

	m.log.WithFields(logrus.Fields{
		"level":       id,
		"environment": data.Environment,
		"entities":    m.world.Len(),
		"pending":     len(pending),
	}).Info("Level loaded")

	m.emit(domain.Event{Type: domain.EventLevelLoaded, Level: id}.With("name", data.Name))
	for _, b := range data.Bosses() {
		m.emit(domain.Event{Type: domain.EventBossSpawned, EntityID: b.ID, Level: id, Amount: b.Health})
	}
	return true
}

// --- ПРОГРЕССИЯ ---

// AddExperience начисляет опыт и поднимает уровни. Возвращает число новых уровней.
func (m *Manager) AddExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := m.stats.Level
	gained := m.stats.AddExperience(amount)
	m.emit(domain.Event{Type: domain.EventExperienceGained, EntityID: m.state.PlayerID, Amount: float64(amount), Level: m.stats.Level})

	for l := before + 1; l <= before+gained; l++ {
		m.onLevelUp(l)
	}
	return gained
}

// LevelUp поднимает уровень без опыта (награды, отладка)
func (m *Manager) LevelUp() {
	m.stats.LevelUp()
	m.onLevelUp(m.stats.Level)
}

func (m *Manager) onLevelUp(level int) {
	if m.player != nil {
		m.stats.Apply(m.player, true)
	}
	m.log.WithField("level", level).Info("Player leveled up")
	m.emit(domain.Event{Type: domain.EventLevelUp, EntityID: m.state.PlayerID, Level: level})
}

// AllocateStat тратит очко характеристики
func (m *Manager) AllocateStat(name string) error {
	if err := m.stats.AllocateStat(name); err != nil {
		return err
	}
	m.reproject()
	return nil
}

// LearnAbility изучает способность с проверкой требований каталога
func (m *Manager) LearnAbility(id string) error {
	a, ok := m.abilities.Catalog().Get(id)
	if !ok {
		return abilities.ErrUnknownAbility
	}
	if err := a.CheckRequirements(m.stats.Level, m.stats.Class, m.stats.Learned); err != nil {
		return err
	}
	if err := m.stats.Learn(id); err != nil {
		return err
	}
	m.reproject()
	return nil
}

// UpgradeAbility поднимает уровень изученной способности
func (m *Manager) UpgradeAbility(id string) error {
	a, ok := m.abilities.Catalog().Get(id)
	if !ok {
		return abilities.ErrUnknownAbility
	}
	if err := m.stats.Upgrade(id, a.MaxLevel); err != nil {
		return err
	}
	m.reproject()
	return nil
}

// EquipAbility кладет способность в слот
func (m *Manager) EquipAbility(slot int, id string) error {
	if err := m.stats.Equip(slot, id); err != nil {
		return err
	}
	m.reproject()
	return nil
}

func (m *Manager) reproject() {
	if m.player != nil {
		m.stats.Apply(m.player, false)
	}
}

func (m *Manager) caster() abilities.Caster {
	return abilities.Caster{Entity: m.player, Level: m.stats.Level, Class: m.stats.Class}
}
