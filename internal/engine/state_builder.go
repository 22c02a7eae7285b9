package engine

import (
	"new-haven-server/internal/abilities"
	"new-haven-server/internal/domain"
	"new-haven-server/pkg/api"
	"new-haven-server/pkg/levels"
)

// --- ЗАПРОСЫ ДЛЯ СЛОЯ ПРЕДСТАВЛЕНИЯ ---
// Вызываются с горутины цикла (хук кадра) или из тестов.

// State - копия состояния матча
func (m *Manager) State() GameState {
	return m.state
}

// PlayerStats - копия профиля игрока
func (m *Manager) PlayerStats() PlayerStats {
	return m.stats.Clone()
}

// Player - сущность игрока (nil до StartGame)
func (m *Manager) Player() *domain.Entity {
	return m.player
}

// Entities - все сущности в порядке вставки
func (m *Manager) Entities() []*domain.Entity {
	return m.world.All()
}

// EntitiesWith - сущности с набором компонентов
func (m *Manager) EntitiesWith(kinds ...domain.ComponentKind) []*domain.Entity {
	return m.world.With(kinds...)
}

// Camera - левый верхний угол видимой области
func (m *Manager) Camera() domain.Vec2 {
	return m.state.Camera
}

// Level - активный уровень (nil, если не загружен)
func (m *Manager) Level() *levels.LevelData {
	return m.level
}

// Objectives - копия целей с прогрессом
func (m *Manager) Objectives() []levels.Objective {
	out := make([]levels.Objective, len(m.objectives))
	copy(out, m.objectives)
	return out
}

// IsLevelComplete - выполнены все обязательные цели текущего уровня
func (m *Manager) IsLevelComplete() bool {
	return m.level != nil && levels.AllComplete(m.objectives)
}

func (m *Manager) World() *domain.World         { return m.world }
func (m *Manager) Abilities() *abilities.System { return m.abilities }
func (m *Manager) Events() *EventBus            { return m.bus }
func (m *Manager) Generator() *levels.Generator { return m.generator }
func (m *Manager) Spawns() *SpawnScheduler      { return m.spawns }
func (m *Manager) Config() Config               { return m.cfg }

// Snapshot собирает DTO для клиента
func (m *Manager) Snapshot() api.Snapshot {
	st := m.state
	snap := api.Snapshot{
		Type:    api.TypeSnapshot,
		Tick:    st.Tick,
		Elapsed: st.Elapsed,
		State: api.StateView{
			Running:       st.Running,
			Paused:        st.Paused,
			GameOver:      st.GameOver,
			LevelComplete: st.LevelComplete,
			LevelID:       st.LevelID,
			Score:         st.Score,
			PlayerID:      st.PlayerID,
		},
		Camera:   api.Point{X: st.Camera.X, Y: st.Camera.Y},
		Entities: make([]api.EntityView, 0, m.world.Len()),
	}

	if lvl := m.level; lvl != nil {
		snap.Level = &api.LevelView{
			ID:               lvl.ID,
			Name:             lvl.Name,
			Environment:      string(lvl.Environment),
			Difficulty:       string(lvl.Difficulty),
			IsBossLevel:      lvl.IsBossLevel,
			Width:            lvl.Bounds.Width,
			Height:           lvl.Bounds.Height,
			Ambient:          lvl.Lighting.Ambient,
			Palette:          lvl.Lighting.Palette,
			LightIntensity:   lvl.Lighting.Intensity,
			Flicker:          lvl.Lighting.Flicker,
			Weather:          lvl.Weather.Effect,
			WeatherIntensity: lvl.Weather.Intensity,
		}
	}

	snap.Player = m.playerView()

	for _, o := range m.objectives {
		snap.Objectives = append(snap.Objectives, api.ObjectiveView{
			Type:        string(o.Type),
			Description: o.Description,
			Progress:    o.Progress,
			Target:      o.Target,
			Optional:    o.Optional,
			Completed:   o.Completed,
		})
	}

	for _, e := range m.world.All() {
		if !e.Active {
			continue
		}
		snap.Entities = append(snap.Entities, toEntityView(e))
	}
	return snap
}

func (m *Manager) playerView() *api.PlayerView {
	s := m.stats
	pv := &api.PlayerView{
		Class:            s.Class,
		Level:            s.Level,
		Experience:       s.Experience,
		ExperienceToNext: s.ExperienceToNext(),
		StatPoints:       s.StatPoints,
		SkillPoints:      s.SkillPoints,
		Credits:          s.Credits,
		Equipped:         append([]string(nil), s.Equipped[:]...),
	}
	if m.player != nil {
		pv.Cooldowns = m.abilities.Cooldowns().ForCaster(m.player.ID)
	}
	return pv
}

// toEntityView - DTO одной сущности
func toEntityView(e *domain.Entity) api.EntityView {
	v := api.EntityView{
		ID:   e.ID,
		Type: e.Type.String(),
		Name: e.Name,
		X:    e.Bounds.X,
		Y:    e.Bounds.Y,
		W:    e.Bounds.W,
		H:    e.Bounds.H,
	}

	if p := e.Physics; p != nil {
		v.VX, v.VY = p.Velocity.X, p.Velocity.Y
		v.OnGround = p.OnGround
	}
	if a := e.Animation; a != nil {
		v.Animation = a.State
		v.Frame = a.Frame
	}
	if pl := e.Player; pl != nil {
		v.Facing = pl.Facing
	} else if ai := e.AI; ai != nil {
		v.Facing = ai.Direction
		v.AIState = string(ai.State())
	}
	if c := e.Combat; c != nil {
		sv := &api.StatsView{
			Health:    c.Health,
			MaxHealth: c.MaxHealth,
			Mana:      c.Mana,
			MaxMana:   c.MaxMana,
			Dead:      c.Dead,
		}
		for _, s := range c.StatusEffects {
			sv.Statuses = append(sv.Statuses, string(s.Type))
		}
		v.Stats = sv
	}
	if pf := e.Platform; pf != nil {
		v.OneWay = pf.OneWay
		v.Material = pf.Material
	}
	if l := e.Loot; l != nil && e.Type == domain.EntityTypePickup {
		v.Loot = string(l.Item)
	}
	if em := e.Emitter; em != nil {
		for _, p := range em.Particles {
			v.Particles = append(v.Particles, api.ParticleView{X: p.Position.X, Y: p.Position.Y, Life: p.Life})
		}
	}
	return v
}
