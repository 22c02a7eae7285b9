package engine

import (
	"math"
	"new-haven-server/internal/domain"
	"new-haven-server/internal/systems"
	"new-haven-server/pkg/levels"
	"new-haven-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Поведение призванных союзников
const (
	SummonSpeed       = 4.0
	SummonSeekRadius  = 600.0
	SummonFollowGap   = 60.0
	SummonFollowSpeed = 3.0
)

// updateSpawns выпускает миньонов, чье время пришло
func (m *Manager) updateSpawns() {
	for _, spec := range m.spawns.PopDue(m.state.Elapsed) {
		if err := m.world.Spawn(levels.NewEnemy(spec)); err != nil {
			m.log.WithError(err).WithField("spawn_id", spec.ID).Warn("Delayed spawn failed")
			continue
		}
		for _, b := range m.world.ActiveWith(domain.KindBoss) {
			if b.Boss.MinionsPending > 0 {
				b.Boss.MinionsPending--
			}
		}
		m.emit(domain.Event{Type: domain.EventMinionSpawned, EntityID: spec.ID, Level: m.state.LevelID}.
			With("kind", spec.Kind))
	}
}

// updateProjectiles гасит снаряды и союзников по времени жизни и снаряды по дальности
func (m *Manager) updateProjectiles(dt float64) {
	for _, e := range m.world.ActiveWith(domain.KindProjectile) {
		pc := e.Projectile
		pc.Lifetime -= dt
		if pc.Lifetime <= 0 {
			m.expire(e)
			continue
		}
		if pc.MaxRange > 0 && e.Center().DistanceTo(pc.Origin) >= pc.MaxRange {
			m.expire(e)
		}
	}
}

func (m *Manager) expire(e *domain.Entity) {
	if e.Combat != nil {
		systems.Kill(e, m.sink)
		return
	}
	e.Active = false
}

// updateSummons ведет союзников к ближайшему врагу, иначе держит их рядом с игроком
func (m *Manager) updateSummons() {
	for _, s := range m.world.ActiveWith(domain.KindCollider, domain.KindPhysics) {
		if s.Collider.Type != domain.ColliderSummon {
			continue
		}
		origin := s.Center()
		var target *domain.Entity
		best := math.Inf(1)
		for _, e := range systems.FindInRadius(m.world, origin, SummonSeekRadius, s.ID) {
			if d := origin.DistanceTo(e.Center()); d < best {
				target, best = e, d
			}
		}

		switch {
		case target != nil:
			dir := target.Center().Sub(origin).Normalize()
			s.Physics.Velocity = dir.Scale(SummonSpeed)
		case m.player != nil:
			anchor := m.player.Center().Add(domain.Vec2{X: -m.player.Player.Facing * SummonFollowGap, Y: -SummonFollowGap})
			off := anchor.Sub(origin)
			if off.Len() < 4 {
				s.Physics.Velocity = domain.Vec2{}
			} else {
				s.Physics.Velocity = off.Normalize().Scale(SummonFollowSpeed)
			}
		default:
			s.Physics.Velocity = domain.Vec2{}
		}
	}
}

// updateDeathZones убивает все, что упало за пределы уровня
func (m *Manager) updateDeathZones() {
	if m.level == nil {
		return
	}
	for _, e := range m.world.ActiveWith(domain.KindPhysics) {
		for _, zone := range m.level.Bounds.DeathZones {
			if !e.Bounds.Intersects(zone) {
				continue
			}
			if e.Combat != nil {
				e.Combat.TakeDamage(e.Combat.Health)
				systems.Kill(e, m.sink)
			} else {
				e.Active = false
			}
			break
		}
	}
}

// updateCamera плавно тянет камеру к игроку в пределах уровня
func (m *Manager) updateCamera() {
	target, ok := m.cameraTarget()
	if !ok {
		return
	}
	lerp := m.cfg.CameraLerp
	if lerp <= 0 || lerp > 1 {
		lerp = 1
	}
	cam := m.state.Camera
	cam.X += (target.X - cam.X) * lerp
	cam.Y += (target.Y - cam.Y) * lerp
	m.state.Camera = cam
}

func (m *Manager) snapCamera() {
	if target, ok := m.cameraTarget(); ok {
		m.state.Camera = target
	}
}

func (m *Manager) cameraTarget() (domain.Vec2, bool) {
	if m.player == nil || m.level == nil {
		return domain.Vec2{}, false
	}
	c := m.player.Center()
	t := domain.Vec2{X: c.X - m.cfg.ViewportW/2, Y: c.Y - m.cfg.ViewportH/2}
	t.X = clamp(t.X, 0, math.Max(0, m.level.Bounds.Width-m.cfg.ViewportW))
	t.Y = clamp(t.Y, 0, math.Max(0, m.level.Bounds.Height-m.cfg.ViewportH))
	return t, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// advanceObjective двигает все незавершенные цели типа t
func (m *Manager) advanceObjective(t levels.ObjectiveType, n int) {
	for i := range m.objectives {
		o := &m.objectives[i]
		if o.Type != t {
			continue
		}
		if o.Advance(n) {
			m.log.WithField("objective", string(o.Type)).Info("Objective complete")
			m.emit(domain.Event{Type: domain.EventObjectiveComplete, Level: m.state.LevelID}.
				With("objective", string(o.Type)).
				With("optional", o.Optional))
		}
	}
}

// updateObjectives фиксирует завершение уровня (один раз)
func (m *Manager) updateObjectives() {
	if m.state.LevelComplete || m.state.GameOver || !m.IsLevelComplete() {
		return
	}
	m.state.LevelComplete = true
	m.log.WithFields(logrus.Fields{
		"level":   m.state.LevelID,
		"elapsed": m.state.Elapsed,
		"score":   m.state.Score,
	}).Info("Level complete")
	m.emit(domain.Event{Type: domain.EventLevelComplete, Level: m.state.LevelID, Amount: float64(m.state.Score)})

	if m.cfg.AutoAdvance && m.state.LevelID < levels.MaxLevel {
		m.Submit(LoadLevelCommand(m.state.LevelID + 1))
	}
}

// spawnEffect - одноразовый выброс частиц
func (m *Manager) spawnEffect(at domain.Vec2, effect string, burst int) {
	fx := domain.NewEntity(utils.GenerateID("fx_"), domain.NewTransform(at.X, at.Y), domain.Size{})
	fx.Type = domain.EntityTypeEffect
	fx.Name = effect
	fx.Emitter = domain.NewParticleEmitterComponent(effect, func(c *domain.ParticleEmitterComponent) {
		c.Burst = burst
	})
	if err := m.world.Spawn(fx); err != nil {
		m.log.WithError(err).Debug("Effect dropped")
	}
}
