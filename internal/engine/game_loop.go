package engine

import (
	"context"
	"new-haven-server/internal/systems"
	"time"
)

// Run крутит кадры с частотой TickRate, пока не отменят ctx.
// На паузе и после StopGame мир не тикает, но команды продолжают применяться,
// чтобы клиент мог снять паузу или начать заново.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.TickInterval())
	defer ticker.Stop()

	m.log.WithField("tick_rate", m.cfg.TickRate).Info("Game loop started")
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("Game loop stopped")
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if m.cfg.MaxFrameDelta > 0 && dt > m.cfg.MaxFrameDelta {
				dt = m.cfg.MaxFrameDelta
			}
			m.Update(dt)
			for _, h := range m.hooks {
				h(m)
			}
		}
	}
}

// Update - один кадр. Порядок систем фиксирован:
// команды -> намерение игрока -> физика -> коллизии -> бой -> ИИ -> анимация/частицы,
// затем перезарядки, появления, снаряды, союзники, таймеры игрока, зоны смерти, камера, цели.
func (m *Manager) Update(dt float64) {
	m.drainCommands()

	if !m.state.Running || m.state.Paused || dt <= 0 {
		return
	}

	if m.player != nil && m.player.IsAlive() {
		systems.ApplyPlayerIntent(m.player, m.state.Input)
	}

	systems.UpdatePhysics(m.world, dt)
	systems.UpdateCollisions(m.world, m.sink)
	systems.UpdateCombat(m.world, dt, m.sink)
	systems.UpdateAI(m.world, dt, m.rng, m.sink)
	systems.UpdateAnimation(m.world, dt)
	systems.UpdateParticles(m.world, dt, m.rng)

	m.abilities.Update(dt)
	m.state.Elapsed += dt
	m.updateSpawns()
	m.updateProjectiles(dt)
	m.updateSummons()
	if m.player != nil {
		systems.TickPlayerTimers(m.player, dt)
	}
	m.updateDeathZones()
	m.updateCamera()
	m.updateObjectives()

	m.world.Compact()
	m.state.Tick++
}
