package systems

import (
	"math"
	"math/rand"
	"new-haven-server/internal/domain"
)

// ParticleGravity - ускорение частиц (ед/с^2)
const ParticleGravity = 400.0

// UpdateAnimation выводит состояние анимации из физики и крутит кадры.
// Одноразовые анимации (attack, hurt) держатся, пока не истечет Lock.
func UpdateAnimation(w *domain.World, dt float64) {
	for _, e := range w.ActiveWith(domain.KindAnimation) {
		a := e.Animation

		if a.Lock > 0 {
			a.Lock -= dt
		}
		if a.Lock <= 0 {
			a.Lock = 0
			a.Play(deriveState(e), 0)
		}

		a.Timer += dt
		for a.FrameTime > 0 && a.Timer >= a.FrameTime {
			a.Timer -= a.FrameTime
			if a.FrameCount > 0 {
				a.Frame = (a.Frame + 1) % a.FrameCount
			}
		}
	}
}

func deriveState(e *domain.Entity) string {
	if e.Combat != nil && e.Combat.Dead {
		return "dead"
	}
	p := e.Physics
	if p == nil {
		return "idle"
	}
	if e.Player != nil && e.Player.IsDashing() {
		return "dash"
	}
	if !p.OnGround && p.GravityEnabled {
		if p.Velocity.Y < 0 {
			return "jump"
		}
		return "fall"
	}
	if math.Abs(p.Velocity.X) > 0.1 {
		return "run"
	}
	return "idle"
}

// UpdateParticles двигает частицы и выпускает новые. Отработавший эффект
// (сущность без других компонентов) деактивируется.
func UpdateParticles(w *domain.World, dt float64, rng *rand.Rand) {
	for _, e := range w.ActiveWith(domain.KindEmitter) {
		em := e.Emitter

		alive := em.Particles[:0]
		for _, p := range em.Particles {
			p.Life -= dt
			if p.Life <= 0 {
				continue
			}
			p.Velocity.Y += ParticleGravity * dt
			p.Position = p.Position.Add(p.Velocity.Scale(dt))
			alive = append(alive, p)
		}
		em.Particles = alive

		origin := e.Center()
		if em.Burst > 0 {
			emit(em, origin, em.Burst, rng)
			em.Burst = 0
		}
		if em.Duration > 0 {
			em.Duration -= dt
			emit(em, origin, em.Accumulate(dt), rng)
		}

		if e.Type == domain.EntityTypeEffect && em.Duration <= 0 && len(em.Particles) == 0 {
			e.Active = false
		}
	}
}

func emit(em *domain.ParticleEmitterComponent, origin domain.Vec2, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 60 + rng.Float64()*120
		em.Particles = append(em.Particles, domain.Particle{
			Position: origin,
			Velocity: domain.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:     em.Lifetime,
		})
		em.Spawned++
	}
}
