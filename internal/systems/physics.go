package systems

import (
	"math"
	"new-haven-server/internal/domain"
)

// UpdatePhysics интегрирует скорость и позицию всех активных тел.
// Скорость измеряется в единицах за тик 1/60 с, поэтому сдвиг = v * dt * 60.
// Должна выполняться до UpdateCollisions.
func UpdatePhysics(w *domain.World, dt float64) {
	scale := dt * domain.TickScale

	for _, e := range w.ActiveWith(domain.KindPhysics) {
		p := e.Physics

		p.Velocity.X += p.Acceleration.X * scale
		p.Velocity.Y += p.Acceleration.Y * scale

		if !p.OnGround && p.GravityEnabled {
			p.Velocity.Y += domain.Gravity
			if p.Velocity.Y > domain.TerminalVelocity {
				p.Velocity.Y = domain.TerminalVelocity
			}
		}
		if p.OnGround {
			p.Velocity.X *= p.Friction
		}
		if p.MaxSpeed > 0 && math.Abs(p.Velocity.X) > p.MaxSpeed {
			p.Velocity.X = domain.Sign(p.Velocity.X) * p.MaxSpeed
		}

		pos := e.Transform.Position
		e.SetPosition(pos.X+p.Velocity.X*scale, pos.Y+p.Velocity.Y*scale)
	}
}
