package systems

import (
	"new-haven-server/internal/domain"
)

// ApplyPlayerIntent пересчитывает горизонтальную скорость игрока из зажатых клавиш.
// Во время рывка скорость не трогаем.
func ApplyPlayerIntent(e *domain.Entity, input domain.InputState) {
	if e == nil || e.Physics == nil || e.Player == nil || !e.Active {
		return
	}
	pc := e.Player
	if pc.IsDashing() {
		return
	}

	dir := input.Horizontal()
	if dir != 0 {
		pc.Facing = dir
	}
	// Оглушенный игрок стоит на месте
	if e.Combat != nil && (e.Combat.HasStatus(domain.StatusStun) || e.Combat.HasStatus(domain.StatusFreeze)) {
		dir = 0
	}

	speed := pc.MoveSpeed
	if e.Combat != nil && e.Combat.HasStatus(domain.StatusSlow) {
		speed *= SlowFactor
	}
	e.Physics.Velocity.X = dir * speed
}

// Jump - прыжок только с земли
func Jump(e *domain.Entity) bool {
	if e == nil || e.Physics == nil || e.Player == nil || !e.Physics.OnGround {
		return false
	}
	e.Physics.Velocity.Y = -e.Player.JumpForce
	e.Physics.OnGround = false
	return true
}

// Dash - рывок по направлению взгляда, дает неуязвимость на время рывка
func Dash(e *domain.Entity) bool {
	if e == nil || e.Physics == nil || e.Player == nil {
		return false
	}
	pc := e.Player
	if pc.DashCooldown > 0 || pc.IsDashing() {
		return false
	}
	pc.DashTimer = domain.PlayerDashDuration
	pc.DashCooldown = domain.PlayerDashCooldown
	e.Physics.Velocity.X = pc.Facing * domain.PlayerDashSpeed
	return true
}

// TickPlayerTimers тикает рывок, неуязвимость и трансформацию
func TickPlayerTimers(e *domain.Entity, dt float64) {
	if e == nil || e.Player == nil {
		return
	}
	pc := e.Player
	pc.DashTimer = decay(pc.DashTimer, dt)
	pc.DashCooldown = decay(pc.DashCooldown, dt)
	pc.InvulnerableTimer = decay(pc.InvulnerableTimer, dt)
	if pc.FormTimer > 0 {
		pc.FormTimer = decay(pc.FormTimer, dt)
		if pc.FormTimer == 0 {
			pc.Form = ""
		}
	}
}

func decay(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
