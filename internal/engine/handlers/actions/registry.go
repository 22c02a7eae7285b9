package actions

import (
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine/handlers"
)

// Registry собирает таблицу разовых действий ввода.
// Движение не здесь: оно выводится из снимка зажатых клавиш каждый кадр.
func Registry() map[domain.InputAction]handlers.HandlerFunc {
	reg := map[domain.InputAction]handlers.HandlerFunc{
		domain.InputJump:   handlers.RequireAlive(handlers.RequireControl(HandleJump)),
		domain.InputAttack: handlers.RequireAlive(handlers.RequireControl(HandleAttack)),
		domain.InputDash:   handlers.RequireAlive(handlers.RequireControl(HandleDash)),
	}
	for a := domain.InputAbility0; a <= domain.InputAbility5; a++ {
		slot, _ := a.AbilitySlot()
		reg[a] = handlers.RequireAlive(handlers.RequireControl(handlers.WithSlot(slot, HandleAbility)))
	}
	return reg
}
