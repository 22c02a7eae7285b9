package engine

import (
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine/handlers"
	"new-haven-server/internal/systems"

	"github.com/sirupsen/logrus"
)

// HandleInput обновляет снимок клавиш, на нажатие запускает разовое действие
// и заново выводит горизонтальную скорость. false - ввод проигнорирован.
// На паузе запоминаются только зажатые клавиши: разовые действия отбрасываются.
func (m *Manager) HandleInput(action domain.InputAction, pressed bool) bool {
	if action == domain.InputUnknown || !m.state.Running || m.player == nil {
		return false
	}

	m.state.Input.Set(action, pressed)
	if m.state.Paused {
		return false
	}

	handled := true
	if pressed {
		if h, ok := m.handlers[action]; ok {
			handled = m.runHandler(action, h)
		}
	}

	if m.player.IsAlive() {
		systems.ApplyPlayerIntent(m.player, m.state.Input)
	}
	return handled
}

func (m *Manager) runHandler(action domain.InputAction, h handlers.HandlerFunc) bool {
	ctx := handlers.Context{
		World:     m.world,
		Actor:     m.player,
		Abilities: m.abilities,
		Caster:    m.caster(),
		Learned:   m.stats.Learned,
	}

	res, err := h(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"action": action.String(),
			"reason": err.Error(),
		}).Debug("Action rejected")
		return false
	}
	for _, ev := range res.Events {
		m.emit(ev)
	}
	return true
}
