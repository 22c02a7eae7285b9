package engine

import (
	"fmt"
	"new-haven-server/internal/domain"
	"new-haven-server/pkg/api"
)

// Command - внешнее действие, применяемое на границе кадра на горутине цикла
type Command func(m *Manager)

// Submit ставит команду в очередь. Безопасно с любой горутины.
// Переполненная очередь отбрасывает команду и возвращает false.
func (m *Manager) Submit(cmd Command) bool {
	if cmd == nil {
		return false
	}
	select {
	case m.commands <- cmd:
		return true
	default:
		m.log.Warn("Command queue full, command dropped")
		return false
	}
}

// drainCommands применяет все накопленные команды
func (m *Manager) drainCommands() int {
	n := 0
	for {
		select {
		case cmd := <-m.commands:
			cmd(m)
			n++
		default:
			return n
		}
	}
}

// InputCommand - нажатие или отпускание клавиши
func InputCommand(action domain.InputAction, pressed bool) Command {
	return func(m *Manager) {
		m.HandleInput(action, pressed)
	}
}

// LoadLevelCommand - переход на уровень
func LoadLevelCommand(id int) Command {
	return func(m *Manager) {
		m.LoadLevel(id)
	}
}

// CommandFromMessage переводит сообщение клиента в команду
func CommandFromMessage(msg api.ClientMessage) (Command, error) {
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if msg.Type == api.MessageInput {
		return InputCommand(domain.ParseInput(msg.Action), msg.Pressed), nil
	}

	switch msg.Command {
	case api.ControlStart:
		return func(m *Manager) { m.StartGame() }, nil
	case api.ControlPause:
		return func(m *Manager) { m.PauseGame() }, nil
	case api.ControlResume:
		return func(m *Manager) { m.ResumeGame() }, nil
	case api.ControlRestart:
		return func(m *Manager) { m.RestartLevel() }, nil
	case api.ControlStop:
		return func(m *Manager) { m.StopGame() }, nil
	case api.ControlLoad:
		return LoadLevelCommand(msg.Level), nil
	}
	return nil, fmt.Errorf("unsupported command %q", msg.Command)
}
