package api

import (
	"errors"
	"new-haven-server/internal/domain"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var knownControls = map[string]bool{
	ControlStart:   true,
	ControlPause:   true,
	ControlResume:  true,
	ControlRestart: true,
	ControlStop:    true,
	ControlLoad:    true,
}

func (m ClientMessage) Validate() error {
	switch m.Type {
	case MessageInput:
		if m.Action == "" {
			return errors.New("action is required")
		}
		if domain.ParseInput(m.Action) == domain.InputUnknown {
			return errors.New("unknown action")
		}
	case MessageControl:
		if !knownControls[m.Command] {
			return errors.New("unknown command")
		}
		if m.Command == ControlLoad && (m.Level < 1 || m.Level > 100) {
			return errors.New("level must be in 1..100")
		}
	default:
		return errors.New("unknown message type")
	}
	return nil
}
