package network

import (
	"encoding/json"
	"fmt"
	"new-haven-server/internal/domain"
	"new-haven-server/pkg/api"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeSnapshot - снапшот в msgpack для бинарного кадра
func EncodeSnapshot(snap *api.Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot - обратная операция (бот, клиенты на Go)
func DecodeSnapshot(data []byte) (api.Snapshot, error) {
	var snap api.Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// EventFrame - событие шины в текстовый JSON-кадр
func EventFrame(ev domain.Event) (Frame, error) {
	msg := api.EventMessage{
		Type:     api.TypeEvent,
		Event:    ev.Type.String(),
		EntityID: ev.EntityID,
		SourceID: ev.SourceID,
		Amount:   ev.Amount,
		Level:    ev.Level,
		Data:     ev.Data,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return Frame{}, fmt.Errorf("encode event %s: %w", msg.Event, err)
	}
	return Frame{Data: data}, nil
}

// ErrorFrame - ответ клиенту на битое сообщение
func ErrorFrame(reason string) Frame {
	data, _ := json.Marshal(api.ErrorMessage{Type: api.TypeError, Message: reason})
	return Frame{Data: data}
}
