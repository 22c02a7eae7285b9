package handlers

import (
	"errors"
	"new-haven-server/internal/abilities"
	"new-haven-server/internal/domain"
)

// Причины, по которым действие не выполнено. Менеджер пишет их в debug-лог.
var (
	ErrActorDead   = errors.New("actor is dead")
	ErrDisabled    = errors.New("actor is stunned or frozen")
	ErrNotReady    = errors.New("action on cooldown")
	ErrNotGrounded = errors.New("actor is not on the ground")
	ErrEmptySlot   = errors.New("ability slot is empty")
)

// Context передает хендлеру состояние мира.
// Передаем ссылки, чтобы хендлер мог менять состояние.
type Context struct {
	World     *domain.World
	Actor     *domain.Entity // Тот, кто выполняет действие (игрок или бот)
	Abilities *abilities.System
	Caster    abilities.Caster
	Learned   []string
}

// Result - результат выполнения действия.
// Хендлер НЕ рассылает события сам, он возвращает их менеджеру.
type Result struct {
	Events []domain.Event
}

// Emit добавляет событие в результат
func (r *Result) Emit(ev domain.Event) {
	r.Events = append(r.Events, ev)
}

// HandlerFunc - контракт для любого разового действия (jump, attack, dash, ability_N)
type HandlerFunc func(ctx Context) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
