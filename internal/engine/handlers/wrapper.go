package handlers

import (
	"new-haven-server/internal/domain"
)

// SlotHandlerFunc - хендлер, которому нужен номер слота способности
type SlotHandlerFunc func(ctx Context, slot int) (Result, error)

// WithSlot привязывает хендлер слота к конкретному номеру
func WithSlot(slot int, handler SlotHandlerFunc) HandlerFunc {
	return func(ctx Context) (Result, error) {
		return handler(ctx, slot)
	}
}

// RequireAlive отсекает мертвого актора до вызова логики
func RequireAlive(handler HandlerFunc) HandlerFunc {
	return func(ctx Context) (Result, error) {
		if ctx.Actor == nil || !ctx.Actor.IsAlive() {
			return Result{}, ErrActorDead
		}
		return handler(ctx)
	}
}

// RequireControl отсекает оглушенного или замороженного актора
func RequireControl(handler HandlerFunc) HandlerFunc {
	return func(ctx Context) (Result, error) {
		if c := ctx.Actor.Combat; c != nil && (c.HasStatus(domain.StatusStun) || c.HasStatus(domain.StatusFreeze)) {
			return Result{}, ErrDisabled
		}
		return handler(ctx)
	}
}
