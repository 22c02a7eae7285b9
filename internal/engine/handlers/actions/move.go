package actions

import (
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine/handlers"
	"new-haven-server/internal/systems"
)

func HandleJump(ctx handlers.Context) (handlers.Result, error) {
	if !systems.Jump(ctx.Actor) {
		return handlers.Result{}, handlers.ErrNotGrounded
	}
	if ctx.Actor.Animation != nil {
		ctx.Actor.Animation.Play("jump", 0)
	}
	return handlers.EmptyResult(), nil
}

func HandleDash(ctx handlers.Context) (handlers.Result, error) {
	if !systems.Dash(ctx.Actor) {
		return handlers.Result{}, handlers.ErrNotReady
	}

	var res handlers.Result
	res.Emit(domain.NewEvent(domain.EventPlayerDash, ctx.Actor.ID).With("facing", ctx.Actor.Player.Facing))
	return res, nil
}
