package actions

import (
	"new-haven-server/internal/abilities"
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine/handlers"
)

// HandleAbility применяет способность из слота
func HandleAbility(ctx handlers.Context, slot int) (handlers.Result, error) {
	actor := ctx.Actor
	if actor.Ability == nil || slot < 0 || slot >= len(actor.Ability.Equipped) {
		return handlers.Result{}, handlers.ErrEmptySlot
	}
	id := actor.Ability.Equipped[slot]
	if id == "" {
		return handlers.Result{}, handlers.ErrEmptySlot
	}

	out, err := ctx.Abilities.Use(ctx.World, abilities.UseRequest{
		AbilityID: id,
		Caster:    ctx.Caster,
		Learned:   ctx.Learned,
	})
	if err != nil {
		return handlers.Result{}, err
	}

	if actor.Animation != nil {
		actor.Animation.Play("cast", max(out.CastTime, 0.2))
	}

	var res handlers.Result
	res.Emit(domain.Event{
		Type:     domain.EventAbilityUsed,
		EntityID: actor.ID,
		Amount:   out.ManaSpent,
		Level:    out.Level,
		Data: map[string]any{
			"ability":  out.AbilityID,
			"slot":     slot,
			"cooldown": out.Cooldown,
			"spawned":  out.Spawned,
			"healed":   out.Healed,
		},
	})
	for _, h := range out.Hits {
		if h.Damage <= 0 {
			continue
		}
		res.Emit(domain.Event{Type: domain.EventDamageDealt, EntityID: h.TargetID, SourceID: actor.ID, Amount: h.Damage}.
			With("ability", out.AbilityID))
	}
	return res, nil
}
