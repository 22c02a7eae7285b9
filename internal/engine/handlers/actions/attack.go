package actions

import (
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine/handlers"
	"new-haven-server/internal/systems"
)

// AttackAnimLock - сколько держится анимация удара
const AttackAnimLock = 0.25

// HandleAttack - удар ближнего боя по всем врагам перед игроком
func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	c := actor.Combat
	if c == nil || actor.Player == nil {
		return handlers.Result{}, handlers.ErrActorDead
	}

	// 1. Перезарядка
	if c.AttackCooldown > 0 {
		return handlers.Result{}, handlers.ErrNotReady
	}
	c.AttackCooldown = c.MaxAttackCooldown

	if actor.Animation != nil {
		actor.Animation.Play("attack", AttackAnimLock)
	}

	var res handlers.Result
	res.Emit(domain.NewEvent(domain.EventPlayerAttack, actor.ID))

	// 2. Все цели в зоне удара получают урон через общий DealDamage
	for _, t := range systems.FindMeleeTargets(ctx.World, actor, actor.Player.Facing, c.AttackRange) {
		dmg := systems.DealDamage(actor, t, c.Damage)
		if dmg <= 0 {
			continue
		}
		res.Emit(domain.Event{Type: domain.EventDamageDealt, EntityID: t.ID, SourceID: actor.ID, Amount: dmg})
	}
	return res, nil
}
