package systems

import (
	"fmt"
	"new-haven-server/internal/domain"
)

// CollectPickup применяет содержимое пикапа к игроку и убирает пикап из мира.
// Возвращает тип и количество подобранного.
func CollectPickup(player, pickup *domain.Entity) (domain.LootKind, float64, error) {
	if player.Combat == nil || player.Player == nil {
		return "", 0, fmt.Errorf("%s не может подбирать предметы", player.ID)
	}
	loot := pickup.Loot
	if loot == nil {
		return "", 0, fmt.Errorf("%s не предмет", pickup.ID)
	}
	if loot.Collected || !pickup.Active {
		return "", 0, fmt.Errorf("%s уже подобран", pickup.ID)
	}

	switch loot.Item {
	case domain.LootHealth:
		player.Combat.Heal(loot.Amount)
	case domain.LootMana:
		player.Combat.RestoreMana(loot.Amount)
	case domain.LootCredits:
		player.Player.Credits += int(loot.Amount)
	default:
		return "", 0, fmt.Errorf("неизвестный лут %q", loot.Item)
	}

	loot.Collected = true
	pickup.Active = false
	return loot.Item, loot.Amount, nil
}

// CreateLootDrop создает пикап кредитов на месте погибшего врага.
// Если враг ничего не несет (или не выпало по шансу) - nil.
func CreateLootDrop(dead *domain.Entity, id string, roll float64) *domain.Entity {
	loot := dead.Loot
	if loot == nil || loot.Amount <= 0 || roll >= loot.DropChance {
		return nil
	}

	c := dead.Center()
	drop := domain.NewEntity(id, domain.NewTransform(c.X-8, c.Y-8), domain.Size{W: 16, H: 16})
	drop.Type = domain.EntityTypePickup
	drop.Name = "Останки " + dead.Name
	drop.Physics = domain.NewPhysicsComponent(func(p *domain.PhysicsComponent) {
		p.GravityEnabled = false
	})
	drop.Collider = domain.NewColliderComponent(domain.ColliderPickup, func(c *domain.ColliderComponent) {
		c.IsTrigger = true
	})
	drop.Loot = domain.NewLootComponent(loot.Item, loot.Amount)
	return drop
}
