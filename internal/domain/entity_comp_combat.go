package domain

// TakeDamage снимает здоровье. Возвращает true, если здоровье дошло до нуля.
// Само состояние смерти выставляет система боя (один раз на сущность).
func (c *CombatComponent) TakeDamage(amount float64) bool {
	if c.Dead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	c.Health -= amount
	if c.Health <= 0 {
		c.Health = 0
		return true
	}
	return false
}

// Heal лечит сущность
func (c *CombatComponent) Heal(amount float64) {
	if c.Dead || amount <= 0 {
		return // Не лечим трупы
	}
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// HasMana проверяет, хватает ли маны
func (c *CombatComponent) HasMana(cost float64) bool {
	return c.Mana >= cost
}

// SpendMana тратит ману. Возвращает false, если не хватило (ничего не меняя).
func (c *CombatComponent) SpendMana(cost float64) bool {
	if c.Mana < cost {
		return false
	}
	c.Mana -= cost
	return true
}

// RestoreMana восстанавливает ману
func (c *CombatComponent) RestoreMana(amount float64) {
	c.Mana += amount
	if c.Mana > c.MaxMana {
		c.Mana = c.MaxMana
	}
}

// IsImmune - иммунитет к типу эффекта
func (c *CombatComponent) IsImmune(t StatusType) bool {
	for _, im := range c.Immunities {
		if im == t {
			return true
		}
	}
	return false
}

// Status возвращает активный эффект указанного типа
func (c *CombatComponent) Status(t StatusType) *StatusEffect {
	for i := range c.StatusEffects {
		if c.StatusEffects[i].Type == t {
			return &c.StatusEffects[i]
		}
	}
	return nil
}

// HasStatus - есть ли активный эффект
func (c *CombatComponent) HasStatus(t StatusType) bool {
	return c.Status(t) != nil
}

// AddStatus вешает эффект с учетом иммунитетов и стаков.
// Повторный эффект того же типа обновляет длительность и добавляет стак.
func (c *CombatComponent) AddStatus(effect StatusEffect) bool {
	if c.Dead || c.IsImmune(effect.Type) {
		return false
	}
	if effect.Stacks <= 0 {
		effect.Stacks = 1
	}
	if effect.TickTimer <= 0 {
		effect.TickTimer = StatusTickInterval
	}

	if existing := c.Status(effect.Type); existing != nil {
		existing.Stacks += effect.Stacks
		if existing.Stacks > StatusMaxStacks {
			existing.Stacks = StatusMaxStacks
		}
		if effect.Duration > existing.Duration {
			existing.Duration = effect.Duration
		}
		if effect.Potency > existing.Potency {
			existing.Potency = effect.Potency
		}
		return true
	}

	c.StatusEffects = append(c.StatusEffects, effect)
	return true
}

// ClearStatuses снимает все эффекты (рестарт уровня)
func (c *CombatComponent) ClearStatuses() {
	c.StatusEffects = nil
}

// HealthRatio - доля здоровья [0..1]
func (c *CombatComponent) HealthRatio() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return c.Health / c.MaxHealth
}
