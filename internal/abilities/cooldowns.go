package abilities

type cooldownKey struct {
	caster  string
	ability string
}

// Cooldowns - оставшиеся перезарядки по паре (кастер, способность).
// Два кастера с одной способностью не блокируют друг друга.
// Владеет менеджер игры, из других горутин не трогать.
type Cooldowns struct {
	remaining map[cooldownKey]float64
}

func NewCooldowns() *Cooldowns {
	return &Cooldowns{remaining: make(map[cooldownKey]float64)}
}

// Set взводит перезарядку
func (c *Cooldowns) Set(casterID, abilityID string, seconds float64) {
	if seconds <= 0 {
		delete(c.remaining, cooldownKey{casterID, abilityID})
		return
	}
	c.remaining[cooldownKey{casterID, abilityID}] = seconds
}

// Remaining - сколько осталось (0 - готова)
func (c *Cooldowns) Remaining(casterID, abilityID string) float64 {
	return c.remaining[cooldownKey{casterID, abilityID}]
}

// Ready - способность готова
func (c *Cooldowns) Ready(casterID, abilityID string) bool {
	return c.Remaining(casterID, abilityID) <= 0
}

// Update уменьшает все перезарядки и удаляет дошедшие до нуля
func (c *Cooldowns) Update(dt float64) {
	for k, v := range c.remaining {
		v -= dt
		if v <= 0 {
			delete(c.remaining, k)
			continue
		}
		c.remaining[k] = v
	}
}

// ForCaster - снимок перезарядок одного кастера (для снапшотов)
func (c *Cooldowns) ForCaster(casterID string) map[string]float64 {
	out := make(map[string]float64)
	for k, v := range c.remaining {
		if k.caster == casterID {
			out[k.ability] = v
		}
	}
	return out
}

// Reset сбрасывает все перезарядки (рестарт уровня)
func (c *Cooldowns) Reset() {
	c.remaining = make(map[cooldownKey]float64)
}

func (c *Cooldowns) Len() int {
	return len(c.remaining)
}
