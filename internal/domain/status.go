package domain

// StatusType - тип временного эффекта
type StatusType string

const (
	StatusPoison       StatusType = "poison"
	StatusFreeze       StatusType = "freeze"
	StatusBurn         StatusType = "burn"
	StatusStun         StatusType = "stun"
	StatusSlow         StatusType = "slow"
	StatusRegeneration StatusType = "regeneration"
	StatusShield       StatusType = "shield"
	StatusBerserk      StatusType = "berserk"
)

// IsValid проверяет, что тип входит в известный набор (для каталога способностей)
func (s StatusType) IsValid() bool {
	switch s {
	case StatusPoison, StatusFreeze, StatusBurn, StatusStun,
		StatusSlow, StatusRegeneration, StatusShield, StatusBerserk:
		return true
	}
	return false
}

// Ticks - эффект срабатывает раз в StatusTickInterval (урон или лечение)
func (s StatusType) Ticks() bool {
	return s == StatusPoison || s == StatusBurn || s == StatusRegeneration
}

// StatusEffect - временный эффект на сущности
type StatusEffect struct {
	Type      StatusType `json:"type" yaml:"type"`
	Duration  float64    `json:"duration" yaml:"duration"`
	TickTimer float64    `json:"tickTimer" yaml:"-"`
	Stacks    int        `json:"stacks" yaml:"stacks"`
	Potency   float64    `json:"potency" yaml:"potency"` // урон/лечение за тик или прочность щита
	SourceID  string     `json:"sourceId,omitempty" yaml:"-"`
}

// NewStatusEffect создает эффект с одним стаком и взведенным таймером тика
func NewStatusEffect(t StatusType, duration, potency float64) StatusEffect {
	return StatusEffect{
		Type:      t,
		Duration:  duration,
		TickTimer: StatusTickInterval,
		Stacks:    1,
		Potency:   potency,
	}
}
