package abilities

import (
	_ "embed"
	"fmt"
	"new-haven-server/internal/domain"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed abilities.yaml
var defaultCatalogYAML []byte

// ClassAny - способность доступна любому классу
const ClassAny = "any"

// EffectType - что делает эффект способности
type EffectType string

const (
	EffectDamage    EffectType = "damage"
	EffectHeal      EffectType = "heal"
	EffectBuff      EffectType = "buff"
	EffectDebuff    EffectType = "debuff"
	EffectTeleport  EffectType = "teleport"
	EffectSummon    EffectType = "summon"
	EffectTransform EffectType = "transform"
)

func (t EffectType) IsValid() bool {
	switch t {
	case EffectDamage, EffectHeal, EffectBuff, EffectDebuff,
		EffectTeleport, EffectSummon, EffectTransform:
		return true
	}
	return false
}

// TargetType - как способность выбирает цель
type TargetType string

const (
	TargetSelf      TargetType = "self"
	TargetEnemy     TargetType = "enemy"
	TargetArea      TargetType = "area"
	TargetPoint     TargetType = "point"
	TargetDirection TargetType = "direction"
)

// Effect - один шаг способности. Выполняются в порядке объявления.
type Effect struct {
	Type       EffectType        `yaml:"type" json:"type"`
	Value      float64           `yaml:"value" json:"value,omitempty"`
	Duration   float64           `yaml:"duration" json:"duration,omitempty"`
	Status     domain.StatusType `yaml:"status" json:"status,omitempty"`
	Projectile bool              `yaml:"projectile" json:"projectile,omitempty"`
	Summon     string            `yaml:"summon" json:"summon,omitempty"`
	Form       string            `yaml:"form" json:"form,omitempty"`
}

// Requirement - условие изучения/применения. Пустые поля не проверяются.
type Requirement struct {
	MinLevel int    `yaml:"min_level" json:"minLevel,omitempty"`
	Skill    string `yaml:"skill" json:"skill,omitempty"`
	Class    string `yaml:"class" json:"class,omitempty"`
}

// Scaling - линейные приросты за уровень способности
type Scaling struct {
	DamagePerLevel    float64 `yaml:"damage_per_level" json:"damagePerLevel"`
	CooldownReduction float64 `yaml:"cooldown_reduction" json:"cooldownReduction"`
	ManaCostReduction float64 `yaml:"mana_cost_reduction" json:"manaCostReduction"`
	RangeIncrease     float64 `yaml:"range_increase" json:"rangeIncrease"`
}

// Ability - неизменяемая запись каталога. Текущие перезарядки живут в Cooldowns.
type Ability struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description" json:"description"`
	Class        string        `yaml:"class" json:"class"`
	Tier         int           `yaml:"tier" json:"tier"`
	Target       TargetType    `yaml:"target" json:"target"`
	ManaCost     float64       `yaml:"mana_cost" json:"manaCost"`
	Cooldown     float64       `yaml:"cooldown" json:"cooldown"`
	CastTime     float64       `yaml:"cast_time" json:"castTime"`
	ChannelTime  float64       `yaml:"channel_time" json:"channelTime"`
	Range        float64       `yaml:"range" json:"range"`
	Area         float64       `yaml:"area" json:"area"`
	BaseDamage   float64       `yaml:"base_damage" json:"baseDamage"`
	MaxLevel     int           `yaml:"max_level" json:"maxLevel"`
	Effects      []Effect      `yaml:"effects" json:"effects"`
	Requirements []Requirement `yaml:"requirements" json:"requirements,omitempty"`
	Scaling      Scaling       `yaml:"scaling" json:"scaling"`
}

// Catalog - все способности игры в порядке объявления
type Catalog struct {
	byID  map[string]*Ability
	order []*Ability
}

// DefaultCatalog загружает встроенный каталог
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalogYAML)
}

// LoadCatalog разбирает и проверяет YAML-каталог
func LoadCatalog(data []byte) (*Catalog, error) {
	var list []*Ability
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, "failed to parse ability catalog")
	}

	c := &Catalog{byID: make(map[string]*Ability, len(list))}
	for i, a := range list {
		if a == nil {
			return nil, errors.Errorf("ability #%d is empty", i)
		}
		if err := validate(a); err != nil {
			return nil, errors.Wrapf(err, "invalid ability %q", a.ID)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, errors.Errorf("duplicate ability id %q", a.ID)
		}
		if a.Class == "" {
			a.Class = ClassAny
		}
		if a.Target == "" {
			a.Target = TargetSelf
		}
		c.byID[a.ID] = a
		c.order = append(c.order, a)
	}

	// Пререквизиты проверяем, когда известны все id
	for _, a := range c.order {
		for _, r := range a.Requirements {
			if r.Skill == "" {
				continue
			}
			if _, ok := c.byID[r.Skill]; !ok {
				return nil, errors.Errorf("ability %q requires unknown skill %q", a.ID, r.Skill)
			}
		}
	}
	return c, nil
}

func validate(a *Ability) error {
	if a.ID == "" {
		return fmt.Errorf("empty id")
	}
	for name, v := range map[string]float64{
		"mana_cost":    a.ManaCost,
		"cooldown":     a.Cooldown,
		"cast_time":    a.CastTime,
		"channel_time": a.ChannelTime,
		"range":        a.Range,
		"area":         a.Area,
		"base_damage":  a.BaseDamage,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", name, v)
		}
	}
	switch a.Target {
	case "", TargetSelf, TargetEnemy, TargetArea, TargetPoint, TargetDirection:
	default:
		return fmt.Errorf("unknown target %q", a.Target)
	}
	if len(a.Effects) == 0 {
		return fmt.Errorf("no effects")
	}
	for _, e := range a.Effects {
		if !e.Type.IsValid() {
			return fmt.Errorf("unknown effect type %q", e.Type)
		}
		if e.Status != "" && !e.Status.IsValid() {
			return fmt.Errorf("unknown status %q", e.Status)
		}
		if (e.Type == EffectBuff || e.Type == EffectDebuff) && e.Status == "" {
			return fmt.Errorf("%s effect without status", e.Type)
		}
		if e.Value < 0 || e.Duration < 0 {
			return fmt.Errorf("%s effect has negative numbers", e.Type)
		}
	}
	return nil
}

// Get - способность по id
func (c *Catalog) Get(id string) (*Ability, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// All - все способности в порядке каталога
func (c *Catalog) All() []*Ability {
	out := make([]*Ability, len(c.order))
	copy(out, c.order)
	return out
}

// ForClass - способности, доступные классу
func (c *Catalog) ForClass(class string) []*Ability {
	var out []*Ability
	for _, a := range c.order {
		if a.Class == ClassAny || a.Class == class {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) Len() int { return len(c.order) }
