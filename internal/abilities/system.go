package abilities

import (
	"new-haven-server/internal/domain"
	"new-haven-server/pkg/logger"
	"new-haven-server/pkg/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Причины отказа. Use/CanUse возвращают их наружу только для логов и UI.
var (
	ErrUnknownAbility   = errors.New("unknown ability")
	ErrNotLearned       = errors.New("ability not learned")
	ErrInsufficientMana = errors.New("insufficient mana")
	ErrOnCooldown       = errors.New("ability on cooldown")
	ErrRequirementUnmet = errors.New("ability requirement unmet")
	ErrInvalidCaster    = errors.New("caster cannot use abilities")
	ErrNoTarget         = errors.New("no valid target")
	ErrOutOfRange       = errors.New("target out of range")
)

// Caster - кто применяет способность. Уровень и класс приходят из профиля игрока.
type Caster struct {
	Entity *domain.Entity
	Level  int
	Class  string
}

// AbilityLevel - уровень прокачки способности у кастера
func (c Caster) AbilityLevel(id string) int {
	if c.Entity != nil && c.Entity.Ability != nil {
		return c.Entity.Ability.LevelOf(id)
	}
	return 1
}

// UseRequest - запрос на применение
type UseRequest struct {
	AbilityID string
	Caster    Caster
	Learned   []string
	TargetID  string       // для target: enemy (пусто - ближайший враг в радиусе)
	TargetPos *domain.Vec2 // для point/area/direction
}

// Hit - что способность сделала с целью
type Hit struct {
	TargetID string            `json:"targetId"`
	Damage   float64           `json:"damage,omitempty"`
	Status   domain.StatusType `json:"status,omitempty"`
}

// Result - итог успешного применения
type Result struct {
	AbilityID   string   `json:"abilityId"`
	Level       int      `json:"level"`
	ManaSpent   float64  `json:"manaSpent"`
	Cooldown    float64  `json:"cooldown"`
	CastTime    float64  `json:"castTime,omitempty"`
	ChannelTime float64  `json:"channelTime,omitempty"`
	Hits        []Hit    `json:"hits,omitempty"`
	Healed      float64  `json:"healed,omitempty"`
	Spawned     []string `json:"spawned,omitempty"`
	Teleported  bool     `json:"teleported,omitempty"`
	Form        string   `json:"form,omitempty"`
}

// TotalDamage - сумма урона по всем целям
func (r *Result) TotalDamage() float64 {
	sum := 0.0
	for _, h := range r.Hits {
		sum += h.Damage
	}
	return sum
}

// System - каталог + перезарядки + разрешение эффектов
type System struct {
	catalog   *Catalog
	cooldowns *Cooldowns
	newID     func(prefix string) string
}

func NewSystem(catalog *Catalog) *System {
	return &System{
		catalog:   catalog,
		cooldowns: NewCooldowns(),
		newID:     utils.GenerateID,
	}
}

func (s *System) Catalog() *Catalog { return s.catalog }

func (s *System) Cooldowns() *Cooldowns { return s.cooldowns }

// Check возвращает причину, по которой способность применить нельзя (nil - можно)
func (s *System) Check(id string, caster Caster, currentMana float64, learned []string) error {
	a, ok := s.catalog.Get(id)
	if !ok {
		return ErrUnknownAbility
	}
	if !contains(learned, id) {
		return ErrNotLearned
	}
	if currentMana < a.ManaCostAt(caster.AbilityLevel(id)) {
		return ErrInsufficientMana
	}
	if caster.Entity != nil && !s.cooldowns.Ready(caster.Entity.ID, id) {
		return ErrOnCooldown
	}
	return a.CheckRequirements(caster.Level, caster.Class, learned)
}

// CheckRequirements - класс способности и ее предварительные требования.
// Нужна и при применении, и при изучении новой способности.
func (a *Ability) CheckRequirements(level int, class string, learned []string) error {
	if a.Class != ClassAny && a.Class != class {
		return errors.Wrapf(ErrRequirementUnmet, "class %s", a.Class)
	}
	for _, r := range a.Requirements {
		if r.MinLevel > 0 && level < r.MinLevel {
			return errors.Wrapf(ErrRequirementUnmet, "level %d", r.MinLevel)
		}
		if r.Skill != "" && !contains(learned, r.Skill) {
			return errors.Wrapf(ErrRequirementUnmet, "skill %s", r.Skill)
		}
		if r.Class != "" && r.Class != class {
			return errors.Wrapf(ErrRequirementUnmet, "class %s", r.Class)
		}
	}
	return nil
}

// CanUse - булева обертка над Check
func (s *System) CanUse(id string, caster Caster, currentMana float64, learned []string) bool {
	return s.Check(id, caster, currentMana, learned) == nil
}

// Use проверяет запрос, списывает ману, взводит перезарядку и выполняет эффекты по порядку.
// При любой ошибке состояние мира, маны и перезарядок не меняется.
func (s *System) Use(w *domain.World, req UseRequest) (*Result, error) {
	caster := req.Caster.Entity
	if caster == nil || caster.Combat == nil || !caster.IsAlive() || w == nil {
		return nil, ErrInvalidCaster
	}
	if err := s.Check(req.AbilityID, req.Caster, caster.Combat.Mana, req.Learned); err != nil {
		return nil, err
	}

	a, _ := s.catalog.Get(req.AbilityID)
	level := a.clampLevel(req.Caster.AbilityLevel(a.ID))

	plan, err := s.planTargets(w, a, level, req)
	if err != nil {
		return nil, err
	}

	// Дальше отказов нет: списываем ресурсы
	cost := a.ManaCostAt(level)
	cooldown := a.CooldownAt(level)
	caster.Combat.SpendMana(cost)
	s.cooldowns.Set(caster.ID, a.ID, cooldown)

	res := &Result{
		AbilityID:   a.ID,
		Level:       level,
		ManaSpent:   cost,
		Cooldown:    cooldown,
		CastTime:    a.CastTime,
		ChannelTime: a.ChannelTime,
	}
	for _, eff := range a.Effects {
		s.execute(w, a, level, eff, caster, plan, res)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "ability_system",
		"ability_id": a.ID,
		"caster_id":  caster.ID,
		"level":      level,
		"mana_spent": cost,
		"hits":       len(res.Hits),
		"spawned":    len(res.Spawned),
	}).Debug("Ability used.")

	return res, nil
}

// Update уменьшает перезарядки всех кастеров
func (s *System) Update(dt float64) {
	s.cooldowns.Update(dt)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
