package engine

import (
	"math"
	"new-haven-server/internal/domain"

	"github.com/pkg/errors"
)

// Классы персонажа
const (
	ClassSamurai   = "samurai"
	ClassNetrunner = "netrunner"
)

// IsValidClass - известен ли класс
func IsValidClass(class string) bool {
	return class == ClassSamurai || class == ClassNetrunner
}

// Кривая опыта и награды за уровень
const (
	ExperienceBase       = 100.0
	ExperienceMultiplier = 1.1

	StatPointsPerLevel  = 3
	SkillPointsPerLevel = 1
	StatGainPerLevel    = 2
	BaseAttribute       = 10
	EquipSlots          = 6
)

var (
	ErrNoStatPoints    = errors.New("no stat points")
	ErrNoSkillPoints   = errors.New("no skill points")
	ErrUnknownStat     = errors.New("unknown stat")
	ErrAlreadyLearned  = errors.New("ability already learned")
	ErrInvalidSlot     = errors.New("invalid equip slot")
	ErrAbilityNotKnown = errors.New("ability not learned")
)

// ExperienceRequired - опыт для перехода с уровня level на следующий:
// floor(100 * 1.1^(level-1))
func ExperienceRequired(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(ExperienceBase * math.Pow(ExperienceMultiplier, float64(level-1))))
}

// Attributes - шесть характеристик
type Attributes struct {
	Strength     int `json:"strength" yaml:"strength"`
	Agility      int `json:"agility" yaml:"agility"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Endurance    int `json:"endurance" yaml:"endurance"`
	Tech         int `json:"tech" yaml:"tech"`
	Luck         int `json:"luck" yaml:"luck"`
}

// AddAll прибавляет n ко всем характеристикам
func (a *Attributes) AddAll(n int) {
	a.Strength += n
	a.Agility += n
	a.Intelligence += n
	a.Endurance += n
	a.Tech += n
	a.Luck += n
}

// field - указатель на характеристику по имени
func (a *Attributes) field(name string) *int {
	switch name {
	case "strength":
		return &a.Strength
	case "agility":
		return &a.Agility
	case "intelligence":
		return &a.Intelligence
	case "endurance":
		return &a.Endurance
	case "tech":
		return &a.Tech
	case "luck":
		return &a.Luck
	}
	return nil
}

// PlayerStats - RPG-профиль. Переживает уровни и рестарты,
// в сущность игрока проецируется через Apply.
type PlayerStats struct {
	Class         string             `json:"class" yaml:"class"`
	Level         int                `json:"level" yaml:"level"`
	Experience    int                `json:"experience" yaml:"experience"`
	StatPoints    int                `json:"statPoints" yaml:"stat_points"`
	SkillPoints   int                `json:"skillPoints" yaml:"skill_points"`
	Attributes    Attributes         `json:"attributes" yaml:"attributes"`
	Learned       []string           `json:"learned" yaml:"learned"`
	AbilityLevels map[string]int     `json:"abilityLevels" yaml:"ability_levels"`
	Equipped      [EquipSlots]string `json:"equipped" yaml:"equipped"`
	Credits       int                `json:"credits" yaml:"credits"`
}

// NewPlayerStats - профиль первого уровня
func NewPlayerStats(class string, starter ...string) PlayerStats {
	s := PlayerStats{
		Class: class,
		Level: 1,
		Attributes: Attributes{
			Strength: BaseAttribute, Agility: BaseAttribute, Intelligence: BaseAttribute,
			Endurance: BaseAttribute, Tech: BaseAttribute, Luck: BaseAttribute,
		},
		AbilityLevels: make(map[string]int),
	}
	for i, id := range starter {
		s.Learned = append(s.Learned, id)
		if i < EquipSlots {
			s.Equipped[i] = id
		}
	}
	return s
}

// ExperienceToNext - сколько нужно до следующего уровня
func (s *PlayerStats) ExperienceToNext() int {
	return ExperienceRequired(s.Level) - s.Experience
}

// AddExperience копит опыт и поднимает уровни, пока хватает.
// Возвращает число полученных уровней.
func (s *PlayerStats) AddExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	s.Experience += amount

	gained := 0
	for s.Experience >= ExperienceRequired(s.Level) {
		s.Experience -= ExperienceRequired(s.Level)
		s.LevelUp()
		gained++
	}
	return gained
}

// LevelUp: +3 очка характеристик, +1 очко навыка, +2 ко всем характеристикам
func (s *PlayerStats) LevelUp() {
	s.Level++
	s.StatPoints += StatPointsPerLevel
	s.SkillPoints += SkillPointsPerLevel
	s.Attributes.AddAll(StatGainPerLevel)
}

// AllocateStat тратит очко характеристики
func (s *PlayerStats) AllocateStat(name string) error {
	if s.StatPoints <= 0 {
		return ErrNoStatPoints
	}
	f := s.Attributes.field(name)
	if f == nil {
		return errors.Wrapf(ErrUnknownStat, "%q", name)
	}
	*f++
	s.StatPoints--
	return nil
}

// Knows - изучена ли способность
func (s *PlayerStats) Knows(id string) bool {
	for _, l := range s.Learned {
		if l == id {
			return true
		}
	}
	return false
}

// Learn тратит очко навыка на новую способность (проверка требований - на вызывающем)
func (s *PlayerStats) Learn(id string) error {
	if s.Knows(id) {
		return ErrAlreadyLearned
	}
	if s.SkillPoints <= 0 {
		return ErrNoSkillPoints
	}
	s.SkillPoints--
	s.Learned = append(s.Learned, id)
	return nil
}

// Upgrade тратит очко навыка на уровень изученной способности
func (s *PlayerStats) Upgrade(id string, maxLevel int) error {
	if !s.Knows(id) {
		return ErrAbilityNotKnown
	}
	if s.SkillPoints <= 0 {
		return ErrNoSkillPoints
	}
	if s.AbilityLevels == nil {
		s.AbilityLevels = make(map[string]int)
	}
	lvl := max(1, s.AbilityLevels[id])
	if maxLevel > 0 && lvl >= maxLevel {
		return errors.Errorf("ability %s at max level %d", id, maxLevel)
	}
	s.AbilityLevels[id] = lvl + 1
	s.SkillPoints--
	return nil
}

// Equip кладет изученную способность в слот (пустой id - очистить слот)
func (s *PlayerStats) Equip(slot int, id string) error {
	if slot < 0 || slot >= EquipSlots {
		return ErrInvalidSlot
	}
	if id != "" && !s.Knows(id) {
		return ErrAbilityNotKnown
	}
	s.Equipped[slot] = id
	return nil
}

// Проекция характеристик в бой
func (s *PlayerStats) MaxHealth() float64 {
	return 100 + float64(s.Attributes.Endurance-BaseAttribute)*10
}

func (s *PlayerStats) MaxMana() float64 {
	return 50 + float64(s.Attributes.Intelligence-BaseAttribute)*5 + float64(s.Attributes.Tech-BaseAttribute)*2
}

func (s *PlayerStats) Damage() float64 {
	return 10 + float64(s.Attributes.Strength-BaseAttribute)*2
}

func (s *PlayerStats) Defense() float64 {
	return float64(max(0, s.Attributes.Endurance-BaseAttribute)) / 2
}

func (s *PlayerStats) MoveSpeed() float64 {
	return domain.PlayerMoveSpeed * (1 + float64(s.Attributes.Agility-BaseAttribute)*0.02)
}

// Apply проецирует профиль в сущность игрока. refill - восстановить здоровье и ману.
func (s *PlayerStats) Apply(p *domain.Entity, refill bool) {
	if c := p.Combat; c != nil {
		c.MaxHealth = s.MaxHealth()
		c.MaxMana = s.MaxMana()
		c.Damage = s.Damage()
		c.Defense = s.Defense()
		if refill {
			c.Health = c.MaxHealth
			c.Mana = c.MaxMana
		}
		c.Health = math.Min(c.Health, c.MaxHealth)
		c.Mana = math.Min(c.Mana, c.MaxMana)
	}
	if pl := p.Player; pl != nil {
		pl.MoveSpeed = s.MoveSpeed()
		pl.Credits = s.Credits
	}
	if ab := p.Ability; ab != nil {
		ab.Learned = append(ab.Learned[:0], s.Learned...)
		ab.Levels = make(map[string]int, len(s.AbilityLevels))
		for k, v := range s.AbilityLevels {
			ab.Levels[k] = v
		}
		ab.Equipped = s.Equipped
	}
}

// Clone - глубокая копия (для снапшотов и сохранения)
func (s PlayerStats) Clone() PlayerStats {
	out := s
	out.Learned = append([]string(nil), s.Learned...)
	out.AbilityLevels = make(map[string]int, len(s.AbilityLevels))
	for k, v := range s.AbilityLevels {
		out.AbilityLevels[k] = v
	}
	return out
}
