package domain

import "strings"

// EntityType - тег сущности (для снапшотов и логов, поведение задают компоненты)
type EntityType uint8

const (
	EntityTypeUnknown EntityType = iota
	EntityTypePlayer
	EntityTypeEnemy
	EntityTypeBoss
	EntityTypeProjectile
	EntityTypePlatform
	EntityTypePickup
	EntityTypeSummon
	EntityTypeEffect
)

var entityTypeToString = map[EntityType]string{
	EntityTypePlayer:     "PLAYER",
	EntityTypeEnemy:      "ENEMY",
	EntityTypeBoss:       "BOSS",
	EntityTypeProjectile: "PROJECTILE",
	EntityTypePlatform:   "PLATFORM",
	EntityTypePickup:     "PICKUP",
	EntityTypeSummon:     "SUMMON",
	EntityTypeEffect:     "EFFECT",
}

var entityTypeStringToType = map[string]EntityType{
	"PLAYER":     EntityTypePlayer,
	"ENEMY":      EntityTypeEnemy,
	"BOSS":       EntityTypeBoss,
	"PROJECTILE": EntityTypeProjectile,
	"PLATFORM":   EntityTypePlatform,
	"PICKUP":     EntityTypePickup,
	"SUMMON":     EntityTypeSummon,
	"EFFECT":     EntityTypeEffect,
}

// String возвращает строковое представление (для логов и снапшотов)
func (e EntityType) String() string {
	if val, ok := entityTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityType конвертирует строку в Enum (нужно для шаблонов уровней)
func ParseEntityType(s string) EntityType {
	if val, ok := entityTypeStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EntityTypeUnknown
}

// Vec2 - точка или вектор в мировых координатах (ось Y направлена вниз)
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size - габариты сущности
type Size struct {
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Rect - AABB. X,Y - левый верхний угол.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Transform - положение сущности
type Transform struct {
	Position Vec2    `json:"position"`
	Rotation float64 `json:"rotation"`
	Scale    Vec2    `json:"scale"`
}

// NewTransform создает трансформ с единичным масштабом
func NewTransform(x, y float64) Transform {
	return Transform{Position: Vec2{X: x, Y: y}, Scale: Vec2{X: 1, Y: 1}}
}
