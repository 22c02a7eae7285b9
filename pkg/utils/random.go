package utils

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// GenerateID создает уникальный ID для сущностей, появившихся во время матча
// (снаряды, призванные миньоны, выпавший лут).
func GenerateID(prefix string) string {
	return prefix + uuid.NewString()[:8]
}

// DeriveSeed смешивает мастер-сид и номер уровня.
// Level N Seed = xxhash(MasterSeed || N), чтобы соседние уровни не давали похожих раскладок.
func DeriveSeed(master int64, level int) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(master))
	binary.LittleEndian.PutUint64(buf[8:], uint64(level))
	return int64(xxhash.Sum64(buf[:]) >> 1)
}

// NewRand создает локальный генератор для уровня.
func NewRand(master int64, level int) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(master, level)))
}

// RandRange возвращает число в [min, max].
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// RandFloat возвращает число в [min, max).
func RandFloat(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
