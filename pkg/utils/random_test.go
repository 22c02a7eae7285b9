package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, DeriveSeed(7, 42), DeriveSeed(7, 42), "same inputs must give the same seed")
	assert.NotEqual(t, DeriveSeed(7, 42), DeriveSeed(7, 43))
	assert.NotEqual(t, DeriveSeed(7, 42), DeriveSeed(8, 42))
	assert.GreaterOrEqual(t, DeriveSeed(-1, 100), int64(0))
}

func TestRandRange(t *testing.T) {
	rng := NewRand(1, 1)
	for i := 0; i < 200; i++ {
		v := RandRange(rng, -2, 3)
		if v < -2 || v > 3 {
			t.Fatalf("RandRange out of bounds: %d", v)
		}
	}
	assert.Equal(t, 5, RandRange(rng, 5, 5))
	assert.Equal(t, 5, RandRange(rng, 5, 1))
}

func TestGenerateID(t *testing.T) {
	a := GenerateID("proj_")
	b := GenerateID("proj_")
	assert.True(t, strings.HasPrefix(a, "proj_"))
	assert.Len(t, a, len("proj_")+8)
	assert.NotEqual(t, a, b)
}
