package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	src := `
seed: 1234
start_level: 7
player_class: netrunner
tick_rate: 30
auto_advance: true
`
	cfg, err := LoadConfig(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 7, cfg.StartLevel)
	assert.Equal(t, ClassNetrunner, cfg.PlayerClass)
	assert.True(t, cfg.AutoAdvance)
	assert.Equal(t, time.Second/30, cfg.TickInterval())
	// Не указанное остается по умолчанию
	assert.Equal(t, "player", cfg.PlayerID)
	assert.Equal(t, 1280.0, cfg.ViewportW)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.StartLevel)
	assert.Equal(t, 60, cfg.TickRate)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Level too high", "start_level: 101"},
		{"Unknown class", "player_class: paladin"},
		{"Zero tick rate", "tick_rate: 0"},
		{"Empty player", "player_id: \"\""},
		{"Broken yaml", "seed: [1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
