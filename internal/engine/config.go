package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни.
	// Level N Seed = xxhash(MasterSeed, N)
	Seed int64 `yaml:"seed"`

	StartLevel  int    `yaml:"start_level"`
	PlayerID    string `yaml:"player_id"`
	PlayerClass string `yaml:"player_class"`

	// TickRate - кадров симуляции в секунду
	TickRate int `yaml:"tick_rate"`
	// MaxFrameDelta - потолок dt одного кадра (после паузы или лага)
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
	// CommandBuffer - емкость очереди внешних команд
	CommandBuffer int `yaml:"command_buffer"`

	// CameraLerp - доля пути камеры к цели за кадр
	CameraLerp  float64 `yaml:"camera_lerp"`
	ViewportW   float64 `yaml:"viewport_w"`
	ViewportH   float64 `yaml:"viewport_h"`
	AutoAdvance bool    `yaml:"auto_advance"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:          time.Now().UnixNano(),
		StartLevel:    1,
		PlayerID:      "player",
		PlayerClass:   ClassSamurai,
		TickRate:      60,
		MaxFrameDelta: 0.1,
		CommandBuffer: 256,
		CameraLerp:    0.1,
		ViewportW:     1280,
		ViewportH:     720,
	}
}

// LoadConfig читает YAML поверх значений по умолчанию
func LoadConfig(r io.Reader) (Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfigFile - LoadConfig из файла
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewConfig(), fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate проверяет диапазоны
func (c Config) Validate() error {
	if c.StartLevel < 1 || c.StartLevel > 100 {
		return fmt.Errorf("start_level %d out of 1..100", c.StartLevel)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive")
	}
	if c.PlayerID == "" {
		return fmt.Errorf("player_id is required")
	}
	if !IsValidClass(c.PlayerClass) {
		return fmt.Errorf("unknown player_class %q", c.PlayerClass)
	}
	return nil
}

// TickInterval - длительность кадра
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
