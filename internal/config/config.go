package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"workplay/internal/core/model"
	"workplay/internal/core/timekeeper"
)

const (
	MinTickInterval = 10 * time.Millisecond
	MaxTickInterval = 10 * time.Second
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds startup options. Nothing here is written back to disk.
// A zero TickInterval lets the timekeeper pick the default for Mode.
type Config struct {
	WorkMinutes  int
	PlayMinutes  int
	TickInterval time.Duration
	Mode         timekeeper.Mode
	LogLevel     string
	Language     string
}

// Default returns the built-in startup options.
func Default() Config {
	durations := model.DefaultDurations()
	return Config{
		WorkMinutes:  durations.WorkMinutes,
		PlayMinutes:  durations.PlayMinutes,
		Mode:         timekeeper.ModePolling,
		LogLevel:     "info",
	}
}

// Durations converts the configured minutes.
func (config Config) Durations() model.Durations {
	return model.Durations{
		WorkMinutes: config.WorkMinutes,
		PlayMinutes: config.PlayMinutes,
	}
}

// TimeKeeperConfig converts config to runtime options.
func (config Config) TimeKeeperConfig() timekeeper.Config {
	return timekeeper.Config{
		TickInterval: config.TickInterval,
		Mode:         config.Mode,
	}
}

// Level returns the hclog level for LogLevel.
func (config Config) Level() hclog.Level {
	return hclog.LevelFromString(config.LogLevel)
}

// Validate checks every field.
func (config Config) Validate() error {
	if err := config.Durations().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if config.TickInterval != 0 && (config.TickInterval < MinTickInterval || config.TickInterval > MaxTickInterval) {
		return fmt.Errorf("%w: tick interval %s (want %s-%s)", ErrInvalidConfig, config.TickInterval, MinTickInterval, MaxTickInterval)
	}
	if _, ok := timekeeper.ParseMode(string(config.Mode)); !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, config.Mode)
	}
	if config.Level() == hclog.NoLevel {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, config.LogLevel)
	}
	return nil
}
