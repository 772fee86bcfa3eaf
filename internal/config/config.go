// Package config provides YAML-based runtime configuration for Canyon Runner.
// Only platform settings live here; gameplay stats are fixed in the game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config is the complete runtime configuration.
type Config struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Player  PlayerConfig  `yaml:"player"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// RuntimeConfig controls the simulation clock.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"` // ticks per second
	Seed     int64 `yaml:"seed"`      // 0 = seed from the clock
}

// PlayerConfig holds the default player identity.
type PlayerConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig selects the leaderboard backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Limits for user-supplied values.
const (
	MinTickRate   = 1
	MaxTickRate   = 120
	MaxNameLength = 10
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks the configuration for values the platform cannot use.
func (c Config) Validate() error {
	if c.Runtime.TickRate < MinTickRate || c.Runtime.TickRate > MaxTickRate {
		return fmt.Errorf("%w: runtime.tick_rate %d not in [%d, %d]",
			ErrInvalid, c.Runtime.TickRate, MinTickRate, MaxTickRate)
	}
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("%w: storage.backend %q", ErrInvalid, c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path is empty", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if err := ValidateName(c.Player.Name); err != nil {
		return fmt.Errorf("player.name: %w", err)
	}
	return nil
}

// ValidateName reports whether name can be written to the leaderboard.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalid)
	case len(name) > MaxNameLength:
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalid, MaxNameLength)
	case strings.ContainsRune(name, ','):
		return fmt.Errorf("%w: name contains a comma", ErrInvalid)
	}
	return nil
}

// LogLevel returns the parsed log level, or info if it cannot be parsed.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
