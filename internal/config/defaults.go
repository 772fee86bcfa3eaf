package config

import (
	_ "embed"
)

//go:embed defaults/canyon.yaml
var defaultCanyonYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Runtime: RuntimeConfig{
			TickRate: 20,
			Seed:     0,
		},
		Player: PlayerConfig{
			Name: "runner",
		},
		Storage: StorageConfig{
			Backend: "file",
			Path:    "~/.canyon/scores.txt",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.canyon/canyon.log",
		},
	}
}
