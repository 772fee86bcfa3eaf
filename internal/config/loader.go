package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file, relative to the working directory.
const LocalPath = "configs/canyon.yaml"

// Load loads the runtime configuration.
// Search order: customPath -> ~/.canyon/config.yaml -> ./configs/canyon.yaml -> embedded default.
// Keys missing from the chosen file keep their default values.
func Load(customPath string) (Config, error) {
	cfg, err := parse(defaultCanyonYAML, Default())
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		parsed, err := parse(data, cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return parsed, validate(parsed, customPath)
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{UserConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if parsed, err := parse(data, cfg); err == nil {
			return parsed, validate(parsed, path)
		}
	}

	return cfg, nil
}

// parse decodes data on top of base.
func parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func validate(cfg Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".canyon", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
