package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at fresh temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatch(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults %+v differ from Default() %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathKeepsMissingKeys(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "custom.yaml")
	writeFile(t, path, "runtime:\n  tick_rate: 30\nplayer:\n  name: amy\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 30 || cfg.Player.Name != "amy" {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Storage != Default().Storage || cfg.Log != Default().Log {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)
	if _, err := Load("/nonexistent/canyon.yaml"); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		local    string
		expected string
	}{
		{"user only", "player:\n  name: user\n", "", "user"},
		{"local only", "", "player:\n  name: local\n", "local"},
		{"user wins", "player:\n  name: user\n", "player:\n  name: local\n", "user"},
		{"neither", "", "", "runner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, work := isolate(t)
			if tt.user != "" {
				writeFile(t, filepath.Join(home, ".canyon", "config.yaml"), tt.user)
			}
			if tt.local != "" {
				writeFile(t, filepath.Join(work, LocalPath), tt.local)
			}

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Player.Name != tt.expected {
				t.Errorf("player.name = %q, expected %q", cfg.Player.Name, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"tick rate zero", func(c *Config) { c.Runtime.TickRate = 0 }},
		{"tick rate too high", func(c *Config) { c.Runtime.TickRate = MaxTickRate + 1 }},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }},
		{"empty path", func(c *Config) { c.Storage.Path = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"empty name", func(c *Config) { c.Player.Name = "" }},
		{"long name", func(c *Config) { c.Player.Name = "abcdefghijk" }},
		{"comma in name", func(c *Config) { c.Player.Name = "a,b" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadInvalidValue(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "bad.yaml")
	writeFile(t, path, "storage:\n  backend: redis\n")

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, expected ErrInvalid", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := isolate(t)

	if got := ExpandHome("~/.canyon/x"); got != filepath.Join(home, ".canyon", "x") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "amy", true},
		{"max length", "abcdefghij", true},
		{"inner space", "big al", true},
		{"blank", "   ", false},
		{"too long", "abcdefghijk", false},
		{"comma", "x,y", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err == nil) != tt.valid {
				t.Errorf("ValidateName(%q) = %v, expected valid=%v", tt.input, err, tt.valid)
			}
		})
	}
}
