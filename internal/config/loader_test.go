package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFlappyConfigValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseFlappy(GetDefaultYAML("flappy"))
	if err != nil {
		t.Fatalf("ParseFlappy(embedded) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults drifted from DefaultFlappyConfig():\n got %+v\nwant %+v", cfg, DefaultFlappyConfig())
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestParseFlappyPartialOverride(t *testing.T) {
	cfg, err := ParseFlappy([]byte("physics:\n  gravity: 20\nobstacles:\n  refill: windowed\n"))
	if err != nil {
		t.Fatalf("ParseFlappy failed: %v", err)
	}
	if cfg.Physics.Gravity != 20 {
		t.Errorf("gravity = %g, expected 20", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Refill != RefillWindowed {
		t.Errorf("refill = %q, expected windowed", cfg.Obstacles.Refill)
	}
	// Untouched keys keep defaults
	if cfg.World.ColumnHeight != 11 || cfg.Obstacles.BatchSize != 10 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestParseFlappyRejectsBadYAML(t *testing.T) {
	if _, err := ParseFlappy([]byte("world: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"gap equals column height", func(c *FlappyConfig) { c.World.GapHeight = c.World.ColumnHeight }},
		{"gap larger than column", func(c *FlappyConfig) { c.World.GapHeight = 20 }},
		{"zero gap", func(c *FlappyConfig) { c.World.GapHeight = 0 }},
		{"zero column", func(c *FlappyConfig) { c.World.ColumnHeight = 0 }},
		{"zero view width", func(c *FlappyConfig) { c.World.ViewWidth = 0 }},
		{"no forward speed", func(c *FlappyConfig) { c.Physics.MoveSpeed = 0 }},
		{"negative cap", func(c *FlappyConfig) { c.Physics.MaxAcceleration = -1 }},
		{"player too big for gap", func(c *FlappyConfig) { c.Player.Size = 3 }},
		{"player outside view", func(c *FlappyConfig) { c.Player.StartX = 50 }},
		{"player below ground", func(c *FlappyConfig) { c.Player.StartY = 10.5 }},
		{"empty batch", func(c *FlappyConfig) { c.Obstacles.BatchSize = 0 }},
		{"zero spacing", func(c *FlappyConfig) { c.Obstacles.Spacing = 0 }},
		{"negative margin", func(c *FlappyConfig) { c.Obstacles.RetireMargin = -1 }},
		{"unknown refill", func(c *FlappyConfig) { c.Obstacles.Refill = "sometimes" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  batch_size: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if cfg.Obstacles.BatchSize != 4 {
		t.Errorf("batch_size = %d, expected 4", cfg.Obstacles.BatchSize)
	}
}

func TestLoadFlappyCustomPathMissing(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadFlappyCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("world:\n  gap_height: 11\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFlappy(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadFlappySearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := []byte("obstacles:\n  spacing: 5\n")
	if err := os.WriteFile(filepath.Join(work, "configs", "flappy.yaml"), local, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if cfg.Obstacles.Spacing != 5 {
		t.Errorf("local config not used, spacing = %g", cfg.Obstacles.Spacing)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	user := []byte("obstacles:\n  spacing: 6\n")
	if err := os.WriteFile(filepath.Join(userDir, "flappy.yaml"), user, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if cfg.Obstacles.Spacing != 6 {
		t.Errorf("user config not preferred, spacing = %g", cfg.Obstacles.Spacing)
	}
}
