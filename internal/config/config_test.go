package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/linegrid/internal/core/grid"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
	if cfg.AxisCount != 70 || cfg.AngleDivisor != 100 || cfg.DecayWindow != 3000 {
		t.Errorf("Unexpected reference values: %+v", cfg)
	}
	if cfg.Scale() != 0.8 {
		t.Errorf("Expected scale 0.8, got %v", cfg.Scale())
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.AxisCount != grid.DefaultAxisCount {
		t.Errorf("Expected default axis count, got %d", cfg.AxisCount)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linegrid.json")
	data := `{"axis_count": 12, "angle_policy": "multiplicative"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.AxisCount != 12 {
		t.Errorf("Expected axis_count 12, got %d", cfg.AxisCount)
	}
	if cfg.DecayWindow != 3000 {
		t.Errorf("Expected default decay_window to survive, got %v", cfg.DecayWindow)
	}

	g := cfg.Generator()
	if g.AxisCount() != 12 || g.Policy() != grid.Multiplicative {
		t.Errorf("Generator does not reflect config: axis %d policy %v", g.AxisCount(), g.Policy())
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{axis_count"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero axis", func(c *Config) { c.AxisCount = 0 }},
		{"negative canvas", func(c *Config) { c.CanvasSize = -1 }},
		{"zero divisor", func(c *Config) { c.AngleDivisor = 0 }},
		{"zero window", func(c *Config) { c.DecayWindow = 0 }},
		{"zero display", func(c *Config) { c.DisplaySize = 0 }},
		{"window too small", func(c *Config) { c.WindowWidth = 100 }},
		{"bad policy", func(c *Config) { c.AnglePolicy = "spiral" }},
		{"bad stroke", func(c *Config) { c.StrokeColor = "blue-ish" }},
		{"bad background", func(c *Config) { c.BackgroundColor = "#12" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrokeColor = "#ff0000"

	if got := cfg.Stroke(); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected red, got %v", got)
	}

	cfg.BackgroundColor = "nonsense"
	if got := cfg.Background(); got != color.White {
		t.Errorf("Expected white fallback, got %v", got)
	}
}
