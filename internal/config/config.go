// Package config holds the tunables of the line grid animation.
// Values are loaded from an optional JSON file layered over the defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/linegrid/internal/core/grid"
	"chosenoffset.com/linegrid/internal/core/perturb"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all animation settings
type Config struct {
	// Grid layout
	AxisCount   int     `json:"axis_count"`   // Cells per axis
	CanvasSize  float64 `json:"canvas_size"`  // Logical canvas edge (viewBox)
	AnglePolicy string  `json:"angle_policy"` // "additive" or "multiplicative"

	// Timing
	AngleDivisor float64 `json:"angle_divisor"` // angle = time / divisor
	DecayWindow  float64 `json:"decay_window"`  // Perturbation lifetime in ms

	// Presentation
	DisplaySize     int     `json:"display_size"` // Device pixels the canvas maps to
	WindowWidth     int     `json:"window_width"`
	WindowHeight    int     `json:"window_height"`
	StrokeColor     string  `json:"stroke_color"`
	BackgroundColor string  `json:"background_color"`
	StrokeWidth     float64 `json:"stroke_width"` // In canvas units
	ShowHUD         bool    `json:"show_hud"`
}

// DefaultConfig returns the reference configuration
func DefaultConfig() *Config {
	return &Config{
		AxisCount:       grid.DefaultAxisCount,
		CanvasSize:      grid.DefaultCanvasSize,
		AnglePolicy:     grid.Additive.String(),
		AngleDivisor:    100,
		DecayWindow:     perturb.DefaultWindow,
		DisplaySize:     800,
		WindowWidth:     960,
		WindowHeight:    880,
		StrokeColor:     "#1d3557",
		BackgroundColor: "#f1faee",
		StrokeWidth:     2,
		ShowHUD:         true,
	}
}

// Load loads config from a JSON file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every numeric setting is usable as a divisor or size
// and that the colors and policy name parse.
func (c *Config) Validate() error {
	switch {
	case c.AxisCount <= 0:
		return fmt.Errorf("%w: axis_count must be positive, got %d", ErrInvalid, c.AxisCount)
	case c.CanvasSize <= 0:
		return fmt.Errorf("%w: canvas_size must be positive, got %v", ErrInvalid, c.CanvasSize)
	case c.AngleDivisor <= 0:
		return fmt.Errorf("%w: angle_divisor must be positive, got %v", ErrInvalid, c.AngleDivisor)
	case c.DecayWindow <= 0:
		return fmt.Errorf("%w: decay_window must be positive, got %v", ErrInvalid, c.DecayWindow)
	case c.DisplaySize <= 0:
		return fmt.Errorf("%w: display_size must be positive, got %d", ErrInvalid, c.DisplaySize)
	case c.WindowWidth < c.DisplaySize || c.WindowHeight < c.DisplaySize:
		return fmt.Errorf("%w: window %dx%d smaller than display_size %d", ErrInvalid, c.WindowWidth, c.WindowHeight, c.DisplaySize)
	}

	if _, err := grid.ParseAnglePolicy(c.AnglePolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := colorful.Hex(c.StrokeColor); err != nil {
		return fmt.Errorf("%w: stroke_color: %v", ErrInvalid, err)
	}
	if _, err := colorful.Hex(c.BackgroundColor); err != nil {
		return fmt.Errorf("%w: background_color: %v", ErrInvalid, err)
	}
	return nil
}

// Generator builds the grid generator described by the config.
func (c *Config) Generator() *grid.Generator {
	policy, _ := grid.ParseAnglePolicy(c.AnglePolicy)
	return grid.New(
		grid.WithAxisCount(c.AxisCount),
		grid.WithCanvasSize(c.CanvasSize),
		grid.WithAnglePolicy(policy),
		grid.WithLedger(c.Ledger()),
	)
}

// Ledger returns the perturbation ledger for the configured decay window.
func (c *Config) Ledger() perturb.Ledger {
	return perturb.NewLedger(c.DecayWindow)
}

// Stroke returns the parsed stroke color, black if it does not parse.
func (c *Config) Stroke() color.Color {
	return parseColor(c.StrokeColor, color.Black)
}

// Background returns the parsed background color, white if it does not parse.
func (c *Config) Background() color.Color {
	return parseColor(c.BackgroundColor, color.White)
}

// Scale is the number of device pixels per canvas unit.
func (c *Config) Scale() float64 {
	return float64(c.DisplaySize) / c.CanvasSize
}

func parseColor(hex string, fallback color.Color) color.Color {
	col, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
