package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"chosenoffset.com/linegrid/internal/config"
	"chosenoffset.com/linegrid/internal/core/geometry"
	"chosenoffset.com/linegrid/internal/core/grid"
)

func testOptions() Options {
	return Options{
		CanvasSize:  1000,
		DisplaySize: 100,
		Stroke:      color.Black,
		Background:  color.White,
		StrokeWidth: 20,
	}
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestDrawHorizontalLine(t *testing.T) {
	pictures := []geometry.Picture{{
		Box:   geometry.Box{TopLeft: geometry.Vector{X: 100, Y: 400}, BottomRight: geometry.Vector{X: 900, Y: 600}},
		Shape: geometry.Line(0),
	}}

	img := Draw(pictures, testOptions())

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("Expected 100x100 image, got %v", b)
	}
	if !isDark(img.At(50, 50)) {
		t.Error("Expected the line to cross the center")
	}
	if isDark(img.At(50, 20)) {
		t.Error("Expected background above the line")
	}
}

func TestDrawRotatedLine(t *testing.T) {
	pictures := []geometry.Picture{{
		Box:   geometry.Box{TopLeft: geometry.Vector{X: 100, Y: 400}, BottomRight: geometry.Vector{X: 900, Y: 600}},
		Shape: geometry.Line(90),
	}}

	img := Draw(pictures, testOptions())

	if !isDark(img.At(50, 20)) {
		t.Error("Expected a vertical line after a 90 degree rotation")
	}
	if isDark(img.At(20, 50)) {
		t.Error("Expected no horizontal line after rotation")
	}
}

func TestDrawSkipsBlank(t *testing.T) {
	pictures := []geometry.Picture{{
		Box:   geometry.Box{TopLeft: geometry.Vector{X: 100, Y: 400}, BottomRight: geometry.Vector{X: 900, Y: 600}},
		Shape: geometry.Blank(),
	}}

	if isDark(Draw(pictures, testOptions()).At(50, 50)) {
		t.Error("Expected blank shape to draw nothing")
	}
}

func TestEncodeAndSave(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DisplaySize = 64
	pictures := grid.New(grid.WithAxisCount(3)).Generate(0, nil, 0)

	var buf bytes.Buffer
	if err := Encode(&buf, pictures, OptionsFromConfig(cfg)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("Expected width 64, got %d", img.Bounds().Dx())
	}

	if err := SaveFile(filepath.Join(t.TempDir(), "frame.png"), pictures, OptionsFromConfig(cfg)); err != nil {
		t.Errorf("SaveFile failed: %v", err)
	}
}
