// Package raster draws a frame into a PNG snapshot.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"chosenoffset.com/linegrid/internal/config"
	"chosenoffset.com/linegrid/internal/core/geometry"
)

// Options controls the snapshot.
type Options struct {
	CanvasSize  float64
	DisplaySize int
	Stroke      color.Color
	Background  color.Color
	StrokeWidth float64 // canvas units
}

// OptionsFromConfig maps animation config onto snapshot options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		CanvasSize:  cfg.CanvasSize,
		DisplaySize: cfg.DisplaySize,
		Stroke:      cfg.Stroke(),
		Background:  cfg.Background(),
		StrokeWidth: cfg.StrokeWidth,
	}
}

// Draw renders pictures into a DisplaySize square image. Lines are rotated
// about their box center before being added to the path.
func Draw(pictures []geometry.Picture, opts Options) image.Image {
	return draw(pictures, opts).Image()
}

// Encode renders pictures and writes them to w as PNG.
func Encode(w io.Writer, pictures []geometry.Picture, opts Options) error {
	if err := draw(pictures, opts).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SaveFile renders pictures into a PNG file at path.
func SaveFile(path string, pictures []geometry.Picture, opts Options) error {
	if err := draw(pictures, opts).SavePNG(path); err != nil {
		return fmt.Errorf("failed to save png: %w", err)
	}
	return nil
}

func draw(pictures []geometry.Picture, opts Options) *gg.Context {
	dc := gg.NewContext(opts.DisplaySize, opts.DisplaySize)
	if opts.Background != nil {
		dc.SetColor(opts.Background)
		dc.Clear()
	}

	scale := float64(opts.DisplaySize) / opts.CanvasSize
	dc.Scale(scale, scale)

	for _, p := range pictures {
		angle, ok := p.Shape.IsLine()
		if !ok {
			continue
		}
		start, end := geometry.HorizontalDiameter(p.Box)
		c := p.Box.Center()

		dc.Push()
		dc.RotateAbout(gg.Radians(angle), c.X, c.Y)
		dc.DrawLine(start.X, start.Y, end.X, end.Y)
		dc.Pop()
	}

	dc.SetColor(opts.Stroke)
	dc.SetLineWidth(opts.StrokeWidth * scale)
	dc.Stroke()
	return dc
}
