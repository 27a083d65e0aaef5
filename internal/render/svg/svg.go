// Package svg serializes a frame as an SVG document. Each line picture
// becomes a <line> along the box's horizontal diameter with a
// rotate(angle cx cy) transform about the box center.
package svg

import (
	"fmt"
	"io"
	"os"
	"strconv"

	svgo "github.com/ajstarks/svgo/float"

	"chosenoffset.com/linegrid/internal/config"
	"chosenoffset.com/linegrid/internal/core/geometry"
)

// Options controls the document frame.
type Options struct {
	Title       string
	CanvasSize  float64 // viewBox edge
	DisplaySize float64 // width/height attributes
	Stroke      string
	Background  string  // empty for transparent
	StrokeWidth float64 // canvas units
}

// OptionsFromConfig maps animation config onto document options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Title:       "linegrid",
		CanvasSize:  cfg.CanvasSize,
		DisplaySize: float64(cfg.DisplaySize),
		Stroke:      cfg.StrokeColor,
		Background:  cfg.BackgroundColor,
		StrokeWidth: cfg.StrokeWidth,
	}
}

// Write emits one frame to w.
func Write(w io.Writer, pictures []geometry.Picture, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)

	size := opts.CanvasSize
	canvas.Startview(opts.DisplaySize, opts.DisplaySize, 0, 0, size, size)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	if opts.Background != "" {
		canvas.Rect(0, 0, size, size, "fill:"+opts.Background)
	}

	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%s;fill:none", opts.Stroke, formatFloat(opts.StrokeWidth)))
	for _, p := range pictures {
		angle, ok := p.Shape.IsLine()
		if !ok {
			continue
		}
		start, end := geometry.HorizontalDiameter(p.Box)
		canvas.Line(start.X, start.Y, end.X, end.Y, rotateAttr(angle, p.Box.Center()))
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("failed to write svg: %w", ew.err)
	}
	return nil
}

// WriteFile writes one frame to path, replacing any existing file.
func WriteFile(path string, pictures []geometry.Picture, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create svg file: %w", err)
	}
	if err := Write(f, pictures, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close svg file: %w", err)
	}
	return nil
}

func rotateAttr(angle float64, center geometry.Vector) string {
	return fmt.Sprintf(`transform="rotate(%s %s %s)"`,
		formatFloat(angle), formatFloat(center.X), formatFloat(center.Y))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter remembers the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
