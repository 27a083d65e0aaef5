package animation

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/linegrid/internal/core/geometry"
)

// ErrNoSurface means the canvas area could not be placed on screen.
var ErrNoSurface = errors.New("render surface unavailable")

// Measurement is the outcome of a surface measurement.
type Measurement struct {
	Origin geometry.Vector
	Err    error
}

// SurfaceProbe locates the canvas area on screen.
type SurfaceProbe interface {
	Measure() (geometry.Vector, error)
}

// CenteredProbe places a square canvas of DisplaySize pixels in the middle
// of a Width x Height screen.
type CenteredProbe struct {
	Width, Height int
	DisplaySize   int
}

// Measure returns the top-left corner of the centered canvas.
func (p CenteredProbe) Measure() (geometry.Vector, error) {
	if p.Width < p.DisplaySize || p.Height < p.DisplaySize {
		return geometry.Vector{}, fmt.Errorf("%w: screen %dx%d cannot hold %dpx canvas",
			ErrNoSurface, p.Width, p.Height, p.DisplaySize)
	}
	return geometry.Vector{
		X: float64(p.Width-p.DisplaySize) / 2,
		Y: float64(p.Height-p.DisplaySize) / 2,
	}, nil
}

// measureOnce runs the probe in the background and delivers exactly one
// Measurement on the returned channel. There is no retry and no timeout.
func measureOnce(probe SurfaceProbe) <-chan Measurement {
	ch := make(chan Measurement, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Surface probe panicked: %v", r)
				ch <- Measurement{Err: fmt.Errorf("%w: %v", ErrNoSurface, r)}
			}
		}()
		origin, err := probe.Measure()
		ch <- Measurement{Origin: origin, Err: err}
	}()
	return ch
}
