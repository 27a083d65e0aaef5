// Package animation drives the line grid over time. It owns the Model,
// advances it on ticks, records pointer clicks as perturbations, and feeds
// the result to a render backend.
//
// Every transition is a plain function from Model to Model. Nothing here
// holds the model implicitly; callers thread it through.
package animation

import (
	"log"

	"chosenoffset.com/linegrid/internal/config"
	"chosenoffset.com/linegrid/internal/core/geometry"
	"chosenoffset.com/linegrid/internal/core/grid"
	"chosenoffset.com/linegrid/internal/core/perturb"
)

// Model is the full animation state at one instant.
type Model struct {
	Time          float64 // accumulated tick deltas, in ms
	Angle         float64 // global rotation in degrees
	Perturbations []perturb.Perturbation
	Origin        geometry.Vector // top-left of the canvas area in screen coordinates
	Pictures      []geometry.Picture
}

// Driver applies transitions to a Model. It carries only configuration and
// is safe to share.
type Driver struct {
	gen          *grid.Generator
	ledger       perturb.Ledger
	angleDivisor float64
	canvasSize   float64
	displaySize  float64
}

// NewDriver builds a driver from the config.
func NewDriver(cfg *config.Config) *Driver {
	return &Driver{
		gen:          cfg.Generator(),
		ledger:       cfg.Ledger(),
		angleDivisor: cfg.AngleDivisor,
		canvasSize:   cfg.CanvasSize,
		displaySize:  float64(cfg.DisplaySize),
	}
}

// Generator returns the grid generator used for frames.
func (d *Driver) Generator() *grid.Generator {
	return d.gen
}

// Init returns the starting model: zero time, no perturbations, zero origin.
func (d *Driver) Init() Model {
	return d.render(Model{})
}

// Tick advances time by dt, recomputes the global angle, drops expired
// perturbations and regenerates the frame.
func (d *Driver) Tick(m Model, dt float64) Model {
	m.Time += dt
	m.Angle = m.Time / d.angleDivisor
	m.Perturbations = d.ledger.Prune(m.Time, m.Perturbations)
	return d.render(m)
}

// Click records a perturbation at a screen position, translated into canvas
// space through the current origin.
func (d *Driver) Click(m Model, screenX, screenY float64) Model {
	return d.ClickCanvas(m, d.ToCanvas(m.Origin, screenX, screenY))
}

// ClickCanvas records a perturbation at a point already in canvas space,
// stamped with the model's current time.
func (d *Driver) ClickCanvas(m Model, at geometry.Vector) Model {
	perts := make([]perturb.Perturbation, len(m.Perturbations), len(m.Perturbations)+1)
	copy(perts, m.Perturbations)
	m.Perturbations = append(perts, d.ledger.Record(m.Time, at))
	return d.render(m)
}

// MeasureSurface stores a new canvas origin.
func (d *Driver) MeasureSurface(m Model, origin geometry.Vector) Model {
	m.Origin = origin
	return m
}

// SurfaceMeasured applies the result of the one-shot measurement task. A
// failed measurement leaves the origin unchanged.
func (d *Driver) SurfaceMeasured(m Model, res Measurement) Model {
	if res.Err != nil {
		log.Printf("Surface measurement failed, keeping origin %v: %v", m.Origin, res.Err)
		return m
	}
	return d.MeasureSurface(m, res.Origin)
}

// ToCanvas converts a screen position into canvas coordinates. The canvas is
// treated as Y-up, so the vertical axis is flipped.
func (d *Driver) ToCanvas(origin geometry.Vector, screenX, screenY float64) geometry.Vector {
	return geometry.Vector{
		X: d.canvasSize * (screenX - origin.X) / d.displaySize,
		Y: d.canvasSize - d.canvasSize*(screenY-origin.Y)/d.displaySize,
	}
}

func (d *Driver) render(m Model) Model {
	m.Pictures = d.gen.Generate(m.Time, m.Perturbations, m.Angle)
	return m
}

// RunTo ticks m forward in steps of at most step until its time reaches at.
// A non-positive step advances in a single tick.
func (d *Driver) RunTo(m Model, at, step float64) Model {
	if step <= 0 {
		step = at - m.Time
	}
	for m.Time < at {
		dt := step
		if m.Time+dt > at {
			dt = at - m.Time
		}
		m = d.Tick(m, dt)
	}
	return m
}
