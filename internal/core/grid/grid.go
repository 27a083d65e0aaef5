// Package grid builds one frame of the animation: an N x N grid of cells,
// each a displaced box holding a rotated line.
package grid

import (
	"fmt"

	"chosenoffset.com/linegrid/internal/core/geometry"
	"chosenoffset.com/linegrid/internal/core/perturb"
)

// Reference configuration.
const (
	DefaultAxisCount  = 70
	DefaultCanvasSize = 1000.0
)

// AnglePolicy selects how a cell's rotation is derived from the global angle.
type AnglePolicy int

const (
	// Additive: angle + 0.5*(xi-N) + 0.4*(yi-N). Produces the swirl.
	Additive AnglePolicy = iota
	// Multiplicative: angle * (xi-N) * (yi-N).
	Multiplicative
)

// String returns the config name of the policy.
func (p AnglePolicy) String() string {
	switch p {
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	default:
		return fmt.Sprintf("AnglePolicy(%d)", int(p))
	}
}

// ParseAnglePolicy maps a config name to a policy.
func ParseAnglePolicy(name string) (AnglePolicy, error) {
	switch name {
	case "", "additive":
		return Additive, nil
	case "multiplicative":
		return Multiplicative, nil
	default:
		return Additive, fmt.Errorf("unknown angle policy %q", name)
	}
}

// Generator produces frames for a fixed grid layout. It holds no mutable
// state; Generate is safe to call from any goroutine.
type Generator struct {
	axisCount  int
	canvasSize float64
	boxSize    float64
	policy     AnglePolicy
	ledger     perturb.Ledger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithAxisCount sets the number of cells per axis. Values below 1 are ignored.
func WithAxisCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.axisCount = n
		}
	}
}

// WithCanvasSize sets the logical canvas edge length.
func WithCanvasSize(size float64) Option {
	return func(g *Generator) {
		if size > 0 {
			g.canvasSize = size
		}
	}
}

// WithAnglePolicy selects the rotation formula.
func WithAnglePolicy(p AnglePolicy) Option {
	return func(g *Generator) {
		g.policy = p
	}
}

// WithLedger sets the decay window used for displacement.
func WithLedger(l perturb.Ledger) Option {
	return func(g *Generator) {
		g.ledger = l
	}
}

// New returns a generator using the reference configuration overridden by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		axisCount:  DefaultAxisCount,
		canvasSize: DefaultCanvasSize,
		policy:     Additive,
		ledger:     perturb.Default,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.boxSize = g.canvasSize / float64(g.axisCount)
	return g
}

// AxisCount returns the number of cells per axis.
func (g *Generator) AxisCount() int { return g.axisCount }

// BoxSize returns the undisplaced edge length of one cell.
func (g *Generator) BoxSize() float64 { return g.boxSize }

// CanvasSize returns the logical canvas edge length.
func (g *Generator) CanvasSize() float64 { return g.canvasSize }

// Policy returns the active angle policy.
func (g *Generator) Policy() AnglePolicy { return g.policy }

// CellBox returns the undisplaced box of cell (xi, yi). Cells are indexed
// 1..AxisCount, so the first row and column of the canvas stay empty and
// the last cell reaches one box past the canvas edge.
func (g *Generator) CellBox(xi, yi int) geometry.Box {
	x, y := float64(xi), float64(yi)
	return geometry.Box{
		TopLeft:     geometry.Vector{X: g.boxSize * x, Y: g.boxSize * y},
		BottomRight: geometry.Vector{X: g.boxSize * (x + 1), Y: g.boxSize * (y + 1)},
	}
}

// CellAngle returns the rotation in degrees of the line in cell (xi, yi)
// for a given global angle.
func (g *Generator) CellAngle(angle float64, xi, yi int) float64 {
	dx := float64(xi - g.axisCount)
	dy := float64(yi - g.axisCount)
	if g.policy == Multiplicative {
		return angle * dx * dy
	}
	return angle + 0.5*dx + 0.4*dy
}

// Offsets returns the summed displacement of the top-left and bottom-right
// corners of box in units of boxes. Each perturbation pulls a corner toward
// its click point by the corner-to-click distance over the grid extent,
// scaled by how much of its decay window remains.
func (g *Generator) Offsets(box geometry.Box, time float64, perturbations []perturb.Perturbation) (topLeft, bottomRight geometry.Vector) {
	extent := float64(g.axisCount) * g.boxSize
	for _, p := range perturbations {
		f := g.ledger.TimeFactor(p, time)
		topLeft = topLeft.Add(p.At.Sub(box.TopLeft).Scale(f / extent))
		bottomRight = bottomRight.Add(p.At.Sub(box.BottomRight).Scale(f / extent))
	}
	return topLeft, bottomRight
}

// Displace applies the perturbation offsets to box. Inverted extents are
// kept.
func (g *Generator) Displace(box geometry.Box, time float64, perturbations []perturb.Perturbation) geometry.Box {
	if len(perturbations) == 0 {
		return box
	}
	tl, br := g.Offsets(box, time, perturbations)
	return geometry.Box{
		TopLeft:     box.TopLeft.Add(tl.Scale(g.boxSize)),
		BottomRight: box.BottomRight.Add(br.Scale(g.boxSize)),
	}
}

// Generate builds a full frame. Pictures are ordered column by column:
// xi outer, yi inner, both ascending from 1. The result depends only on the
// arguments.
func (g *Generator) Generate(time float64, perturbations []perturb.Perturbation, angle float64) []geometry.Picture {
	n := g.axisCount
	pictures := make([]geometry.Picture, n*n)
	for xi := 1; xi <= n; xi++ {
		for yi := 1; yi <= n; yi++ {
			pictures[g.index(xi, yi)] = geometry.Picture{
				Box:   g.Displace(g.CellBox(xi, yi), time, perturbations),
				Shape: geometry.Line(g.CellAngle(angle, xi, yi)),
			}
		}
	}
	return pictures
}

// index returns the position of cell (xi, yi) in a generated frame.
func (g *Generator) index(xi, yi int) int {
	return (xi-1)*g.axisCount + (yi - 1)
}
