package geometry

import "math"

// HorizontalDiameter returns the unrotated line of a box: from the vertical
// midpoint of its left edge to the vertical midpoint of its right edge.
func HorizontalDiameter(b Box) (start, end Vector) {
	midY := (b.TopLeft.Y + b.BottomRight.Y) / 2
	return Vector{X: b.TopLeft.X, Y: midY}, Vector{X: b.BottomRight.X, Y: midY}
}

// RotateAbout rotates p by degrees around pivot. Positive angles turn
// clockwise in a Y-down space, matching SVG's rotate().
func RotateAbout(p, pivot Vector, degrees float64) Vector {
	rad := Radians(degrees)
	sin, cos := math.Sincos(rad)
	d := p.Sub(pivot)
	return Vector{
		X: pivot.X + d.X*cos - d.Y*sin,
		Y: pivot.Y + d.X*sin + d.Y*cos,
	}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Endpoints returns the final endpoints of a line picture after rotation
// about the box center. Renderers that can express a rotation transform
// should prefer HorizontalDiameter plus a transform; this is for backends
// and tests that need absolute coordinates.
func (p Picture) Endpoints() (start, end Vector, ok bool) {
	angle, isLine := p.Shape.IsLine()
	if !isLine {
		return Vector{}, Vector{}, false
	}
	a, b := HorizontalDiameter(p.Box)
	c := p.Box.Center()
	return RotateAbout(a, c, angle), RotateAbout(b, c, angle), true
}
