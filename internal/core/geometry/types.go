// Package geometry holds the value types shared by the grid generator and
// the render backends. All coordinates are in logical canvas units.
package geometry

// Vector is a point or offset in canvas space.
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Box is the bounding rectangle of one grid cell after displacement.
// TopLeft is not guaranteed to be above or left of BottomRight: a strong
// displacement can invert the extents and that is kept as is.
type Box struct {
	TopLeft     Vector
	BottomRight Vector
}

// Center returns the midpoint of the box.
func (b Box) Center() Vector {
	return Vector{
		X: (b.TopLeft.X + b.BottomRight.X) / 2,
		Y: (b.TopLeft.Y + b.BottomRight.Y) / 2,
	}
}

// Width is signed; it goes negative when the extents are inverted.
func (b Box) Width() float64 {
	return b.BottomRight.X - b.TopLeft.X
}

// Height is signed like Width.
func (b Box) Height() float64 {
	return b.BottomRight.Y - b.TopLeft.Y
}

// ShapeKind tags the variant held by a Shape.
type ShapeKind int

const (
	ShapeBlank ShapeKind = iota
	ShapeLine
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Shape is what a cell draws inside its box. It is either a Line with a
// rotation angle in degrees or Blank, which draws nothing.
type Shape struct {
	Kind  ShapeKind
	Angle float64 // degrees; only meaningful for ShapeLine
}

// Line constructs a line shape rotated by angle degrees.
func Line(angle float64) Shape {
	return Shape{Kind: ShapeLine, Angle: angle}
}

// Blank constructs the empty shape.
func Blank() Shape {
	return Shape{Kind: ShapeBlank}
}

// IsLine reports whether the shape is a line, returning its angle.
func (s Shape) IsLine() (float64, bool) {
	if s.Kind != ShapeLine {
		return 0, false
	}
	return s.Angle, true
}

// Picture pairs a box with the shape drawn in it.
type Picture struct {
	Box   Box
	Shape Shape
}
