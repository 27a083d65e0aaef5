package geometry

import (
	"math"
	"testing"
)

func near(a, b Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestBoxCenterAndExtents(t *testing.T) {
	b := Box{TopLeft: Vector{X: 10, Y: 20}, BottomRight: Vector{X: 30, Y: 60}}

	if c := b.Center(); c != (Vector{X: 20, Y: 40}) {
		t.Errorf("Expected center (20, 40), got %v", c)
	}
	if b.Width() != 20 || b.Height() != 40 {
		t.Errorf("Expected 20x40, got %vx%v", b.Width(), b.Height())
	}

	inverted := Box{TopLeft: b.BottomRight, BottomRight: b.TopLeft}
	if inverted.Width() != -20 {
		t.Errorf("Expected signed width -20, got %v", inverted.Width())
	}
}

func TestShapeVariants(t *testing.T) {
	if angle, ok := Line(45).IsLine(); !ok || angle != 45 {
		t.Errorf("Expected line at 45, got %v %v", angle, ok)
	}
	if _, ok := Blank().IsLine(); ok {
		t.Error("Blank should not report as a line")
	}
	if Blank().Kind.String() != "blank" || Line(0).Kind.String() != "line" {
		t.Error("Unexpected kind names")
	}
}

func TestHorizontalDiameter(t *testing.T) {
	b := Box{TopLeft: Vector{X: 0, Y: 0}, BottomRight: Vector{X: 10, Y: 4}}
	start, end := HorizontalDiameter(b)

	if start != (Vector{X: 0, Y: 2}) || end != (Vector{X: 10, Y: 2}) {
		t.Errorf("Expected (0,2)-(10,2), got %v-%v", start, end)
	}
}

func TestRotateAbout(t *testing.T) {
	pivot := Vector{X: 5, Y: 5}
	got := RotateAbout(Vector{X: 10, Y: 5}, pivot, 90)

	// Y grows downward, so +90 turns the right-hand point to below the pivot.
	if !near(got, Vector{X: 5, Y: 10}) {
		t.Errorf("Expected (5, 10), got %v", got)
	}
}

func TestPictureEndpoints(t *testing.T) {
	p := Picture{
		Box:   Box{TopLeft: Vector{X: 0, Y: 0}, BottomRight: Vector{X: 10, Y: 10}},
		Shape: Line(180),
	}

	start, end, ok := p.Endpoints()
	if !ok {
		t.Fatal("Expected endpoints for a line")
	}
	if !near(start, Vector{X: 10, Y: 5}) || !near(end, Vector{X: 0, Y: 5}) {
		t.Errorf("Expected swapped endpoints, got %v-%v", start, end)
	}

	p.Shape = Blank()
	if _, _, ok := p.Endpoints(); ok {
		t.Error("Blank pictures should have no endpoints")
	}
}
