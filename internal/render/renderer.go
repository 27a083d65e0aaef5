package render

import (
	"errors"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the run loop cleanly.
// Engines translate it to their own termination signal and return nil.
var ErrTerminated = errors.New("render: terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// animation logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
	// Smooth selects linear filtering instead of nearest neighbor.
	Smooth bool
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales by (sx, sy).
	Scale(sx, sy float64)

	// Rotate rotates by the given angle in radians.
	Rotate(angle float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for common keys
const (
	KeySpace Key = iota // HUD toggle
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
)

// Game represents the interface that the engine will call.
type Game interface {
	// Update advances state. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the engine that manages the frame loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the frame loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
