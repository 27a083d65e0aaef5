package animation

import (
	"fmt"
	"image/color"

	"chosenoffset.com/linegrid/internal/config"
	"chosenoffset.com/linegrid/internal/core/geometry"
	"chosenoffset.com/linegrid/internal/render"
)

// Game connects the driver to a render backend. It implements render.Game:
// Update is the tick and click source, Draw paints the current frame and
// Layout kicks off the one-shot surface measurement.
type Game struct {
	Config   *config.Config
	Driver   *Driver
	Model    Model
	Renderer render.Renderer
	InputMgr render.InputManager
	Clock    Clock

	// NewProbe builds the surface probe once the screen size is known.
	NewProbe func(width, height int) SurfaceProbe

	measurement  <-chan Measurement
	probeStarted bool

	// Cached presentation values
	stroke     color.Color
	background color.Color
	geoM       render.GeoM

	// Offscreen surfaces
	canvas           render.Image // DisplaySize square, canvas units scaled to pixels
	lineSprite       render.Image // 1x1 stroke-colored pixel stretched into each line
	screenW, screenH int

	// UI state
	ShowHUD    bool
	FrameCount int
}

// NewGame creates the animation with a wall clock and a centered probe.
func NewGame(cfg *config.Config, r render.Renderer, input render.InputManager) *Game {
	driver := NewDriver(cfg)
	return &Game{
		Config:   cfg,
		Driver:   driver,
		Model:    driver.Init(),
		Renderer: r,
		InputMgr: input,
		Clock:    NewWallClock(),
		NewProbe: func(width, height int) SurfaceProbe {
			return CenteredProbe{Width: width, Height: height, DisplaySize: cfg.DisplaySize}
		},
		stroke:     cfg.Stroke(),
		background: cfg.Background(),
		ShowHUD:    cfg.ShowHUD,
	}
}

// Update handles one tick: pending measurement, input, then time.
func (g *Game) Update() error {
	g.pollMeasurement()

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminated
	}
	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.ShowHUD = !g.ShowHUD
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		g.Model = g.Driver.Click(g.Model, float64(x), float64(y))
	}

	g.Model = g.Driver.Tick(g.Model, g.Clock.Delta())
	g.FrameCount++
	return nil
}

// Layout keeps the logical screen equal to the window and starts the surface
// measurement the first time it is called. Later size changes are not
// re-measured.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.probeStarted && g.NewProbe != nil {
		g.probeStarted = true
		g.measurement = measureOnce(g.NewProbe(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// pollMeasurement applies the measurement result if it has arrived.
func (g *Game) pollMeasurement() {
	if g.measurement == nil {
		return
	}
	select {
	case res := <-g.measurement:
		g.Model = g.Driver.SurfaceMeasured(g.Model, res)
		g.measurement = nil
	default:
	}
}

// Draw renders the current frame. Lines go into an offscreen canvas that is
// then placed on screen at the measured origin.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.background)
	g.ensureSurfaces(screen)

	g.canvas.Fill(g.background)
	scale := g.Config.Scale()
	thickness := g.Config.StrokeWidth * scale
	for _, p := range g.Model.Pictures {
		g.drawPicture(p, scale, thickness)
	}

	g.geoM.Reset()
	g.geoM.Translate(g.Model.Origin.X, g.Model.Origin.Y)
	screen.DrawImage(g.canvas, &render.DrawImageOptions{GeoM: g.geoM})

	if g.ShowHUD {
		g.drawHUD(screen)
	}
}

// ensureSurfaces creates the canvas and line sprite, rebuilding the canvas
// whenever the screen size changes.
func (g *Game) ensureSurfaces(screen render.Image) {
	if g.geoM == nil {
		g.geoM = render.NewGeoM()
	}
	if g.lineSprite == nil {
		g.lineSprite = g.Renderer.NewImage(1, 1)
		g.lineSprite.Fill(g.stroke)
	}

	w, h := screen.Size()
	if g.canvas != nil && w == g.screenW && h == g.screenH {
		return
	}
	if g.canvas != nil {
		g.canvas.Dispose()
	}
	g.canvas = g.Renderer.NewImage(g.Config.DisplaySize, g.Config.DisplaySize)
	g.screenW, g.screenH = w, h
}

// drawPicture stretches the sprite over the horizontal diameter of the box,
// centers it on the origin, rotates it there and moves it to the box center.
// A box with inverted extents mirrors the sprite.
func (g *Game) drawPicture(p geometry.Picture, scale, thickness float64) {
	angle, ok := p.Shape.IsLine()
	if !ok {
		return
	}

	length := p.Box.Width() * scale
	c := p.Box.Center().Scale(scale)

	g.geoM.Reset()
	g.geoM.Scale(length, thickness)
	g.geoM.Translate(-length/2, -thickness/2)
	g.geoM.Rotate(geometry.Radians(angle))
	g.geoM.Translate(c.X, c.Y)
	g.canvas.DrawImage(g.lineSprite, &render.DrawImageOptions{GeoM: g.geoM, Smooth: true})
}

func (g *Game) drawHUD(screen render.Image) {
	status := fmt.Sprintf("t=%.0fms  angle=%.1f  ripples=%d  origin=(%.0f,%.0f)",
		g.Model.Time, g.Model.Angle, len(g.Model.Perturbations), g.Model.Origin.X, g.Model.Origin.Y)
	w, h := g.Renderer.MeasureText(status, 1)
	g.Renderer.FillRect(screen, 8, 8, float32(w+8), float32(2*h+14), color.RGBA{0, 0, 0, 160})
	g.Renderer.DrawText(screen, status, 12, 12, color.White, 1)
	g.Renderer.DrawText(screen, "click: ripple  space: hud  esc: quit", 12, 12+h+8, color.White, 1)
}
