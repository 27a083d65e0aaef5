package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"chosenoffset.com/linegrid/internal/animation"
	"chosenoffset.com/linegrid/internal/config"
	"chosenoffset.com/linegrid/internal/core/geometry"
	ebitenrender "chosenoffset.com/linegrid/internal/render/ebiten"
	"chosenoffset.com/linegrid/internal/render/raster"
	"chosenoffset.com/linegrid/internal/render/svg"
)

// clickList collects repeated -click x,y flags in canvas coordinates.
type clickList []geometry.Vector

func (c *clickList) String() string {
	parts := make([]string, len(*c))
	for i, v := range *c {
		parts[i] = fmt.Sprintf("%g,%g", v.X, v.Y)
	}
	return strings.Join(parts, " ")
}

func (c *clickList) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("bad y in %q: %w", s, err)
	}
	*c = append(*c, geometry.Vector{X: x, Y: y})
	return nil
}

func main() {
	var clicks clickList
	configPath := flag.String("config", "linegrid.json", "Config file (defaults are used if missing)")
	svgPath := flag.String("svg", "", "Write one frame as SVG to this path and exit")
	pngPath := flag.String("png", "", "Write one frame as PNG to this path and exit")
	at := flag.Float64("at", 0, "Animation time in ms for -svg/-png")
	step := flag.Float64("step", 1000.0/60.0, "Tick size in ms used to reach -at")
	flag.Var(&clicks, "click", "Canvas point x,y clicked at time 0 (repeatable, -svg/-png only)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *svgPath != "" || *pngPath != "" {
		driver := animation.NewDriver(cfg)
		m := driver.Init()
		for _, c := range clicks {
			m = driver.ClickCanvas(m, c)
		}
		frame := driver.RunTo(m, *at, *step)
		if *svgPath != "" {
			if err := svg.WriteFile(*svgPath, frame.Pictures, svg.OptionsFromConfig(cfg)); err != nil {
				log.Fatalf("Failed to write SVG: %v", err)
			}
			log.Printf("Wrote %d lines at t=%.0fms to %s", len(frame.Pictures), frame.Time, *svgPath)
		}
		if *pngPath != "" {
			if err := raster.SaveFile(*pngPath, frame.Pictures, raster.OptionsFromConfig(cfg)); err != nil {
				log.Fatalf("Failed to write PNG: %v", err)
			}
			log.Printf("Wrote %d lines at t=%.0fms to %s", len(frame.Pictures), frame.Time, *pngPath)
		}
		return
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	game := animation.NewGame(cfg, renderer, inputMgr)

	engine.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	engine.SetWindowTitle("linegrid")
	engine.SetWindowResizable(true)

	log.Printf("Starting %dx%d grid, %s angles", cfg.AxisCount, cfg.AxisCount, cfg.AnglePolicy)
	if err := engine.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
