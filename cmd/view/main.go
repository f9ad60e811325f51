package main

import (
	"flag"
	"fmt"
	"os"

	"toonscroll/internal/app"
	"toonscroll/internal/chime"
	"toonscroll/internal/config"
	"toonscroll/internal/host/window"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	assetDir := flag.String("assets", "", "Asset directory holding textures/ (default: auto-detect)")
	gradient := flag.String("gradient", "", "Gradient map asset name or file")
	width := flag.Int("width", 0, "Window width (default: 1280)")
	height := flag.Int("height", 0, "Window height (default: 800)")
	fps := flag.Int("fps", 0, "Updates per second (default: 60)")
	seed := flag.Int64("seed", 0, "Particle seed (default: time-based)")
	panel := flag.Bool("panel", false, "Show the tuning panel at start (toggle with Tab)")
	showFPS := flag.Bool("show-fps", false, "Show FPS and section overlay")
	sound := flag.Bool("chime", false, "Play a tone on section change")
	volume := flag.Float64("volume", 0.3, "Chime volume (0..1)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		AssetDir: *assetDir,
		Gradient: *gradient,
		Width:    *width,
		Height:   *height,
		FPS:      *fps,
		Seed:     *seed,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	grad, err := app.LoadGradient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: gradient %s: %v (using built-in ramp)\n", cfg.Gradient, err)
	}

	a := app.New(cfg, grad, nil)
	a.Panel.Visible = *panel

	if *sound {
		c := chime.New(*volume)
		if err := c.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (continuing without sound)\n", err)
		} else {
			defer c.Close()
			a.OnSection = c.Play
		}
	}

	err = window.Run(a, window.Options{
		Title:      "toonscroll",
		FPS:        cfg.FPS,
		ScrollStep: cfg.ScrollStep,
		ShowFPS:    *showFPS,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
