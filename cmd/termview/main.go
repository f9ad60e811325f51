package main

import (
	"flag"
	"fmt"
	"os"

	"toonscroll/internal/app"
	"toonscroll/internal/chime"
	"toonscroll/internal/config"
	"toonscroll/internal/host/term"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	assetDir := flag.String("assets", "", "Asset directory holding textures/ (default: auto-detect)")
	gradient := flag.String("gradient", "", "Gradient map asset name or file")
	fps := flag.Int("fps", 30, "Redraws per second")
	seed := flag.Int64("seed", 0, "Particle seed (default: time-based)")
	step := flag.Float64("step", 0.15, "Wheel notch as a fraction of the screen height")
	mute := flag.Bool("mute", false, "Disable the section chime")
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
	// Terminal cells are the viewport; the host resizes on start.
	cfg.Resolve(config.Flags{AssetDir: *assetDir, Gradient: *gradient, Seed: *seed})
	cfg.Supersample = 1
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	grad, err := app.LoadGradient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: gradient %s: %v (using built-in ramp)\n", cfg.Gradient, err)
	}

	a := app.New(cfg, grad, nil)

	if !*mute {
		c := chime.New(*volume)
		if err := c.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (continuing without sound)\n", err)
		} else {
			defer c.Close()
			a.OnSection = c.Play
		}
	}

	if err := term.Run(a, term.Options{FPS: *fps, StepRatio: *step}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
