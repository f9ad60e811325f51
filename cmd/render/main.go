package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"toonscroll/internal/app"
	"toonscroll/internal/batch"
	"toonscroll/internal/config"
	"toonscroll/internal/frameloop"
	"toonscroll/internal/input"
	"toonscroll/internal/timeline"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	assetDir := flag.String("assets", "", "Asset directory holding textures/ (default: auto-detect)")
	gradient := flag.String("gradient", "", "Gradient map asset name or file (default: textures/gradients/3.jpg)")
	timelineFile := flag.String("timeline", "", "Timeline XML (default: built-in demo)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	width := flag.Int("width", 0, "Viewport width in CSS pixels (default: 1280)")
	height := flag.Int("height", 0, "Viewport height in CSS pixels (default: 800)")
	fps := flag.Int("fps", 0, "Frames per second for the demo timeline (default: 60)")
	seed := flag.Int64("seed", 0, "Particle seed (default: time-based)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only the first N frames")
	demoSeconds := flag.Float64("duration", 8, "Length of the demo timeline in seconds")
	writeTimeline := flag.String("write-timeline", "", "Write the timeline to this file and exit")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AssetDir:  *assetDir,
		Gradient:  *gradient,
		Timeline:  *timelineFile,
		OutputDir: *outputDir,
		Width:     *width,
		Height:    *height,
		FPS:       *fps,
		Workers:   *workers,
		Seed:      *seed,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	// Load gradient map
	grad, err := app.LoadGradient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: gradient %s: %v (using built-in ramp)\n", cfg.Gradient, err)
	} else {
		fmt.Printf("Gradient: %s, %d tones\n", cfg.Gradient, len(grad.Steps()))
	}

	clock := &frameloop.StepClock{}
	scene := app.New(cfg, grad, clock)

	// Load timeline
	var tl *timeline.Timeline
	if cfg.Timeline != "" {
		var err error
		tl, err = timeline.Parse(cfg.Timeline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading timeline: %v\n", err)
			os.Exit(1)
		}
	} else {
		tl = timeline.Demo(cfg.FPS, cfg.Width, cfg.Height, scene.Sections(), *demoSeconds)
	}

	if *writeTimeline != "" {
		if err := timeline.Write(*writeTimeline, tl); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Timeline: %s (%d cues)\n", *writeTimeline, len(tl.Cues))
		return
	}

	total := tl.Frames()
	if *testN > 0 && *testN < total {
		total = *testN
	}

	fmt.Println("Toon scroll scene → WebP frames")
	fmt.Printf("Frames: %d @ %d fps, Viewport: %dx%d, Workers: %d\n", total, tl.FPS, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	player := timeline.NewPlayer(tl)

	// Frames are rendered in order (each depends on the last) and encoded
	// in parallel.
	frames := make(chan batch.Frame, cfg.Workers*2)
	done := make(chan []batch.Result, 1)
	go func() {
		done <- batch.Run(batch.Config{
			OutputDir:   cfg.OutputDir,
			Supersample: cfg.Supersample,
			Workers:     cfg.Workers,
		}, frames, total)
	}()

	for i := 0; i < total; i++ {
		t := tl.FrameTime(i)
		clock.Advance(t - clock.Now())
		for _, ev := range player.Until(t) {
			if ev.Kind == input.KindScroll {
				ev.ScrollY = scene.ClampScroll(ev.ScrollY)
			}
			scene.Handle(ev)
		}
		scene.Frame()
		frames <- batch.Frame{
			Index:   i,
			Time:    t,
			Section: scene.Section(),
			ScrollY: scene.Input.ScrollY,
			Image:   scene.Image(),
		}
	}
	close(frames)
	results := <-done

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, total)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Index, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
