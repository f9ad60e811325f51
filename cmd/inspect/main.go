package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"toonscroll/internal/animator"
	"toonscroll/internal/app"
	"toonscroll/internal/config"
	"toonscroll/internal/frameloop"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	seed := flag.Int64("seed", 1, "Particle seed")
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
	cfg.Resolve(config.Flags{Seed: *seed})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	grad, err := app.LoadGradient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: gradient %s: %v (using built-in ramp)\n", cfg.Gradient, err)
	}
	a := app.New(cfg, grad, &frameloop.StepClock{})
	sc := a.Scene

	fmt.Printf("Viewport: %.0fx%.0f @%.1f, target %dx%d\n",
		a.Viewport.Width, a.Viewport.Height, a.Viewport.PixelRatio, a.Renderer.FrameBuffer().Width, a.Renderer.FrameBuffer().Height)
	fmt.Printf("Camera: fov=%.0f aspect=%.3f near=%.1f far=%.0f pos=%v\n",
		sc.Camera.FOV, sc.Camera.Aspect, sc.Camera.Near, sc.Camera.Far, sc.Camera.Position)
	fmt.Printf("Light: %s x%.1f from %v\n", sc.Light.Color.Hex(), sc.Light.Intensity, sc.Light.Position)
	fmt.Printf("Material: %s, gradient %d texels, tones %v\n",
		sc.Material.Color.Hex(), sc.Material.Gradient.Width(), sc.Material.Gradient.Steps())

	fmt.Println("\nSections:")
	h := a.Viewport.Height
	for i, m := range sc.Meshes {
		lo, hi := m.Geometry.Bounds()
		from := math.Max((float64(i)-0.5)*h, 0)
		to := (float64(i) + 0.5) * h
		if i == len(sc.Meshes)-1 {
			to = math.Inf(1)
		}
		fmt.Printf("  [%d] %-10s verts=%-5d tris=%-5d pos=%v\n", i, m.Geometry.Name, len(m.Geometry.Positions), m.Geometry.Triangles(), m.Position)
		fmt.Printf("      bounds %v .. %v\n", lo, hi)
		fmt.Printf("      scrollY [%.0f, %.0f) → section %d, camera y at rest %.1f\n",
			from, to, animator.Section(float64(i)*h, h), -float64(i)*sc.ObjectsDistance)
	}

	pts := sc.Particles
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < pts.Count(); i++ {
		y := pts.At(i)[1]
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	fmt.Printf("\nParticles: %d, size %.3f, y [%.2f, %.2f]\n", pts.Count(), pts.Material.Size, minY, maxY)

	a.Frame()
	st := a.Renderer.Stats()
	fmt.Printf("Frame 0: %d triangles, %d culled, %d particles, %d axis lines\n",
		st.Triangles, st.Culled, st.Points, st.Lines)
}
