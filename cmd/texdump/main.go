package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"toonscroll/internal/config"
	"toonscroll/internal/texture"
)

func main() {
	assetDir := flag.String("assets", "", "Asset directory holding textures/ (default: auto-detect)")
	linear := flag.Bool("linear", false, "Sample with linear instead of nearest filtering")
	samples := flag.Int("samples", 16, "Lighting coordinates to sample per gradient")
	flag.Parse()

	var cfg config.Config
	cfg.Resolve(config.Flags{AssetDir: *assetDir})

	names := flag.Args()
	if len(names) == 0 {
		names = []string{cfg.Gradient}
	}

	idx := texture.BuildIndex(cfg.AssetDir)
	cache := texture.NewCache(idx)
	fmt.Printf("Assets: %q, %d textures indexed\n", cfg.AssetDir, idx.Len())

	filter := texture.Nearest
	if *linear {
		filter = texture.Linear
	}

	errors := 0
	for _, name := range names {
		g, err := texture.LoadGradient(cache, name, filter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR %s: %v\n", name, err)
			errors++
			continue
		}
		dump(name, g, *samples)
	}

	fmt.Println()
	fmt.Println("built-in ramp:")
	dump("default", texture.DefaultGradient(), *samples)

	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
}

func dump(name string, g *texture.Gradient, samples int) {
	steps := g.Steps()
	tones := make([]string, len(steps))
	for i, s := range steps {
		tones[i] = fmt.Sprintf("%.0f%%", s*100)
	}
	fmt.Printf("OK  %s  %d texels, %d tones: %s\n", name, g.Width(), len(steps), strings.Join(tones, " "))

	samples = max(samples, 2)
	for i := 0; i < samples; i++ {
		u := float64(i) / float64(samples-1)
		l := g.Level(u)
		fmt.Printf("    %.2f  %-20s %.3f\n", u, strings.Repeat("#", int(l*20+0.5)), l)
	}
}
