package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds all configurable paths, scene parameters and render settings.
type Config struct {
	// Paths
	AssetDir  string `json:"asset_dir"`
	Gradient  string `json:"gradient"`
	Timeline  string `json:"timeline"`
	OutputDir string `json:"output_dir"`

	// Scene
	MaterialColor   string  `json:"material_color"`
	ParticleColor   string  `json:"particle_color"`
	LightColor      string  `json:"light_color"`
	LightIntensity  float64 `json:"light_intensity"`
	Background      string  `json:"background"`
	Transparent     bool    `json:"transparent"`
	ObjectsDistance float64 `json:"objects_distance"`
	ParticleCount   int     `json:"particle_count"`
	ParticleSize    float64 `json:"particle_size"`
	AxesSize        float64 `json:"axes_size"`
	Seed            int64   `json:"seed"`

	// Viewport
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	PixelRatio float64 `json:"pixel_ratio"`

	// Motion
	TweenDuration float64 `json:"tween_duration"`
	TweenEase     string  `json:"tween_ease"`
	SmoothingRate float64 `json:"smoothing_rate"`
	FPS           int     `json:"fps"`
	ScrollStep    float64 `json:"scroll_step"`

	// Output settings
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`

	// axesSet records an explicit axes_size in the file, so 0 can hide the helper.
	axesSet bool
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err == nil {
		_, cfg.axesSet = present["axes_size"]
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetDir   string
	Gradient   string
	Timeline   string
	OutputDir  string
	Width      int
	Height     int
	PixelRatio float64
	FPS        int
	Workers    int
	Seed       int64
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.Gradient != "" {
		c.Gradient = flags.Gradient
	}
	if flags.Timeline != "" {
		c.Timeline = flags.Timeline
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.PixelRatio > 0 {
		c.PixelRatio = flags.PixelRatio
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	// Auto-detect asset dir if still empty
	if c.AssetDir == "" {
		c.AssetDir = detectAssetDir()
	}

	// The gradient is an asset name looked up in the asset dir index, or a
	// file path.
	if c.Gradient == "" {
		c.Gradient = "textures/gradients/3.jpg"
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	// Scene defaults
	if c.MaterialColor == "" {
		c.MaterialColor = "#ffeded"
	}
	if c.ParticleColor == "" {
		c.ParticleColor = c.MaterialColor
	}
	if c.LightColor == "" {
		c.LightColor = "#ffffff"
	}
	if c.LightIntensity <= 0 {
		c.LightIntensity = 1
	}
	if c.Background == "" {
		c.Background = "#1e1a20"
	}
	if c.ObjectsDistance <= 0 {
		c.ObjectsDistance = 4
	}
	if c.ParticleCount <= 0 {
		c.ParticleCount = 200
	}
	if c.ParticleSize <= 0 {
		c.ParticleSize = 0.03
	}
	if c.AxesSize < 0 || (c.AxesSize == 0 && !c.axesSet) {
		c.AxesSize = 3.5
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	// Viewport defaults
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.PixelRatio <= 0 {
		c.PixelRatio = 1
	}

	// Motion defaults
	if c.TweenDuration <= 0 {
		c.TweenDuration = 1.5
	}
	if c.TweenEase == "" {
		c.TweenEase = "power2.inOut"
	}
	if c.SmoothingRate <= 0 {
		c.SmoothingRate = 10
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.ScrollStep <= 0 {
		c.ScrollStep = 120
	}

	// Defaults for output settings
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports every setting that cannot be used, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"material_color", c.MaterialColor},
		{"particle_color", c.ParticleColor},
		{"light_color", c.LightColor},
		{"background", c.Background},
	} {
		if _, err := colorful.Hex(f.value); err != nil {
			errs = append(errs, fmt.Errorf("config: %s %q: %w", f.name, f.value, err))
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("config: fps %d must be positive", c.FPS))
	}
	if c.Supersample > 4 {
		errs = append(errs, fmt.Errorf("config: supersample %d exceeds 4", c.Supersample))
	}
	return errors.Join(errs...)
}

// Colors parses the four configured colors. Call after Validate.
func (c *Config) Colors() (material, particle, light, background colorful.Color) {
	material, _ = colorful.Hex(c.MaterialColor)
	particle, _ = colorful.Hex(c.ParticleColor)
	light, _ = colorful.Hex(c.LightColor)
	background, _ = colorful.Hex(c.Background)
	return
}

func detectAssetDir() string {
	hasTextures := func(dir string) bool {
		_, err := os.Stat(filepath.Join(dir, "textures"))
		return err == nil
	}

	var roots []string

	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		roots = append(roots, dir, filepath.Dir(dir))
	}

	// Then the current working directory and its parent
	cwd, _ := os.Getwd()
	if cwd != "" {
		roots = append(roots, cwd, filepath.Dir(cwd))
	}

	for _, root := range roots {
		for _, name := range []string{"static", "assets"} {
			if dir := filepath.Join(root, name); hasTextures(dir) {
				return dir
			}
		}
	}
	return ""
}
