package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	c := Config{AssetDir: "/data/static"}
	c.Resolve(Flags{})

	if c.Gradient != "textures/gradients/3.jpg" || c.AssetDir != "/data/static" {
		t.Fatalf("Gradient = %q", c.Gradient)
	}
	if c.MaterialColor != "#ffeded" || c.ParticleColor != "#ffeded" || c.LightColor != "#ffffff" {
		t.Fatalf("colors = %q %q %q", c.MaterialColor, c.ParticleColor, c.LightColor)
	}
	if c.Width != 1280 || c.Height != 800 || c.PixelRatio != 1 {
		t.Fatalf("viewport = %dx%d@%v", c.Width, c.Height, c.PixelRatio)
	}
	if c.ObjectsDistance != 4 || c.ParticleCount != 200 || c.ParticleSize != 0.03 || c.AxesSize != 3.5 {
		t.Fatalf("scene = %v %v %v %v", c.ObjectsDistance, c.ParticleCount, c.ParticleSize, c.AxesSize)
	}
	if c.TweenDuration != 1.5 || c.TweenEase != "power2.inOut" || c.SmoothingRate != 10 || c.FPS != 60 {
		t.Fatalf("motion = %v %q %v %v", c.TweenDuration, c.TweenEase, c.SmoothingRate, c.FPS)
	}
	if c.Workers <= 0 || c.Seed == 0 || c.OutputDir != "renders" {
		t.Fatalf("Workers = %d Seed = %d OutputDir = %q", c.Workers, c.Seed, c.OutputDir)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestLoadAndFlagsOverride(t *testing.T) {
	path := writeConfig(t, `{
		"asset_dir": "/srv/assets",
		"gradient": "/abs/5.png",
		"width": 640,
		"supersample": 2,
		"particle_color": "#00ff00",
		"axes_size": 0
	}`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	c.Resolve(Flags{Width: 320, Workers: 3, Seed: 7})

	if c.Gradient != "/abs/5.png" {
		t.Fatalf("Gradient = %q, want path kept", c.Gradient)
	}
	if c.Width != 320 || c.Height != 800 {
		t.Fatalf("size = %dx%d, want 320x800", c.Width, c.Height)
	}
	if c.Supersample != 2 || c.Workers != 3 || c.Seed != 7 {
		t.Fatalf("Supersample = %d Workers = %d Seed = %d", c.Supersample, c.Workers, c.Seed)
	}
	if c.ParticleColor != "#00ff00" || c.MaterialColor != "#ffeded" {
		t.Fatalf("colors = %q %q", c.ParticleColor, c.MaterialColor)
	}
	if c.AxesSize != 0 {
		t.Fatalf("AxesSize = %v, want explicit 0 kept", c.AxesSize)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil || !strings.HasPrefix(err.Error(), "config: read") {
		t.Fatalf("Load(missing) error = %v", err)
	}
	path := writeConfig(t, `{"width": "wide"}`)
	if _, err := Load(path); err == nil || !strings.HasPrefix(err.Error(), "config: parse") {
		t.Fatalf("Load(bad) error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	c := Config{AssetDir: "x"}
	c.Resolve(Flags{})
	c.MaterialColor = "pink"
	c.Supersample = 8

	err := c.Validate()
	if err == nil {
		t.Fatalf("Validate() = nil, want error")
	}
	for _, want := range []string{"material_color", "supersample"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("Validate() = %v, missing %q", err, want)
		}
	}
}

func TestColors(t *testing.T) {
	c := Config{AssetDir: "x"}
	c.Resolve(Flags{})
	mat, part, light, bg := c.Colors()
	if r, g, b := mat.RGB255(); r != 255 || g != 237 || b != 237 {
		t.Fatalf("material = %d,%d,%d", r, g, b)
	}
	if part != mat {
		t.Fatalf("particle = %v, want material color", part)
	}
	if r, g, b := light.RGB255(); r != 255 || g != 255 || b != 255 {
		t.Fatalf("light = %d,%d,%d", r, g, b)
	}
	if bg.Hex() != "#1e1a20" {
		t.Fatalf("background = %s", bg.Hex())
	}
}
