package texture

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func rampImage(levels ...uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(levels), 1))
	for x, l := range levels {
		img.SetNRGBA(x, 0, color.NRGBA{R: l, G: l, B: l, A: 255})
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

func TestIndexResolvePath(t *testing.T) {
	dir := t.TempDir()
	ramp := rampImage(0, 128, 255)
	writeJPEG(t, filepath.Join(dir, "textures", "gradients", "3.jpg"), ramp)
	writePNG(t, filepath.Join(dir, "textures", "gradients", "3.png"), ramp)
	writePNG(t, filepath.Join(dir, "textures", "gradients", "5.png"), ramp)

	idx := BuildIndex(dir)
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}

	tests := []struct {
		name string
		want string
	}{
		{"/textures/gradients/3.jpg", "3.png"},
		{"textures/gradients/3", "3.png"},
		{"gradients/3", "3.png"},
		{"GRADIENTS/5.JPG", "5.png"},
	}
	for _, tt := range tests {
		path, ok := idx.ResolvePath(tt.name)
		if !ok {
			t.Fatalf("ResolvePath(%q) not found", tt.name)
		}
		if filepath.Base(path) != tt.want {
			t.Fatalf("ResolvePath(%q) = %s, want %s", tt.name, path, tt.want)
		}
	}
	if _, ok := idx.ResolvePath("gradients/4"); ok {
		t.Fatalf("ResolvePath(gradients/4) found, want missing")
	}
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "ramp.png"), rampImage(10, 20, 30))
	c := NewCache(BuildIndex(dir))

	img, err := c.Resolve("ramp")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if img.Rect.Dx() != 3 || img.Pix[4] != 20 {
		t.Fatalf("Resolve() image = %v pix[4]=%d", img.Rect, img.Pix[4])
	}
	again, _ := c.Resolve("ramp.jpg")
	if again != img {
		t.Fatalf("Resolve() did not return the cached image")
	}

	_, err = c.Resolve("missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Resolve(missing) error = %v, want NotFoundError", err)
	}
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadTexture(filepath.Join(dir, "nope.png")); err == nil {
		t.Fatalf("LoadTexture(missing) error = nil")
	}
	bad := filepath.Join(dir, "bad.png")
	os.WriteFile(bad, []byte("not an image"), 0644)
	if _, err := LoadTexture(bad); err == nil {
		t.Fatalf("LoadTexture(garbage) error = nil")
	}
}

func TestGradientNearest(t *testing.T) {
	g := NewGradient(rampImage(0, 128, 255), Nearest)
	tests := []struct {
		u    float64
		want float64
	}{
		{-1, 0},
		{0.2, 0},
		{0.5, 128.0 / 255},
		{0.9, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := g.Level(tt.u); got != tt.want {
			t.Fatalf("Level(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
	if got := len(g.Steps()); got != 3 {
		t.Fatalf("Steps() = %d levels, want 3", got)
	}
}

func TestGradientLinear(t *testing.T) {
	g := NewGradient(rampImage(0, 255), Linear)
	if got := g.Level(0.5); got < 0.49 || got > 0.51 {
		t.Fatalf("Level(0.5) = %v, want ~0.5", got)
	}
	if got := g.Level(0); got != 0 {
		t.Fatalf("Level(0) = %v, want 0", got)
	}
}

func TestDefaultGradient(t *testing.T) {
	g := DefaultGradient()
	if got := g.Level(0.3); got != 0.7 {
		t.Fatalf("Level(0.3) = %v, want 0.7", got)
	}
	if got := g.Level(0.75); got != 1 {
		t.Fatalf("Level(0.75) = %v, want 1", got)
	}
	if steps := g.Steps(); len(steps) != 2 {
		t.Fatalf("Steps() = %v, want two steps", steps)
	}
	var empty Gradient
	if got := empty.Level(0.1); got != 1 {
		t.Fatalf("empty Level() = %v, want 1", got)
	}
}

func TestLoadGradient(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textures", "gradients", "3.png")
	writePNG(t, path, rampImage(50, 200))
	cache := NewCache(BuildIndex(dir))

	// By asset name through the index, extension ignored.
	g, err := LoadGradient(cache, "/textures/gradients/3.jpg", Nearest)
	if err != nil {
		t.Fatalf("LoadGradient(name) error = %v", err)
	}
	if g.Width() != 2 || g.Level(1) != 200.0/255 {
		t.Fatalf("gradient = %d texels, Level(1) = %v", g.Width(), g.Level(1))
	}

	// By file path, no resolver needed.
	if _, err := LoadGradient(nil, path, Nearest); err != nil {
		t.Fatalf("LoadGradient(path) error = %v", err)
	}

	var nf *NotFoundError
	if _, err := LoadGradient(cache, "gradients/9", Nearest); !errors.As(err, &nf) {
		t.Fatalf("LoadGradient(missing) error = %v, want NotFoundError", err)
	}
	if _, err := LoadGradient(nil, "gradients/9", Nearest); !errors.As(err, &nf) {
		t.Fatalf("LoadGradient(nil resolver) error = %v, want NotFoundError", err)
	}
}
