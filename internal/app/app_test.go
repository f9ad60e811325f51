package app

import (
	"math"
	"testing"

	"toonscroll/internal/config"
	"toonscroll/internal/frameloop"
	"toonscroll/internal/input"
)

func newApp(t *testing.T) (*App, *frameloop.StepClock) {
	t.Helper()
	cfg := config.Config{AssetDir: t.TempDir(), Width: 100, Height: 80, Seed: 1}
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	clock := &frameloop.StepClock{}
	return New(cfg, nil, clock), clock
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScrollStartsSectionTween(t *testing.T) {
	a, clock := newApp(t)
	var sections []int
	a.OnSection = func(s int) { sections = append(sections, s) }

	a.Frame()
	a.Handle(input.Scroll(80))
	if a.Section() != 1 {
		t.Fatalf("Section() = %d, want 1", a.Section())
	}
	if a.Tweens.Len() != 1 || len(sections) != 1 || sections[0] != 1 {
		t.Fatalf("tweens = %d, OnSection calls = %v", a.Tweens.Len(), sections)
	}

	clock.Advance(1.5)
	a.Frame()

	got := a.Scene.Meshes[1].Rotation
	want := [3]float64{6 + 0.15, 3 + 0.18, 1.5}
	for k := range want {
		if !near(got[k], want[k]) {
			t.Fatalf("mesh 1 rotation = %v, want %v", got, want)
		}
	}
	if r := a.Scene.Meshes[0].Rotation; !near(r[0], 0.15) || !near(r[1], 0.18) || r[2] != 0 {
		t.Fatalf("mesh 0 rotation = %v, want idle spin only", r)
	}
	if y := a.Scene.Camera.Position[1]; y != -4 {
		t.Fatalf("camera y = %v, want -4", y)
	}
}

func TestScrollWithinSectionDoesNotTween(t *testing.T) {
	a, _ := newApp(t)
	a.Handle(input.Scroll(30))
	a.Handle(input.Scroll(10))
	if a.Section() != 0 || a.Tweens.Len() != 0 {
		t.Fatalf("Section() = %d tweens = %d, want 0/0", a.Section(), a.Tweens.Len())
	}
	a.Handle(input.Scroll(10000))
	if a.Section() != 2 {
		t.Fatalf("Section() = %d, want clamped 2", a.Section())
	}
	if got := a.ClampScroll(10000); got != 160 {
		t.Fatalf("ClampScroll() = %v, want 160", got)
	}
}

func TestResizeUpdatesCameraAndTarget(t *testing.T) {
	a, _ := newApp(t)
	a.Handle(input.Resize(200, 100, 3))

	if a.Scene.Camera.Aspect != 2 {
		t.Fatalf("aspect = %v, want 2", a.Scene.Camera.Aspect)
	}
	if w, h := a.Renderer.Size(); w != 400 || h != 200 {
		t.Fatalf("target = %dx%d, want 400x200", w, h)
	}

	a.Handle(input.Resize(0, 100, 1))
	if a.Viewport.Width != 200 {
		t.Fatalf("zero-width resize applied")
	}
}

func TestPointerMoveDrivesParallax(t *testing.T) {
	a, clock := newApp(t)
	a.Handle(input.Resize(1000, 800, 1))
	a.Handle(input.PointerMove(0, 0))
	if a.Input.Cursor != (input.Cursor{X: -0.5, Y: -0.5}) {
		t.Fatalf("cursor = %+v", a.Input.Cursor)
	}

	a.Frame()
	clock.Advance(1.0 / 60)
	a.Frame()

	rig := a.Scene.Rig.Position
	if rig[0] >= 0 || rig[0] < -0.25 || rig[1] <= 0 || rig[1] > 0.25 {
		t.Fatalf("rig = %v, want moving toward (-0.25, 0.25)", rig)
	}
}

func TestFrameRendersImage(t *testing.T) {
	a, _ := newApp(t)
	if !a.Frame() {
		t.Fatalf("Frame() = false on a started loop")
	}
	img := a.Image()
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Fatalf("Image() bounds = %v", img.Bounds())
	}
	if a.Renderer.Stats().Triangles == 0 {
		t.Fatalf("nothing rendered")
	}

	a.Loop.Stop()
	if a.Frame() {
		t.Fatalf("Frame() = true on a stopped loop")
	}
}

func TestLoadGradientMissing(t *testing.T) {
	cfg := config.Config{AssetDir: t.TempDir()}
	cfg.Resolve(config.Flags{})
	if g, err := LoadGradient(cfg); err == nil || g != nil {
		t.Fatalf("LoadGradient() = %v, %v, want not found", g, err)
	}
}
