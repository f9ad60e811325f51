// Package app wires the scroll scene together: scene, viewport, input,
// section animator, tween engine, renderer and frame loop. Hosts feed it
// events and call Frame once per display refresh.
package app

import (
	"image"
	"math/rand/v2"

	"toonscroll/internal/animator"
	"toonscroll/internal/config"
	"toonscroll/internal/debugpanel"
	"toonscroll/internal/frameloop"
	"toonscroll/internal/input"
	"toonscroll/internal/raster"
	"toonscroll/internal/scene"
	"toonscroll/internal/texture"
	"toonscroll/internal/tween"
	"toonscroll/internal/viewport"
)

// App owns one running scene.
type App struct {
	Scene    *scene.Scene
	Viewport *viewport.Viewport
	Input    input.State
	Tracker  *input.Tracker
	Animator *animator.Animator
	Tweens   *tween.Engine
	Renderer *raster.Renderer
	Panel    *debugpanel.Panel
	Context  *frameloop.Context
	Loop     *frameloop.Loop

	// OnSection is called after a scroll changes the current section.
	OnSection func(section int)

	supersample int
}

// New assembles the scene from a resolved, validated config. A nil gradient
// uses the built-in ramp; a nil clock uses the system clock. The loop is
// started.
func New(cfg config.Config, grad *texture.Gradient, clock frameloop.Clock) *App {
	material, particle, light, background := cfg.Colors()

	params := scene.Params{
		MaterialColor:   material,
		ParticleColor:   particle,
		LightColor:      light,
		LightIntensity:  cfg.LightIntensity,
		ObjectsDistance: cfg.ObjectsDistance,
		ParticleCount:   cfg.ParticleCount,
		ParticleSize:    cfg.ParticleSize,
		AxesSize:        cfg.AxesSize,
		Aspect:          float64(cfg.Width) / float64(cfg.Height),
	}
	seed := uint64(cfg.Seed)
	sc := scene.Assemble(params, grad, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

	a := &App{
		Scene:       sc,
		Tweens:      tween.NewEngine(),
		supersample: max(cfg.Supersample, 1),
	}
	a.Viewport = viewport.New(sc.Camera, float64(cfg.Width), float64(cfg.Height), cfg.PixelRatio)
	a.Tracker = input.NewTracker(&a.Input, a.Viewport)

	a.Animator = animator.New(sc.Rotations(), a.Tweens)
	a.Animator.Duration = cfg.TweenDuration
	a.Animator.Easing = cfg.TweenEase
	a.Animator.OnChange = func(section int) {
		if a.OnSection != nil {
			a.OnSection(section)
		}
	}

	a.Renderer = raster.NewRenderer(a.targetSize())
	a.Renderer.Background = background
	a.Renderer.Transparent = cfg.Transparent

	a.Panel = debugpanel.New(sc)

	a.Context = frameloop.NewContext(&a.Input, a.Viewport, sc)
	a.Context.Tweens = a.Tweens
	a.Context.Renderer = a.Renderer
	if cfg.SmoothingRate > 0 {
		a.Context.SmoothingRate = cfg.SmoothingRate
	}

	if clock == nil {
		clock = frameloop.NewSystemClock()
	}
	a.Loop = frameloop.NewLoop(clock, func(elapsed float64) {
		frameloop.Tick(a.Context, elapsed)
	})
	a.Loop.Start()
	return a
}

func (a *App) targetSize() (int, int) {
	w, h := a.Viewport.TargetSize()
	return w * a.supersample, h * a.supersample
}

// Handle applies one host event. Resizes update the camera and render
// target; scrolls update the tracked offset and may start a section tween;
// pointer moves update the normalized cursor.
func (a *App) Handle(ev input.Event) {
	switch ev.Kind {
	case input.KindResize:
		if a.Viewport.Resize(ev.Width, ev.Height, ev.PixelRatio) {
			a.Renderer.Resize(a.targetSize())
		}
	case input.KindScroll:
		a.Tracker.Scroll(ev.ScrollY)
		a.Animator.OnScroll(ev.ScrollY, a.Viewport.Height)
	case input.KindPointerMove:
		a.Tracker.PointerMove(ev.ClientX, ev.ClientY)
	}
}

// Frame runs one frame if the loop is running.
func (a *App) Frame() bool {
	return a.Loop.Tick()
}

// Section returns the current section index.
func (a *App) Section() int {
	return a.Animator.Current()
}

// Sections returns the number of scroll sections.
func (a *App) Sections() int {
	return len(a.Scene.Meshes)
}

// ClampScroll limits a scroll offset to the page height.
func (a *App) ClampScroll(y float64) float64 {
	return input.ScrollRange(y, a.Viewport.Height, a.Sections())
}

// Image returns a copy of the last rendered frame.
func (a *App) Image() *image.NRGBA {
	return a.Renderer.Image()
}

// LoadGradient reads the configured gradient map with nearest filtering,
// looking the name up in an index of the asset dir.
func LoadGradient(cfg config.Config) (*texture.Gradient, error) {
	cache := texture.NewCache(texture.BuildIndex(cfg.AssetDir))
	return texture.LoadGradient(cache, cfg.Gradient, texture.Nearest)
}
