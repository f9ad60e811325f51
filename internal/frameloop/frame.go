// Package frameloop holds the per-frame update and the loop that drives it.
package frameloop

import (
	"toonscroll/internal/input"
	"toonscroll/internal/mathutil"
	"toonscroll/internal/scene"
)

// Renderer draws the scene once per frame.
type Renderer interface {
	Render(s *scene.Scene)
}

// Updater advances time-based animations.
type Updater interface {
	Update(dt float64)
}

// Defaults for Context.
const (
	DefaultSmoothingRate = 10.0
	DefaultSpinX         = 0.1
	DefaultSpinY         = 0.12
)

// Context is everything one frame reads and writes. Input is written by
// event handlers between frames.
type Context struct {
	Input    *input.State
	Sizes    input.Sizer
	Scene    *scene.Scene
	Tweens   Updater  // optional
	Renderer Renderer // optional

	SectionSpacing float64 // world units per viewport height of scroll
	SmoothingRate  float64 // parallax easing, per second
	SpinX, SpinY   float64 // idle mesh rotation, radians per second

	PreviousTime float64
	Frames       uint64
}

// NewContext fills in the default rates.
func NewContext(st *input.State, sizes input.Sizer, sc *scene.Scene) *Context {
	return &Context{
		Input:          st,
		Sizes:          sizes,
		Scene:          sc,
		SectionSpacing: sc.ObjectsDistance,
		SmoothingRate:  DefaultSmoothingRate,
		SpinX:          DefaultSpinX,
		SpinY:          DefaultSpinY,
	}
}

// Parallax returns the rig target for a cursor: half the offset, Y inverted.
func Parallax(c input.Cursor) (x, y float64) {
	return c.X / 2, -c.Y / 2
}

// Tick runs one frame at elapsed seconds since the loop started and returns
// the frame delta. The first frame has a delta of 0.
func Tick(c *Context, elapsed float64) float64 {
	if c.Frames == 0 {
		c.PreviousTime = elapsed
	}
	dt := elapsed - c.PreviousTime
	if dt < 0 {
		dt = 0
	}
	c.PreviousTime = elapsed
	c.Frames++

	if c.Tweens != nil {
		c.Tweens.Update(dt)
	}

	sc := c.Scene
	_, height := c.Sizes.Size()
	if height > 0 {
		sc.Camera.Position[1] = -c.Input.ScrollY / height * c.SectionSpacing
	}

	px, py := Parallax(c.Input.Cursor)
	rig := &sc.Rig.Position
	rig[0] = mathutil.Damp(rig[0], px, c.SmoothingRate, dt)
	rig[1] = mathutil.Damp(rig[1], py, c.SmoothingRate, dt)

	for _, m := range sc.Meshes {
		m.Rotation[0] += dt * c.SpinX
		m.Rotation[1] += dt * c.SpinY
	}

	if c.Renderer != nil {
		c.Renderer.Render(sc)
	}
	return dt
}
