// Package viewport tracks the CSS-pixel size of the drawing surface, the
// clamped device pixel ratio, and keeps the camera aspect in sync with them.
package viewport

import (
	"math"

	"toonscroll/internal/scene"
)

// MaxPixelRatio bounds fill-rate cost on high-density displays.
const MaxPixelRatio = 2.0

// Viewport owns the surface size and the render target size derived from it.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64

	camera *scene.PerspectiveCamera
}

// New binds a viewport to a camera and applies the initial size.
func New(camera *scene.PerspectiveCamera, width, height, devicePixelRatio float64) *Viewport {
	v := &Viewport{camera: camera, PixelRatio: 1}
	v.Resize(width, height, devicePixelRatio)
	return v
}

// Resize applies a new surface size: the camera aspect becomes width/height,
// its projection is recomputed, and the pixel ratio is re-clamped.
// Non-positive sizes are ignored.
func (v *Viewport) Resize(width, height, devicePixelRatio float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	v.Width = width
	v.Height = height
	v.PixelRatio = ClampPixelRatio(devicePixelRatio)

	if v.camera != nil {
		v.camera.Aspect = width / height
		v.camera.UpdateProjectionMatrix()
	}
	return true
}

// Size implements input.Sizer.
func (v *Viewport) Size() (width, height float64) {
	return v.Width, v.Height
}

// TargetSize returns the render target size in device pixels.
func (v *Viewport) TargetSize() (w, h int) {
	w = int(math.Floor(v.Width * v.PixelRatio))
	h = int(math.Floor(v.Height * v.PixelRatio))
	return max(w, 1), max(h, 1)
}

// ClampPixelRatio returns min(ratio, MaxPixelRatio), treating non-positive
// ratios as 1.
func ClampPixelRatio(ratio float64) float64 {
	if ratio <= 0 || math.IsNaN(ratio) {
		return 1
	}
	return math.Min(ratio, MaxPixelRatio)
}
