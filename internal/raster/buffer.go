package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // 1/w per pixel (greater is closer), len = W*H, cleared to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	w, h = max(w, 1), max(h, 1)
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.Clear(0, 0, 0, 0)
	return fb
}

// Clear fills every pixel with one color and resets depth.
func (fb *FrameBuffer) Clear(r, g, b, a uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
	inf := math.Inf(-1)
	for i := range fb.ZBuf {
		fb.ZBuf[i] = inf
	}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// At returns the RGBA bytes of pixel (x, y).
func (fb *FrameBuffer) At(x, y int) (r, g, b, a uint8) {
	i := (y*fb.Width + x) * 4
	return fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]
}

// addPixel adds a color to pixel i (additive blending, clamped). Alpha
// becomes the larger of the existing alpha and the added brightness, so dark
// additions over a transparent clear stay transparent.
func (fb *FrameBuffer) addPixel(i int, r, g, b float64) {
	p := i * 4
	fb.Color[p] = clamp255(float64(fb.Color[p]) + r)
	fb.Color[p+1] = clamp255(float64(fb.Color[p+1]) + g)
	fb.Color[p+2] = clamp255(float64(fb.Color[p+2]) + b)
	lum := clamp255(r*0.299 + g*0.587 + b*0.114)
	if lum > fb.Color[p+3] {
		fb.Color[p+3] = lum
	}
}

func (fb *FrameBuffer) setPixel(i int, r, g, b float64) {
	p := i * 4
	fb.Color[p] = clamp255(r)
	fb.Color[p+1] = clamp255(g)
	fb.Color[p+2] = clamp255(b)
	fb.Color[p+3] = 255
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
