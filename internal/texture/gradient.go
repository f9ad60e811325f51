package texture

import (
	"image"
	"math"
	"os"
)

// Filter selects how a gradient is sampled between texels.
type Filter uint8

const (
	Nearest Filter = iota
	Linear
)

// Gradient is a 1D lookup ramp taken from the first row of an image
// (red channel), used as a toon material's gradient map.
type Gradient struct {
	Filter Filter
	levels []float64
}

// NewGradient builds a gradient from the top row of img.
func NewGradient(img *image.NRGBA, filter Filter) *Gradient {
	g := &Gradient{Filter: filter}
	if img == nil {
		return g
	}
	w := img.Rect.Dx()
	g.levels = make([]float64, w)
	for x := 0; x < w; x++ {
		g.levels[x] = float64(img.Pix[x*4]) / 255
	}
	return g
}

// DefaultGradient is the ramp used when no gradient map is available:
// 0.7 below a lighting coordinate of 0.7, 1.0 from there on.
func DefaultGradient() *Gradient {
	levels := make([]float64, 10)
	for i := range levels {
		levels[i] = 0.7
		if i >= 7 {
			levels[i] = 1
		}
	}
	return &Gradient{Filter: Nearest, levels: levels}
}

// Width returns the number of texels in the ramp.
func (g *Gradient) Width() int {
	return len(g.levels)
}

// Level samples the ramp at u in [0,1] (clamped to edge).
func (g *Gradient) Level(u float64) float64 {
	n := len(g.levels)
	if n == 0 {
		return 1
	}
	if u < 0 {
		u = 0
	}
	if u > 1 {
		u = 1
	}
	switch g.Filter {
	case Linear:
		f := u*float64(n) - 0.5
		x0 := int(math.Floor(f))
		t := f - float64(x0)
		a := g.levels[clampIndex(x0, n)]
		b := g.levels[clampIndex(x0+1, n)]
		return a + (b-a)*t
	default:
		return g.levels[clampIndex(int(u*float64(n)), n)]
	}
}

// Steps returns the distinct levels in ramp order.
func (g *Gradient) Steps() []float64 {
	var out []float64
	for i, l := range g.levels {
		if i == 0 || l != g.levels[i-1] {
			out = append(out, l)
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// LoadGradient reads a gradient map. name is tried as a file path first,
// then as an asset name through r (which may be nil).
func LoadGradient(r Resolver, name string, filter Filter) (*Gradient, error) {
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		img, err := LoadTexture(name)
		if err != nil {
			return nil, err
		}
		return NewGradient(img, filter), nil
	}
	if r == nil {
		return nil, &NotFoundError{Name: name}
	}
	img, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return NewGradient(img, filter), nil
}
