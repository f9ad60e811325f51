package raster

import (
	"github.com/lucasb-eyer/go-colorful"

	"toonscroll/internal/mathutil"
	"toonscroll/internal/texture"
)

// ToonShader holds the per-draw lighting terms of a toon material lit by one
// directional light. Colors are used as stored, with no color-space
// conversion or tone mapping.
type ToonShader struct {
	LightDir mathutil.Vec3 // unit vector toward the light, world space
	Gradient *texture.Gradient

	// Material color × light color × intensity, in 0..255.
	R, G, B float64
}

// NewToonShader combines material and light into a shader.
func NewToonShader(material, light colorful.Color, intensity float64, lightDir mathutil.Vec3, grad *texture.Gradient) ToonShader {
	if grad == nil {
		grad = texture.DefaultGradient()
	}
	k := 255 * intensity
	return ToonShader{
		LightDir: lightDir,
		Gradient: grad,
		R:        material.R * light.R * k,
		G:        material.G * light.G * k,
		B:        material.B * light.B * k,
	}
}

// LightCoord maps a unit normal to the gradient lookup coordinate
// dot(N, L)·0.5 + 0.5 in [0, 1].
func (s *ToonShader) LightCoord(n mathutil.Vec3) float64 {
	return n.Dot(s.LightDir)*0.5 + 0.5
}

// Shade returns the 0..255 color for a unit world-space normal.
func (s *ToonShader) Shade(n mathutil.Vec3) (r, g, b float64) {
	level := s.Gradient.Level(s.LightCoord(n))
	return s.R * level, s.G * level, s.B * level
}
