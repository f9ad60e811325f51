// Package scene assembles the scroll scene: three toon-shaded section meshes
// sharing one material, a particle field, a directional light, an axes helper
// and a camera nested in a parallax rig.
package scene

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"toonscroll/internal/geometry"
	"toonscroll/internal/mathutil"
	"toonscroll/internal/texture"
)

// Params configures scene assembly.
type Params struct {
	MaterialColor  colorful.Color
	ParticleColor  colorful.Color
	LightColor     colorful.Color
	LightIntensity float64

	ObjectsDistance float64 // vertical spacing between section meshes
	ParticleCount   int
	ParticleSize    float64
	AxesSize        float64 // 0 hides the helper

	Aspect float64
}

// DefaultParams returns the stock look: pale pink material and particles,
// white light at intensity 1.
func DefaultParams() Params {
	pink, _ := colorful.Hex("#ffeded")
	return Params{
		MaterialColor:   pink,
		ParticleColor:   pink,
		LightColor:      colorful.Color{R: 1, G: 1, B: 1},
		LightIntensity:  1,
		ObjectsDistance: 4,
		ParticleCount:   200,
		ParticleSize:    0.03,
		AxesSize:        3.5,
		Aspect:          16.0 / 10.0,
	}
}

// Scene is the assembled scene graph. Meshes are in section order.
type Scene struct {
	Material  *ToonMaterial
	Meshes    []*Mesh
	Particles *Points
	Light     *DirectionalLight
	Axes      *AxesHelper
	Rig       *Group
	Camera    *PerspectiveCamera

	ObjectsDistance float64
}

// Assemble builds the scene once. A nil gradient falls back to
// texture.DefaultGradient.
func Assemble(p Params, grad *texture.Gradient, rng *rand.Rand) *Scene {
	if grad == nil {
		grad = texture.DefaultGradient()
	}
	if p.Aspect <= 0 {
		p.Aspect = 1
	}

	material := &ToonMaterial{Color: p.MaterialColor, Gradient: grad}

	geoms := []*geometry.Geometry{
		geometry.Torus(1, 0.4, 16, 60),
		geometry.Cone(1, 2, 32),
		geometry.TorusKnot(0.8, 0.35, 100, 16, 2, 3),
	}
	meshes := make([]*Mesh, len(geoms))
	for i, g := range geoms {
		x := 2.0
		if i%2 == 1 {
			x = -2
		}
		meshes[i] = &Mesh{
			Object3D: Object3D{Position: mathutil.V3(x, -p.ObjectsDistance*float64(i), 0)},
			Geometry: g,
			Material: material,
		}
	}

	particles := &Points{
		Positions: NewParticles(p.ParticleCount, p.ObjectsDistance, len(meshes), rng),
		Material: &PointsMaterial{
			Size:            p.ParticleSize,
			Color:           p.ParticleColor,
			SizeAttenuation: true,
			Additive:        true,
		},
	}

	light := &DirectionalLight{
		Color:     p.LightColor,
		Intensity: p.LightIntensity,
		Position:  mathutil.V3(1, 1, 0),
	}

	camera := NewPerspectiveCamera(35, p.Aspect, 0.1, 100)
	camera.Position = mathutil.V3(0, 0, 6)
	rig := &Group{Camera: camera}

	return &Scene{
		Material:        material,
		Meshes:          meshes,
		Particles:       particles,
		Light:           light,
		Axes:            &AxesHelper{Size: p.AxesSize},
		Rig:             rig,
		Camera:          camera,
		ObjectsDistance: p.ObjectsDistance,
	}
}

// NewParticles samples count points uniformly: X and Z in [-5, 5], Y from
// distance/2 down to distance/2 - distance*sections. The result has exactly
// count*3 entries.
func NewParticles(count int, distance float64, sections int, rng *rand.Rand) []float32 {
	if count < 0 {
		count = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	positions := make([]float32, count*3)
	for i := 0; i < count; i++ {
		positions[i*3+0] = float32((rng.Float64() - 0.5) * 10)
		positions[i*3+1] = float32(distance/2 - rng.Float64()*distance*float64(sections))
		positions[i*3+2] = float32((rng.Float64() - 0.5) * 10)
	}
	return positions
}

// SectionMesh returns the mesh for a section index, or false when out of range.
func (s *Scene) SectionMesh(i int) (*Mesh, bool) {
	if i < 0 || i >= len(s.Meshes) {
		return nil, false
	}
	return s.Meshes[i], true
}

// Rotations returns pointers to every section mesh rotation, in order.
func (s *Scene) Rotations() []*mathutil.Vec3 {
	out := make([]*mathutil.Vec3, len(s.Meshes))
	for i, m := range s.Meshes {
		out[i] = &m.Rotation
	}
	return out
}
