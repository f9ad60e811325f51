package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"toonscroll/internal/geometry"
	"toonscroll/internal/mathutil"
	"toonscroll/internal/texture"
)

// Object3D is a positioned, rotated node (unit scale).
type Object3D struct {
	Position mathutil.Vec3
	Rotation mathutil.Vec3 // XYZ Euler, radians
}

// Matrix returns the local-to-world transform.
func (o *Object3D) Matrix() mathutil.Mat4 {
	return mathutil.Compose(o.Position, o.Rotation)
}

// ToonMaterial shades with a quantized lighting ramp.
type ToonMaterial struct {
	Color    colorful.Color
	Gradient *texture.Gradient
}

// Mesh is a geometry drawn with a toon material.
type Mesh struct {
	Object3D
	Geometry *geometry.Geometry
	Material *ToonMaterial
}

// PointsMaterial describes point sprites.
type PointsMaterial struct {
	Size            float64 // world units when SizeAttenuation is set, pixels otherwise
	Color           colorful.Color
	SizeAttenuation bool
	Additive        bool
}

// Points is a point cloud stored as a flat xyz buffer.
type Points struct {
	Object3D
	Positions []float32
	Material  *PointsMaterial
}

// Count returns the number of points.
func (p *Points) Count() int {
	return len(p.Positions) / 3
}

// At returns point i in local space.
func (p *Points) At(i int) mathutil.Vec3 {
	return mathutil.V3(float64(p.Positions[i*3]), float64(p.Positions[i*3+1]), float64(p.Positions[i*3+2]))
}

// DirectionalLight shines from Position toward Target (the origin by default).
type DirectionalLight struct {
	Color     colorful.Color
	Intensity float64
	Position  mathutil.Vec3
	Target    mathutil.Vec3
}

// Direction returns the unit vector pointing toward the light.
func (l *DirectionalLight) Direction() mathutil.Vec3 {
	return l.Position.Sub(l.Target).Normalize()
}

// AxesHelper draws the X (red), Y (green) and Z (blue) axes from the origin.
type AxesHelper struct {
	Size float64
}

// Segments returns the three axis segments with their start and end colors.
func (a *AxesHelper) Segments() []AxisSegment {
	if a == nil || a.Size <= 0 {
		return nil
	}
	s := a.Size
	return []AxisSegment{
		{To: mathutil.V3(s, 0, 0), From: colorful.Color{R: 1}, ToColor: colorful.Color{R: 1, G: 0.6}},
		{To: mathutil.V3(0, s, 0), From: colorful.Color{G: 1}, ToColor: colorful.Color{R: 0.6, G: 1}},
		{To: mathutil.V3(0, 0, s), From: colorful.Color{B: 1}, ToColor: colorful.Color{G: 0.6, B: 1}},
	}
}

// AxisSegment is a line from the origin with a color ramp.
type AxisSegment struct {
	To            mathutil.Vec3
	From, ToColor colorful.Color
}

// Group is the camera rig: an untransformed-by-rotation node that owns the
// camera. Parallax moves the group, scrolling moves the camera inside it.
type Group struct {
	Object3D
	Camera *PerspectiveCamera
}

// CameraWorldPosition returns the camera position in world space.
func (g *Group) CameraWorldPosition() mathutil.Vec3 {
	if g.Camera == nil {
		return g.Position
	}
	return g.Position.Add(g.Camera.Position)
}
