package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"toonscroll/internal/mathutil"
)

// PerspectiveCamera looks down -Z from its position.
type PerspectiveCamera struct {
	Object3D
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	projection mgl64.Mat4
}

// NewPerspectiveCamera creates a camera with its projection computed.
func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection after FOV, Aspect, Near
// or Far change.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Projection returns the last computed projection matrix.
func (c *PerspectiveCamera) Projection() mgl64.Mat4 {
	return c.projection
}

// ViewProjection returns projection × view for a camera at eye looking down -Z.
func (c *PerspectiveCamera) ViewProjection(eye mathutil.Vec3) mgl64.Mat4 {
	view := mgl64.Translate3D(-eye[0], -eye[1], -eye[2])
	return c.projection.Mul4(view)
}
