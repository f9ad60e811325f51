package raster

import (
	"math"

	"toonscroll/internal/mathutil"
)

// ScreenVertex is a projected vertex: pixel position, reciprocal clip w,
// and the world-space normal to interpolate.
type ScreenVertex struct {
	X, Y float64
	InvW float64
	N    mathutil.Vec3
}

// RasterizeToonTriangle fills one triangle with per-pixel toon shading and a
// z-buffer test. Triangles wound clockwise on screen (counter-clockwise in
// NDC) face the camera; the rest are culled. It reports whether the triangle
// was drawn.
//
// Hot path: no allocations inside the pixel loop.
func RasterizeToonTriangle(fb *FrameBuffer, v0, v1, v2 *ScreenVertex, sh *ToonShader) bool {
	x0, y0 := v0.X, v0.Y
	x1, y1 := v1.X, v1.Y
	x2, y2 := v2.X, v2.Y

	// Twice the signed area; negative means front-facing with Y down.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 {
		return false
	}
	invDet := 1.0 / det

	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return false
	}

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	q0, q1, q2 := v0.InvW, v1.InvW, v2.InvW
	n0, n1, n2 := v0.N, v1.N, v2.N

	drawn := false
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -1e-9 || w1 < -1e-9 || w2 < -1e-9 {
				continue
			}

			// 1/w is affine in screen space.
			a0, a1, a2 := w0*q0, w1*q1, w2*q2
			z := a0 + a1 + a2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			inv := 1 / z
			n := mathutil.Vec3{
				(a0*n0[0] + a1*n1[0] + a2*n2[0]) * inv,
				(a0*n0[1] + a1*n1[1] + a2*n2[1]) * inv,
				(a0*n0[2] + a1*n1[2] + a2*n2[2]) * inv,
			}.Normalize()

			r, g, b := sh.Shade(n)
			fb.setPixel(zIdx, r, g, b)
			drawn = true
		}
	}
	return drawn
}
