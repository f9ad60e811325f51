// Package geometry builds indexed triangle meshes with per-vertex normals.
package geometry

import (
	"math"

	"toonscroll/internal/mathutil"
)

// Geometry is an indexed triangle list. Triangles wind counter-clockwise
// when seen from the side their normals point to.
type Geometry struct {
	Name      string
	Positions []mathutil.Vec3
	Normals   []mathutil.Vec3
	Indices   []uint32
}

// Triangles returns the number of triangles.
func (g *Geometry) Triangles() int {
	return len(g.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of all positions.
func (g *Geometry) Bounds() (lo, hi mathutil.Vec3) {
	if len(g.Positions) == 0 {
		return
	}
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range g.Positions {
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}

func (g *Geometry) vertex(p, n mathutil.Vec3) uint32 {
	g.Positions = append(g.Positions, p)
	g.Normals = append(g.Normals, n)
	return uint32(len(g.Positions) - 1)
}

func (g *Geometry) tri(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// Torus builds a ring in the XY plane around the Z axis.
func Torus(radius, tube float64, radialSegments, tubularSegments int) *Geometry {
	radialSegments = max(radialSegments, 3)
	tubularSegments = max(tubularSegments, 3)
	g := &Geometry{Name: "torus"}

	for j := 0; j <= radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			p := mathutil.Vec3{
				(radius + tube*math.Cos(v)) * math.Cos(u),
				(radius + tube*math.Cos(v)) * math.Sin(u),
				tube * math.Sin(v),
			}
			center := mathutil.Vec3{radius * math.Cos(u), radius * math.Sin(u), 0}
			g.vertex(p, p.Sub(center).Normalize())
		}
	}

	row := uint32(tubularSegments + 1)
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := row*uint32(j) + uint32(i-1)
			b := row*uint32(j-1) + uint32(i-1)
			c := row*uint32(j-1) + uint32(i)
			d := row*uint32(j) + uint32(i)
			g.tri(a, b, d)
			g.tri(b, c, d)
		}
	}
	return g
}

// Cone builds a cone along Y with its apex at +height/2 and a closed base.
func Cone(radius, height float64, radialSegments int) *Geometry {
	radialSegments = max(radialSegments, 3)
	g := &Geometry{Name: "cone"}
	half := height / 2
	slope := radius / height

	// Side: two rings (apex ring of zero radius, base ring).
	rings := make([][]uint32, 2)
	for y := 0; y <= 1; y++ {
		r := float64(y) * radius
		for x := 0; x <= radialSegments; x++ {
			theta := float64(x) / float64(radialSegments) * 2 * math.Pi
			sin, cos := math.Sin(theta), math.Cos(theta)
			p := mathutil.Vec3{r * sin, -float64(y)*height + half, r * cos}
			n := mathutil.Vec3{sin, slope, cos}.Normalize()
			rings[y] = append(rings[y], g.vertex(p, n))
		}
	}
	for x := 0; x < radialSegments; x++ {
		b := rings[1][x]
		c := rings[1][x+1]
		d := rings[0][x+1]
		g.tri(b, c, d)
	}

	// Base cap facing -Y.
	down := mathutil.Vec3{0, -1, 0}
	centers := make([]uint32, radialSegments)
	for x := 0; x < radialSegments; x++ {
		centers[x] = g.vertex(mathutil.Vec3{0, -half, 0}, down)
	}
	rim := make([]uint32, radialSegments+1)
	for x := 0; x <= radialSegments; x++ {
		theta := float64(x) / float64(radialSegments) * 2 * math.Pi
		rim[x] = g.vertex(mathutil.Vec3{radius * math.Sin(theta), -half, radius * math.Cos(theta)}, down)
	}
	for x := 0; x < radialSegments; x++ {
		g.tri(rim[x+1], rim[x], centers[x])
	}
	return g
}

// TorusKnot builds a (p,q) torus knot tube.
func TorusKnot(radius, tube float64, tubularSegments, radialSegments, p, q int) *Geometry {
	tubularSegments = max(tubularSegments, 3)
	radialSegments = max(radialSegments, 3)
	if p == 0 {
		p = 2
	}
	if q == 0 {
		q = 3
	}
	g := &Geometry{Name: "torus-knot"}

	curve := func(u float64) mathutil.Vec3 {
		quOverP := float64(q) / float64(p) * u
		cs := math.Cos(quOverP)
		return mathutil.Vec3{
			radius * (2 + cs) * 0.5 * math.Cos(u),
			radius * (2 + cs) * math.Sin(u) * 0.5,
			radius * math.Sin(quOverP) * 0.5,
		}
	}

	for i := 0; i <= tubularSegments; i++ {
		u := float64(i) / float64(tubularSegments) * float64(p) * 2 * math.Pi
		p1 := curve(u)
		p2 := curve(u + 0.01)

		// Frenet-like frame along the curve.
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t)
		b = b.Normalize()
		n = n.Normalize()

		for j := 0; j <= radialSegments; j++ {
			v := float64(j) / float64(radialSegments) * 2 * math.Pi
			cx := -tube * math.Cos(v)
			cy := tube * math.Sin(v)
			pos := p1.Add(n.Scale(cx)).Add(b.Scale(cy))
			g.vertex(pos, pos.Sub(p1).Normalize())
		}
	}

	row := uint32(radialSegments + 1)
	for j := 1; j <= tubularSegments; j++ {
		for i := 1; i <= radialSegments; i++ {
			a := row*uint32(j-1) + uint32(i-1)
			b := row*uint32(j) + uint32(i-1)
			c := row*uint32(j) + uint32(i)
			d := row*uint32(j-1) + uint32(i)
			g.tri(a, b, d)
			g.tri(b, c, d)
		}
	}
	return g
}
