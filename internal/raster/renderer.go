package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"toonscroll/internal/scene"
)

// Stats counts what the last Render drew.
type Stats struct {
	Triangles int // rasterized (at least one pixel)
	Culled    int // back-facing or behind the near plane
	Points    int // sprites with at least one pixel
	Lines     int // axis segments drawn
}

// Renderer draws a scene into an owned frame buffer.
type Renderer struct {
	Background  colorful.Color
	Transparent bool // clear to transparent instead of Background

	fb    *FrameBuffer
	stats Stats

	// per-mesh scratch, reused across frames
	verts []ScreenVertex
	near  []bool
}

// NewRenderer creates a renderer with a w×h target.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{fb: NewFrameBuffer(w, h)}
}

// Resize reallocates the target when the size changes.
func (r *Renderer) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if r.fb.Width == w && r.fb.Height == h {
		return
	}
	r.fb = NewFrameBuffer(w, h)
}

// Size returns the target size in pixels.
func (r *Renderer) Size() (w, h int) {
	return r.fb.Width, r.fb.Height
}

// FrameBuffer exposes the target of the last Render.
func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }

// Stats returns the counters of the last Render.
func (r *Renderer) Stats() Stats { return r.stats }

// Image returns a copy of the last rendered frame.
func (r *Renderer) Image() *image.NRGBA {
	return r.fb.Image()
}

// Render clears the target, then draws the axes helper, the section meshes
// and the particles as seen from the camera inside its rig.
func (r *Renderer) Render(sc *scene.Scene) {
	r.stats = Stats{}
	if r.Transparent {
		r.fb.Clear(0, 0, 0, 0)
	} else {
		bg := r.Background
		r.fb.Clear(clamp255(bg.R*255), clamp255(bg.G*255), clamp255(bg.B*255), 255)
	}
	if sc == nil || sc.Camera == nil {
		return
	}

	cam := sc.Camera
	vp := cam.ViewProjection(sc.Rig.CameraWorldPosition())

	r.drawAxes(sc, vp)
	for _, m := range sc.Meshes {
		r.drawMesh(sc, m, vp)
	}
	r.drawPoints(sc, vp)
}

func (r *Renderer) toScreen(clip mgl64.Vec4) (x, y, invW float64) {
	invW = 1 / clip[3]
	x = (clip[0]*invW + 1) * 0.5 * float64(r.fb.Width)
	y = (1 - clip[1]*invW) * 0.5 * float64(r.fb.Height)
	return x, y, invW
}

func (r *Renderer) drawMesh(sc *scene.Scene, m *scene.Mesh, vp mgl64.Mat4) {
	g := m.Geometry
	if g == nil || m.Material == nil {
		return
	}
	var (
		light     = sc.Light
		lightDir  = light.Direction()
		shader    = NewToonShader(m.Material.Color, light.Color, light.Intensity, lightDir, m.Material.Gradient)
		model     = m.Matrix()
		normalMat = model.Mat3().NormalMatrix()
		nearPlane = sc.Camera.Near
	)

	n := len(g.Positions)
	if cap(r.verts) < n {
		r.verts = make([]ScreenVertex, n)
		r.near = make([]bool, n)
	}
	verts, behind := r.verts[:n], r.near[:n]

	for i, p := range g.Positions {
		w := model.MulPoint(p)
		clip := vp.Mul4x1(mgl64.Vec4{w[0], w[1], w[2], 1})
		behind[i] = clip[3] < nearPlane
		if behind[i] {
			continue
		}
		x, y, invW := r.toScreen(clip)
		verts[i] = ScreenVertex{X: x, Y: y, InvW: invW, N: normalMat.MulVec3(g.Normals[i]).Normalize()}
	}

	idx := g.Indices
	for t := 0; t+2 < len(idx); t += 3 {
		a, b, c := idx[t], idx[t+1], idx[t+2]
		if behind[a] || behind[b] || behind[c] {
			r.stats.Culled++
			continue
		}
		if RasterizeToonTriangle(r.fb, &verts[a], &verts[b], &verts[c], &shader) {
			r.stats.Triangles++
		}
	}
}

func (r *Renderer) drawPoints(sc *scene.Scene, vp mgl64.Mat4) {
	pts := sc.Particles
	if pts == nil || pts.Material == nil {
		return
	}
	mat := pts.Material
	cr, cg, cb := mat.Color.R*255, mat.Color.G*255, mat.Color.B*255
	model := pts.Matrix()
	cam := sc.Camera

	for i := 0; i < pts.Count(); i++ {
		w := model.MulPoint(pts.At(i))
		clip := vp.Mul4x1(mgl64.Vec4{w[0], w[1], w[2], 1})
		if clip[3] < cam.Near || clip[3] > cam.Far {
			continue
		}
		x, y, invW := r.toScreen(clip)
		size := mat.Size
		if mat.SizeAttenuation {
			size = AttenuatedPointSize(mat.Size, clip[3], r.fb.Height)
		}
		if DrawPointSprite(r.fb, x, y, invW, size, cr, cg, cb, mat.Additive) > 0 {
			r.stats.Points++
		}
	}
}

func (r *Renderer) drawAxes(sc *scene.Scene, vp mgl64.Mat4) {
	near := sc.Camera.Near
	origin := mgl64.Vec4{0, 0, 0, 1}
	for _, seg := range sc.Axes.Segments() {
		a := vp.Mul4x1(origin)
		b := vp.Mul4x1(mgl64.Vec4{seg.To[0], seg.To[1], seg.To[2], 1})
		ca, cb := seg.From, seg.ToColor

		// Clip against the near plane in clip space.
		if a[3] < near && b[3] < near {
			continue
		}
		if a[3] < near {
			t := (near - a[3]) / (b[3] - a[3])
			a = a.Add(b.Sub(a).Mul(t))
			ca = ca.BlendRgb(cb, t)
		} else if b[3] < near {
			t := (near - b[3]) / (a[3] - b[3])
			b = b.Add(a.Sub(b).Mul(t))
			cb = cb.BlendRgb(ca, t)
		}

		ax, ay, aw := r.toScreen(a)
		bx, by, bw := r.toScreen(b)
		if DrawLine(r.fb,
			LineVertex{X: ax, Y: ay, InvW: aw, R: ca.R * 255, G: ca.G * 255, B: ca.B * 255},
			LineVertex{X: bx, Y: by, InvW: bw, R: cb.R * 255, G: cb.G * 255, B: cb.B * 255},
		) > 0 {
			r.stats.Lines++
		}
	}
}
