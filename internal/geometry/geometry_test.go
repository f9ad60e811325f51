package geometry

import (
	"math"
	"testing"
)

func TestCounts(t *testing.T) {
	tests := []struct {
		name      string
		g         *Geometry
		vertices  int
		triangles int
	}{
		{"torus", Torus(1, 0.4, 16, 60), 17 * 61, 16 * 60 * 2},
		{"cone", Cone(1, 2, 32), 2*33 + 32 + 33, 32 + 32},
		{"torus-knot", TorusKnot(0.8, 0.35, 100, 16, 2, 3), 101 * 17, 100 * 16 * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.g.Positions); got != tt.vertices {
				t.Fatalf("vertices = %d, want %d", got, tt.vertices)
			}
			if len(tt.g.Normals) != len(tt.g.Positions) {
				t.Fatalf("normals = %d, want %d", len(tt.g.Normals), len(tt.g.Positions))
			}
			if got := tt.g.Triangles(); got != tt.triangles {
				t.Fatalf("Triangles() = %d, want %d", got, tt.triangles)
			}
			for i, idx := range tt.g.Indices {
				if int(idx) >= len(tt.g.Positions) {
					t.Fatalf("index[%d] = %d out of range", i, idx)
				}
			}
			for i, n := range tt.g.Normals {
				if math.Abs(n.Len()-1) > 1e-6 {
					t.Fatalf("normal[%d] length = %v, want 1", i, n.Len())
				}
			}
		})
	}
}

// Face winding must agree with the vertex normals so back-face culling keeps
// the outside of every shape.
func TestWindingMatchesNormals(t *testing.T) {
	for _, g := range []*Geometry{Torus(1, 0.4, 16, 60), Cone(1, 2, 32), TorusKnot(0.8, 0.35, 100, 16, 2, 3)} {
		agree, total := 0, 0
		for i := 0; i+2 < len(g.Indices); i += 3 {
			a, b, c := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
			face := g.Positions[b].Sub(g.Positions[a]).Cross(g.Positions[c].Sub(g.Positions[a]))
			if face.Len() < 1e-12 {
				continue
			}
			avg := g.Normals[a].Add(g.Normals[b]).Add(g.Normals[c])
			total++
			if face.Dot(avg) > 0 {
				agree++
			}
		}
		if total == 0 || float64(agree)/float64(total) < 0.99 {
			t.Fatalf("%s: %d/%d faces agree with normals", g.Name, agree, total)
		}
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Cone(1, 2, 32).Bounds()
	if math.Abs(lo[1]+1) > 1e-9 || math.Abs(hi[1]-1) > 1e-9 {
		t.Fatalf("cone Y bounds = [%v, %v], want [-1, 1]", lo[1], hi[1])
	}
	lo, hi = Torus(1, 0.4, 16, 60).Bounds()
	if math.Abs(hi[0]-1.4) > 1e-9 || math.Abs(lo[2]+0.4) > 1e-2 {
		t.Fatalf("torus bounds = %v..%v", lo, hi)
	}
	var empty Geometry
	lo, hi = empty.Bounds()
	if lo != hi {
		t.Fatalf("empty bounds = %v..%v, want zero", lo, hi)
	}
}
