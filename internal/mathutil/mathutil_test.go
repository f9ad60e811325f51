package mathutil

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, 0},
		{-0.51, -1},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Fatalf("RoundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(3, 0, 2); got != 2 {
		t.Fatalf("ClampInt(3,0,2) = %d, want 2", got)
	}
	if got := ClampInt(-1, 0, 2); got != 0 {
		t.Fatalf("ClampInt(-1,0,2) = %d, want 0", got)
	}
	if got := ClampInt(5, 0, -1); got != 0 {
		t.Fatalf("ClampInt(5,0,-1) = %d, want 0", got)
	}
}

func TestDampConvergesWithoutOvershoot(t *testing.T) {
	x := 0.0
	prev := x
	for i := 0; i < 500; i++ {
		x = Damp(x, 1, 10, 1.0/60)
		if x < prev || x > 1 {
			t.Fatalf("step %d: x = %v (prev %v), want monotonic in [0,1]", i, x, prev)
		}
		prev = x
	}
	if !near(x, 1) && 1-x > 1e-6 {
		t.Fatalf("Damp did not converge: %v", x)
	}
}

func TestEulerXYZOrder(t *testing.T) {
	r := V3(0.3, -1.1, 2.0)
	got := EulerXYZ(r)
	want := Mat3Mul(RotX(0.3), Mat3Mul(RotY(-1.1), RotZ(2.0)))
	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("EulerXYZ[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalMatrixOfRotationIsRotation(t *testing.T) {
	m := EulerXYZ(V3(0.4, 0.2, -0.7))
	n := m.NormalMatrix()
	for i := range m {
		if !near(m[i], n[i]) {
			t.Fatalf("NormalMatrix[%d] = %v, want %v", i, n[i], m[i])
		}
	}
}

func TestComposeTranslatesAndRotates(t *testing.T) {
	m := Compose(V3(2, -4, 0), V3(0, 0, math.Pi/2))
	p := m.MulPoint(V3(1, 0, 0))
	if !near(p[0], 2) || !near(p[1], -3) || !near(p[2], 0) {
		t.Fatalf("Compose point = %v, want (2,-3,0)", p)
	}
	if !Compose(Vec3{}, Vec3{}).IsIdentity() {
		t.Fatalf("Compose(0,0) is not identity")
	}
}
