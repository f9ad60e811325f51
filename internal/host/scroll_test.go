package host

import (
	"testing"

	"toonscroll/internal/input"
)

func TestScroller(t *testing.T) {
	height := 800.0
	s := &Scroller{Step: 120, Clamp: func(y float64) float64 { return input.ScrollRange(y, height, 3) }}

	if y, changed := s.Wheel(1); y != 0 || changed {
		t.Fatalf("Wheel(up) at top = %v, %v, want 0, false", y, changed)
	}
	if y, changed := s.Wheel(-2); y != 240 || !changed {
		t.Fatalf("Wheel(-2) = %v, %v, want 240, true", y, changed)
	}
	if y, _ := s.By(10000); y != 1600 {
		t.Fatalf("By(10000) = %v, want 1600", y)
	}

	height = 400
	if y, changed := s.Reclamp(); y != 800 || !changed {
		t.Fatalf("Reclamp() = %v, %v, want 800, true", y, changed)
	}

	free := &Scroller{Step: 1}
	if y, _ := free.By(-5); y != -5 {
		t.Fatalf("unclamped By(-5) = %v", y)
	}
}
