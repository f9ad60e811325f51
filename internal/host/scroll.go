// Package host holds what the interactive front ends share: the page scroll
// model fed by wheel and keys.
package host

// Scroller turns wheel notches and page keys into a page scroll offset kept
// inside the range given by Clamp.
type Scroller struct {
	Y     float64
	Step  float64 // pixels per wheel notch
	Clamp func(y float64) float64
}

// By moves the offset by dy pixels and reports whether it changed.
func (s *Scroller) By(dy float64) (float64, bool) {
	y := s.Y + dy
	if s.Clamp != nil {
		y = s.Clamp(y)
	}
	changed := y != s.Y
	s.Y = y
	return y, changed
}

// Wheel applies notches in the ebiten convention: positive scrolls up.
func (s *Scroller) Wheel(notches float64) (float64, bool) {
	return s.By(-notches * s.Step)
}

// Reclamp re-applies Clamp, for example after the page height changed.
func (s *Scroller) Reclamp() (float64, bool) {
	return s.By(0)
}
