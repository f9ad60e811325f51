// Package input records scroll offset and normalized cursor position.
// Writers are host event handlers, the reader is the frame tick; the last
// write before a tick wins.
package input

// Cursor is the pointer position normalized to [-0.5, 0.5] on each axis,
// with +Y pointing down the page.
type Cursor struct {
	X, Y float64
}

// State is the input snapshot read every frame.
type State struct {
	ScrollY float64
	Cursor  Cursor
}

// Sizer reports the current viewport size in CSS pixels.
type Sizer interface {
	Size() (width, height float64)
}

// Tracker applies raw events to a State.
type Tracker struct {
	State *State
	Sizes Sizer
}

// NewTracker creates a tracker writing into state.
func NewTracker(state *State, sizes Sizer) *Tracker {
	return &Tracker{State: state, Sizes: sizes}
}

// Scroll records the raw scroll offset.
func (t *Tracker) Scroll(y float64) {
	t.State.ScrollY = y
}

// PointerMove normalizes a client position against the viewport size.
func (t *Tracker) PointerMove(clientX, clientY float64) {
	w, h := t.Sizes.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.State.Cursor = Cursor{
		X: clientX/w - 0.5,
		Y: clientY/h - 0.5,
	}
}
