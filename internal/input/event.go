package input

import "fmt"

// Kind identifies an input event.
type Kind uint8

const (
	KindResize Kind = iota
	KindScroll
	KindPointerMove
)

func (k Kind) String() string {
	switch k {
	case KindResize:
		return "resize"
	case KindScroll:
		return "scroll"
	case KindPointerMove:
		return "mousemove"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is what hosts emit: a window resize, a scroll offset, or a pointer
// position in client (CSS) pixels.
type Event struct {
	Kind Kind

	// Resize
	Width, Height, PixelRatio float64

	// Scroll
	ScrollY float64

	// PointerMove
	ClientX, ClientY float64
}

func Resize(width, height, pixelRatio float64) Event {
	return Event{Kind: KindResize, Width: width, Height: height, PixelRatio: pixelRatio}
}

func Scroll(y float64) Event {
	return Event{Kind: KindScroll, ScrollY: y}
}

func PointerMove(x, y float64) Event {
	return Event{Kind: KindPointerMove, ClientX: x, ClientY: y}
}

func (e Event) String() string {
	switch e.Kind {
	case KindResize:
		return fmt.Sprintf("resize %gx%g@%g", e.Width, e.Height, e.PixelRatio)
	case KindScroll:
		return fmt.Sprintf("scroll %g", e.ScrollY)
	case KindPointerMove:
		return fmt.Sprintf("mousemove %g,%g", e.ClientX, e.ClientY)
	default:
		return e.Kind.String()
	}
}

// ScrollRange limits a scroll offset to a page of sections stacked at one
// viewport height each: [0, (sections-1)*height].
func ScrollRange(y, height float64, sections int) float64 {
	limit := float64(max(sections-1, 0)) * height
	if y > limit {
		y = limit
	}
	if y < 0 {
		y = 0
	}
	return y
}
