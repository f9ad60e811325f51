// Package term runs the scroll scene in a terminal. Each cell shows two
// vertically stacked pixels with the upper half block glyph.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"toonscroll/internal/app"
	"toonscroll/internal/host"
	"toonscroll/internal/input"
	"toonscroll/internal/raster"
)

const halfBlock = '▀'

// Options configures the terminal host.
type Options struct {
	FPS       int
	StepRatio float64 // wheel notch as a fraction of the viewport height
}

// Host adapts terminal events to app events and draws frames.
type Host struct {
	screen tcell.Screen
	app    *app.App
	opts   Options
	scroll host.Scroller

	status bool
	width  int
	height int
}

// New binds a host to an initialized screen and sizes the app to it.
func New(screen tcell.Screen, a *app.App, opts Options) *Host {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.StepRatio <= 0 {
		opts.StepRatio = 0.15
	}
	h := &Host{screen: screen, app: a, opts: opts, status: true}
	h.scroll.Clamp = a.ClampScroll
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	h.resize()
	return h
}

// Run polls events and draws at the configured rate until quit.
func Run(a *app.App, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	h := New(screen, a, opts)

	ticker := time.NewTicker(time.Second / time.Duration(h.opts.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.app.Frame()
			h.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false on quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown, tcell.KeyPgDn:
			h.scrollBy(h.page(ev.Key() == tcell.KeyPgDn))
		case tcell.KeyUp, tcell.KeyPgUp:
			h.scrollBy(-h.page(ev.Key() == tcell.KeyPgUp))
		case tcell.KeyHome:
			h.scrollBy(-h.scroll.Y)
		case tcell.KeyEnd:
			h.scrollBy(h.app.ClampScroll(1e12) - h.scroll.Y)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				h.scrollBy(h.page(false))
			case 'k':
				h.scrollBy(-h.page(false))
			case 's':
				h.status = !h.status
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		// Cell centers: one column is one pixel, one row is two.
		h.app.Handle(input.PointerMove(float64(x)+0.5, float64(y*2)+1))
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelDown != 0:
			h.scrollBy(h.page(false))
		case btn&tcell.WheelUp != 0:
			h.scrollBy(-h.page(false))
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return true
}

// page returns one wheel notch, or one viewport height for full pages.
func (h *Host) page(full bool) float64 {
	vh := h.app.Viewport.Height
	if full {
		return vh
	}
	return vh * h.opts.StepRatio
}

func (h *Host) scrollBy(dy float64) {
	if y, changed := h.scroll.By(dy); changed {
		h.app.Handle(input.Scroll(y))
	}
}

func (h *Host) resize() {
	cols, rows := h.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	h.width, h.height = cols, rows
	h.app.Handle(input.Resize(float64(cols), float64(rows*2), 1))
	if y, changed := h.scroll.Reclamp(); changed {
		h.app.Handle(input.Scroll(y))
	}
}

// Scroll returns the current page scroll offset in pixels.
func (h *Host) Scroll() float64 { return h.scroll.Y }

// Draw copies the last frame to the screen and shows it.
func (h *Host) Draw() {
	fb := h.app.Renderer.FrameBuffer()
	for row := 0; row < h.height; row++ {
		for x := 0; x < h.width; x++ {
			top := cellColor(fb, x, row*2)
			bottom := cellColor(fb, x, row*2+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			h.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	if h.status {
		h.drawStatus()
	}
	h.screen.Show()
}

func (h *Host) drawStatus() {
	text := fmt.Sprintf(" section %d/%d  scroll %.0f  [wheel/j/k scroll, s status, q quit] ",
		h.app.Section()+1, h.app.Sections(), h.scroll.Y)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range text {
		if i >= h.width {
			break
		}
		h.screen.SetContent(i, 0, r, nil, style)
	}
}

// cellColor reads a frame buffer pixel, compositing alpha over black.
// Pixels outside the buffer are black.
func cellColor(fb *raster.FrameBuffer, x, y int) tcell.Color {
	if x >= fb.Width || y >= fb.Height {
		return tcell.ColorBlack
	}
	r, g, b, a := fb.At(x, y)
	if a < 255 {
		r = uint8(uint16(r) * uint16(a) / 255)
		g = uint8(uint16(g) * uint16(a) / 255)
		b = uint8(uint16(b) * uint16(a) / 255)
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
