// Package window runs the scroll scene in a desktop window. The page scroll
// comes from the mouse wheel and page keys; Tab toggles the tuning panel.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"toonscroll/internal/app"
	"toonscroll/internal/host"
	"toonscroll/internal/input"
)

// Options configures the window host.
type Options struct {
	Title      string
	FPS        int
	ScrollStep float64 // pixels per wheel notch
	ShowFPS    bool
}

// Run opens a window sized to the app viewport and blocks until it closes.
func Run(a *app.App, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = 120
	}
	g := &game{app: a, opts: opts}
	g.scroll = host.Scroller{Step: opts.ScrollStep, Clamp: a.ClampScroll}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(a.Viewport.Width), int(a.Viewport.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.FPS)
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: a.Renderer.Transparent})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	app    *app.App
	opts   Options
	scroll host.Scroller

	fbImg   *ebiten.Image
	scratch []byte

	width, height int
	scale         float64
	cursorX       int
	cursorY       int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		pr := g.app.Viewport.PixelRatio
		g.app.Handle(input.PointerMove(float64(x)/pr, float64(y)/pr))
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scrollBy(g.scroll.Wheel(dy))
	}

	panel := g.app.Panel
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		panel.Visible = !panel.Visible
	}
	if panel.Visible {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyUp):
			panel.Select(-1)
		case inpututil.IsKeyJustPressed(ebiten.KeyDown):
			panel.Select(1)
		case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
			panel.Adjust(-1)
		case inpututil.IsKeyJustPressed(ebiten.KeyRight):
			panel.Adjust(1)
		}
	} else {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyUp):
			g.scrollBy(g.scroll.Wheel(1))
		case inpututil.IsKeyJustPressed(ebiten.KeyDown):
			g.scrollBy(g.scroll.Wheel(-1))
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.scrollBy(g.scroll.By(g.app.Viewport.Height))
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scrollBy(g.scroll.By(-g.app.Viewport.Height))
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scrollBy(g.scroll.By(-g.scroll.Y))
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scrollBy(g.scroll.By(g.app.ClampScroll(1e12) - g.scroll.Y))
	}

	g.app.Frame()
	return nil
}

func (g *game) scrollBy(y float64, changed bool) {
	if changed {
		g.app.Handle(input.Scroll(y))
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.app.Renderer.FrameBuffer()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.Width || g.fbImg.Bounds().Dy() != fb.Height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.scratch = host.Premultiply(g.scratch, fb.Color)
	g.fbImg.WritePixels(g.scratch)

	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/float64(fb.Width), float64(sh)/float64(fb.Height))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.fbImg, op)

	y := 4
	if g.opts.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  section %d/%d", ebiten.ActualFPS(), g.app.Section()+1, g.app.Sections()), 4, y)
		y += 16
	}
	if g.app.Panel.Visible {
		for _, line := range g.app.Panel.Lines() {
			ebitenutil.DebugPrintAt(screen, line, 4, y)
			y += 16
		}
	}
}

// Layout reports window resizes and display scale changes to the app and
// lays the screen out at device pixel size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if outsideWidth != g.width || outsideHeight != g.height || scale != g.scale {
		g.width, g.height, g.scale = outsideWidth, outsideHeight, scale
		g.app.Handle(input.Resize(float64(outsideWidth), float64(outsideHeight), scale))
		g.scrollBy(g.scroll.Reclamp())
	}
	return g.app.Viewport.TargetSize()
}
