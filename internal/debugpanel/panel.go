// Package debugpanel exposes the live-tweakable scene parameters: three
// colors and the light intensity. Changes apply to the scene directly and are
// not persisted.
package debugpanel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"toonscroll/internal/scene"
)

// Control names, as shown in the panel.
const (
	MaterialColor  = "material color"
	ParticlesColor = "particles color"
	LightColor     = "directional_light-color"
	LightIntensity = "directional_light-intensity"
)

// HueStep is the hue change in degrees of one color adjustment.
const HueStep = 15.0

// Kind distinguishes color pickers from sliders.
type Kind uint8

const (
	KindColor Kind = iota
	KindSlider
)

// Control is one panel row bound to a scene value.
type Control struct {
	Name string
	Kind Kind

	color *colorful.Color
	value *float64

	Min, Max, Step float64 // sliders only
}

// Value formats the current value: #rrggbb for colors, one decimal for sliders.
func (c *Control) Value() string {
	if c.Kind == KindColor {
		return c.color.Clamped().Hex()
	}
	return strconv.FormatFloat(*c.value, 'f', 1, 64)
}

// Adjust moves a color's hue by steps×HueStep or a slider by steps×Step.
func (c *Control) Adjust(steps int) {
	if c.Kind == KindColor {
		h, s, v := c.color.Hsv()
		h = math.Mod(h+float64(steps)*HueStep, 360)
		if h < 0 {
			h += 360
		}
		*c.color = colorful.Hsv(h, s, v)
		return
	}
	*c.value = c.snap(*c.value + float64(steps)*c.Step)
}

// Set parses a #rrggbb color or a slider number.
func (c *Control) Set(value string) error {
	if c.Kind == KindColor {
		col, err := colorful.Hex(value)
		if err != nil {
			return fmt.Errorf("debugpanel: %s: %w", c.Name, err)
		}
		*c.color = col
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("debugpanel: %s: %w", c.Name, err)
	}
	*c.value = c.snap(f)
	return nil
}

func (c *Control) snap(v float64) float64 {
	if c.Step > 0 {
		v = math.Round(v/c.Step) * c.Step
	}
	return math.Min(math.Max(v, c.Min), c.Max)
}

// Panel is an ordered list of controls with a selection cursor.
type Panel struct {
	Visible  bool
	controls []*Control
	selected int
}

// New binds the panel to a scene's material, particle material and light.
func New(sc *scene.Scene) *Panel {
	return &Panel{controls: []*Control{
		{Name: MaterialColor, Kind: KindColor, color: &sc.Material.Color},
		{Name: ParticlesColor, Kind: KindColor, color: &sc.Particles.Material.Color},
		{Name: LightColor, Kind: KindColor, color: &sc.Light.Color},
		{Name: LightIntensity, Kind: KindSlider, value: &sc.Light.Intensity, Min: 0, Max: 10, Step: 0.1},
	}}
}

// Controls returns the controls in display order.
func (p *Panel) Controls() []*Control { return p.controls }

// Selected returns the control under the cursor.
func (p *Panel) Selected() *Control { return p.controls[p.selected] }

// Select moves the cursor by delta rows, wrapping around.
func (p *Panel) Select(delta int) {
	n := len(p.controls)
	p.selected = ((p.selected+delta)%n + n) % n
}

// Adjust changes the selected control.
func (p *Panel) Adjust(steps int) {
	p.Selected().Adjust(steps)
}

// Set assigns a control by name.
func (p *Panel) Set(name, value string) error {
	for _, c := range p.controls {
		if c.Name == name {
			return c.Set(value)
		}
	}
	return fmt.Errorf("debugpanel: unknown control %q", name)
}

// Lines renders the panel as text rows, marking the selection.
func (p *Panel) Lines() []string {
	lines := make([]string, len(p.controls))
	for i, c := range p.controls {
		mark := " "
		if i == p.selected {
			mark = ">"
		}
		lines[i] = fmt.Sprintf("%s %-28s %s", mark, c.Name, c.Value())
	}
	return lines
}
