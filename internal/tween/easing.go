package tween

import (
	"strings"

	"github.com/tanema/gween/ease"
)

type curve struct {
	in, out, inOut ease.TweenFunc
}

var curves = map[string]curve{
	"power1":  {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"quad":    {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power2":  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"cubic":   {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power3":  {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"quart":   {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power4":  {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"quint":   {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"sine":    {ease.InSine, ease.OutSine, ease.InOutSine},
	"expo":    {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":    {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	"back":    {ease.InBack, ease.OutBack, ease.InOutBack},
	"elastic": {ease.InElastic, ease.OutElastic, ease.InOutElastic},
	"bounce":  {ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

// EasingByName resolves GSAP-style names such as "power2.inOut",
// "sine.in" or "bounce" (bare names ease out). "none", "linear" and
// "power0" are linear.
func EasingByName(name string) (ease.TweenFunc, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "none", "linear", "power0", "power0.in", "power0.out", "power0.inout":
		return ease.Linear, true
	}
	family, variant, _ := strings.Cut(name, ".")
	c, ok := curves[family]
	if !ok {
		return nil, false
	}
	switch variant {
	case "in":
		return c.in, true
	case "", "out":
		return c.out, true
	case "inout":
		return c.inOut, true
	}
	return nil, false
}
