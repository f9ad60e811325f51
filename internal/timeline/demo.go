package timeline

import (
	"math"

	"toonscroll/internal/input"
)

// Demo builds the stock script: the viewport is sized at 0, the cursor orbits
// the center for the whole run, and the page scrolls one section at a time,
// each scroll easing over 0.6 s and then resting so the section tween plays.
func Demo(fps, width, height, sections int, duration float64) *Timeline {
	w, h := float64(width), float64(height)
	tl := &Timeline{FPS: fps, Duration: duration}
	tl.Cues = append(tl.Cues, Cue{At: 0, Event: input.Resize(w, h, 1)})

	// Cursor orbit, 10 samples per second.
	for t := 0.0; t <= duration; t += 0.1 {
		a := 2 * math.Pi * t / math.Max(duration, 1) * 2
		tl.Cues = append(tl.Cues, Cue{At: t, Event: input.PointerMove(
			w/2+w/4*math.Cos(a),
			h/2+h/4*math.Sin(a),
		)})
	}

	// One scroll gesture per section boundary.
	if sections > 1 {
		seg := duration / float64(sections)
		const steps = 12
		for s := 1; s < sections; s++ {
			start := seg*float64(s) - 0.3
			from, to := h*float64(s-1), h*float64(s)
			for i := 1; i <= steps; i++ {
				f := float64(i) / steps
				eased := f * f * (3 - 2*f)
				tl.Cues = append(tl.Cues, Cue{
					At:    math.Max(start+0.6*f, 0),
					Event: input.Scroll(from + (to-from)*eased),
				})
			}
		}
	}

	sortCues(tl.Cues)
	return tl
}
