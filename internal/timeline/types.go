package timeline

import "toonscroll/internal/input"

// Cue is one scripted input event at a point in time (seconds).
type Cue struct {
	At    float64
	Event input.Event
}

// Timeline is a scripted input session for headless rendering.
type Timeline struct {
	FPS      int
	Duration float64 // seconds
	Cues     []Cue   // sorted by At, document order kept for ties
}

// Frames returns the number of frames to render, counting frame 0.
func (t *Timeline) Frames() int {
	if t.FPS <= 0 || t.Duration <= 0 {
		return 1
	}
	return int(t.Duration*float64(t.FPS)) + 1
}

// FrameTime returns the time of frame i in seconds.
func (t *Timeline) FrameTime(i int) float64 {
	if t.FPS <= 0 {
		return 0
	}
	return float64(i) / float64(t.FPS)
}
