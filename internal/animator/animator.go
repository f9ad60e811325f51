// Package animator maps scroll offset to a section index and starts a
// rotation tween on the section's mesh whenever the section changes.
package animator

import (
	"toonscroll/internal/mathutil"
)

// Handle is an in-flight animation.
type Handle interface {
	Cancel()
	Done() bool
}

// Scheduler starts a relative animation that adds delta to *target over
// duration seconds using the named easing.
type Scheduler interface {
	Start(target *mathutil.Vec3, duration float64, easing string, delta mathutil.Vec3) Handle
}

// Defaults for the section tween.
const (
	DefaultDuration = 1.5
	DefaultEasing   = "power2.inOut"
)

// DefaultDelta is the rotation added to a mesh when its section is reached.
var DefaultDelta = mathutil.Vec3{6, 3, 1.5}

// Section returns round(scrollY/height). It is not clamped.
func Section(scrollY, height float64) int {
	if height <= 0 {
		return 0
	}
	return mathutil.RoundHalfUp(scrollY / height)
}

// Animator holds the current section (0 at start).
type Animator struct {
	Targets   []*mathutil.Vec3
	Scheduler Scheduler

	Duration float64
	Easing   string
	Delta    mathutil.Vec3

	// OnChange, when set, is called after every section change.
	OnChange func(section int)

	current int
	handles map[int][]Handle
}

// New creates an animator with the default tween settings.
func New(targets []*mathutil.Vec3, scheduler Scheduler) *Animator {
	return &Animator{
		Targets:   targets,
		Scheduler: scheduler,
		Duration:  DefaultDuration,
		Easing:    DefaultEasing,
		Delta:     DefaultDelta,
		handles:   make(map[int][]Handle),
	}
}

// Current returns the current section index.
func (a *Animator) Current() int {
	return a.current
}

// OnScroll clamps the section under scrollY to the target list and, if it
// differs from the current one, makes it current and starts its tween.
// Tweens already running on that target are left to finish; their deltas add up.
func (a *Animator) OnScroll(scrollY, height float64) (section int, changed bool) {
	if len(a.Targets) == 0 {
		return a.current, false
	}
	candidate := mathutil.ClampInt(Section(scrollY, height), 0, len(a.Targets)-1)
	if candidate == a.current {
		return a.current, false
	}
	a.current = candidate

	if a.Scheduler != nil && a.Targets[candidate] != nil {
		h := a.Scheduler.Start(a.Targets[candidate], a.Duration, a.Easing, a.Delta)
		if h != nil {
			a.track(candidate, h)
		}
	}
	if a.OnChange != nil {
		a.OnChange(candidate)
	}
	return candidate, true
}

// InFlight returns the number of unfinished tweens started for a section.
func (a *Animator) InFlight(section int) int {
	n := 0
	for _, h := range a.handles[section] {
		if !h.Done() {
			n++
		}
	}
	return n
}

// CancelAll cancels every tween this animator started.
func (a *Animator) CancelAll() {
	for s, hs := range a.handles {
		for _, h := range hs {
			h.Cancel()
		}
		delete(a.handles, s)
	}
}

func (a *Animator) track(section int, h Handle) {
	if a.handles == nil {
		a.handles = make(map[int][]Handle)
	}
	live := a.handles[section][:0]
	for _, old := range a.handles[section] {
		if !old.Done() {
			live = append(live, old)
		}
	}
	a.handles[section] = append(live, h)
}
