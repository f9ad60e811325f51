// Package tween runs relative rotation tweens on top of gween. Every tween
// adds the change since its previous step to the target, so several tweens
// on the same target compose.
package tween

import (
	"github.com/tanema/gween"

	"toonscroll/internal/animator"
	"toonscroll/internal/mathutil"
)

// Tween animates one Vec3 target by a fixed delta.
type Tween struct {
	target  *mathutil.Vec3
	delta   mathutil.Vec3
	axes    [3]*gween.Tween
	applied mathutil.Vec3

	done      bool
	cancelled bool
}

// Cancel stops the tween where it is; already applied change stays.
func (t *Tween) Cancel() {
	t.cancelled = true
	t.done = true
}

// Done reports whether the tween finished or was cancelled.
func (t *Tween) Done() bool {
	return t.done
}

// Cancelled reports whether the tween was stopped before finishing.
func (t *Tween) Cancelled() bool {
	return t.cancelled
}

func (t *Tween) step(dt float32) {
	finished := true
	for k, tw := range t.axes {
		cur, fin := tw.Update(dt)
		v := float64(cur)
		if fin {
			v = t.delta[k]
		} else {
			finished = false
		}
		t.target[k] += v - t.applied[k]
		t.applied[k] = v
	}
	t.done = finished
}

// Engine owns the running tweens. It is driven by Update from the frame tick
// and is not safe for concurrent use.
type Engine struct {
	tweens []*Tween
}

// NewEngine returns an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Start implements animator.Scheduler. Unknown easing names fall back to
// the default section easing; non-positive durations apply the delta at once.
func (e *Engine) Start(target *mathutil.Vec3, duration float64, easing string, delta mathutil.Vec3) animator.Handle {
	fn, ok := EasingByName(easing)
	if !ok {
		fn, _ = EasingByName(animator.DefaultEasing)
	}
	t := &Tween{target: target, delta: delta}
	if duration <= 0 {
		*target = target.Add(delta)
		t.applied = delta
		t.done = true
		return t
	}
	for k := range t.axes {
		t.axes[k] = gween.New(0, float32(delta[k]), float32(duration), fn)
	}
	e.tweens = append(e.tweens, t)
	return t
}

// Update advances every running tween by dt seconds and drops finished ones.
func (e *Engine) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	live := e.tweens[:0]
	for _, t := range e.tweens {
		if !t.done {
			t.step(float32(dt))
		}
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = live
}

// Len returns the number of running tweens.
func (e *Engine) Len() int {
	return len(e.tweens)
}
