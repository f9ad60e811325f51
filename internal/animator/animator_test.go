package animator

import (
	"testing"

	"toonscroll/internal/mathutil"
)

type startCall struct {
	target   *mathutil.Vec3
	duration float64
	easing   string
	delta    mathutil.Vec3
}

type fakeHandle struct {
	done, cancelled bool
}

func (h *fakeHandle) Cancel()    { h.cancelled = true; h.done = true }
func (h *fakeHandle) Done() bool { return h.done }

type fakeScheduler struct {
	calls   []startCall
	handles []*fakeHandle
}

func (f *fakeScheduler) Start(target *mathutil.Vec3, duration float64, easing string, delta mathutil.Vec3) Handle {
	f.calls = append(f.calls, startCall{target, duration, easing, delta})
	h := &fakeHandle{}
	f.handles = append(f.handles, h)
	return h
}

func newTargets(n int) []*mathutil.Vec3 {
	out := make([]*mathutil.Vec3, n)
	for i := range out {
		out[i] = &mathutil.Vec3{}
	}
	return out
}

func TestSection(t *testing.T) {
	tests := []struct {
		scroll, height float64
		want           int
	}{
		{0, 800, 0},
		{399, 800, 0},
		{400, 800, 1},
		{800, 800, 1},
		{1200, 800, 2},
		{2000, 800, 3},
		{100, 0, 0},
	}
	for _, tt := range tests {
		if got := Section(tt.scroll, tt.height); got != tt.want {
			t.Fatalf("Section(%v, %v) = %d, want %d", tt.scroll, tt.height, got, tt.want)
		}
	}
}

func TestOnScrollStartsTweenOnNewSection(t *testing.T) {
	targets := newTargets(3)
	sched := &fakeScheduler{}
	a := New(targets, sched)

	if _, changed := a.OnScroll(100, 800); changed {
		t.Fatalf("OnScroll(100) changed, want same section 0")
	}
	section, changed := a.OnScroll(800, 800)
	if !changed || section != 1 {
		t.Fatalf("OnScroll(800) = %d, %v; want 1, true", section, changed)
	}
	if len(sched.calls) != 1 {
		t.Fatalf("Start calls = %d, want 1", len(sched.calls))
	}
	c := sched.calls[0]
	if c.target != targets[1] {
		t.Fatalf("tween target is not mesh 1")
	}
	if c.duration != 1.5 || c.easing != "power2.inOut" || c.delta != (mathutil.Vec3{6, 3, 1.5}) {
		t.Fatalf("Start(%v, %q, %v), want (1.5, power2.inOut, {6 3 1.5})", c.duration, c.easing, c.delta)
	}
	if a.Current() != 1 {
		t.Fatalf("Current() = %d, want 1", a.Current())
	}
}

func TestOnScrollClampsPastLastSection(t *testing.T) {
	targets := newTargets(3)
	sched := &fakeScheduler{}
	a := New(targets, sched)

	section, changed := a.OnScroll(2000, 800) // raw section 3
	if !changed || section != 2 {
		t.Fatalf("OnScroll(2000) = %d, %v; want clamped 2, true", section, changed)
	}
	if sched.calls[0].target != targets[2] {
		t.Fatalf("tween target is not the last mesh")
	}
	if _, changed := a.OnScroll(4000, 800); changed {
		t.Fatalf("OnScroll(4000) changed again, want no-op at last section")
	}
	if section, _ := a.OnScroll(-500, 800); section != 0 {
		t.Fatalf("OnScroll(-500) = %d, want 0", section)
	}
	if len(sched.calls) != 2 {
		t.Fatalf("Start calls = %d, want 2", len(sched.calls))
	}
}

func TestRetriggerKeepsInFlightTweens(t *testing.T) {
	targets := newTargets(3)
	sched := &fakeScheduler{}
	a := New(targets, sched)

	a.OnScroll(800, 800)
	a.OnScroll(0, 800)
	a.OnScroll(800, 800)
	if got := a.InFlight(1); got != 2 {
		t.Fatalf("InFlight(1) = %d, want 2 overlapping tweens", got)
	}
	for _, h := range sched.handles {
		if h.cancelled {
			t.Fatalf("a tween was cancelled on retrigger")
		}
	}

	sched.handles[0].done = true
	a.OnScroll(0, 800)
	a.OnScroll(800, 800)
	if got := a.InFlight(1); got != 2 {
		t.Fatalf("InFlight(1) = %d, want 2 after one finished", got)
	}

	a.CancelAll()
	for i, h := range sched.handles {
		if i > 0 && !h.cancelled {
			t.Fatalf("handle %d not cancelled by CancelAll", i)
		}
	}
}

func TestOnChangeHook(t *testing.T) {
	var got []int
	a := New(newTargets(3), nil)
	a.OnChange = func(s int) { got = append(got, s) }
	a.OnScroll(800, 800)
	a.OnScroll(900, 800)
	a.OnScroll(1600, 800)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("OnChange sections = %v, want [1 2]", got)
	}
}

func TestNoTargets(t *testing.T) {
	a := New(nil, &fakeScheduler{})
	if _, changed := a.OnScroll(5000, 800); changed {
		t.Fatalf("OnScroll with no targets changed")
	}
}
