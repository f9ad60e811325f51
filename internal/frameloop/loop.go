package frameloop

import "time"

// Clock reports seconds elapsed since it started.
type Clock interface {
	Now() float64
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// StepClock only moves when told to. Used for headless replay and tests.
type StepClock struct {
	t float64
}

func (c *StepClock) Now() float64 { return c.t }

// Advance moves the clock forward by dt seconds.
func (c *StepClock) Advance(dt float64) {
	if dt > 0 {
		c.t += dt
	}
}

// Loop runs a frame step each time the host's refresh fires. It never runs
// two steps at once; hosts call Tick from their single update goroutine.
type Loop struct {
	clock   Clock
	step    func(elapsed float64)
	running bool
	frames  uint64
}

// NewLoop creates a stopped loop.
func NewLoop(clock Clock, step func(elapsed float64)) *Loop {
	return &Loop{clock: clock, step: step}
}

// Start lets Tick run frames.
func (l *Loop) Start() { l.running = true }

// Stop makes Tick a no-op until Start is called again.
func (l *Loop) Stop() { l.running = false }

// Running reports whether the loop is started.
func (l *Loop) Running() bool { return l.running }

// Frames returns the number of frames run.
func (l *Loop) Frames() uint64 { return l.frames }

// Tick runs one frame at the clock's current time. It returns false when
// the loop is stopped.
func (l *Loop) Tick() bool {
	if !l.running || l.step == nil {
		return false
	}
	l.step(l.clock.Now())
	l.frames++
	return true
}
