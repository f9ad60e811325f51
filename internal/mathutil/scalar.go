package mathutil

import "math"

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]. If hi < lo, lo wins.
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// RoundHalfUp rounds to the nearest integer with halves going toward +Inf
// (-0.5 → 0, 1.5 → 2), unlike math.Round which rounds halves away from zero.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Damp moves current toward target by rate*dt of the remaining distance.
// Stable (no overshoot) while rate*dt <= 1.
func Damp(current, target, rate, dt float64) float64 {
	return current + (target-current)*rate*dt
}
