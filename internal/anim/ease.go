package anim

import "time"

// EaseInOutQuad accelerates through the first half and decelerates through
// the second (gsap's power2.inOut). t is clamped to [0, 1].
func EaseInOutQuad(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// Clamp01 clamps t to [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress returns how far now is through a phase that started at start,
// as a fraction of duration clamped to [0, 1]. A non-positive duration is
// complete immediately.
func Progress(start, now time.Time, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(float64(now.Sub(start)) / float64(duration))
}
