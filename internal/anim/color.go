package anim

import (
	"image/color"
	"math"
	"time"
)

// HoverDuration is how long a hover color transition takes
const HoverDuration = 200 * time.Millisecond

// tween is one in-flight color interpolation
type tween struct {
	id    uint64
	from  color.RGBA
	to    color.RGBA
	start time.Time
}

// ColorAnimator fades a line or label between its base and hover colors.
// Every pointer transition replaces the running tween, starting from the
// color currently on screen.
type ColorAnimator struct {
	base     color.RGBA
	hover    color.RGBA
	display  color.RGBA
	hovered  bool
	duration time.Duration
	active   *tween
	nextID   uint64
}

// NewColorAnimator creates an animator resting at the base color
func NewColorAnimator(base, hover color.RGBA) *ColorAnimator {
	return &ColorAnimator{
		base:     base,
		hover:    hover,
		display:  base,
		duration: HoverDuration,
	}
}

// SetDuration overrides the transition duration
func (a *ColorAnimator) SetDuration(d time.Duration) {
	a.duration = d
}

// Enter marks the target as hovered and starts fading toward the hover color
func (a *ColorAnimator) Enter(now time.Time) {
	a.hovered = true
	a.start(now)
}

// Leave clears the hover and starts fading back to the base color
func (a *ColorAnimator) Leave(now time.Time) {
	a.hovered = false
	a.start(now)
}

// SetColors changes the base and hover colors (e.g. after a config reload)
// and fades from the current display color toward the new target
func (a *ColorAnimator) SetColors(base, hover color.RGBA, now time.Time) {
	if a.base == base && a.hover == hover {
		return
	}
	a.base = base
	a.hover = hover
	a.start(now)
}

// start cancels the running tween and begins a new one toward the target
func (a *ColorAnimator) start(now time.Time) {
	a.nextID++
	a.active = &tween{
		id:    a.nextID,
		from:  a.display,
		to:    a.target(),
		start: now,
	}
	a.Update(now)
}

// Update advances the running tween and returns the display color
func (a *ColorAnimator) Update(now time.Time) color.RGBA {
	if a.active == nil {
		return a.display
	}

	t := Progress(a.active.start, now, a.duration)
	if t >= 1 {
		a.display = a.active.to
		a.active = nil
		return a.display
	}
	a.display = Lerp(a.active.from, a.active.to, t)
	return a.display
}

// Color returns the current display color
func (a *ColorAnimator) Color() color.RGBA {
	return a.display
}

// Hovered reports whether the pointer is over the target
func (a *ColorAnimator) Hovered() bool {
	return a.hovered
}

// Animating reports whether a tween is in flight
func (a *ColorAnimator) Animating() bool {
	return a.active != nil
}

// TweenID identifies the running tween, 0 when idle
func (a *ColorAnimator) TweenID() uint64 {
	if a.active == nil {
		return 0
	}
	return a.active.id
}

func (a *ColorAnimator) target() color.RGBA {
	if a.hovered {
		return a.hover
	}
	return a.base
}

// Lerp interpolates linearly per RGBA channel
func Lerp(from, to color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	return color.RGBA{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: lerpChannel(from.A, to.A, t),
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	return uint8(math.Round(float64(from) + (float64(to)-float64(from))*t))
}
