package app

import (
	"math"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cubecard/internal/input"
)

// hoverLineTolerance is how close (in pixels) the pointer must be to an
// axis line to count as hovering it
const hoverLineTolerance = 6.0

// keyBindings maps raylib keys onto bus keys
var keyBindings = []struct {
	raylib int32
	key    input.Key
}{
	{rl.KeyUp, input.KeyArrowUp},
	{rl.KeyDown, input.KeyArrowDown},
	{rl.KeyLeft, input.KeyArrowLeft},
	{rl.KeyRight, input.KeyArrowRight},
	{rl.KeyHome, input.KeyHome},
}

// handleInput polls raylib and turns its state into discrete bus events
func (app *App) handleInput(now time.Time) {
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.raylib) {
			app.Input.bus.PublishKey(input.KeyEvent{Key: b.key, Action: input.KeyDown, Time: now})
		}
		if rl.IsKeyReleased(b.raylib) {
			app.Input.bus.PublishKey(input.KeyEvent{Key: b.key, Action: input.KeyUp, Time: now})
		}
	}

	// Orbit with left mouse drag
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Camera.orbit.Rotate(float64(delta.X), float64(delta.Y))
		}
	}

	// Zoom with mouse wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Camera.orbit.Zoom(float64(wheel))
	}

	app.updateHover(now)
}

// handleViewKeys reacts to keys that affect the view rather than the cube
func (app *App) handleViewKeys(ev input.KeyEvent) {
	if ev.Action == input.KeyDown && ev.Key == input.KeyHome {
		app.resetCameraView()
	}
}

// updateHover finds the label under the pointer and publishes enter and
// leave transitions when it changes
func (app *App) updateHover(now time.Time) {
	target := app.hitTest(rl.GetMousePosition())
	if target == app.Input.hoveredTarget {
		return
	}
	if app.Input.hoveredTarget != "" {
		app.Input.bus.PublishPointer(input.PointerEvent{Target: app.Input.hoveredTarget, Action: input.PointerLeave, Time: now})
	}
	app.Input.hoveredTarget = target
	if target != "" {
		app.Input.bus.PublishPointer(input.PointerEvent{Target: target, Action: input.PointerEnter, Time: now})
	}
}

// handlePointer drives the hover animator of the label a pointer event
// names. A label and its line share one animator.
func (app *App) handlePointer(ev input.PointerEvent) {
	for i := range app.Labels {
		l := &app.Labels[i]
		if l.id != ev.Target {
			continue
		}
		switch ev.Action {
		case input.PointerEnter:
			l.color.Enter(ev.Time)
		case input.PointerLeave:
			l.color.Leave(ev.Time)
		}
		return
	}
}

// hitTest returns the id of the label whose text or line is under p
func (app *App) hitTest(p rl.Vector2) string {
	point := fromRaylib2(p)
	for i := len(app.Labels) - 1; i >= 0; i-- {
		l := &app.Labels[i]
		if l.textSize.X > 0 && pointInRotatedRect(p, toRaylib2(l.placement.Screen), l.textSize, float32(l.placement.AngleDegrees)) {
			return l.id
		}
		if point.DistanceToSegment(fromRaylib2(l.lineStart), fromRaylib2(l.lineEnd)) < hoverLineTolerance {
			return l.id
		}
	}
	return ""
}

// pointInRotatedRect reports whether p lies in a size rectangle centred on
// center and rotated by angle degrees
func pointInRotatedRect(p, center, size rl.Vector2, angle float32) bool {
	rad := -float64(angle) * math.Pi / 180
	dx := float64(p.X - center.X)
	dy := float64(p.Y - center.Y)
	lx := dx*math.Cos(rad) - dy*math.Sin(rad)
	ly := dx*math.Sin(rad) + dy*math.Cos(rad)
	return math.Abs(lx) <= float64(size.X)/2 && math.Abs(ly) <= float64(size.Y)/2
}

func labelID(index int, text string) string {
	return "label-" + strconv.Itoa(index) + ":" + text
}
