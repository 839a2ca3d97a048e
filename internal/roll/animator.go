package roll

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/cubecard/internal/anim"
)

// DefaultDuration is how long one roll takes
const DefaultDuration = 300 * time.Millisecond

// Phase is the animator state
type Phase int

const (
	Idle Phase = iota
	Rotating
)

func (p Phase) String() string {
	if p == Rotating {
		return "rotating"
	}
	return "idle"
}

// GridPos is a cell on the infinite floor grid
type GridPos struct {
	X, Z int
}

// State is the committed resting state of the cube
type State struct {
	Grid        GridPos
	Orientation Orientation
}

// inflight is the roll currently animating
type inflight struct {
	dir   Direction
	move  move
	start time.Time
}

// Animator rolls a cube by quarter turns about its bottom edges.
//
// The arc is played on the pivot node; the body node only ever receives
// whole quarter turns when a roll commits. Grid position and orientation
// change together in that single commit step.
type Animator struct {
	pivot    *Node
	body     *Node
	duration time.Duration
	unit     float64

	state    State
	phase    Phase
	current  *inflight
	onCommit []func(State)
}

// NewAnimator creates an idle animator at the origin. Nodes must be mounted
// before moves have any effect.
func NewAnimator() *Animator {
	return &Animator{
		duration: DefaultDuration,
		unit:     1,
		state:    State{Orientation: Identity},
	}
}

// SetDuration changes the roll duration. It takes effect from the next roll.
func (a *Animator) SetDuration(d time.Duration) {
	a.duration = d
}

// Duration returns the roll duration
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// RestOffset is the body's position inside the pivot between rolls: the
// cube's centre sits half a cell above and inside the pivot corner
func (a *Animator) RestOffset() mgl64.Vec3 {
	h := a.unit / 2
	return mgl64.Vec3{h, h, h}
}

// Mount attaches the renderable nodes and places them at the committed state.
// Passing nil for either node unmounts the animator.
func (a *Animator) Mount(pivot, body *Node) {
	a.pivot = pivot
	a.body = body
	if !a.mounted() {
		return
	}

	a.pivot.Position = mgl64.Vec3{float64(a.state.Grid.X) * a.unit, 0, float64(a.state.Grid.Z) * a.unit}
	a.pivot.Rotation = mgl64.QuatIdent()
	a.body.Position = a.RestOffset()
	a.body.Rotation = a.state.Orientation.Quat()
}

// OnCommit registers a callback invoked after every committed roll
func (a *Animator) OnCommit(fn func(State)) {
	a.onCommit = append(a.onCommit, fn)
}

func (a *Animator) mounted() bool {
	return a.pivot != nil && a.body != nil
}

// Move starts a roll in dir. It returns false when the command is dropped:
// nothing is mounted, or another roll is still in flight.
func (a *Animator) Move(dir Direction, now time.Time) bool {
	if !a.mounted() {
		return false
	}

	// Commit a roll that already ran out but has not seen a frame yet
	a.Update(now)
	if a.phase != Idle {
		return false
	}

	m, ok := moves[dir]
	if !ok {
		return false
	}

	if m.trailing {
		step := m.step(a.unit)
		a.body.Position = a.body.Position.Sub(step)
		a.pivot.Position = a.pivot.Position.Add(step)
	}
	a.pivot.Rotation = mgl64.QuatIdent()

	a.phase = Rotating
	a.current = &inflight{dir: dir, move: m, start: now}
	return true
}

// Update advances the arc. It returns true on the frame the roll commits.
func (a *Animator) Update(now time.Time) bool {
	if a.phase != Rotating || a.current == nil || !a.mounted() {
		return false
	}

	m := a.current.move
	t := anim.Progress(a.current.start, now, a.duration)
	if t >= 1 {
		a.commit()
		return true
	}

	angle := float64(m.sign) * math.Pi / 2 * anim.EaseInOutQuad(t)
	a.pivot.Rotation = mgl64.QuatRotate(angle, m.axis.Vec3())
	return false
}

// commit turns the finished arc into the new resting state
func (a *Animator) commit() {
	m := a.current.move
	step := m.step(a.unit)

	if m.trailing {
		a.body.Position = a.body.Position.Add(step)
	} else {
		a.pivot.Position = a.pivot.Position.Add(step)
	}
	a.pivot.Rotation = mgl64.QuatIdent()

	a.state.Orientation = a.state.Orientation.RotateWorld(m.axis, m.sign)
	a.state.Grid.X += m.dx
	a.state.Grid.Z += m.dz
	a.body.Rotation = a.state.Orientation.Quat()

	a.phase = Idle
	a.current = nil

	for _, fn := range a.onCommit {
		fn(a.state)
	}
}

// State returns the committed state
func (a *Animator) State() State {
	return a.state
}

// Phase returns the current phase
func (a *Animator) Phase() Phase {
	return a.phase
}

// Busy reports whether a roll is in flight
func (a *Animator) Busy() bool {
	return a.phase == Rotating
}

// Pivot returns a copy of the pivot node, zero when unmounted
func (a *Animator) Pivot() Node {
	if a.pivot == nil {
		return Node{}
	}
	return *a.pivot
}

// Body returns a copy of the body node, zero when unmounted
func (a *Animator) Body() Node {
	if a.body == nil {
		return Node{}
	}
	return *a.body
}

// BodyWorld returns the body's world transform (pivot * body)
func (a *Animator) BodyWorld() mgl64.Mat4 {
	if !a.mounted() {
		return mgl64.Ident4()
	}
	return Compose(*a.pivot, *a.body)
}
