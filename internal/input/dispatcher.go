package input

import (
	"time"

	"github.com/philipparndt/cubecard/internal/roll"
)

// Mover accepts roll commands
type Mover interface {
	Move(dir roll.Direction, now time.Time) bool
}

// DirectionForKey maps the arrow keys to roll directions
func DirectionForKey(k Key) (roll.Direction, bool) {
	switch k {
	case KeyArrowUp:
		return roll.Up, true
	case KeyArrowDown:
		return roll.Down, true
	case KeyArrowLeft:
		return roll.Left, true
	case KeyArrowRight:
		return roll.Right, true
	default:
		return 0, false
	}
}

// Dispatcher turns arrow key presses into roll commands
type Dispatcher struct {
	mover       Mover
	bus         *Bus
	unsubscribe func()
	onDropped   func(roll.Direction)
}

// NewDispatcher creates a dispatcher feeding m
func NewDispatcher(m Mover) *Dispatcher {
	return &Dispatcher{mover: m}
}

// OnDropped registers a callback for commands the mover refused
func (d *Dispatcher) OnDropped(fn func(roll.Direction)) {
	d.onDropped = fn
}

// Register subscribes to bus. Registering again on the same bus is a no-op;
// registering on another bus moves the subscription.
func (d *Dispatcher) Register(bus *Bus) {
	if d.bus == bus && d.unsubscribe != nil {
		return
	}
	d.Unregister()
	d.bus = bus
	d.unsubscribe = bus.SubscribeKeys(d.handle)
}

// Unregister removes the subscription; safe to call when not registered
func (d *Dispatcher) Unregister() {
	if d.unsubscribe != nil {
		d.unsubscribe()
	}
	d.unsubscribe = nil
	d.bus = nil
}

// Registered reports whether the dispatcher is listening
func (d *Dispatcher) Registered() bool {
	return d.unsubscribe != nil
}

func (d *Dispatcher) handle(ev KeyEvent) {
	if ev.Action != KeyDown {
		return
	}
	dir, ok := DirectionForKey(ev.Key)
	if !ok {
		return
	}
	if !d.mover.Move(dir, ev.Time) && d.onDropped != nil {
		d.onDropped(dir)
	}
}
