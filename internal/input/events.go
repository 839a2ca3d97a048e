package input

import "time"

// Key identifies a keyboard key independent of the windowing library
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEscape
)

// KeyAction distinguishes presses from releases
type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
)

// KeyEvent is one discrete key transition
type KeyEvent struct {
	Key    Key
	Action KeyAction
	Time   time.Time
}

// PointerAction is a hover transition
type PointerAction int

const (
	PointerEnter PointerAction = iota
	PointerLeave
)

// PointerEvent reports the pointer entering or leaving a named target
// (a label or its line)
type PointerEvent struct {
	Target string
	Action PointerAction
	Time   time.Time
}

type keyHandler struct {
	id uint64
	fn func(KeyEvent)
}

type pointerHandler struct {
	id uint64
	fn func(PointerEvent)
}

// Bus fans discrete input events out to subscribers in subscription order.
// It is driven from the frame loop and is not safe for concurrent use.
type Bus struct {
	nextID  uint64
	keys    []keyHandler
	pointer []pointerHandler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeKeys registers fn for key events and returns its unsubscribe function
func (b *Bus) SubscribeKeys(fn func(KeyEvent)) func() {
	b.nextID++
	id := b.nextID
	b.keys = append(b.keys, keyHandler{id: id, fn: fn})
	return func() {
		for i, h := range b.keys {
			if h.id == id {
				b.keys = append(b.keys[:i:i], b.keys[i+1:]...)
				return
			}
		}
	}
}

// SubscribePointer registers fn for pointer events and returns its unsubscribe function
func (b *Bus) SubscribePointer(fn func(PointerEvent)) func() {
	b.nextID++
	id := b.nextID
	b.pointer = append(b.pointer, pointerHandler{id: id, fn: fn})
	return func() {
		for i, h := range b.pointer {
			if h.id == id {
				b.pointer = append(b.pointer[:i:i], b.pointer[i+1:]...)
				return
			}
		}
	}
}

// PublishKey delivers a key event to all key subscribers
func (b *Bus) PublishKey(ev KeyEvent) {
	for _, h := range append([]keyHandler(nil), b.keys...) {
		h.fn(ev)
	}
}

// PublishPointer delivers a pointer event to all pointer subscribers
func (b *Bus) PublishPointer(ev PointerEvent) {
	for _, h := range append([]pointerHandler(nil), b.pointer...) {
		h.fn(ev)
	}
}

// KeyListeners returns the number of key subscribers
func (b *Bus) KeyListeners() int {
	return len(b.keys)
}
