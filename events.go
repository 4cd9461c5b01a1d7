//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"runtime/debug"
	"sync"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// slot holds at most one callback. Setting it replaces the previous one.
type slot[F any] struct {
	mu  sync.Mutex
	fn  F
	set bool
}

// swap installs fn (or clears the slot when set is false) and returns the
// previous callback.
func (s *slot[F]) swap(fn F, set bool) (prev F) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev = s.fn
	var zero F
	if set {
		s.fn = fn
	} else {
		s.fn = zero
	}
	s.set = set
	return prev
}

func (s *slot[F]) load() (F, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn, s.set
}

func (s *slot[F]) isSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}

// PeripheralEvent reports whether a monitor or joystick was connected or
// disconnected.
type PeripheralEvent int

const (
	Connected    PeripheralEvent = native.Connected
	Disconnected PeripheralEvent = native.Disconnected
)

func (e PeripheralEvent) String() string {
	switch e {
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	}
	return "unknown"
}

// MonitorFunc is called when a monitor is connected or disconnected.
type MonitorFunc func(monitor *Monitor, event PeripheralEvent)

// JoystickFunc is called when a joystick is connected or disconnected.
type JoystickFunc func(joy *Joystick, event PeripheralEvent)

// ErrorFunc is called for every error GLFW reports. The same error is also
// returned by the glfwgo call that caused it.
type ErrorFunc func(err *Error)

var (
	monitorSlot  slot[MonitorFunc]
	joystickSlot slot[JoystickFunc]
	errorSlot    slot[ErrorFunc]
)

// SetMonitorCallback sets the monitor configuration callback, replacing the
// previous one, which is returned. Pass nil to remove it.
func SetMonitorCallback(cb MonitorFunc) (previous MonitorFunc) {
	previous = monitorSlot.swap(cb, cb != nil)
	if l, _, err := library(); err == nil {
		l.EnableMonitorEvents(cb != nil)
	}
	return previous
}

// SetJoystickCallback sets the joystick configuration callback, replacing
// the previous one, which is returned. Pass nil to remove it.
func SetJoystickCallback(cb JoystickFunc) (previous JoystickFunc) {
	previous = joystickSlot.swap(cb, cb != nil)
	if l, _, err := library(); err == nil {
		l.EnableJoystickEvents(cb != nil)
	}
	return previous
}

// SetErrorCallback sets the error callback, replacing the previous one,
// which is returned. Pass nil to remove it. Errors nobody handles are logged
// at LogError. It may be called before Init.
func SetErrorCallback(cb ErrorFunc) (previous ErrorFunc) {
	return errorSlot.swap(cb, cb != nil)
}

// handleEvent receives every native callback. It runs on the main thread
// inside a GLFW call, with C frames between it and the guard that started
// that call, so it must never let a panic escape.
func handleEvent(ev native.Event) {
	c := topCall()

	if ev.Kind == native.EventError {
		e := &Error{Code: ev.Ints[0], Description: ev.Text}
		if c != nil {
			e.Op = c.op
			if c.err == nil {
				c.err = e
			}
		}
		if c != nil && c.panicked != nil {
			return
		}
		cb, ok := errorSlot.load()
		if !ok {
			logf(LogError, "%v", e)
			return
		}
		invoke(c, func() { cb(e) })
		return
	}

	if c != nil && c.panicked != nil {
		c.dropped++
		return
	}
	invoke(c, func() { deliver(ev) })
}

// invoke runs a user callback and parks any panic on c.
func invoke(c *call, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if c == nil {
				logf(LogError, "callback panicked outside a GLFW call: %v\n%s", r, debug.Stack())
				return
			}
			logf(LogDebug, "callback panicked during %s: %v\n%s", c.op, r, debug.Stack())
			c.panicked = r
		}
	}()
	fn()
}

func deliver(ev native.Event) {
	switch {
	case ev.Kind == native.EventMonitor:
		m := monitorFor(ev.Monitor)
		if m != nil && ev.Ints[0] == native.Disconnected {
			m.disconnect()
		}
		cb, ok := monitorSlot.load()
		if !ok {
			return
		}
		cb(m, PeripheralEvent(ev.Ints[0]))

	case ev.Kind == native.EventJoystick:
		cb, ok := joystickSlot.load()
		if !ok {
			return
		}
		j, err := JoystickAt(ev.Ints[0])
		if err != nil {
			return
		}
		cb(j, PeripheralEvent(ev.Ints[1]))

	case ev.Kind.IsWindowEvent():
		if w := windows.Lookup(uintptr(ev.Window)); w != nil {
			w.dispatch(ev)
		}
	}
}
