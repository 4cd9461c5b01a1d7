//go:build !ios && !android && (amd64 || arm64)

// Package glfwgo provides bindings to GLFW 3 for windows, OpenGL contexts,
// monitors, joysticks and input, without CGO, using purego.
//
// Every GLFW object is represented by exactly one Go value for as long as
// that value is reachable: the *Window returned by NewWindow is the same
// pointer later returned by CurrentContext and passed to callbacks, and
// Monitors returns the same *Monitor values that the monitor callback
// receives.
//
// Windows and cursors are owned by the caller and should be destroyed with
// Destroy; one that becomes unreachable first is destroyed on the next event
// pump. Monitors and joysticks are owned by GLFW and have no Destroy
// method; use Present to find out whether one is still connected.
//
// Callbacks run synchronously inside PollEvents, WaitEvents and
// WaitEventsTimeout (and, on some platforms, inside calls such as
// Window.SetSize). A callback that panics aborts delivery of the remaining
// events of that pump, and the panic is re-raised from the function that
// pumped them.
//
// GLFW must be used from the main thread. This package locks the main
// goroutine to the main thread in init; call Init and everything else from
// main.
package glfwgo

import (
	"runtime"
	"sync"
	"time"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
	"github.com/obinnaokechukwu/glfwgo/internal/handles"
	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

func init() {
	runtime.LockOSThread()
}

var (
	stateMu sync.Mutex
	lib     native.Library
	session uint64 // incremented by every Init and Terminate
)

// Identity registries, one per kind of GLFW object.
var (
	windows   handles.Registry[Window]
	cursors   handles.Registry[Cursor]
	monitors  handles.Registry[Monitor]
	joysticks handles.Registry[Joystick]
)

// library returns the initialized library and the current session.
func library() (native.Library, uint64, error) {
	stateMu.Lock()
	defer stateMu.Unlock()
	if lib == nil {
		return nil, 0, ErrNotInitialized
	}
	return lib, session, nil
}

// Init loads the GLFW shared library and initializes it. It is safe to call
// multiple times.
//
// The library is searched for in $GLFWGO_LIBRARY, then $GLFWGO_LIB_DIR, then
// the platform's usual locations.
func Init() error {
	l, err := bindings.Load()
	if err != nil {
		return err
	}
	if err := InitWith(l); err != nil {
		return err
	}
	logf(LogInfo, "initialized GLFW %s from %s", l.VersionString(), bindings.Path())
	return nil
}

// InitWith initializes glfwgo on top of l instead of the shared library.
// Package glfwtest provides a simulated implementation for tests and
// headless programs.
func InitWith(l native.Library) error {
	if l == nil {
		return ErrInvalidArgument
	}
	stateMu.Lock()
	current := lib
	stateMu.Unlock()
	if current != nil {
		if current == l {
			return nil
		}
		return ErrInvalidArgument
	}

	l.SetEventHandler(handleEvent)
	var ok bool
	err := guard("Init", func() {
		ok = l.Init()
	})
	if !ok {
		if err == nil {
			err = ErrNotInitialized
		}
		return err
	}

	stateMu.Lock()
	lib = l
	session++
	stateMu.Unlock()

	// Global callbacks outlive a Terminate/Init cycle.
	if monitorSlot.isSet() {
		l.EnableMonitorEvents(true)
	}
	if joystickSlot.isSet() {
		l.EnableJoystickEvents(true)
	}
	return nil
}

// Terminate destroys every remaining window and cursor and releases GLFW.
// Wrappers for destroyed objects report IsDestroyed afterwards. Terminate
// does nothing if GLFW is not initialized.
func Terminate() {
	l, gen, err := library()
	if err != nil {
		return
	}
	reap(l, gen)

	for _, w := range windows.Live() {
		if h, ok := w.box.get(); ok {
			w.box.invalidate()
			w.clearCallbacks()
			windows.Invalidate(uintptr(h))
		}
	}
	for _, c := range cursors.Live() {
		if h, ok := c.box.get(); ok {
			c.box.invalidate()
			cursors.Invalidate(uintptr(h))
		}
	}

	if err := guard("Terminate", l.Terminate); err != nil {
		logf(LogWarning, "%v", err)
	}

	stateMu.Lock()
	lib = nil
	session++
	stateMu.Unlock()
	logf(LogInfo, "terminated GLFW")
}

// IsLoaded returns true if the GLFW shared library has been loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// IsInitialized returns true between a successful Init and Terminate.
func IsInitialized() bool {
	_, _, err := library()
	return err == nil
}

// versionSource returns the initialized library, falling back to the
// shared library, which may be queried before Init.
func versionSource() native.Library {
	if l, _, err := library(); err == nil {
		return l
	}
	if l, err := bindings.Load(); err == nil {
		return l
	}
	return nil
}

// Version returns the GLFW version, or zeros if GLFW cannot be loaded.
func Version() (major, minor, rev int) {
	if l := versionSource(); l != nil {
		return l.Version()
	}
	return 0, 0, 0
}

// VersionString returns the GLFW compile-time configuration string.
func VersionString() string {
	if l := versionSource(); l != nil {
		return l.VersionString()
	}
	return ""
}

// pump runs one event-processing call. Objects whose wrappers were garbage
// collected are destroyed first.
func pump(op string, fn func(l native.Library)) error {
	l, gen, err := library()
	if err != nil {
		return err
	}
	reap(l, gen)
	return guard(op, func() {
		fn(l)
	})
}

// PollEvents processes pending events and returns immediately. Callbacks
// run inside it.
func PollEvents() error {
	return pump("PollEvents", func(l native.Library) {
		l.PollEvents()
	})
}

// WaitEvents blocks until at least one event is available, then processes
// all of them. PostEmptyEvent wakes it from another goroutine.
func WaitEvents() error {
	return pump("WaitEvents", func(l native.Library) {
		l.WaitEvents()
	})
}

// WaitEventsTimeout is like WaitEvents but returns after timeout even if no
// event arrived.
func WaitEventsTimeout(timeout time.Duration) error {
	return pump("WaitEventsTimeout", func(l native.Library) {
		l.WaitEventsTimeout(timeout.Seconds())
	})
}

// PostEmptyEvent wakes a WaitEvents call. It may be called from any
// goroutine.
//
// Unlike other calls it is not tracked on the call stack, which only
// describes work on the GLFW thread.
func PostEmptyEvent() error {
	l, _, err := library()
	if err != nil {
		return err
	}
	l.PostEmptyEvent()
	return nil
}

// do runs a module-level GLFW call.
func do(op string, fn func(l native.Library)) error {
	l, _, err := library()
	if err != nil {
		return err
	}
	return guard(op, func() {
		fn(l)
	})
}

// Time returns the GLFW timer in seconds, or 0 if GLFW is not initialized.
func Time() float64 {
	var t float64
	do("Time", func(l native.Library) {
		t = l.Time()
	})
	return t
}

// SetTime sets the GLFW timer.
func SetTime(t float64) error {
	return do("SetTime", func(l native.Library) {
		l.SetTime(t)
	})
}

// SwapInterval sets the number of screen updates to wait for before
// swapping buffers of the current context.
func SwapInterval(interval int) error {
	return do("SwapInterval", func(l native.Library) {
		l.SwapInterval(interval)
	})
}

// ExtensionSupported reports whether the current context supports the named
// API extension.
func ExtensionSupported(name string) bool {
	var ok bool
	do("ExtensionSupported", func(l native.Library) {
		ok = l.ExtensionSupported(name)
	})
	return ok
}

// ProcAddress returns the address of the named function for the current
// context, or 0.
func ProcAddress(name string) uintptr {
	var addr uintptr
	do("ProcAddress", func(l native.Library) {
		addr = l.ProcAddress(name)
	})
	return addr
}

// CurrentContext returns the window whose context is current on this
// thread, or nil. It never returns a destroyed window.
func CurrentContext() *Window {
	var h native.Handle
	do("CurrentContext", func(l native.Library) {
		h = l.CurrentContext()
	})
	if h == 0 {
		return nil
	}
	return windows.Lookup(uintptr(h))
}

// DetachCurrentContext makes no context current on this thread.
func DetachCurrentContext() error {
	return do("MakeContextCurrent", func(l native.Library) {
		l.MakeContextCurrent(0)
	})
}

// DefaultWindowHints resets all window hints to their defaults.
func DefaultWindowHints() error {
	return do("DefaultWindowHints", func(l native.Library) {
		l.DefaultWindowHints()
	})
}

// WindowHint sets a hint for the next NewWindow call.
func WindowHint(hint Hint, value int) error {
	return do("WindowHint", func(l native.Library) {
		l.WindowHint(int(hint), value)
	})
}
