//go:build !ios && !android && (amd64 || arm64)

// Package glfwtest provides an in-memory GLFW for tests and headless use.
//
// Library implements the same primitive set glfwgo loads from the real shared
// library: windows, cursors, monitors with hot-plugging, joysticks, a current
// context, a clipboard and an event queue. Input is injected with methods such
// as Key and ConnectMonitor; it is queued and delivered, in order, to the
// installed callbacks during the next PollEvents or WaitEvents, exactly as
// GLFW does. Errors fire synchronously from inside the failing call.
//
// Freed handle values are reused, most recent first, the way malloc tends to
// reuse memory. This makes stale-handle bugs reproducible.
//
//	lib := glfwtest.New()
//	if err := glfwgo.InitWith(lib); err != nil { ... }
//	defer glfwgo.Terminate()
package glfwtest

import (
	"math"
	"sync"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Simulated library version.
const (
	VersionMajor    = 3
	VersionMinor    = 3
	VersionRevision = 8
)

type window struct {
	width       int
	height      int
	x           int
	y           int
	title       string
	shouldClose int
	visible     bool
	iconified   bool
	focused     bool
	cursorX     float64
	cursorY     float64
	monitor     native.Handle
	cursor      native.Handle
	icons       int
	hints       map[int]int
	inputModes  map[int]int
	keys        map[int]int
	buttons     map[int]int
	enabled     map[native.EventKind]bool
}

type cursor struct {
	shape  int
	width  int32
	height int32
}

type monitor struct {
	handle   native.Handle
	name     string
	x        int
	y        int
	widthMM  int
	heightMM int
	modes    []native.VidMode
	current  native.VidMode
	ramp     native.GammaRamp
}

type joystick struct {
	name    string
	axes    []float32
	buttons []byte
}

// Library is a simulated GLFW. The zero value is not usable; call New.
//
// All methods are safe for concurrent use. The handler is always invoked
// without the internal lock held, so callbacks may call back into the
// library.
type Library struct {
	mu sync.Mutex

	handler     func(native.Event)
	initialized bool
	time        float64
	interval    int
	clipboard   string
	extensions  map[string]bool

	hints   map[int]int
	next    native.Handle
	free    []native.Handle
	current native.Handle

	windows   map[native.Handle]*window
	cursors   map[native.Handle]*cursor
	monitors  []*monitor
	joysticks [native.JoystickLast + 1]*joystick

	monitorEvents  bool
	joystickEvents bool
	queue          []native.Event
	woken          bool

	failNext *native.Event
	destroys map[native.Handle]int
	polls    int
}

var _ native.Library = (*Library)(nil)

// New returns a library with one connected 1920x1080 monitor and no
// joysticks.
func New() *Library {
	l := &Library{
		next:       0x10000,
		extensions: map[string]bool{"GL_ARB_vertex_array_object": true},
		windows:    make(map[native.Handle]*window),
		cursors:    make(map[native.Handle]*cursor),
		destroys:   make(map[native.Handle]int),
	}
	l.resetHints()
	l.connectMonitorLocked("Simulated Monitor", 0, 0, 527, 296, []native.VidMode{
		{Width: 1280, Height: 720, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60},
		{Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60},
	})
	return l
}

func (l *Library) alloc() native.Handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		return h
	}
	h := l.next
	l.next += 0x40
	return h
}

func (l *Library) release(h native.Handle) {
	l.free = append(l.free, h)
}

func (l *Library) resetHints() {
	l.hints = map[int]int{
		native.Resizable:           native.True,
		native.Visible:             native.True,
		native.Decorated:           native.True,
		native.Focused:             native.True,
		native.AutoIconify:         native.True,
		native.Floating:            native.False,
		native.Maximized:           native.False,
		native.DoubleBuffer:        native.True,
		native.ClientAPI:           native.OpenGLAPI,
		native.ContextVersionMajor: 1,
		native.ContextVersionMinor: 0,
		native.OpenGLProfile:       native.OpenGLAnyProfile,
	}
}

// fail reports an error through the handler. It must be called without l.mu
// held.
func (l *Library) fail(code int, desc string) {
	l.mu.Lock()
	fn := l.handler
	l.mu.Unlock()
	if fn != nil {
		fn(native.Event{Kind: native.EventError, Ints: [4]int{code}, Text: desc})
	}
}

// FailNext makes the next window or cursor creation fail with the given GLFW
// error code and description.
func (l *Library) FailNext(code int, desc string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failNext = &native.Event{Kind: native.EventError, Ints: [4]int{code}, Text: desc}
}

func (l *Library) takeFailure() *native.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	ev := l.failNext
	l.failNext = nil
	return ev
}

func (l *Library) enqueue(ev native.Event) {
	l.queue = append(l.queue, ev)
}

func (l *Library) SetEventHandler(fn func(native.Event)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler = fn
}

func (l *Library) Init() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.initialized = true
	return true
}

// Terminate destroys every remaining window and cursor, like glfwTerminate.
func (l *Library) Terminate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for h := range l.windows {
		l.destroys[h]++
		delete(l.windows, h)
	}
	for h := range l.cursors {
		delete(l.cursors, h)
	}
	l.current = 0
	l.queue = nil
	l.monitorEvents = false
	l.joystickEvents = false
	l.initialized = false
}

// Initialized reports whether Init has been called without a matching
// Terminate.
func (l *Library) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialized
}

func (l *Library) Version() (major, minor, rev int) {
	return VersionMajor, VersionMinor, VersionRevision
}

func (l *Library) VersionString() string {
	return "3.3.8 glfwtest"
}

// Events

func (l *Library) EnableWindowEvent(win native.Handle, kind native.EventKind, on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.windows[win]; ok {
		w.enabled[kind] = on
	}
}

func (l *Library) EnableMonitorEvents(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.monitorEvents = on
}

func (l *Library) EnableJoystickEvents(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.joystickEvents = on
}

// deliverable reports whether a callback is installed for ev right now.
func (l *Library) deliverable(ev native.Event) bool {
	switch {
	case ev.Kind == native.EventMonitor:
		return l.monitorEvents
	case ev.Kind == native.EventJoystick:
		return l.joystickEvents
	case ev.Kind.IsWindowEvent():
		w, ok := l.windows[ev.Window]
		return ok && w.enabled[ev.Kind]
	}
	return true
}

func (l *Library) PollEvents() {
	l.mu.Lock()
	l.polls++
	pending := l.queue
	l.queue = nil
	l.woken = false
	l.mu.Unlock()

	for _, ev := range pending {
		l.mu.Lock()
		fn := l.handler
		ok := l.deliverable(ev)
		l.mu.Unlock()

		if ok && fn != nil {
			fn(ev)
		}
	}
}

// WaitEvents never blocks: a simulation has no other source of events than
// the test driving it, so it behaves like PollEvents.
func (l *Library) WaitEvents() {
	l.PollEvents()
}

func (l *Library) WaitEventsTimeout(seconds float64) {
	if seconds < 0 || math.IsNaN(seconds) {
		l.fail(native.InvalidValue, "Invalid time")
		return
	}
	l.PollEvents()
}

func (l *Library) PostEmptyEvent() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.woken = true
}

// Woken reports whether PostEmptyEvent was called since the last pump.
func (l *Library) Woken() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.woken
}

// Polls returns how many times the event queue has been pumped.
func (l *Library) Polls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.polls
}

// Pending returns the number of queued, undelivered events.
func (l *Library) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Context and misc

func (l *Library) Time() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.time
}

func (l *Library) SetTime(t float64) {
	if t < 0 || math.IsNaN(t) || t > 18446744073.0 {
		l.fail(native.InvalidValue, "Invalid time")
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.time = t
}

func (l *Library) SwapInterval(interval int) {
	l.mu.Lock()
	cur := l.current
	l.interval = interval
	l.mu.Unlock()
	if cur == 0 {
		l.fail(native.NoCurrentContext, "Cannot set swap interval without a current OpenGL or OpenGL ES context")
	}
}

// Interval returns the last swap interval set.
func (l *Library) Interval() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.interval
}

func (l *Library) ExtensionSupported(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current != 0 && l.extensions[name]
}

// ProcAddress returns a fake non-zero address for any name while a context
// is current.
func (l *Library) ProcAddress(name string) uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == 0 || name == "" {
		return 0
	}
	var h uintptr = 0xcbf29ce484222325
	for i := 0; i < len(name); i++ {
		h ^= uintptr(name[i])
		h *= 0x100000001b3
	}
	return h | 1
}

func (l *Library) DefaultWindowHints() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetHints()
}

func (l *Library) WindowHint(hint, value int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hints[hint] = value
}

// Hint returns the current value of a window creation hint.
func (l *Library) Hint(hint int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hints[hint]
}
