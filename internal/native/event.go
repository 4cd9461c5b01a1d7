//go:build !ios && !android && (amd64 || arm64)

package native

// EventKind identifies which GLFW callback produced an Event.
type EventKind int

const (
	EventError EventKind = iota
	EventMonitor
	EventJoystick

	// Per-window events. Their values are contiguous so that callers can
	// iterate over them.
	EventWindowPos
	EventWindowSize
	EventWindowClose
	EventWindowRefresh
	EventWindowFocus
	EventWindowIconify
	EventFramebufferSize
	EventKey
	EventChar
	EventCharMods
	EventMouseButton
	EventCursorPos
	EventCursorEnter
	EventScroll
	EventDrop
)

// FirstWindowEvent and LastWindowEvent bound the per-window kinds.
const (
	FirstWindowEvent = EventWindowPos
	LastWindowEvent  = EventDrop
)

// IsWindowEvent reports whether k is delivered for a specific window.
func (k EventKind) IsWindowEvent() bool {
	return k >= FirstWindowEvent && k <= LastWindowEvent
}

var eventKindNames = [...]string{
	EventError:           "error",
	EventMonitor:         "monitor",
	EventJoystick:        "joystick",
	EventWindowPos:       "pos",
	EventWindowSize:      "size",
	EventWindowClose:     "close",
	EventWindowRefresh:   "refresh",
	EventWindowFocus:     "focus",
	EventWindowIconify:   "iconify",
	EventFramebufferSize: "framebuffer_size",
	EventKey:             "key",
	EventChar:            "char",
	EventCharMods:        "char_mods",
	EventMouseButton:     "mouse_button",
	EventCursorPos:       "cursor_pos",
	EventCursorEnter:     "cursor_enter",
	EventScroll:          "scroll",
	EventDrop:            "drop",
}

// String returns the callback name, e.g. "mouse_button".
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event carries the raw arguments of one native callback invocation.
//
// Field use by kind:
//   - EventError: Ints[0] code, Text description
//   - EventMonitor: Monitor, Ints[0] Connected/Disconnected
//   - EventJoystick: Ints[0] joystick id, Ints[1] Connected/Disconnected
//   - window events: Window plus Ints (up to four C ints), Floats (two
//     doubles for cursor pos and scroll), Paths for drop
type Event struct {
	Kind    EventKind
	Window  Handle
	Monitor Handle
	Ints    [4]int
	Floats  [2]float64
	Text    string
	Paths   []string
}

// Connection event values (GLFW_CONNECTED, GLFW_DISCONNECTED).
const (
	Connected    = 0x00040001
	Disconnected = 0x00040002
)
