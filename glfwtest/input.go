//go:build !ios && !android && (amd64 || arm64)

package glfwtest

import (
	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// The methods in this file simulate user input. Each one updates the window
// state immediately and queues the matching event for the next pump. They
// report false when h does not name a live window.

func (l *Library) inject(h native.Handle, update func(w *window), ev native.Event) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	w, ok := l.windows[h]
	if !ok {
		return false
	}
	if update != nil {
		update(w)
	}
	ev.Window = h
	l.enqueue(ev)
	return true
}

// SendKey simulates a key action.
func (l *Library) SendKey(h native.Handle, key, scancode, action, mods int) bool {
	return l.inject(h, func(w *window) {
		if action == native.Release {
			w.keys[key] = native.Release
		} else {
			w.keys[key] = native.Press
		}
	}, native.Event{Kind: native.EventKey, Ints: [4]int{key, scancode, action, mods}})
}

// SendChar simulates text input of one code point. Like GLFW it produces
// both a char and a char-with-modifiers event.
func (l *Library) SendChar(h native.Handle, codepoint rune, mods int) bool {
	if !l.inject(h, nil, native.Event{Kind: native.EventCharMods, Ints: [4]int{int(codepoint), mods}}) {
		return false
	}
	return l.inject(h, nil, native.Event{Kind: native.EventChar, Ints: [4]int{int(codepoint)}})
}

// SendMouseButton simulates a mouse button action.
func (l *Library) SendMouseButton(h native.Handle, button, action, mods int) bool {
	return l.inject(h, func(w *window) {
		w.buttons[button] = action
	}, native.Event{Kind: native.EventMouseButton, Ints: [4]int{button, action, mods}})
}

// MoveCursor moves the cursor within the content area.
func (l *Library) MoveCursor(h native.Handle, x, y float64) bool {
	return l.inject(h, func(w *window) {
		w.cursorX, w.cursorY = x, y
	}, native.Event{Kind: native.EventCursorPos, Floats: [2]float64{x, y}})
}

// SendCursorEnter simulates the cursor entering or leaving the window.
func (l *Library) SendCursorEnter(h native.Handle, entered bool) bool {
	return l.inject(h, nil, native.Event{Kind: native.EventCursorEnter, Ints: [4]int{boolValue(entered)}})
}

// SendScroll simulates a scroll wheel or touchpad gesture.
func (l *Library) SendScroll(h native.Handle, xoff, yoff float64) bool {
	return l.inject(h, nil, native.Event{Kind: native.EventScroll, Floats: [2]float64{xoff, yoff}})
}

// DropPaths simulates files being dropped on the window.
func (l *Library) DropPaths(h native.Handle, paths ...string) bool {
	return l.inject(h, nil, native.Event{Kind: native.EventDrop, Paths: append([]string(nil), paths...)})
}

// RequestClose simulates the user clicking the close widget. The close flag
// is set before the close callback runs, as in GLFW.
func (l *Library) RequestClose(h native.Handle) bool {
	return l.inject(h, func(w *window) {
		w.shouldClose = native.True
	}, native.Event{Kind: native.EventWindowClose})
}

// SetFocus simulates the window gaining or losing input focus.
func (l *Library) SetFocus(h native.Handle, focused bool) bool {
	return l.inject(h, func(w *window) {
		w.focused = focused
	}, native.Event{Kind: native.EventWindowFocus, Ints: [4]int{boolValue(focused)}})
}

// Damage simulates the window contents needing a redraw.
func (l *Library) Damage(h native.Handle) bool {
	return l.inject(h, nil, native.Event{Kind: native.EventWindowRefresh})
}
