//go:build !ios && !android && (amd64 || arm64)

package glfwtest

import (
	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Window decoration reported by WindowFrameSize for decorated windows.
const (
	FrameLeft   = 1
	FrameTop    = 24
	FrameRight  = 1
	FrameBottom = 1
)

func (l *Library) CreateWindow(width, height int, title string, mon, share native.Handle) native.Handle {
	if ev := l.takeFailure(); ev != nil {
		l.fail(ev.Ints[0], ev.Text)
		return 0
	}
	if width <= 0 || height <= 0 {
		l.fail(native.InvalidValue, "Invalid window size")
		return 0
	}

	l.mu.Lock()
	if !l.initialized {
		l.mu.Unlock()
		l.fail(native.NotInitialized, "The GLFW library is not initialized")
		return 0
	}
	if share != 0 {
		if _, ok := l.windows[share]; !ok {
			l.mu.Unlock()
			l.fail(native.InvalidValue, "Invalid share window")
			return 0
		}
	}

	hints := make(map[int]int, len(l.hints))
	for k, v := range l.hints {
		hints[k] = v
	}
	w := &window{
		width:      width,
		height:     height,
		x:          100,
		y:          100,
		title:      title,
		visible:    hints[native.Visible] == native.True,
		focused:    hints[native.Focused] == native.True,
		monitor:    mon,
		hints:      hints,
		inputModes: map[int]int{native.InputModeCursor: native.CursorNormal},
		keys:       make(map[int]int),
		buttons:    make(map[int]int),
		enabled:    make(map[native.EventKind]bool),
	}
	if mon != 0 {
		w.x, w.y = 0, 0
	}
	h := l.alloc()
	l.windows[h] = w
	l.mu.Unlock()
	return h
}

// lookup returns the window for h or reports GLFW_INVALID_VALUE. The caller
// must not hold l.mu; on success l.mu is held and must be released.
func (l *Library) lookup(h native.Handle) (*window, bool) {
	l.mu.Lock()
	w, ok := l.windows[h]
	if !ok {
		l.mu.Unlock()
		l.fail(native.InvalidValue, "Invalid window handle")
		return nil, false
	}
	return w, true
}

func (l *Library) DestroyWindow(h native.Handle) {
	if h == 0 {
		return
	}
	l.mu.Lock()
	l.destroys[h]++
	if _, ok := l.windows[h]; !ok {
		l.mu.Unlock()
		l.fail(native.InvalidValue, "Invalid window handle")
		return
	}
	delete(l.windows, h)
	if l.current == h {
		l.current = 0
	}
	l.release(h)
	l.mu.Unlock()
}

// DestroyCount returns how many times DestroyWindow has been called for h,
// including calls with a stale handle.
func (l *Library) DestroyCount(h native.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destroys[h]
}

// WindowCount returns the number of live windows.
func (l *Library) WindowCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

func (l *Library) MakeContextCurrent(h native.Handle) {
	if h == 0 {
		l.mu.Lock()
		l.current = 0
		l.mu.Unlock()
		return
	}
	if _, ok := l.lookup(h); !ok {
		return
	}
	l.current = h
	l.mu.Unlock()
}

func (l *Library) CurrentContext() native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

func (l *Library) SwapBuffers(h native.Handle) {
	if _, ok := l.lookup(h); ok {
		l.mu.Unlock()
	}
}

func (l *Library) WindowShouldClose(h native.Handle) int {
	w, ok := l.lookup(h)
	if !ok {
		return native.False
	}
	defer l.mu.Unlock()
	return w.shouldClose
}

func (l *Library) SetWindowShouldClose(h native.Handle, value int) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	w.shouldClose = value
}

func (l *Library) SetWindowTitle(h native.Handle, title string) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	w.title = title
}

// WindowTitle returns the title last set on a window.
func (l *Library) WindowTitle(h native.Handle) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.windows[h]; ok {
		return w.title
	}
	return ""
}

func (l *Library) WindowSize(h native.Handle) (int, int) {
	w, ok := l.lookup(h)
	if !ok {
		return 0, 0
	}
	defer l.mu.Unlock()
	return w.width, w.height
}

// SetWindowSize resizes the window and queues size and framebuffer size
// events.
func (l *Library) SetWindowSize(h native.Handle, width, height int) {
	if width <= 0 || height <= 0 {
		l.fail(native.InvalidValue, "Invalid window size")
		return
	}
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	w.width, w.height = width, height
	l.enqueue(native.Event{Kind: native.EventWindowSize, Window: h, Ints: [4]int{width, height}})
	l.enqueue(native.Event{Kind: native.EventFramebufferSize, Window: h, Ints: [4]int{width, height}})
}

func (l *Library) WindowPos(h native.Handle) (int, int) {
	w, ok := l.lookup(h)
	if !ok {
		return 0, 0
	}
	defer l.mu.Unlock()
	return w.x, w.y
}

// SetWindowPos moves the window and queues a position event.
func (l *Library) SetWindowPos(h native.Handle, x, y int) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	w.x, w.y = x, y
	l.enqueue(native.Event{Kind: native.EventWindowPos, Window: h, Ints: [4]int{x, y}})
}

// FramebufferSize equals the window size: the simulation has a content
// scale of one.
func (l *Library) FramebufferSize(h native.Handle) (int, int) {
	return l.WindowSize(h)
}

func (l *Library) WindowFrameSize(h native.Handle) (left, top, right, bottom int) {
	w, ok := l.lookup(h)
	if !ok {
		return 0, 0, 0, 0
	}
	defer l.mu.Unlock()
	if w.hints[native.Decorated] != native.True || w.monitor != 0 {
		return 0, 0, 0, 0
	}
	return FrameLeft, FrameTop, FrameRight, FrameBottom
}

func (l *Library) CursorPos(h native.Handle) (float64, float64) {
	w, ok := l.lookup(h)
	if !ok {
		return 0, 0
	}
	defer l.mu.Unlock()
	return w.cursorX, w.cursorY
}

func (l *Library) SetCursorPos(h native.Handle, x, y float64) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	w.cursorX, w.cursorY = x, y
}

func (l *Library) IconifyWindow(h native.Handle) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	if !w.iconified {
		w.iconified = true
		l.enqueue(native.Event{Kind: native.EventWindowIconify, Window: h, Ints: [4]int{native.True}})
	}
}

func (l *Library) RestoreWindow(h native.Handle) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	if w.iconified {
		w.iconified = false
		l.enqueue(native.Event{Kind: native.EventWindowIconify, Window: h, Ints: [4]int{native.False}})
	}
}

func (l *Library) ShowWindow(h native.Handle) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	w.visible = true
}

func (l *Library) HideWindow(h native.Handle) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	w.visible = false
}

func (l *Library) WindowMonitor(h native.Handle) native.Handle {
	w, ok := l.lookup(h)
	if !ok {
		return 0
	}
	defer l.mu.Unlock()
	return w.monitor
}

func (l *Library) WindowAttrib(h native.Handle, attrib int) int {
	w, ok := l.lookup(h)
	if !ok {
		return 0
	}
	defer l.mu.Unlock()
	switch attrib {
	case native.Focused:
		return boolValue(w.focused)
	case native.Iconified:
		return boolValue(w.iconified)
	case native.Visible:
		return boolValue(w.visible)
	}
	if v, ok := w.hints[attrib]; ok {
		return v
	}
	return 0
}

func boolValue(b bool) int {
	if b {
		return native.True
	}
	return native.False
}

func validInputMode(mode, value int) bool {
	switch mode {
	case native.InputModeCursor:
		return value == native.CursorNormal || value == native.CursorHidden || value == native.CursorDisabled
	case native.InputModeStickyKeys, native.InputModeStickyMouseButtons:
		return true
	}
	return false
}

func (l *Library) InputMode(h native.Handle, mode int) int {
	if !validInputMode(mode, native.CursorNormal) {
		l.fail(native.InvalidEnum, "Invalid input mode")
		return 0
	}
	w, ok := l.lookup(h)
	if !ok {
		return 0
	}
	defer l.mu.Unlock()
	return w.inputModes[mode]
}

func (l *Library) SetInputMode(h native.Handle, mode, value int) {
	if !validInputMode(mode, value) {
		l.fail(native.InvalidEnum, "Invalid input mode or value")
		return
	}
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	if mode != native.InputModeCursor && value != native.False {
		value = native.True
	}
	w.inputModes[mode] = value
}

func (l *Library) Key(h native.Handle, key int) int {
	w, ok := l.lookup(h)
	if !ok {
		return native.Release
	}
	defer l.mu.Unlock()
	return w.keys[key]
}

func (l *Library) MouseButton(h native.Handle, button int) int {
	w, ok := l.lookup(h)
	if !ok {
		return native.Release
	}
	defer l.mu.Unlock()
	return w.buttons[button]
}

func (l *Library) ClipboardString(h native.Handle) string {
	if _, ok := l.lookup(h); !ok {
		return ""
	}
	defer l.mu.Unlock()
	return l.clipboard
}

func (l *Library) SetClipboardString(h native.Handle, s string) {
	if _, ok := l.lookup(h); !ok {
		return
	}
	defer l.mu.Unlock()
	l.clipboard = s
}

func (l *Library) SetWindowIcon(h native.Handle, images []native.ImageData) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	w.icons = len(images)
}

// IconCount returns how many icon candidates were last set on a window.
func (l *Library) IconCount(h native.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.windows[h]; ok {
		return w.icons
	}
	return 0
}

func (l *Library) SetCursor(h, cur native.Handle) {
	w, ok := l.lookup(h)
	if !ok {
		return
	}
	if cur != 0 {
		if _, ok := l.cursors[cur]; !ok {
			l.mu.Unlock()
			l.fail(native.InvalidValue, "Invalid cursor handle")
			return
		}
	}
	defer l.mu.Unlock()
	w.cursor = cur
}

// CursorOf returns the cursor handle last set on a window.
func (l *Library) CursorOf(h native.Handle) native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.windows[h]; ok {
		return w.cursor
	}
	return 0
}

// Visible reports whether a window is shown.
func (l *Library) Visible(h native.Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.windows[h]; ok {
		return w.visible
	}
	return false
}
