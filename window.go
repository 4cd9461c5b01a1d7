//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"sync"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

const windowEventCount = int(native.LastWindowEvent-native.FirstWindowEvent) + 1

// Window is a GLFW window together with its OpenGL or OpenGL ES context.
//
// Methods that change state return ErrDestroyed after Destroy. Queries on a
// destroyed window return zero values.
type Window struct {
	box   handleBox
	slots [windowEventCount]slot[any]

	cursorMu sync.Mutex
	cursor   *Cursor // keeps a custom cursor reachable while it is in use
}

// NewWindow creates a window and its context using the current window
// hints. Pass a monitor for a full screen window and share to share
// context objects with another window; both may be nil.
func NewWindow(width, height int, title string, monitor *Monitor, share *Window) (*Window, error) {
	l, gen, err := library()
	if err != nil {
		return nil, err
	}

	var mon, shared native.Handle
	if monitor != nil {
		if !monitor.Present() {
			return nil, ErrDestroyed
		}
		mon, _ = monitor.box.get()
	}
	if share != nil {
		h, ok := share.box.get()
		if !ok {
			return nil, ErrDestroyed
		}
		shared = h
	}

	var h native.Handle
	err = guard("NewWindow", func() {
		h = l.CreateWindow(width, height, title, mon, shared)
	})
	if h == 0 {
		if err == nil {
			err = ErrCreateFailed
		}
		return nil, err
	}

	w := &Window{}
	w.box.init(h, owned)
	windows.Register(uintptr(h), w)
	track(w, &w.box, reapWindow, gen)
	logf(LogDebug, "created window %#x %dx%d %q", h, width, height, title)
	return w, nil
}

// do runs fn against the live window.
func (w *Window) do(op string, fn func(l native.Library, h native.Handle)) error {
	h, ok := w.box.get()
	if !ok {
		return ErrDestroyed
	}
	l, _, err := library()
	if err != nil {
		return err
	}
	return guard(op, func() {
		fn(l, h)
	})
}

// Destroy destroys the window and its context. Callbacks set on the window
// are removed. Destroying a window twice returns ErrDestroyed.
func (w *Window) Destroy() error {
	l, _, err := library()
	if err != nil {
		if _, ok := w.box.get(); !ok {
			return ErrDestroyed
		}
		return err
	}
	h, err := w.box.release()
	if err != nil {
		return err
	}
	windows.Invalidate(uintptr(h))
	w.clearCallbacks()
	w.setCursorRef(nil)
	logf(LogDebug, "destroying window %#x", h)
	return guard("Destroy", func() {
		l.DestroyWindow(h)
	})
}

// IsDestroyed reports whether the window has been destroyed, either by
// Destroy or by Terminate.
func (w *Window) IsDestroyed() bool {
	_, ok := w.box.get()
	return !ok
}

// MakeCurrent makes the window's context current on this thread.
func (w *Window) MakeCurrent() error {
	return w.do("MakeCurrent", func(l native.Library, h native.Handle) {
		l.MakeContextCurrent(h)
	})
}

// SwapBuffers swaps the front and back buffers.
func (w *Window) SwapBuffers() error {
	return w.do("SwapBuffers", func(l native.Library, h native.Handle) {
		l.SwapBuffers(h)
	})
}

// ShouldClose reports whether the close flag is set.
func (w *Window) ShouldClose() bool {
	return w.ShouldCloseValue() != False
}

// ShouldCloseValue returns the raw close flag.
func (w *Window) ShouldCloseValue() int {
	v := False
	w.do("ShouldClose", func(l native.Library, h native.Handle) {
		v = l.WindowShouldClose(h)
	})
	return v
}

// SetShouldClose sets or clears the close flag.
func (w *Window) SetShouldClose(value bool) error {
	return w.SetShouldCloseValue(boolValue(value))
}

// SetShouldCloseValue stores a raw value in the close flag.
func (w *Window) SetShouldCloseValue(value int) error {
	return w.do("SetShouldClose", func(l native.Library, h native.Handle) {
		l.SetWindowShouldClose(h, value)
	})
}

func boolValue(b bool) int {
	if b {
		return True
	}
	return False
}

// SetTitle sets the window title, encoded as UTF-8.
func (w *Window) SetTitle(title string) error {
	return w.do("SetTitle", func(l native.Library, h native.Handle) {
		l.SetWindowTitle(h, title)
	})
}

// Size returns the size of the content area in screen coordinates.
func (w *Window) Size() (width, height int) {
	w.do("Size", func(l native.Library, h native.Handle) {
		width, height = l.WindowSize(h)
	})
	return width, height
}

// SetSize resizes the content area.
func (w *Window) SetSize(width, height int) error {
	return w.do("SetSize", func(l native.Library, h native.Handle) {
		l.SetWindowSize(h, width, height)
	})
}

// Pos returns the position of the content area's upper-left corner.
func (w *Window) Pos() (x, y int) {
	w.do("Pos", func(l native.Library, h native.Handle) {
		x, y = l.WindowPos(h)
	})
	return x, y
}

// SetPos moves the content area's upper-left corner.
func (w *Window) SetPos(x, y int) error {
	return w.do("SetPos", func(l native.Library, h native.Handle) {
		l.SetWindowPos(h, x, y)
	})
}

// CursorPos returns the cursor position relative to the content area.
func (w *Window) CursorPos() (x, y float64) {
	w.do("CursorPos", func(l native.Library, h native.Handle) {
		x, y = l.CursorPos(h)
	})
	return x, y
}

// SetCursorPos moves the cursor relative to the content area.
func (w *Window) SetCursorPos(x, y float64) error {
	return w.do("SetCursorPos", func(l native.Library, h native.Handle) {
		l.SetCursorPos(h, x, y)
	})
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	w.do("FramebufferSize", func(l native.Library, h native.Handle) {
		width, height = l.FramebufferSize(h)
	})
	return width, height
}

// FrameSize returns the size of each edge of the window frame.
func (w *Window) FrameSize() (left, top, right, bottom int) {
	w.do("FrameSize", func(l native.Library, h native.Handle) {
		left, top, right, bottom = l.WindowFrameSize(h)
	})
	return left, top, right, bottom
}

// Iconify minimizes the window.
func (w *Window) Iconify() error {
	return w.do("Iconify", func(l native.Library, h native.Handle) {
		l.IconifyWindow(h)
	})
}

// Restore restores an iconified or maximized window.
func (w *Window) Restore() error {
	return w.do("Restore", func(l native.Library, h native.Handle) {
		l.RestoreWindow(h)
	})
}

// Show makes a hidden window visible.
func (w *Window) Show() error {
	return w.do("Show", func(l native.Library, h native.Handle) {
		l.ShowWindow(h)
	})
}

// Hide hides the window.
func (w *Window) Hide() error {
	return w.do("Hide", func(l native.Library, h native.Handle) {
		l.HideWindow(h)
	})
}

// Monitor returns the monitor a full screen window is on, or nil.
func (w *Window) Monitor() *Monitor {
	var mon native.Handle
	w.do("Monitor", func(l native.Library, h native.Handle) {
		mon = l.WindowMonitor(h)
	})
	return monitorFor(mon)
}

// Attrib returns a window attribute or the value of a creation hint.
func (w *Window) Attrib(attrib Hint) int {
	var v int
	w.do("Attrib", func(l native.Library, h native.Handle) {
		v = l.WindowAttrib(h, int(attrib))
	})
	return v
}

// InputMode returns the value of an input mode.
func (w *Window) InputMode(mode InputMode) int {
	var v int
	w.do("InputMode", func(l native.Library, h native.Handle) {
		v = l.InputMode(h, int(mode))
	})
	return v
}

// SetInputMode sets an input mode. CursorMode takes CursorNormal,
// CursorHidden or CursorDisabled; the sticky modes take True or False.
func (w *Window) SetInputMode(mode InputMode, value int) error {
	return w.do("SetInputMode", func(l native.Library, h native.Handle) {
		l.SetInputMode(h, int(mode), value)
	})
}

// Key returns the last reported state of a key.
func (w *Window) Key(key Key) Action {
	a := Release
	w.do("Key", func(l native.Library, h native.Handle) {
		a = Action(l.Key(h, int(key)))
	})
	return a
}

// MouseButton returns the last reported state of a mouse button.
func (w *Window) MouseButton(button MouseButton) Action {
	a := Release
	w.do("MouseButton", func(l native.Library, h native.Handle) {
		a = Action(l.MouseButton(h, int(button)))
	})
	return a
}

// Clipboard returns the contents of the system clipboard as UTF-8.
func (w *Window) Clipboard() string {
	var s string
	w.do("Clipboard", func(l native.Library, h native.Handle) {
		s = l.ClipboardString(h)
	})
	return s
}

// SetClipboard sets the system clipboard.
func (w *Window) SetClipboard(s string) error {
	return w.do("SetClipboard", func(l native.Library, h native.Handle) {
		l.SetClipboardString(h, s)
	})
}

// SetCursor sets the cursor shown over the content area. Pass nil for the
// default arrow.
func (w *Window) SetCursor(c *Cursor) error {
	var ch native.Handle
	if c != nil {
		h, ok := c.box.get()
		if !ok {
			return ErrDestroyed
		}
		ch = h
	}
	err := w.do("SetCursor", func(l native.Library, h native.Handle) {
		l.SetCursor(h, ch)
	})
	if err == nil {
		w.setCursorRef(c)
	}
	return err
}

func (w *Window) setCursorRef(c *Cursor) {
	w.cursorMu.Lock()
	w.cursor = c
	w.cursorMu.Unlock()
}

// dropCursorRef forgets c if it is the window's current cursor.
func (w *Window) dropCursorRef(c *Cursor) {
	w.cursorMu.Lock()
	if w.cursor == c {
		w.cursor = nil
	}
	w.cursorMu.Unlock()
}

// SetIcon sets the window icon from one or more candidate images; the
// platform picks the closest size. With no images the default icon is
// restored.
func (w *Window) SetIcon(images ...*Image) error {
	data := make([]native.ImageData, 0, len(images))
	for _, img := range images {
		if img == nil {
			return ErrInvalidArgument
		}
		data = append(data, img.data())
	}
	return w.do("SetIcon", func(l native.Library, h native.Handle) {
		l.SetWindowIcon(h, data)
	})
}
