//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Window callback types. Each window has one slot per type; setting a
// callback replaces the previous one, which the setter returns. Passing nil
// removes the callback.
type (
	PosFunc             func(w *Window, xpos, ypos int)
	SizeFunc            func(w *Window, width, height int)
	CloseFunc           func(w *Window)
	RefreshFunc         func(w *Window)
	FocusFunc           func(w *Window, focused bool)
	IconifyFunc         func(w *Window, iconified bool)
	FramebufferSizeFunc func(w *Window, width, height int)
	KeyFunc             func(w *Window, key Key, scancode int, action Action, mods ModifierKey)
	CharFunc            func(w *Window, char rune)
	CharModsFunc        func(w *Window, char rune, mods ModifierKey)
	MouseButtonFunc     func(w *Window, button MouseButton, action Action, mods ModifierKey)
	CursorPosFunc       func(w *Window, xpos, ypos float64)
	CursorEnterFunc     func(w *Window, entered bool)
	ScrollFunc          func(w *Window, xoff, yoff float64)
	DropFunc            func(w *Window, names []string)
)

// swapCallback replaces the callback for kind and turns the native callback
// on or off to match. On a destroyed window it does nothing.
func (w *Window) swapCallback(kind native.EventKind, fn any, set bool) any {
	h, ok := w.box.get()
	if !ok {
		return nil
	}
	prev := w.slots[kind-native.FirstWindowEvent].swap(fn, set)
	if l, _, err := library(); err == nil {
		l.EnableWindowEvent(h, kind, set)
	}
	return prev
}

func (w *Window) callback(kind native.EventKind) any {
	fn, _ := w.slots[kind-native.FirstWindowEvent].load()
	return fn
}

func (w *Window) clearCallbacks() {
	for i := range w.slots {
		w.slots[i].swap(nil, false)
	}
}

// dispatch delivers a native window event to the matching callback.
func (w *Window) dispatch(ev native.Event) {
	switch cb := w.callback(ev.Kind).(type) {
	case PosFunc:
		cb(w, ev.Ints[0], ev.Ints[1])
	case SizeFunc:
		cb(w, ev.Ints[0], ev.Ints[1])
	case CloseFunc:
		cb(w)
	case RefreshFunc:
		cb(w)
	case FocusFunc:
		cb(w, ev.Ints[0] != False)
	case IconifyFunc:
		cb(w, ev.Ints[0] != False)
	case FramebufferSizeFunc:
		cb(w, ev.Ints[0], ev.Ints[1])
	case KeyFunc:
		cb(w, Key(ev.Ints[0]), ev.Ints[1], Action(ev.Ints[2]), ModifierKey(ev.Ints[3]))
	case CharFunc:
		cb(w, rune(ev.Ints[0]))
	case CharModsFunc:
		cb(w, rune(ev.Ints[0]), ModifierKey(ev.Ints[1]))
	case MouseButtonFunc:
		cb(w, MouseButton(ev.Ints[0]), Action(ev.Ints[1]), ModifierKey(ev.Ints[2]))
	case CursorPosFunc:
		cb(w, ev.Floats[0], ev.Floats[1])
	case CursorEnterFunc:
		cb(w, ev.Ints[0] != False)
	case ScrollFunc:
		cb(w, ev.Floats[0], ev.Floats[1])
	case DropFunc:
		cb(w, ev.Paths)
	}
}

// SetPosCallback sets the callback for window moves.
func (w *Window) SetPosCallback(cb PosFunc) (previous PosFunc) {
	previous, _ = w.swapCallback(native.EventWindowPos, cb, cb != nil).(PosFunc)
	return previous
}

// SetSizeCallback sets the callback for content area resizes.
func (w *Window) SetSizeCallback(cb SizeFunc) (previous SizeFunc) {
	previous, _ = w.swapCallback(native.EventWindowSize, cb, cb != nil).(SizeFunc)
	return previous
}

// SetCloseCallback sets the callback for close requests. The close flag is
// already set when it runs; the callback may clear it to veto the close.
func (w *Window) SetCloseCallback(cb CloseFunc) (previous CloseFunc) {
	previous, _ = w.swapCallback(native.EventWindowClose, cb, cb != nil).(CloseFunc)
	return previous
}

// SetRefreshCallback sets the callback for when the content area needs to
// be redrawn.
func (w *Window) SetRefreshCallback(cb RefreshFunc) (previous RefreshFunc) {
	previous, _ = w.swapCallback(native.EventWindowRefresh, cb, cb != nil).(RefreshFunc)
	return previous
}

// SetFocusCallback sets the callback for input focus changes.
func (w *Window) SetFocusCallback(cb FocusFunc) (previous FocusFunc) {
	previous, _ = w.swapCallback(native.EventWindowFocus, cb, cb != nil).(FocusFunc)
	return previous
}

// SetIconifyCallback sets the callback for iconification and restoration.
func (w *Window) SetIconifyCallback(cb IconifyFunc) (previous IconifyFunc) {
	previous, _ = w.swapCallback(native.EventWindowIconify, cb, cb != nil).(IconifyFunc)
	return previous
}

// SetFramebufferSizeCallback sets the callback for framebuffer resizes.
func (w *Window) SetFramebufferSizeCallback(cb FramebufferSizeFunc) (previous FramebufferSizeFunc) {
	previous, _ = w.swapCallback(native.EventFramebufferSize, cb, cb != nil).(FramebufferSizeFunc)
	return previous
}

// SetKeyCallback sets the callback for physical key actions.
func (w *Window) SetKeyCallback(cb KeyFunc) (previous KeyFunc) {
	previous, _ = w.swapCallback(native.EventKey, cb, cb != nil).(KeyFunc)
	return previous
}

// SetCharCallback sets the callback for Unicode text input.
func (w *Window) SetCharCallback(cb CharFunc) (previous CharFunc) {
	previous, _ = w.swapCallback(native.EventChar, cb, cb != nil).(CharFunc)
	return previous
}

// SetCharModsCallback sets the callback for Unicode text input with the
// modifier keys held.
func (w *Window) SetCharModsCallback(cb CharModsFunc) (previous CharModsFunc) {
	previous, _ = w.swapCallback(native.EventCharMods, cb, cb != nil).(CharModsFunc)
	return previous
}

// SetMouseButtonCallback sets the callback for mouse button actions.
func (w *Window) SetMouseButtonCallback(cb MouseButtonFunc) (previous MouseButtonFunc) {
	previous, _ = w.swapCallback(native.EventMouseButton, cb, cb != nil).(MouseButtonFunc)
	return previous
}

// SetCursorPosCallback sets the callback for cursor movement.
func (w *Window) SetCursorPosCallback(cb CursorPosFunc) (previous CursorPosFunc) {
	previous, _ = w.swapCallback(native.EventCursorPos, cb, cb != nil).(CursorPosFunc)
	return previous
}

// SetCursorEnterCallback sets the callback for the cursor entering or
// leaving the content area.
func (w *Window) SetCursorEnterCallback(cb CursorEnterFunc) (previous CursorEnterFunc) {
	previous, _ = w.swapCallback(native.EventCursorEnter, cb, cb != nil).(CursorEnterFunc)
	return previous
}

// SetScrollCallback sets the callback for scrolling.
func (w *Window) SetScrollCallback(cb ScrollFunc) (previous ScrollFunc) {
	previous, _ = w.swapCallback(native.EventScroll, cb, cb != nil).(ScrollFunc)
	return previous
}

// SetDropCallback sets the callback for files dropped on the window.
func (w *Window) SetDropCallback(cb DropFunc) (previous DropFunc) {
	previous, _ = w.swapCallback(native.EventDrop, cb, cb != nil).(DropFunc)
	return previous
}
