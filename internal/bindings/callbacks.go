//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// purego callbacks are a finite resource that is never released, so each
// trampoline is created once per process and shared by every window.

var (
	handlerMu sync.Mutex
	handler   func(native.Event)

	trampolineOnce sync.Once
	trampolines    map[native.EventKind]uintptr
)

// SetEventHandler installs the sink that every trampoline forwards to.
func (l *Library) SetEventHandler(fn func(native.Event)) {
	handlerMu.Lock()
	handler = fn
	handlerMu.Unlock()
}

func emit(ev native.Event) {
	handlerMu.Lock()
	fn := handler
	handlerMu.Unlock()

	if fn != nil {
		fn(ev)
	}
}

func trampoline(kind native.EventKind) uintptr {
	trampolineOnce.Do(makeTrampolines)
	return trampolines[kind]
}

func makeTrampolines() {
	trampolines = map[native.EventKind]uintptr{
		// void (*)(int error_code, const char *description)
		native.EventError: purego.NewCallback(func(_ purego.CDecl, code int32, desc *byte) {
			emit(native.Event{Kind: native.EventError, Ints: [4]int{int(code)}, Text: goString(desc)})
		}),
		// void (*)(GLFWmonitor *monitor, int event)
		native.EventMonitor: purego.NewCallback(func(_ purego.CDecl, mon uintptr, event int32) {
			emit(native.Event{Kind: native.EventMonitor, Monitor: native.Handle(mon), Ints: [4]int{int(event)}})
		}),
		// void (*)(int jid, int event)
		native.EventJoystick: purego.NewCallback(func(_ purego.CDecl, jid, event int32) {
			emit(native.Event{Kind: native.EventJoystick, Ints: [4]int{int(jid), int(event)}})
		}),
		native.EventWindowPos:       windowInts2(native.EventWindowPos),
		native.EventWindowSize:      windowInts2(native.EventWindowSize),
		native.EventWindowClose:     windowOnly(native.EventWindowClose),
		native.EventWindowRefresh:   windowOnly(native.EventWindowRefresh),
		native.EventWindowFocus:     windowInts1(native.EventWindowFocus),
		native.EventWindowIconify:   windowInts1(native.EventWindowIconify),
		native.EventFramebufferSize: windowInts2(native.EventFramebufferSize),
		native.EventCursorEnter:     windowInts1(native.EventCursorEnter),
		native.EventCursorPos:       windowFloats2(native.EventCursorPos),
		native.EventScroll:          windowFloats2(native.EventScroll),
		// void (*)(GLFWwindow *window, int key, int scancode, int action, int mods)
		native.EventKey: purego.NewCallback(func(_ purego.CDecl, win uintptr, key, scancode, action, mods int32) {
			emit(native.Event{Kind: native.EventKey, Window: native.Handle(win),
				Ints: [4]int{int(key), int(scancode), int(action), int(mods)}})
		}),
		// void (*)(GLFWwindow *window, unsigned int codepoint)
		native.EventChar: purego.NewCallback(func(_ purego.CDecl, win uintptr, codepoint uint32) {
			emit(native.Event{Kind: native.EventChar, Window: native.Handle(win), Ints: [4]int{int(codepoint)}})
		}),
		// void (*)(GLFWwindow *window, unsigned int codepoint, int mods)
		native.EventCharMods: purego.NewCallback(func(_ purego.CDecl, win uintptr, codepoint uint32, mods int32) {
			emit(native.Event{Kind: native.EventCharMods, Window: native.Handle(win), Ints: [4]int{int(codepoint), int(mods)}})
		}),
		// void (*)(GLFWwindow *window, int button, int action, int mods)
		native.EventMouseButton: purego.NewCallback(func(_ purego.CDecl, win uintptr, button, action, mods int32) {
			emit(native.Event{Kind: native.EventMouseButton, Window: native.Handle(win),
				Ints: [4]int{int(button), int(action), int(mods)}})
		}),
		// void (*)(GLFWwindow *window, int count, const char **paths)
		native.EventDrop: purego.NewCallback(func(_ purego.CDecl, win uintptr, count int32, paths unsafe.Pointer) {
			var out []string
			if paths != nil && count > 0 {
				for _, p := range unsafe.Slice((**byte)(paths), count) {
					out = append(out, goString(p))
				}
			}
			emit(native.Event{Kind: native.EventDrop, Window: native.Handle(win), Paths: out})
		}),
	}
}

// void (*)(GLFWwindow *window)
func windowOnly(kind native.EventKind) uintptr {
	return purego.NewCallback(func(_ purego.CDecl, win uintptr) {
		emit(native.Event{Kind: kind, Window: native.Handle(win)})
	})
}

// void (*)(GLFWwindow *window, int a)
func windowInts1(kind native.EventKind) uintptr {
	return purego.NewCallback(func(_ purego.CDecl, win uintptr, a int32) {
		emit(native.Event{Kind: kind, Window: native.Handle(win), Ints: [4]int{int(a)}})
	})
}

// void (*)(GLFWwindow *window, int a, int b)
func windowInts2(kind native.EventKind) uintptr {
	return purego.NewCallback(func(_ purego.CDecl, win uintptr, a, b int32) {
		emit(native.Event{Kind: kind, Window: native.Handle(win), Ints: [4]int{int(a), int(b)}})
	})
}

// void (*)(GLFWwindow *window, double x, double y)
func windowFloats2(kind native.EventKind) uintptr {
	return purego.NewCallback(func(_ purego.CDecl, win uintptr, x, y float64) {
		emit(native.Event{Kind: kind, Window: native.Handle(win), Floats: [2]float64{x, y}})
	})
}

// EnableWindowEvent installs or removes the trampoline for one event kind
// on one window.
func (l *Library) EnableWindowEvent(win native.Handle, kind native.EventKind, on bool) {
	setter := l.windowSetter(kind)
	if setter == nil {
		return
	}
	var cb uintptr
	if on {
		cb = trampoline(kind)
	}
	setter(uintptr(win), cb)
}

func (l *Library) windowSetter(kind native.EventKind) func(win, cb uintptr) uintptr {
	switch kind {
	case native.EventWindowPos:
		return l.glfwSetWindowPosCallback
	case native.EventWindowSize:
		return l.glfwSetWindowSizeCallback
	case native.EventWindowClose:
		return l.glfwSetWindowCloseCallback
	case native.EventWindowRefresh:
		return l.glfwSetWindowRefreshCallback
	case native.EventWindowFocus:
		return l.glfwSetWindowFocusCallback
	case native.EventWindowIconify:
		return l.glfwSetWindowIconifyCallback
	case native.EventFramebufferSize:
		return l.glfwSetFramebufferSizeCallback
	case native.EventKey:
		return l.glfwSetKeyCallback
	case native.EventChar:
		return l.glfwSetCharCallback
	case native.EventCharMods:
		return l.glfwSetCharModsCallback
	case native.EventMouseButton:
		return l.glfwSetMouseButtonCallback
	case native.EventCursorPos:
		return l.glfwSetCursorPosCallback
	case native.EventCursorEnter:
		return l.glfwSetCursorEnterCallback
	case native.EventScroll:
		return l.glfwSetScrollCallback
	case native.EventDrop:
		return l.glfwSetDropCallback
	}
	return nil
}

// EnableMonitorEvents installs or removes the global monitor trampoline.
func (l *Library) EnableMonitorEvents(on bool) {
	var cb uintptr
	if on {
		cb = trampoline(native.EventMonitor)
	}
	l.glfwSetMonitorCallback(cb)
}

// EnableJoystickEvents installs or removes the global joystick trampoline.
// It does nothing on GLFW builds older than 3.2.
func (l *Library) EnableJoystickEvents(on bool) {
	if l.glfwSetJoystickCallback == nil {
		return
	}
	var cb uintptr
	if on {
		cb = trampoline(native.EventJoystick)
	}
	l.glfwSetJoystickCallback(cb)
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
