//go:build !ios && !android && (amd64 || arm64)

package script

import (
	"github.com/obinnaokechukwu/glfwgo"
)

// closeSentinels maps script booleans to the values glfwSetWindowShouldClose
// takes. Anything else, including values that already are sentinels, is
// passed through unchanged.
var closeSentinels = map[bool]int{
	true:  glfwgo.True,
	false: glfwgo.False,
}

func closeValue(v Value) Value {
	if b, ok := v.(bool); ok {
		return closeSentinels[b]
	}
	return v
}

// windowCallbacks installs a script callback for each per-window event.
var windowCallbacks = map[string]func(w *glfwgo.Window, fn Func){
	"set_pos_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetPosCallback(nil)
			return
		}
		w.SetPosCallback(func(w *glfwgo.Window, x, y int) { invoke(fn, w, x, y) })
	},
	"set_size_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetSizeCallback(nil)
			return
		}
		w.SetSizeCallback(func(w *glfwgo.Window, width, height int) { invoke(fn, w, width, height) })
	},
	"set_close_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetCloseCallback(nil)
			return
		}
		w.SetCloseCallback(func(w *glfwgo.Window) { invoke(fn, w) })
	},
	"set_refresh_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetRefreshCallback(nil)
			return
		}
		w.SetRefreshCallback(func(w *glfwgo.Window) { invoke(fn, w) })
	},
	"set_focus_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetFocusCallback(nil)
			return
		}
		w.SetFocusCallback(func(w *glfwgo.Window, focused bool) { invoke(fn, w, boolValue(focused)) })
	},
	"set_iconify_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetIconifyCallback(nil)
			return
		}
		w.SetIconifyCallback(func(w *glfwgo.Window, iconified bool) { invoke(fn, w, boolValue(iconified)) })
	},
	"set_framebuffer_size_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetFramebufferSizeCallback(nil)
			return
		}
		w.SetFramebufferSizeCallback(func(w *glfwgo.Window, width, height int) { invoke(fn, w, width, height) })
	},
	"set_key_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetKeyCallback(nil)
			return
		}
		w.SetKeyCallback(func(w *glfwgo.Window, key glfwgo.Key, scancode int, action glfwgo.Action, mods glfwgo.ModifierKey) {
			invoke(fn, w, int(key), scancode, int(action), int(mods))
		})
	},
	"set_char_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetCharCallback(nil)
			return
		}
		w.SetCharCallback(func(w *glfwgo.Window, char rune) { invoke(fn, w, int(char)) })
	},
	"set_char_mods_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetCharModsCallback(nil)
			return
		}
		w.SetCharModsCallback(func(w *glfwgo.Window, char rune, mods glfwgo.ModifierKey) {
			invoke(fn, w, int(char), int(mods))
		})
	},
	"set_mouse_button_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetMouseButtonCallback(nil)
			return
		}
		w.SetMouseButtonCallback(func(w *glfwgo.Window, button glfwgo.MouseButton, action glfwgo.Action, mods glfwgo.ModifierKey) {
			invoke(fn, w, int(button), int(action), int(mods))
		})
	},
	"set_cursor_pos_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetCursorPosCallback(nil)
			return
		}
		w.SetCursorPosCallback(func(w *glfwgo.Window, x, y float64) { invoke(fn, w, x, y) })
	},
	"set_cursor_enter_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetCursorEnterCallback(nil)
			return
		}
		w.SetCursorEnterCallback(func(w *glfwgo.Window, entered bool) { invoke(fn, w, boolValue(entered)) })
	},
	"set_scroll_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetScrollCallback(nil)
			return
		}
		w.SetScrollCallback(func(w *glfwgo.Window, xoff, yoff float64) { invoke(fn, w, xoff, yoff) })
	},
	"set_drop_callback": func(w *glfwgo.Window, fn Func) {
		if fn == nil {
			w.SetDropCallback(nil)
			return
		}
		w.SetDropCallback(func(w *glfwgo.Window, names []string) {
			paths := make([]Value, len(names))
			for i, name := range names {
				paths[i] = name
			}
			invoke(fn, w, paths)
		})
	},
}

func defineWindow() {
	c := define("Window")

	// m defines an instance method taking exactly n arguments.
	m := func(name string, n int, fn func(w *glfwgo.Window, a args) (Value, error)) {
		c.def(name, func(recv Value, list []Value) (Value, error) {
			a := argsOf("Window#"+name, list)
			if err := a.want(n); err != nil {
				return nil, err
			}
			return fn(recv.(*glfwgo.Window), a)
		})
	}
	// action defines a method taking no arguments that returns only an error.
	action := func(name string, fn func(w *glfwgo.Window) error) {
		m(name, 0, func(w *glfwgo.Window, _ args) (Value, error) {
			return nil, fn(w)
		})
	}

	c.defStatic("new", func(_ Value, list []Value) (Value, error) {
		a := argsOf("Window.new", list)
		if err := a.between(3, 5); err != nil {
			return nil, err
		}
		width, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		height, err := a.integer(1)
		if err != nil {
			return nil, err
		}
		title, err := a.str(2)
		if err != nil {
			return nil, err
		}
		var (
			mon   *glfwgo.Monitor
			share *glfwgo.Window
		)
		if len(list) > 3 {
			if mon, err = object[glfwgo.Monitor](a, 3, true, "Monitor"); err != nil {
				return nil, err
			}
		}
		if len(list) > 4 {
			if share, err = object[glfwgo.Window](a, 4, true, "Window"); err != nil {
				return nil, err
			}
		}
		w, err := glfwgo.NewWindow(width, height, title, mon, share)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
	// Window.hint and Window.default_hints are the module functions under
	// the class that uses them.
	c.defStatic("hint", func(_ Value, list []Value) (Value, error) {
		return CallStatic("GLFW", "window_hint", list...)
	})
	c.defStatic("default_hints", func(_ Value, list []Value) (Value, error) {
		return CallStatic("GLFW", "default_window_hints", list...)
	})

	action("destroy", (*glfwgo.Window).Destroy)
	m("destroyed?", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		return w.IsDestroyed(), nil
	})
	action("make_current", (*glfwgo.Window).MakeCurrent)
	action("swap_buffers", (*glfwgo.Window).SwapBuffers)
	action("iconify", (*glfwgo.Window).Iconify)
	action("restore", (*glfwgo.Window).Restore)
	action("show", (*glfwgo.Window).Show)
	action("hide", (*glfwgo.Window).Hide)

	m("should_close", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		return w.ShouldCloseValue(), nil
	})
	m("should_close?", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		return w.ShouldClose(), nil
	})
	m("should_close=", 1, func(w *glfwgo.Window, a args) (Value, error) {
		a.list = []Value{closeValue(a.list[0])}
		v, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return nil, w.SetShouldCloseValue(v)
	})
	m("title=", 1, func(w *glfwgo.Window, a args) (Value, error) {
		title, err := a.str(0)
		if err != nil {
			return nil, err
		}
		return nil, w.SetTitle(title)
	})

	m("window_pos", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		x, y := w.Pos()
		return []Value{x, y}, nil
	})
	m("window_pos=", 1, func(w *glfwgo.Window, a args) (Value, error) {
		p, err := a.ints(0, 2)
		if err != nil {
			return nil, err
		}
		return nil, w.SetPos(p[0], p[1])
	})
	m("window_size", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		x, y := w.Size()
		return []Value{x, y}, nil
	})
	m("window_size=", 1, func(w *glfwgo.Window, a args) (Value, error) {
		s, err := a.ints(0, 2)
		if err != nil {
			return nil, err
		}
		return nil, w.SetSize(s[0], s[1])
	})
	m("cursor_pos", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		x, y := w.CursorPos()
		return []Value{x, y}, nil
	})
	m("cursor_pos=", 1, func(w *glfwgo.Window, a args) (Value, error) {
		p, err := a.floats(0, 2)
		if err != nil {
			return nil, err
		}
		return nil, w.SetCursorPos(p[0], p[1])
	})
	m("framebuffer_size", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		x, y := w.FramebufferSize()
		return []Value{x, y}, nil
	})
	m("window_frame_size", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		left, top, right, bottom := w.FrameSize()
		return []Value{left, top, right, bottom}, nil
	})
	m("monitor", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		return ref(w.Monitor()), nil
	})
	m("window_attrib", 1, func(w *glfwgo.Window, a args) (Value, error) {
		attrib, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return w.Attrib(glfwgo.Hint(attrib)), nil
	})

	m("clipboard", 0, func(w *glfwgo.Window, _ args) (Value, error) {
		return w.Clipboard(), nil
	})
	m("clipboard=", 1, func(w *glfwgo.Window, a args) (Value, error) {
		s, err := a.str(0)
		if err != nil {
			return nil, err
		}
		return nil, w.SetClipboard(s)
	})

	m("get_input_mode", 1, func(w *glfwgo.Window, a args) (Value, error) {
		mode, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return w.InputMode(glfwgo.InputMode(mode)), nil
	})
	m("set_input_mode", 2, func(w *glfwgo.Window, a args) (Value, error) {
		mode, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		value, err := a.integer(1)
		if err != nil {
			return nil, err
		}
		return nil, w.SetInputMode(glfwgo.InputMode(mode), value)
	})
	// input_mode reads with one argument and writes with two.
	c.def("input_mode", func(recv Value, list []Value) (Value, error) {
		switch len(list) {
		case 1:
			return c.methods["get_input_mode"](recv, list)
		case 2:
			return c.methods["set_input_mode"](recv, list)
		}
		return nil, &ArgumentError{Method: "Window#input_mode", Given: len(list), Want: "1..2"}
	})

	m("key", 1, func(w *glfwgo.Window, a args) (Value, error) {
		key, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return int(w.Key(glfwgo.Key(key))), nil
	})
	m("mouse_button", 1, func(w *glfwgo.Window, a args) (Value, error) {
		button, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return int(w.MouseButton(glfwgo.MouseButton(button))), nil
	})
	m("set_cursor", 1, func(w *glfwgo.Window, a args) (Value, error) {
		cur, err := object[glfwgo.Cursor](a, 0, true, "Cursor")
		if err != nil {
			return nil, err
		}
		return nil, w.SetCursor(cur)
	})
	c.def("set_icon", func(recv Value, list []Value) (Value, error) {
		a := argsOf("Window#set_icon", list)
		images := make([]*glfwgo.Image, len(list))
		for i := range list {
			img, err := object[glfwgo.Image](a, i, false, "Image")
			if err != nil {
				return nil, err
			}
			images[i] = img
		}
		return nil, recv.(*glfwgo.Window).SetIcon(images...)
	})

	for name, install := range windowCallbacks {
		m(name, 1, func(w *glfwgo.Window, a args) (Value, error) {
			fn, err := a.callable(0)
			if err != nil {
				return nil, err
			}
			install(w, fn)
			return nil, nil
		})
	}

	c.alias("position", "window_pos")
	c.alias("position=", "window_pos=")
	c.alias("attrib", "window_attrib")
}
