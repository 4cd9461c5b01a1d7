//go:build !ios && !android && (amd64 || arm64)

package script

import (
	"time"

	"github.com/obinnaokechukwu/glfwgo"
)

// callbackError carries an error returned by a script callback out of the
// glfwgo event pump, which re-raises callback panics once it is safe to.
type callbackError struct {
	err error
}

// invoke calls a script callback from inside a glfwgo callback.
func invoke(fn Func, args ...Value) {
	if _, err := fn(args...); err != nil {
		panic(callbackError{err})
	}
}

// rescue turns a failed script callback back into an error stored in *err.
// Other panics pass through. It must be deferred directly.
func rescue(err *error) {
	if r := recover(); r != nil {
		cb, ok := r.(callbackError)
		if !ok {
			panic(r)
		}
		*err = cb.err
	}
}

// pump runs an event pump, returning the error of a failed script callback.
func pump(fn func() error) (err error) {
	defer rescue(&err)
	return fn()
}

func monitorList() Value {
	mons := glfwgo.Monitors()
	out := make([]Value, len(mons))
	for i, m := range mons {
		out[i] = m
	}
	return out
}

func setMonitorCallback(a args) (Value, error) {
	if err := a.want(1); err != nil {
		return nil, err
	}
	fn, err := a.callable(0)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		glfwgo.SetMonitorCallback(nil)
		return nil, nil
	}
	glfwgo.SetMonitorCallback(func(m *glfwgo.Monitor, ev glfwgo.PeripheralEvent) {
		invoke(fn, m, int(ev))
	})
	return nil, nil
}

func joystickFor(a args, i int) (*glfwgo.Joystick, error) {
	id, err := a.integer(i)
	if err != nil {
		return nil, err
	}
	return glfwgo.JoystickAt(id)
}

func defineGLFW() {
	c := define("GLFW")

	c.defStatic("init", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GLFW.init", list)
		if err := a.want(0); err != nil {
			return nil, err
		}
		return nil, glfwgo.Init()
	})
	c.defStatic("terminate", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.terminate", list).want(0); err != nil {
			return nil, err
		}
		glfwgo.Terminate()
		return nil, nil
	})
	c.defStatic("version", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.version", list).want(0); err != nil {
			return nil, err
		}
		major, minor, rev := glfwgo.Version()
		return []Value{major, minor, rev}, nil
	})
	c.defStatic("version_string", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.version_string", list).want(0); err != nil {
			return nil, err
		}
		return glfwgo.VersionString(), nil
	})
	c.defStatic("time", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.time", list).want(0); err != nil {
			return nil, err
		}
		return glfwgo.Time(), nil
	})
	c.defStatic("time=", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GLFW.time=", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		t, err := a.number(0)
		if err != nil {
			return nil, err
		}
		return nil, glfwgo.SetTime(t)
	})

	c.defStatic("poll_events", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.poll_events", list).want(0); err != nil {
			return nil, err
		}
		return nil, pump(glfwgo.PollEvents)
	})
	c.defStatic("wait_events", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.wait_events", list).want(0); err != nil {
			return nil, err
		}
		return nil, pump(glfwgo.WaitEvents)
	})
	c.defStatic("wait_events_timeout", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GLFW.wait_events_timeout", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		seconds, err := a.number(0)
		if err != nil {
			return nil, err
		}
		return nil, pump(func() error {
			return glfwgo.WaitEventsTimeout(time.Duration(seconds * float64(time.Second)))
		})
	})
	c.defStatic("post_empty_event", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.post_empty_event", list).want(0); err != nil {
			return nil, err
		}
		return nil, glfwgo.PostEmptyEvent()
	})

	c.defStatic("current_context", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.current_context", list).want(0); err != nil {
			return nil, err
		}
		return ref(glfwgo.CurrentContext()), nil
	})
	c.defStatic("swap_interval=", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GLFW.swap_interval=", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		n, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return nil, glfwgo.SwapInterval(n)
	})
	c.defStatic("extension_supported?", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GLFW.extension_supported?", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		name, err := a.str(0)
		if err != nil {
			return nil, err
		}
		return glfwgo.ExtensionSupported(name), nil
	})
	c.defStatic("proc_address", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GLFW.proc_address", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		name, err := a.str(0)
		if err != nil {
			return nil, err
		}
		return int(glfwgo.ProcAddress(name)), nil
	})

	c.defStatic("default_window_hints", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.default_window_hints", list).want(0); err != nil {
			return nil, err
		}
		return nil, glfwgo.DefaultWindowHints()
	})
	c.defStatic("window_hint", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GLFW.window_hint", list)
		if err := a.want(2); err != nil {
			return nil, err
		}
		hint, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		value, err := a.integer(1)
		if err != nil {
			return nil, err
		}
		return nil, glfwgo.WindowHint(glfwgo.Hint(hint), value)
	})

	c.defStatic("monitors", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.monitors", list).want(0); err != nil {
			return nil, err
		}
		return monitorList(), nil
	})
	c.defStatic("primary_monitor", func(_ Value, list []Value) (Value, error) {
		if err := argsOf("GLFW.primary_monitor", list).want(0); err != nil {
			return nil, err
		}
		return ref(glfwgo.PrimaryMonitor()), nil
	})
	c.defStatic("set_monitor_callback", func(_ Value, list []Value) (Value, error) {
		return setMonitorCallback(argsOf("GLFW.set_monitor_callback", list))
	})
	c.defStatic("set_joystick_callback", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GLFW.set_joystick_callback", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		fn, err := a.callable(0)
		if err != nil {
			return nil, err
		}
		if fn == nil {
			glfwgo.SetJoystickCallback(nil)
			return nil, nil
		}
		glfwgo.SetJoystickCallback(func(j *glfwgo.Joystick, ev glfwgo.PeripheralEvent) {
			invoke(fn, j, int(ev))
		})
		return nil, nil
	})

	// Joystick slot queries, also reachable through Joystick objects.
	joystickQuery := func(name string, fn func(j *glfwgo.Joystick) Value) {
		c.defStatic(name, func(_ Value, list []Value) (Value, error) {
			a := argsOf("GLFW."+name, list)
			if err := a.want(1); err != nil {
				return nil, err
			}
			j, err := joystickFor(a, 0)
			if err != nil {
				return nil, err
			}
			return fn(j), nil
		})
	}
	joystickQuery("joystick_present", func(j *glfwgo.Joystick) Value { return j.PresentValue() })
	joystickQuery("joystick_present?", func(j *glfwgo.Joystick) Value { return j.Present() })
	joystickQuery("joystick_axes", func(j *glfwgo.Joystick) Value { return axesValue(j) })
	joystickQuery("joystick_buttons", func(j *glfwgo.Joystick) Value { return buttonsValue(j) })
	joystickQuery("joystick_name", func(j *glfwgo.Joystick) Value { return j.Name() })
}

func init() {
	defineGLFW()
	defineWindow()
	defineMonitor()
	defineVidMode()
	defineGammaRamp()
	defineJoystick()
	defineCursor()
	defineImage()
}
