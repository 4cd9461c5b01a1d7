//go:build !ios && !android && (amd64 || arm64)

package script

import (
	"github.com/obinnaokechukwu/glfwgo"
)

func defineMonitor() {
	c := define("Monitor")
	c.borrowed = true

	m := func(name string, n int, fn func(mon *glfwgo.Monitor, a args) (Value, error)) {
		c.def(name, func(recv Value, list []Value) (Value, error) {
			a := argsOf("Monitor#"+name, list)
			if err := a.want(n); err != nil {
				return nil, err
			}
			return fn(recv.(*glfwgo.Monitor), a)
		})
	}

	c.defStatic("list", func(_ Value, list []Value) (Value, error) {
		return CallStatic("GLFW", "monitors", list...)
	})
	c.defStatic("primary", func(_ Value, list []Value) (Value, error) {
		return CallStatic("GLFW", "primary_monitor", list...)
	})
	c.defStatic("set_callback", func(_ Value, list []Value) (Value, error) {
		return setMonitorCallback(argsOf("Monitor.set_callback", list))
	})

	m("present?", 0, func(mon *glfwgo.Monitor, _ args) (Value, error) {
		return mon.Present(), nil
	})
	m("position", 0, func(mon *glfwgo.Monitor, _ args) (Value, error) {
		x, y := mon.Pos()
		return []Value{x, y}, nil
	})
	m("physical_size", 0, func(mon *glfwgo.Monitor, _ args) (Value, error) {
		w, h := mon.PhysicalSize()
		return []Value{w, h}, nil
	})
	m("name", 0, func(mon *glfwgo.Monitor, _ args) (Value, error) {
		return mon.Name(), nil
	})
	m("video_modes", 0, func(mon *glfwgo.Monitor, _ args) (Value, error) {
		modes := mon.VideoModes()
		out := make([]Value, len(modes))
		for i, vm := range modes {
			out[i] = vm
		}
		return out, nil
	})
	m("video_mode", 0, func(mon *glfwgo.Monitor, _ args) (Value, error) {
		vm, ok := mon.VideoMode()
		if !ok {
			return nil, nil
		}
		return vm, nil
	})
	m("gamma=", 1, func(mon *glfwgo.Monitor, a args) (Value, error) {
		gamma, err := a.number(0)
		if err != nil {
			return nil, err
		}
		return nil, mon.SetGamma(float32(gamma))
	})
	m("gamma_ramp", 0, func(mon *glfwgo.Monitor, _ args) (Value, error) {
		return ref(mon.GammaRamp()), nil
	})
	m("gamma_ramp=", 1, func(mon *glfwgo.Monitor, a args) (Value, error) {
		ramp, err := object[glfwgo.GammaRamp](a, 0, false, "GammaRamp")
		if err != nil {
			return nil, err
		}
		return nil, mon.SetGammaRamp(ramp)
	})

	c.alias("vid_modes", "video_modes")
	c.alias("vid_mode", "video_mode")
}

func defineVidMode() {
	c := define("VidMode")
	fields := map[string]func(vm glfwgo.VidMode) int{
		"width":        func(vm glfwgo.VidMode) int { return vm.Width },
		"height":       func(vm glfwgo.VidMode) int { return vm.Height },
		"red_bits":     func(vm glfwgo.VidMode) int { return vm.RedBits },
		"green_bits":   func(vm glfwgo.VidMode) int { return vm.GreenBits },
		"blue_bits":    func(vm glfwgo.VidMode) int { return vm.BlueBits },
		"refresh_rate": func(vm glfwgo.VidMode) int { return vm.RefreshRate },
	}
	for name, get := range fields {
		c.def(name, func(recv Value, list []Value) (Value, error) {
			if err := argsOf("VidMode#"+name, list).want(0); err != nil {
				return nil, err
			}
			return get(recv.(glfwgo.VidMode)), nil
		})
	}
}

func defineGammaRamp() {
	c := define("GammaRamp")

	c.defStatic("new", func(_ Value, list []Value) (Value, error) {
		a := argsOf("GammaRamp.new", list)
		if err := a.between(0, 1); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return &glfwgo.GammaRamp{}, nil
		}
		size, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return &glfwgo.GammaRamp{}, nil
		}
		ramp, err := glfwgo.NewGammaRamp(size)
		if err != nil {
			return nil, err
		}
		return ramp, nil
	})

	c.def("size", func(recv Value, list []Value) (Value, error) {
		if err := argsOf("GammaRamp#size", list).want(0); err != nil {
			return nil, err
		}
		return recv.(*glfwgo.GammaRamp).Size(), nil
	})
	c.def("get_row", func(recv Value, list []Value) (Value, error) {
		a := argsOf("GammaRamp#get_row", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		row, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		r, g, b, err := recv.(*glfwgo.GammaRamp).Row(row)
		if err != nil {
			return nil, err
		}
		return []Value{int(r), int(g), int(b)}, nil
	})
	c.def("set_row", func(recv Value, list []Value) (Value, error) {
		a := argsOf("GammaRamp#set_row", list)
		if err := a.want(4); err != nil {
			return nil, err
		}
		var v [4]int
		for i := range v {
			n, err := a.integer(i)
			if err != nil {
				return nil, err
			}
			v[i] = n
		}
		return nil, recv.(*glfwgo.GammaRamp).SetRow(v[0], uint16(v[1]), uint16(v[2]), uint16(v[3]))
	})
	c.alias("[]", "get_row")
}
