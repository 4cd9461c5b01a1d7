//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"fmt"
	"slices"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Monitor is a display connected to the system. Monitors are owned by GLFW:
// they appear and disappear as displays are plugged in and out, and there is
// no way to destroy one.
//
// Once a monitor has been disconnected its queries return zero values and
// its setters return ErrDestroyed. Present reports whether it is still
// connected.
type Monitor struct {
	box handleBox
}

// monitorFor returns the wrapper for h, creating it on first sight.
func monitorFor(h native.Handle) *Monitor {
	if h == 0 {
		return nil
	}
	return monitors.LookupOrCreate(uintptr(h), func() *Monitor {
		m := &Monitor{}
		m.box.init(h, borrowed)
		return m
	})
}

// Monitors returns the currently connected monitors, primary first.
func Monitors() []*Monitor {
	var hs []native.Handle
	do("Monitors", func(l native.Library) {
		hs = l.Monitors()
	})
	out := make([]*Monitor, 0, len(hs))
	for _, h := range hs {
		out = append(out, monitorFor(h))
	}
	return out
}

// PrimaryMonitor returns the primary monitor, or nil if no monitor is
// connected.
func PrimaryMonitor() *Monitor {
	var h native.Handle
	do("PrimaryMonitor", func(l native.Library) {
		h = l.PrimaryMonitor()
	})
	return monitorFor(h)
}

// query runs fn only while the monitor is still connected. A disconnected
// monitor's handle points to freed memory inside GLFW, so once the monitor
// is found missing it is marked disconnected for good and ErrDestroyed is
// returned.
func (m *Monitor) query(op string, fn func(l native.Library, h native.Handle)) error {
	h, ok := m.box.get()
	if !ok {
		return ErrDestroyed
	}
	l, _, err := library()
	if err != nil {
		return err
	}
	present := false
	err = guard(op, func() {
		if slices.Contains(l.Monitors(), h) {
			present = true
			fn(l, h)
		}
	})
	if !present {
		m.disconnect()
		return ErrDestroyed
	}
	return err
}

// disconnect invalidates the monitor and drops it from the registry.
func (m *Monitor) disconnect() {
	h, ok := m.box.get()
	if !ok {
		return
	}
	m.box.invalidate()
	if monitors.Lookup(uintptr(h)) == m {
		monitors.Invalidate(uintptr(h))
	}
	logf(LogDebug, "monitor %#x disconnected", h)
}

// Present reports whether the monitor is still connected.
func (m *Monitor) Present() bool {
	var present bool
	m.query("Present", func(native.Library, native.Handle) {
		present = true
	})
	return present
}

// Pos returns the position of the monitor's viewport on the virtual screen.
func (m *Monitor) Pos() (x, y int) {
	m.query("Pos", func(l native.Library, h native.Handle) {
		x, y = l.MonitorPos(h)
	})
	return x, y
}

// PhysicalSize returns the size of the display area in millimetres.
func (m *Monitor) PhysicalSize() (widthMM, heightMM int) {
	m.query("PhysicalSize", func(l native.Library, h native.Handle) {
		widthMM, heightMM = l.MonitorPhysicalSize(h)
	})
	return widthMM, heightMM
}

// Name returns a human-readable name for the monitor.
func (m *Monitor) Name() string {
	var name string
	m.query("Name", func(l native.Library, h native.Handle) {
		name = l.MonitorName(h)
	})
	return name
}

// VideoModes returns the supported video modes, sorted ascending.
func (m *Monitor) VideoModes() []VidMode {
	var modes []native.VidMode
	m.query("VideoModes", func(l native.Library, h native.Handle) {
		modes = l.VideoModes(h)
	})
	out := make([]VidMode, len(modes))
	for i, vm := range modes {
		out[i] = vidModeFrom(vm)
	}
	return out
}

// VideoMode returns the current video mode. ok is false if the monitor is
// disconnected.
func (m *Monitor) VideoMode() (mode VidMode, ok bool) {
	m.query("VideoMode", func(l native.Library, h native.Handle) {
		var vm native.VidMode
		if vm, ok = l.VideoMode(h); ok {
			mode = vidModeFrom(vm)
		}
	})
	return mode, ok
}

// SetGamma generates a gamma ramp from an exponent and applies it. It
// returns ErrDestroyed if the monitor has been disconnected.
func (m *Monitor) SetGamma(gamma float32) error {
	return m.query("SetGamma", func(l native.Library, h native.Handle) {
		l.SetGamma(h, gamma)
	})
}

// GammaRamp returns a copy of the current gamma ramp, or nil if the
// monitor is disconnected or has no ramp.
func (m *Monitor) GammaRamp() *GammaRamp {
	var ramp *GammaRamp
	m.query("GammaRamp", func(l native.Library, h native.Handle) {
		if r, ok := l.GammaRamp(h); ok {
			ramp = &GammaRamp{Red: r.Red, Green: r.Green, Blue: r.Blue}
		}
	})
	return ramp
}

// SetGammaRamp applies a gamma ramp. It returns ErrDestroyed if the monitor
// has been disconnected.
func (m *Monitor) SetGammaRamp(ramp *GammaRamp) error {
	if ramp == nil {
		return ErrInvalidArgument
	}
	if len(ramp.Green) != len(ramp.Red) || len(ramp.Blue) != len(ramp.Red) {
		return fmt.Errorf("%w: gamma ramp channels differ in length", ErrInvalidArgument)
	}
	r := native.GammaRamp{Red: ramp.Red, Green: ramp.Green, Blue: ramp.Blue}
	return m.query("SetGammaRamp", func(l native.Library, h native.Handle) {
		l.SetGammaRamp(h, r)
	})
}

// String returns the monitor name, position and physical size.
func (m *Monitor) String() string {
	x, y := m.Pos()
	w, h := m.PhysicalSize()
	return fmt.Sprintf("%s position=(%d,%d) physical_size=%dx%dmm", m.Name(), x, y, w, h)
}
