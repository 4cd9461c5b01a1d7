//go:build !ios && !android && (amd64 || arm64)

package glfwtest

import (
	"math"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Gamma ramp size of simulated monitors.
const RampSize = 256

// Cursors

func (l *Library) CreateCursor(img native.ImageData, xhot, yhot int) native.Handle {
	if ev := l.takeFailure(); ev != nil {
		l.fail(ev.Ints[0], ev.Text)
		return 0
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Pixels) < int(4*img.Width*img.Height) {
		l.fail(native.InvalidValue, "Invalid image dimensions for cursor")
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.alloc()
	l.cursors[h] = &cursor{width: img.Width, height: img.Height}
	return h
}

func (l *Library) CreateStandardCursor(shape int) native.Handle {
	if shape < native.ArrowCursor || shape > native.VResizeCursor {
		l.fail(native.InvalidEnum, "Invalid standard cursor")
		return 0
	}
	if ev := l.takeFailure(); ev != nil {
		l.fail(ev.Ints[0], ev.Text)
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.alloc()
	l.cursors[h] = &cursor{shape: shape}
	return h
}

// DestroyCursor destroys a cursor and resets every window using it to the
// default arrow.
func (l *Library) DestroyCursor(h native.Handle) {
	if h == 0 {
		return
	}
	l.mu.Lock()
	l.destroys[h]++
	if _, ok := l.cursors[h]; !ok {
		l.mu.Unlock()
		l.fail(native.InvalidValue, "Invalid cursor handle")
		return
	}
	for _, w := range l.windows {
		if w.cursor == h {
			w.cursor = 0
		}
	}
	delete(l.cursors, h)
	l.release(h)
	l.mu.Unlock()
}

// CursorShape returns the standard shape of a cursor, or zero for custom
// cursors and unknown handles.
func (l *Library) CursorShape(h native.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.cursors[h]; ok {
		return c.shape
	}
	return 0
}

// CursorCount returns the number of live cursors.
func (l *Library) CursorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cursors)
}

// Monitors

func linearRamp(n int) native.GammaRamp {
	ramp := native.GammaRamp{
		Red:   make([]uint16, n),
		Green: make([]uint16, n),
		Blue:  make([]uint16, n),
	}
	for i := range n {
		v := uint16(i * 65535 / max(n-1, 1))
		ramp.Red[i], ramp.Green[i], ramp.Blue[i] = v, v, v
	}
	return ramp
}

func (l *Library) connectMonitorLocked(name string, x, y, widthMM, heightMM int, modes []native.VidMode) native.Handle {
	m := &monitor{
		handle:   l.alloc(),
		name:     name,
		x:        x,
		y:        y,
		widthMM:  widthMM,
		heightMM: heightMM,
		modes:    modes,
		ramp:     linearRamp(RampSize),
	}
	if len(modes) > 0 {
		m.current = modes[len(modes)-1]
	}
	l.monitors = append(l.monitors, m)
	return m.handle
}

// ConnectMonitor attaches a monitor with a single video mode and queues a
// connection event. It returns the new monitor's handle.
func (l *Library) ConnectMonitor(name string, width, height, refresh int) native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.connectMonitorLocked(name, 0, 0, width*254/960, height*254/960, []native.VidMode{
		{Width: int32(width), Height: int32(height), RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: int32(refresh)},
	})
	l.enqueue(native.Event{Kind: native.EventMonitor, Monitor: h, Ints: [4]int{native.Connected}})
	return h
}

// DisconnectMonitor detaches a monitor and queues a disconnection event.
// Full screen windows on it become windowed. Monitor handles are never
// reused.
func (l *Library) DisconnectMonitor(h native.Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, m := range l.monitors {
		if m.handle != h {
			continue
		}
		l.monitors = append(l.monitors[:i], l.monitors[i+1:]...)
		for _, w := range l.windows {
			if w.monitor == h {
				w.monitor = 0
			}
		}
		l.enqueue(native.Event{Kind: native.EventMonitor, Monitor: h, Ints: [4]int{native.Disconnected}})
		return true
	}
	return false
}

func (l *Library) findMonitor(h native.Handle) *monitor {
	for _, m := range l.monitors {
		if m.handle == h {
			return m
		}
	}
	return nil
}

// lookupMonitor follows the same locking contract as lookup.
func (l *Library) lookupMonitor(h native.Handle) (*monitor, bool) {
	l.mu.Lock()
	m := l.findMonitor(h)
	if m == nil {
		l.mu.Unlock()
		l.fail(native.InvalidValue, "Invalid monitor handle")
		return nil, false
	}
	return m, true
}

func (l *Library) Monitors() []native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]native.Handle, len(l.monitors))
	for i, m := range l.monitors {
		out[i] = m.handle
	}
	return out
}

func (l *Library) PrimaryMonitor() native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.monitors) == 0 {
		return 0
	}
	return l.monitors[0].handle
}

func (l *Library) MonitorPos(h native.Handle) (int, int) {
	m, ok := l.lookupMonitor(h)
	if !ok {
		return 0, 0
	}
	defer l.mu.Unlock()
	return m.x, m.y
}

func (l *Library) MonitorPhysicalSize(h native.Handle) (int, int) {
	m, ok := l.lookupMonitor(h)
	if !ok {
		return 0, 0
	}
	defer l.mu.Unlock()
	return m.widthMM, m.heightMM
}

func (l *Library) MonitorName(h native.Handle) string {
	m, ok := l.lookupMonitor(h)
	if !ok {
		return ""
	}
	defer l.mu.Unlock()
	return m.name
}

func (l *Library) VideoModes(h native.Handle) []native.VidMode {
	m, ok := l.lookupMonitor(h)
	if !ok {
		return nil
	}
	defer l.mu.Unlock()
	return append([]native.VidMode(nil), m.modes...)
}

func (l *Library) VideoMode(h native.Handle) (native.VidMode, bool) {
	m, ok := l.lookupMonitor(h)
	if !ok {
		return native.VidMode{}, false
	}
	defer l.mu.Unlock()
	return m.current, true
}

// SetGamma builds a ramp with the same curve glfwSetGamma uses.
func (l *Library) SetGamma(h native.Handle, gamma float32) {
	if gamma <= 0 || math.IsNaN(float64(gamma)) || math.IsInf(float64(gamma), 0) {
		l.fail(native.InvalidValue, "Invalid gamma value")
		return
	}
	ramp := native.GammaRamp{
		Red:   make([]uint16, RampSize),
		Green: make([]uint16, RampSize),
		Blue:  make([]uint16, RampSize),
	}
	for i := range RampSize {
		v := math.Pow(float64(i)/float64(RampSize-1), 1/float64(gamma))*65535 + 0.5
		v = math.Min(v, 65535)
		ramp.Red[i], ramp.Green[i], ramp.Blue[i] = uint16(v), uint16(v), uint16(v)
	}
	l.SetGammaRamp(h, ramp)
}

func (l *Library) GammaRamp(h native.Handle) (native.GammaRamp, bool) {
	m, ok := l.lookupMonitor(h)
	if !ok {
		return native.GammaRamp{}, false
	}
	defer l.mu.Unlock()
	return native.GammaRamp{
		Red:   append([]uint16(nil), m.ramp.Red...),
		Green: append([]uint16(nil), m.ramp.Green...),
		Blue:  append([]uint16(nil), m.ramp.Blue...),
	}, true
}

func (l *Library) SetGammaRamp(h native.Handle, ramp native.GammaRamp) {
	n := len(ramp.Red)
	if n == 0 || len(ramp.Green) != n || len(ramp.Blue) != n {
		l.fail(native.InvalidValue, "Invalid gamma ramp size")
		return
	}
	m, ok := l.lookupMonitor(h)
	if !ok {
		return
	}
	defer l.mu.Unlock()
	m.ramp = native.GammaRamp{
		Red:   append([]uint16(nil), ramp.Red...),
		Green: append([]uint16(nil), ramp.Green...),
		Blue:  append([]uint16(nil), ramp.Blue...),
	}
}

// Joysticks

func validJoystick(jid int) bool {
	return jid >= native.Joystick1 && jid <= native.JoystickLast
}

// lookupJoystick returns the joystick in slot jid, or nil when the slot is
// empty. l.mu is held on return when ok is true.
func (l *Library) lookupJoystick(jid int) (*joystick, bool) {
	if !validJoystick(jid) {
		l.fail(native.InvalidEnum, "Invalid joystick ID")
		return nil, false
	}
	l.mu.Lock()
	return l.joysticks[jid], true
}

// ConnectJoystick plugs a device into slot jid and queues a connection
// event.
func (l *Library) ConnectJoystick(jid int, name string, axes, buttons int) {
	if !validJoystick(jid) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.joysticks[jid] = &joystick{
		name:    name,
		axes:    make([]float32, axes),
		buttons: make([]byte, buttons),
	}
	l.enqueue(native.Event{Kind: native.EventJoystick, Ints: [4]int{jid, native.Connected}})
}

// DisconnectJoystick empties slot jid and queues a disconnection event.
func (l *Library) DisconnectJoystick(jid int) {
	if !validJoystick(jid) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.joysticks[jid] == nil {
		return
	}
	l.joysticks[jid] = nil
	l.enqueue(native.Event{Kind: native.EventJoystick, Ints: [4]int{jid, native.Disconnected}})
}

// SetJoystickState replaces the axis and button state of a connected
// joystick. Extra values are ignored.
func (l *Library) SetJoystickState(jid int, axes []float32, buttons []byte) {
	if !validJoystick(jid) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	j := l.joysticks[jid]
	if j == nil {
		return
	}
	copy(j.axes, axes)
	copy(j.buttons, buttons)
}

func (l *Library) JoystickPresent(jid int) bool {
	j, ok := l.lookupJoystick(jid)
	if !ok {
		return false
	}
	defer l.mu.Unlock()
	return j != nil
}

func (l *Library) JoystickAxes(jid int) []float32 {
	j, ok := l.lookupJoystick(jid)
	if !ok {
		return nil
	}
	defer l.mu.Unlock()
	if j == nil {
		return nil
	}
	return append([]float32(nil), j.axes...)
}

func (l *Library) JoystickButtons(jid int) []byte {
	j, ok := l.lookupJoystick(jid)
	if !ok {
		return nil
	}
	defer l.mu.Unlock()
	if j == nil {
		return nil
	}
	return append([]byte(nil), j.buttons...)
}

func (l *Library) JoystickName(jid int) string {
	j, ok := l.lookupJoystick(jid)
	if !ok {
		return ""
	}
	defer l.mu.Unlock()
	if j == nil {
		return ""
	}
	return j.name
}
