//go:build !ios && !android && (amd64 || arm64)

package glfwtest

import (
	"testing"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

type recorder struct {
	events []native.Event
}

func (r *recorder) handle(ev native.Event) {
	r.events = append(r.events, ev)
}

func newInitialized(t *testing.T) (*Library, *recorder) {
	t.Helper()
	lib := New()
	rec := &recorder{}
	lib.SetEventHandler(rec.handle)
	if !lib.Init() {
		t.Fatal("Init failed")
	}
	return lib, rec
}

func TestHandleReuse(t *testing.T) {
	lib, _ := newInitialized(t)

	a := lib.CreateWindow(640, 480, "a", 0, 0)
	if a == 0 {
		t.Fatal("CreateWindow returned NULL")
	}
	lib.DestroyWindow(a)

	b := lib.CreateWindow(320, 240, "b", 0, 0)
	if b != a {
		t.Errorf("freed handle not reused: got %#x, want %#x", b, a)
	}
	if got := lib.WindowTitle(b); got != "b" {
		t.Errorf("WindowTitle = %q, want %q", got, "b")
	}
}

func TestCreateWindowErrors(t *testing.T) {
	lib := New()
	rec := &recorder{}
	lib.SetEventHandler(rec.handle)

	if h := lib.CreateWindow(640, 480, "x", 0, 0); h != 0 {
		t.Fatal("CreateWindow succeeded before Init")
	}
	if len(rec.events) != 1 || rec.events[0].Ints[0] != native.NotInitialized {
		t.Fatalf("events = %+v, want one NotInitialized error", rec.events)
	}

	lib.Init()
	rec.events = nil
	lib.FailNext(native.APIUnavailable, "no GL")
	if h := lib.CreateWindow(640, 480, "x", 0, 0); h != 0 {
		t.Fatal("CreateWindow succeeded despite FailNext")
	}
	if len(rec.events) != 1 || rec.events[0].Text != "no GL" {
		t.Fatalf("events = %+v, want injected failure", rec.events)
	}
	if h := lib.CreateWindow(640, 480, "x", 0, 0); h == 0 {
		t.Fatal("FailNext affected more than one call")
	}
}

func TestEventsRequireEnabledCallback(t *testing.T) {
	lib, rec := newInitialized(t)
	w := lib.CreateWindow(640, 480, "w", 0, 0)

	lib.SendKey(w, 65, 38, native.Press, 0)
	lib.PollEvents()
	if len(rec.events) != 0 {
		t.Fatalf("delivered %d events with no callback enabled", len(rec.events))
	}
	if lib.Key(w, 65) != native.Press {
		t.Error("key state not updated")
	}

	lib.EnableWindowEvent(w, native.EventKey, true)
	lib.SendKey(w, 65, 38, native.Release, 0)
	if rec.events != nil {
		t.Fatal("event delivered before pump")
	}
	lib.PollEvents()
	if len(rec.events) != 1 {
		t.Fatalf("delivered %d events, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Kind != native.EventKey || ev.Window != w || ev.Ints != [4]int{65, 38, native.Release, 0} {
		t.Errorf("event = %+v", ev)
	}
}

func TestReentrantHandler(t *testing.T) {
	lib, _ := newInitialized(t)
	w := lib.CreateWindow(640, 480, "w", 0, 0)
	lib.EnableWindowEvent(w, native.EventWindowClose, true)

	var sawClose int
	lib.SetEventHandler(func(ev native.Event) {
		sawClose = lib.WindowShouldClose(ev.Window)
		lib.SetWindowShouldClose(ev.Window, native.False)
	})
	lib.RequestClose(w)
	lib.PollEvents()

	if sawClose != native.True {
		t.Error("close flag not set before callback")
	}
	if lib.WindowShouldClose(w) != native.False {
		t.Error("callback could not veto close")
	}
}

func TestMonitorHotplug(t *testing.T) {
	lib, rec := newInitialized(t)
	primary := lib.PrimaryMonitor()
	if primary == 0 {
		t.Fatal("no primary monitor")
	}
	if name := lib.MonitorName(primary); name != "Simulated Monitor" {
		t.Errorf("MonitorName = %q", name)
	}

	lib.EnableMonitorEvents(true)
	m := lib.ConnectMonitor("Second", 2560, 1440, 144)
	if got := len(lib.Monitors()); got != 2 {
		t.Fatalf("len(Monitors) = %d, want 2", got)
	}
	lib.DisconnectMonitor(m)
	lib.PollEvents()

	if len(rec.events) != 2 {
		t.Fatalf("got %d monitor events, want 2", len(rec.events))
	}
	if rec.events[0].Ints[0] != native.Connected || rec.events[1].Ints[0] != native.Disconnected {
		t.Errorf("events = %+v", rec.events)
	}
	if rec.events[0].Monitor != m {
		t.Errorf("event monitor = %#x, want %#x", rec.events[0].Monitor, m)
	}
}

func TestSetGamma(t *testing.T) {
	lib, rec := newInitialized(t)
	mon := lib.PrimaryMonitor()

	lib.SetGamma(mon, 1.0)
	ramp, ok := lib.GammaRamp(mon)
	if !ok || len(ramp.Red) != RampSize {
		t.Fatalf("GammaRamp = %v, %v", len(ramp.Red), ok)
	}
	if ramp.Red[0] != 0 || ramp.Red[RampSize-1] != 65535 || ramp.Green[128] != 32896 {
		t.Errorf("unexpected linear ramp: %d %d %d", ramp.Red[0], ramp.Red[RampSize-1], ramp.Green[128])
	}

	lib.SetGamma(mon, 0)
	if len(rec.events) != 1 || rec.events[0].Ints[0] != native.InvalidValue {
		t.Errorf("events = %+v, want InvalidValue", rec.events)
	}
}

func TestJoysticks(t *testing.T) {
	lib, rec := newInitialized(t)
	lib.EnableJoystickEvents(true)

	if lib.JoystickPresent(3) {
		t.Fatal("empty slot reported present")
	}
	lib.ConnectJoystick(3, "Pad", 2, 4)
	lib.SetJoystickState(3, []float32{0.5, -1}, []byte{1, 0, 1, 0, 1})
	if !lib.JoystickPresent(3) || lib.JoystickName(3) != "Pad" {
		t.Fatal("joystick not connected")
	}
	if axes := lib.JoystickAxes(3); len(axes) != 2 || axes[0] != 0.5 {
		t.Errorf("JoystickAxes = %v", axes)
	}
	if buttons := lib.JoystickButtons(3); len(buttons) != 4 {
		t.Errorf("JoystickButtons = %v", buttons)
	}

	lib.PollEvents()
	if len(rec.events) != 1 || rec.events[0].Ints != [4]int{3, native.Connected} {
		t.Errorf("events = %+v", rec.events)
	}

	rec.events = nil
	lib.JoystickPresent(16)
	if len(rec.events) != 1 || rec.events[0].Ints[0] != native.InvalidEnum {
		t.Errorf("events = %+v, want InvalidEnum", rec.events)
	}
}

func TestDestroyCursorResetsWindows(t *testing.T) {
	lib, _ := newInitialized(t)
	w := lib.CreateWindow(640, 480, "w", 0, 0)
	c := lib.CreateStandardCursor(native.HandCursor)
	lib.SetCursor(w, c)
	if lib.CursorOf(w) != c {
		t.Fatal("cursor not set")
	}
	lib.DestroyCursor(c)
	if lib.CursorOf(w) != 0 {
		t.Error("window still references destroyed cursor")
	}
	if lib.CursorCount() != 0 {
		t.Errorf("CursorCount = %d, want 0", lib.CursorCount())
	}
}

func TestTerminate(t *testing.T) {
	lib, _ := newInitialized(t)
	a := lib.CreateWindow(640, 480, "a", 0, 0)
	lib.MakeContextCurrent(a)
	lib.Terminate()

	if lib.WindowCount() != 0 || lib.CurrentContext() != 0 {
		t.Error("Terminate left windows behind")
	}
	if lib.DestroyCount(a) != 1 {
		t.Errorf("DestroyCount = %d, want 1", lib.DestroyCount(a))
	}
	if lib.Initialized() {
		t.Error("still initialized")
	}
}
