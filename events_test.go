//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// captureLog routes glfwgo diagnostics into the returned slice for the
// rest of the test.
func captureLog(t *testing.T, level LogLevel) *[]string {
	t.Helper()
	var (
		mu   sync.Mutex
		msgs []string
	)
	SetLogLevel(level)
	SetLogCallback(func(l LogLevel, msg string) {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, l.String()+": "+msg)
	})
	t.Cleanup(func() {
		SetLogCallback(nil)
		SetLogLevel(LogInfo)
	})
	return &msgs
}

func TestKeyCallback(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)

	type keyEvent struct {
		w        *Window
		key      Key
		scancode int
		action   Action
		mods     ModifierKey
	}
	var got []keyEvent
	w.SetKeyCallback(func(w *Window, key Key, scancode int, action Action, mods ModifierKey) {
		got = append(got, keyEvent{w, key, scancode, action, mods})
	})

	lib.SendKey(handleOf(w), int(KeyEscape), 9, int(Press), int(ModShift|ModControl))
	lib.SendKey(handleOf(w), int(KeyEscape), 9, int(Release), 0)
	if err := PollEvents(); err != nil {
		t.Fatalf("PollEvents: %v", err)
	}

	want := []keyEvent{
		{w, KeyEscape, 9, Press, ModShift | ModControl},
		{w, KeyEscape, 9, Release, 0},
	}
	if !slices.Equal(got, want) {
		t.Errorf("events = %+v, want %+v", got, want)
	}
}

func TestCallbackReplacement(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)

	var first, second int
	if prev := w.SetCharCallback(func(*Window, rune) { first++ }); prev != nil {
		t.Error("first setter returned a previous callback")
	}
	prev := w.SetCharCallback(func(*Window, rune) { second++ })
	if prev == nil {
		t.Fatal("second setter did not return the previous callback")
	}
	prev(w, 'x')
	if first != 1 {
		t.Errorf("returned callback is not the previous one")
	}

	lib.SendChar(handleOf(w), 'a', 0)
	PollEvents()
	if first != 1 || second != 1 {
		t.Errorf("first = %d, second = %d, want 1 and 1", first, second)
	}

	w.SetCharCallback(nil)
	lib.SendChar(handleOf(w), 'b', 0)
	PollEvents()
	if second != 1 {
		t.Errorf("cleared callback still called")
	}
}

func TestCallbacksArePerWindow(t *testing.T) {
	lib := setup(t)
	a := newWindow(t)
	b := newWindow(t)

	var gotA, gotB []float64
	a.SetScrollCallback(func(_ *Window, _, y float64) { gotA = append(gotA, y) })
	b.SetScrollCallback(func(_ *Window, _, y float64) { gotB = append(gotB, y) })

	lib.SendScroll(handleOf(a), 0, 1)
	lib.SendScroll(handleOf(b), 0, 2)
	lib.SendScroll(handleOf(a), 0, 3)
	PollEvents()

	if !slices.Equal(gotA, []float64{1, 3}) {
		t.Errorf("window a got %v", gotA)
	}
	if !slices.Equal(gotB, []float64{2}) {
		t.Errorf("window b got %v", gotB)
	}
}

func TestWindowEvents(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)
	h := handleOf(w)

	var log []string
	w.SetSizeCallback(func(_ *Window, width, height int) {
		log = append(log, "size")
	})
	w.SetFramebufferSizeCallback(func(_ *Window, width, height int) {
		log = append(log, "framebuffer")
	})
	w.SetPosCallback(func(_ *Window, x, y int) {
		log = append(log, "pos")
	})
	w.SetFocusCallback(func(_ *Window, focused bool) {
		if focused {
			log = append(log, "focus")
		}
	})
	w.SetIconifyCallback(func(_ *Window, iconified bool) {
		if iconified {
			log = append(log, "iconify")
		}
	})
	w.SetRefreshCallback(func(*Window) {
		log = append(log, "refresh")
	})
	w.SetCursorEnterCallback(func(_ *Window, entered bool) {
		if entered {
			log = append(log, "enter")
		}
	})
	w.SetCursorPosCallback(func(_ *Window, x, y float64) {
		log = append(log, "cursor")
	})
	w.SetMouseButtonCallback(func(_ *Window, button MouseButton, action Action, mods ModifierKey) {
		if button == MouseButtonRight && action == Press {
			log = append(log, "button")
		}
	})
	w.SetCharModsCallback(func(_ *Window, char rune, mods ModifierKey) {
		if char == 'é' && mods == ModAlt {
			log = append(log, "charmods")
		}
	})

	w.SetSize(640, 480)
	w.SetPos(5, 5)
	lib.SetFocus(h, true)
	w.Iconify()
	lib.Damage(h)
	lib.SendCursorEnter(h, true)
	lib.MoveCursor(h, 3, 4)
	lib.SendMouseButton(h, int(MouseButtonRight), int(Press), 0)
	lib.SendChar(h, 'é', int(ModAlt))
	if err := PollEvents(); err != nil {
		t.Fatalf("PollEvents: %v", err)
	}

	want := []string{"size", "framebuffer", "pos", "focus", "iconify", "refresh", "enter", "cursor", "button", "charmods"}
	if !slices.Equal(log, want) {
		t.Errorf("events = %v, want %v", log, want)
	}
}

func TestDropCallback(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)

	var got []string
	w.SetDropCallback(func(_ *Window, names []string) {
		got = names
	})
	lib.DropPaths(handleOf(w), "/tmp/a.png", "/tmp/b.png")
	PollEvents()

	if !slices.Equal(got, []string{"/tmp/a.png", "/tmp/b.png"}) {
		t.Errorf("dropped = %v", got)
	}
}

func TestCloseVeto(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)

	var closes int
	w.SetCloseCallback(func(w *Window) {
		closes++
		if !w.ShouldClose() {
			t.Error("close flag not set inside the close callback")
		}
		w.SetShouldClose(false)
	})
	lib.RequestClose(handleOf(w))
	PollEvents()

	if closes != 1 {
		t.Fatalf("close callback ran %d times, want 1", closes)
	}
	if w.ShouldClose() {
		t.Error("veto did not clear the close flag")
	}
}

func TestCallbackMayDestroyWindow(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)

	var keys int
	w.SetKeyCallback(func(w *Window, _ Key, _ int, _ Action, _ ModifierKey) {
		keys++
		if err := w.Destroy(); err != nil {
			t.Errorf("Destroy from callback: %v", err)
		}
	})
	lib.SendKey(handleOf(w), int(KeyQ), 0, int(Press), 0)
	lib.SendKey(handleOf(w), int(KeyQ), 0, int(Release), 0)
	if err := PollEvents(); err != nil {
		t.Fatalf("PollEvents: %v", err)
	}
	if keys != 1 {
		t.Errorf("key callback ran %d times, want 1", keys)
	}
	if !w.IsDestroyed() {
		t.Error("window not destroyed")
	}
}

func TestCallbackPanicPropagates(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)
	msgs := captureLog(t, LogWarning)

	var calls int
	w.SetKeyCallback(func(*Window, Key, int, Action, ModifierKey) {
		calls++
		panic("boom")
	})
	lib.SendKey(handleOf(w), int(KeyA), 0, int(Press), 0)
	lib.SendKey(handleOf(w), int(KeyB), 0, int(Press), 0)

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recovered %v, want boom", r)
			}
		}()
		PollEvents()
		t.Error("PollEvents returned normally")
	}()

	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if !slices.ContainsFunc(*msgs, func(m string) bool { return strings.Contains(m, "dropped 1 events") }) {
		t.Errorf("dropped events not logged: %q", *msgs)
	}
	if topCall() != nil {
		t.Error("call stack not unwound after panic")
	}

	w.SetKeyCallback(nil)
	lib.SendKey(handleOf(w), int(KeyC), 0, int(Press), 0)
	if err := PollEvents(); err != nil {
		t.Errorf("PollEvents after panic: %v", err)
	}
}

func TestNativeErrorReturned(t *testing.T) {
	setup(t)
	w := newWindow(t)

	var reported []*Error
	prev := SetErrorCallback(func(err *Error) {
		reported = append(reported, err)
	})
	t.Cleanup(func() { SetErrorCallback(prev) })

	err := w.SetInputMode(InputMode(0x7777), 0)
	var glfwErr *Error
	if !errors.As(err, &glfwErr) {
		t.Fatalf("SetInputMode = %v, want *Error", err)
	}
	if glfwErr.Code != CodeInvalidEnum || glfwErr.Op != "SetInputMode" {
		t.Errorf("err = %+v", glfwErr)
	}
	if len(reported) != 1 || reported[0] != glfwErr {
		t.Errorf("error callback got %v", reported)
	}
	if !strings.Contains(err.Error(), "SetInputMode") {
		t.Errorf("message %q does not name the operation", err.Error())
	}

	if err := w.SetInputMode(CursorMode, CursorHidden); err != nil {
		t.Errorf("error leaked into the next call: %v", err)
	}
}

func TestUnhandledErrorLogged(t *testing.T) {
	setup(t)
	msgs := captureLog(t, LogError)

	SetTime(-5)
	if len(*msgs) != 1 || !strings.HasPrefix((*msgs)[0], "error: glfw SetTime") {
		t.Errorf("log = %q", *msgs)
	}
}

func TestMonitorCallback(t *testing.T) {
	lib := setup(t)

	type monEvent struct {
		m  *Monitor
		ev PeripheralEvent
	}
	var got []monEvent
	SetMonitorCallback(func(m *Monitor, ev PeripheralEvent) {
		got = append(got, monEvent{m, ev})
	})
	t.Cleanup(func() { SetMonitorCallback(nil) })

	h := lib.ConnectMonitor("External", 2560, 1440, 144)
	PollEvents()
	if len(got) != 1 || got[0].ev != Connected {
		t.Fatalf("events = %v", got)
	}
	m := got[0].m
	if !slices.Contains(Monitors(), m) {
		t.Error("connected monitor is not the one Monitors returns")
	}
	if m.Name() != "External" || !m.Present() {
		t.Errorf("monitor %v not present", m)
	}

	lib.DisconnectMonitor(h)
	PollEvents()
	if len(got) != 2 || got[1].m != m || got[1].ev != Disconnected {
		t.Fatalf("events = %v", got)
	}
	if m.Present() {
		t.Error("disconnected monitor still present")
	}
	if m.Name() != "" {
		t.Errorf("Name = %q after disconnect", m.Name())
	}
	if err := m.SetGamma(1.0); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetGamma on a disconnected monitor = %v, want ErrDestroyed", err)
	}
	if slices.Contains(Monitors(), m) {
		t.Error("disconnected monitor still listed")
	}
}

func TestMonitorDisconnectInvalidatesWrapper(t *testing.T) {
	lib := setup(t)

	var m *Monitor
	SetMonitorCallback(func(mon *Monitor, ev PeripheralEvent) {
		if ev == Connected {
			m = mon
		}
	})
	t.Cleanup(func() { SetMonitorCallback(nil) })

	h := lib.ConnectMonitor("External", 2560, 1440, 144)
	PollEvents()
	if m == nil || monitors.Lookup(uintptr(h)) != m {
		t.Fatal("connected monitor not registered")
	}

	lib.DisconnectMonitor(h)
	PollEvents()
	if _, ok := m.box.get(); ok {
		t.Error("wrapper still valid after the disconnect event")
	}
	if monitors.Lookup(uintptr(h)) != nil {
		t.Error("disconnected monitor still registered")
	}
}

func TestJoystickCallback(t *testing.T) {
	lib := setup(t)

	var got []PeripheralEvent
	var joy *Joystick
	SetJoystickCallback(func(j *Joystick, ev PeripheralEvent) {
		joy = j
		got = append(got, ev)
	})
	t.Cleanup(func() { SetJoystickCallback(nil) })

	lib.ConnectJoystick(native.Joystick1+2, "Pad", 4, 12)
	lib.DisconnectJoystick(native.Joystick1 + 2)
	PollEvents()

	if !slices.Equal(got, []PeripheralEvent{Connected, Disconnected}) {
		t.Errorf("events = %v", got)
	}
	want, _ := JoystickAt(Joystick1 + 2)
	if joy != want {
		t.Error("callback joystick is not the JoystickAt wrapper")
	}
}

func TestGlobalCallbacksSurviveTerminate(t *testing.T) {
	setup(t)
	var calls int
	SetMonitorCallback(func(*Monitor, PeripheralEvent) { calls++ })
	t.Cleanup(func() { SetMonitorCallback(nil) })
	Terminate()

	lib := setup(t)
	lib.ConnectMonitor("Second", 800, 600, 60)
	PollEvents()
	if calls != 1 {
		t.Errorf("monitor callback ran %d times after re-init, want 1", calls)
	}
}
