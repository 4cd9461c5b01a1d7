//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"testing"

	"github.com/obinnaokechukwu/glfwgo/glfwtest"
)

func TestPrimaryMonitor(t *testing.T) {
	setup(t)

	mons := Monitors()
	if len(mons) != 1 {
		t.Fatalf("Monitors = %v, want one", mons)
	}
	primary := PrimaryMonitor()
	if primary != mons[0] {
		t.Error("PrimaryMonitor is not Monitors()[0]")
	}
	if primary.Name() != "Simulated Monitor" {
		t.Errorf("Name = %q", primary.Name())
	}
	if w, h := primary.PhysicalSize(); w != 527 || h != 296 {
		t.Errorf("PhysicalSize = %dx%d", w, h)
	}
	want := "Simulated Monitor position=(0,0) physical_size=527x296mm"
	if got := primary.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestVideoModes(t *testing.T) {
	setup(t)
	m := PrimaryMonitor()

	modes := m.VideoModes()
	if len(modes) != 2 {
		t.Fatalf("VideoModes = %v", modes)
	}
	cur, ok := m.VideoMode()
	if !ok {
		t.Fatal("VideoMode not available")
	}
	if cur != modes[1] {
		t.Errorf("current mode %v is not the largest mode %v", cur, modes[1])
	}
	if got := cur.String(); got != "1920x1080 r8g8b8 60Hz" {
		t.Errorf("String = %q", got)
	}
}

func TestGamma(t *testing.T) {
	setup(t)
	m := PrimaryMonitor()

	if err := m.SetGamma(1.0); err != nil {
		t.Fatalf("SetGamma: %v", err)
	}
	ramp := m.GammaRamp()
	if ramp == nil || ramp.Size() != glfwtest.RampSize {
		t.Fatalf("GammaRamp = %v", ramp)
	}
	for i, want := range map[int]uint16{0: 0, 128: 32896, 255: 65535} {
		if r, _, _, _ := ramp.Row(i); r != want {
			t.Errorf("row %d = %d, want %d", i, r, want)
		}
	}

	if err := m.SetGamma(0); Code(err) != CodeInvalidValue {
		t.Errorf("SetGamma(0) = %v, want InvalidValue", err)
	}
}

func TestSetGammaRamp(t *testing.T) {
	setup(t)
	m := PrimaryMonitor()

	ramp, _ := NewGammaRamp(4)
	for i := range 4 {
		v := uint16(i * 1000)
		ramp.SetRow(i, v, v/2, v/4)
	}
	if err := m.SetGammaRamp(ramp); err != nil {
		t.Fatalf("SetGammaRamp: %v", err)
	}
	got := m.GammaRamp()
	if got.Size() != 4 {
		t.Fatalf("size = %d, want 4", got.Size())
	}
	if r, g, b, _ := got.Row(3); r != 3000 || g != 1500 || b != 750 {
		t.Errorf("row 3 = %d %d %d", r, g, b)
	}

	bad := &GammaRamp{Red: make([]uint16, 4), Green: make([]uint16, 3), Blue: make([]uint16, 4)}
	if err := m.SetGammaRamp(bad); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("mismatched ramp = %v, want ErrInvalidArgument", err)
	}
	if err := m.SetGammaRamp(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil ramp = %v, want ErrInvalidArgument", err)
	}
}

func TestGammaRampRows(t *testing.T) {
	if _, err := NewGammaRamp(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewGammaRamp(0) = %v, want ErrInvalidArgument", err)
	}
	ramp, _ := NewGammaRamp(2)
	if err := ramp.SetRow(2, 1, 1, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SetRow(2) = %v, want ErrIndexOutOfRange", err)
	}
	if _, _, _, err := ramp.Row(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Row(-1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDisconnectedMonitorQueries(t *testing.T) {
	lib := setup(t)

	h := lib.ConnectMonitor("Projector", 1024, 768, 60)
	PollEvents()
	var m *Monitor
	for _, mon := range Monitors() {
		if mon.Name() == "Projector" {
			m = mon
		}
	}
	if m == nil {
		t.Fatal("projector not listed")
	}
	lib.DisconnectMonitor(h)

	if len(m.VideoModes()) != 0 {
		t.Error("VideoModes of a disconnected monitor")
	}
	if _, ok := m.VideoMode(); ok {
		t.Error("VideoMode of a disconnected monitor")
	}
	if m.GammaRamp() != nil {
		t.Error("GammaRamp of a disconnected monitor")
	}
	if x, y := m.Pos(); x != 0 || y != 0 {
		t.Errorf("Pos = %d,%d", x, y)
	}
	if len(Monitors()) != 1 {
		t.Errorf("Monitors = %v after disconnect", Monitors())
	}
	if m.Present() {
		t.Error("disconnected monitor still present")
	}
}

func TestDisconnectedMonitorSetters(t *testing.T) {
	lib := setup(t)

	h := lib.ConnectMonitor("Projector", 1024, 768, 60)
	m := monitorFor(h)
	if !m.Present() {
		t.Fatal("projector not present")
	}
	lib.DisconnectMonitor(h)

	if err := m.SetGamma(1.0); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetGamma = %v, want ErrDestroyed", err)
	}
	ramp, _ := NewGammaRamp(4)
	if err := m.SetGammaRamp(ramp); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetGammaRamp = %v, want ErrDestroyed", err)
	}
	if monitors.Lookup(uintptr(h)) != nil {
		t.Error("disconnected monitor still registered")
	}

	before := lib.WindowCount()
	w, err := NewWindow(1024, 768, "full screen", m, nil)
	if !errors.Is(err, ErrDestroyed) || w != nil {
		t.Errorf("NewWindow on a disconnected monitor = %v, %v; want ErrDestroyed", w, err)
	}
	if lib.WindowCount() != before {
		t.Error("NewWindow reached the library with a disconnected monitor")
	}
}
