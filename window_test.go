//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"reflect"
	"testing"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

func TestCurrentContextIdentity(t *testing.T) {
	setup(t)

	w := newWindow(t)
	if err := w.MakeCurrent(); err != nil {
		t.Fatalf("MakeCurrent: %v", err)
	}
	if got := CurrentContext(); got != w {
		t.Fatalf("CurrentContext = %p, want %p", got, w)
	}
	if got := CurrentContext(); got != w {
		t.Fatalf("second CurrentContext = %p, want %p", got, w)
	}
}

func TestDestroyTwice(t *testing.T) {
	lib := setup(t)

	w := newWindow(t)
	h := handleOf(w)
	if err := w.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if !w.IsDestroyed() {
		t.Error("IsDestroyed = false after Destroy")
	}
	if err := w.Destroy(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("second Destroy = %v, want ErrDestroyed", err)
	}
	if n := lib.DestroyCount(h); n != 1 {
		t.Errorf("native destroy called %d times, want 1", n)
	}
}

func TestDestroyedWindowNotResurrected(t *testing.T) {
	lib := setup(t)

	a := newWindow(t)
	stale := handleOf(a)
	a.MakeCurrent()
	if err := a.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if CurrentContext() != nil {
		t.Error("destroyed window is still the current context")
	}

	// The simulated library hands the freed pointer value straight back.
	b := newWindow(t)
	if handleOf(b) != stale {
		t.Fatalf("handle not reused: %#x vs %#x", handleOf(b), stale)
	}
	b.MakeCurrent()
	if got := CurrentContext(); got != b {
		t.Errorf("CurrentContext = %p, want new window %p", got, b)
	}

	// Operations on the old wrapper must not reach the new window.
	if err := a.SetTitle("stale"); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetTitle on destroyed window = %v, want ErrDestroyed", err)
	}
	if got := lib.WindowTitle(stale); got != t.Name() {
		t.Errorf("title = %q, want %q", got, t.Name())
	}
}

func TestDestroyedWindowQueries(t *testing.T) {
	setup(t)

	w := newWindow(t)
	w.Destroy()

	if width, height := w.Size(); width != 0 || height != 0 {
		t.Errorf("Size = %dx%d, want 0x0", width, height)
	}
	if w.ShouldClose() {
		t.Error("ShouldClose = true")
	}
	if w.Clipboard() != "" {
		t.Error("Clipboard not empty")
	}
	for name, err := range map[string]error{
		"SetSize":     w.SetSize(10, 10),
		"SetPos":      w.SetPos(1, 1),
		"SwapBuffers": w.SwapBuffers(),
		"MakeCurrent": w.MakeCurrent(),
		"Show":        w.Show(),
	} {
		if !errors.Is(err, ErrDestroyed) {
			t.Errorf("%s = %v, want ErrDestroyed", name, err)
		}
	}
	if prev := w.SetKeyCallback(func(*Window, Key, int, Action, ModifierKey) {}); prev != nil {
		t.Error("callback setter on destroyed window returned a previous callback")
	}
}

func TestShouldCloseNormalization(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		set  func(w *Window) error
		want int
	}{
		{"true", func(w *Window) error { return w.SetShouldClose(true) }, True},
		{"false", func(w *Window) error { return w.SetShouldClose(false) }, False},
		{"raw true", func(w *Window) error { return w.SetShouldCloseValue(True) }, True},
		{"raw false", func(w *Window) error { return w.SetShouldCloseValue(False) }, False},
	}

	w := newWindow(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.set(w); err != nil {
				t.Fatalf("set: %v", err)
			}
			if got := w.ShouldCloseValue(); got != tt.want {
				t.Errorf("ShouldCloseValue = %d, want %d", got, tt.want)
			}
			if got := w.ShouldClose(); got != (tt.want == True) {
				t.Errorf("ShouldClose = %v", got)
			}
		})
	}
}

func TestWindowGeometry(t *testing.T) {
	setup(t)
	w := newWindow(t)

	if width, height := w.Size(); width != 320 || height != 240 {
		t.Errorf("Size = %dx%d, want 320x240", width, height)
	}
	if err := w.SetSize(800, 600); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if width, height := w.FramebufferSize(); width != 800 || height != 600 {
		t.Errorf("FramebufferSize = %dx%d, want 800x600", width, height)
	}
	if err := w.SetPos(40, 50); err != nil {
		t.Fatalf("SetPos: %v", err)
	}
	if x, y := w.Pos(); x != 40 || y != 50 {
		t.Errorf("Pos = %d,%d", x, y)
	}
	if err := w.SetCursorPos(1.5, 2.5); err != nil {
		t.Fatalf("SetCursorPos: %v", err)
	}
	if x, y := w.CursorPos(); x != 1.5 || y != 2.5 {
		t.Errorf("CursorPos = %v,%v", x, y)
	}
	if _, top, _, _ := w.FrameSize(); top == 0 {
		t.Error("decorated window has no title bar")
	}
	if w.Monitor() != nil {
		t.Error("windowed window reports a monitor")
	}

	if err := w.SetSize(0, 10); Code(err) != CodeInvalidValue {
		t.Errorf("SetSize(0, 10) = %v, want InvalidValue", err)
	}
}

func TestWindowVisibility(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)
	h := handleOf(w)

	w.Hide()
	if lib.Visible(h) || w.Attrib(Visible) != False {
		t.Error("window visible after Hide")
	}
	w.Show()
	if !lib.Visible(h) {
		t.Error("window hidden after Show")
	}
	w.Iconify()
	if w.Attrib(Iconified) != True {
		t.Error("not iconified")
	}
	w.Restore()
	if w.Attrib(Iconified) != False {
		t.Error("still iconified")
	}
}

func TestFullScreenWindow(t *testing.T) {
	setup(t)

	mon := PrimaryMonitor()
	w, err := NewWindow(1920, 1080, "full", mon, nil)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if got := w.Monitor(); got != mon {
		t.Errorf("Monitor = %p, want primary %p", got, mon)
	}
}

func TestSharedContext(t *testing.T) {
	setup(t)

	a := newWindow(t)
	if _, err := NewWindow(10, 10, "shared", nil, a); err != nil {
		t.Fatalf("NewWindow with share: %v", err)
	}
	a.Destroy()
	if _, err := NewWindow(10, 10, "shared", nil, a); !errors.Is(err, ErrDestroyed) {
		t.Errorf("share with destroyed window = %v, want ErrDestroyed", err)
	}
}

func TestNewWindowFailure(t *testing.T) {
	lib := setup(t)

	lib.FailNext(CodeAPIUnavailable, "no OpenGL")
	w, err := NewWindow(320, 240, "x", nil, nil)
	if w != nil {
		t.Fatal("NewWindow returned a window")
	}
	var glfwErr *Error
	if !errors.As(err, &glfwErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if glfwErr.Code != CodeAPIUnavailable || glfwErr.Description != "no OpenGL" || glfwErr.Op != "NewWindow" {
		t.Errorf("err = %+v", glfwErr)
	}
}

func TestInputMode(t *testing.T) {
	setup(t)
	w := newWindow(t)

	if got := w.InputMode(CursorMode); got != CursorNormal {
		t.Errorf("default cursor mode = %#x, want CursorNormal", got)
	}
	if err := w.SetInputMode(CursorMode, CursorDisabled); err != nil {
		t.Fatalf("SetInputMode: %v", err)
	}
	if got := w.InputMode(CursorMode); got != CursorDisabled {
		t.Errorf("cursor mode = %#x, want CursorDisabled", got)
	}
	if err := w.SetInputMode(StickyKeysMode, True); err != nil {
		t.Fatalf("SetInputMode: %v", err)
	}
	if got := w.InputMode(StickyKeysMode); got != True {
		t.Errorf("sticky keys = %d, want True", got)
	}

	err := w.SetInputMode(InputMode(0x1234), 1)
	if Code(err) != CodeInvalidEnum {
		t.Errorf("SetInputMode(bad) = %v, want InvalidEnum", err)
	}
}

func TestKeyAndMouseState(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)

	lib.SendKey(handleOf(w), int(KeyA), 38, int(Press), 0)
	lib.SendMouseButton(handleOf(w), int(MouseButtonLeft), int(Press), 0)
	if got := w.Key(KeyA); got != Press {
		t.Errorf("Key(A) = %v, want press", got)
	}
	if got := w.Key(KeyB); got != Release {
		t.Errorf("Key(B) = %v, want release", got)
	}
	if got := w.MouseButton(MouseButtonLeft); got != Press {
		t.Errorf("MouseButton(left) = %v, want press", got)
	}
}

func TestClipboard(t *testing.T) {
	setup(t)
	a := newWindow(t)
	b := newWindow(t)

	if err := a.SetClipboard("hello"); err != nil {
		t.Fatalf("SetClipboard: %v", err)
	}
	if got := b.Clipboard(); got != "hello" {
		t.Errorf("Clipboard = %q, want %q", got, "hello")
	}
}

func TestSetIcon(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)

	small, _ := NewImage(16, 16)
	large, _ := NewImage(32, 32)
	if err := w.SetIcon(small, large); err != nil {
		t.Fatalf("SetIcon: %v", err)
	}
	if got := lib.IconCount(handleOf(w)); got != 2 {
		t.Errorf("icons = %d, want 2", got)
	}
	if err := w.SetIcon(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetIcon(nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestBorrowedHaveNoDestroy(t *testing.T) {
	for _, v := range []any{&Monitor{}, &Joystick{}} {
		if _, ok := reflect.TypeOf(v).MethodByName("Destroy"); ok {
			t.Errorf("%T has a Destroy method", v)
		}
	}
	for _, v := range []any{&Window{}, &Cursor{}} {
		if _, ok := reflect.TypeOf(v).MethodByName("Destroy"); !ok {
			t.Errorf("%T has no Destroy method", v)
		}
	}
}

func TestHandleBoxRelease(t *testing.T) {
	var b handleBox
	b.init(native.Handle(0x40), borrowed)
	if _, err := b.release(); !errors.Is(err, ErrBorrowed) {
		t.Errorf("release borrowed = %v, want ErrBorrowed", err)
	}
	if _, ok := b.get(); !ok {
		t.Error("failed release changed a borrowed box")
	}

	var o handleBox
	o.init(native.Handle(0x80), owned)
	if h, err := o.release(); err != nil || h != 0x80 {
		t.Fatalf("release = %#x, %v", h, err)
	}
	if _, err := o.release(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("second release = %v, want ErrDestroyed", err)
	}
}
