//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"testing"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

func TestNewCursor(t *testing.T) {
	lib := setup(t)

	img, _ := NewImage(16, 16)
	img.Clear([4]uint8{255, 255, 255, 255})
	c, err := NewCursor(img, 8, 8)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}
	if lib.CursorCount() != 1 {
		t.Errorf("cursor count = %d, want 1", lib.CursorCount())
	}
	if err := c.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := c.Destroy(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("second Destroy = %v, want ErrDestroyed", err)
	}
	if lib.CursorCount() != 0 {
		t.Errorf("cursor count = %d, want 0", lib.CursorCount())
	}

	if _, err := NewCursor(nil, 0, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewCursor(nil) = %v, want ErrInvalidArgument", err)
	}
	empty, _ := NewImage(0, 0)
	if _, err := NewCursor(empty, 0, 0); Code(err) != CodeInvalidValue {
		t.Errorf("NewCursor(empty) = %v, want InvalidValue", err)
	}
}

func TestStandardCursor(t *testing.T) {
	lib := setup(t)

	c, err := NewStandardCursor(CrosshairCursor)
	if err != nil {
		t.Fatalf("NewStandardCursor: %v", err)
	}
	h, _ := c.box.get()
	if got := lib.CursorShape(h); got != native.CrosshairCursor {
		t.Errorf("shape = %#x, want crosshair", got)
	}

	if _, err := NewStandardCursor(StandardCursor(0)); Code(err) != CodeInvalidEnum {
		t.Errorf("NewStandardCursor(0) = %v, want InvalidEnum", err)
	}
}

func TestSetCursor(t *testing.T) {
	lib := setup(t)
	w := newWindow(t)

	c, _ := NewStandardCursor(IBeamCursor)
	if err := w.SetCursor(c); err != nil {
		t.Fatalf("SetCursor: %v", err)
	}
	ch, _ := c.box.get()
	if got := lib.CursorOf(handleOf(w)); got != ch {
		t.Errorf("window cursor = %#x, want %#x", got, ch)
	}

	c.Destroy()
	if got := lib.CursorOf(handleOf(w)); got != 0 {
		t.Errorf("window cursor = %#x after destroy, want default", got)
	}
	if w.cursor != nil {
		t.Error("window still references the destroyed cursor")
	}
	if err := w.SetCursor(c); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetCursor(destroyed) = %v, want ErrDestroyed", err)
	}
	if err := w.SetCursor(nil); err != nil {
		t.Errorf("SetCursor(nil) = %v", err)
	}
}
