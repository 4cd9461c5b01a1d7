//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Cursor is a mouse cursor image that can be set on windows.
type Cursor struct {
	box handleBox
}

func newCursor(op string, create func(l native.Library) native.Handle) (*Cursor, error) {
	l, gen, err := library()
	if err != nil {
		return nil, err
	}
	var h native.Handle
	err = guard(op, func() {
		h = create(l)
	})
	if h == 0 {
		if err == nil {
			err = ErrCreateFailed
		}
		return nil, err
	}
	c := &Cursor{}
	c.box.init(h, owned)
	cursors.Register(uintptr(h), c)
	track(c, &c.box, reapCursor, gen)
	return c, nil
}

// NewCursor creates a cursor from an image. The hotspot is relative to the
// image's upper-left corner.
func NewCursor(img *Image, xhot, yhot int) (*Cursor, error) {
	if img == nil {
		return nil, ErrInvalidArgument
	}
	data := img.data()
	return newCursor("NewCursor", func(l native.Library) native.Handle {
		return l.CreateCursor(data, xhot, yhot)
	})
}

// NewStandardCursor creates a cursor with a platform-provided shape.
func NewStandardCursor(shape StandardCursor) (*Cursor, error) {
	return newCursor("NewStandardCursor", func(l native.Library) native.Handle {
		return l.CreateStandardCursor(int(shape))
	})
}

// Destroy destroys the cursor. Windows using it revert to the default
// arrow. Destroying a cursor twice returns ErrDestroyed.
func (c *Cursor) Destroy() error {
	l, _, err := library()
	if err != nil {
		if _, ok := c.box.get(); !ok {
			return ErrDestroyed
		}
		return err
	}
	h, err := c.box.release()
	if err != nil {
		return err
	}
	cursors.Invalidate(uintptr(h))
	for _, w := range windows.Live() {
		w.dropCursorRef(c)
	}
	return guard("DestroyCursor", func() {
		l.DestroyCursor(h)
	})
}

// IsDestroyed reports whether the cursor has been destroyed, either by
// Destroy or by Terminate.
func (c *Cursor) IsDestroyed() bool {
	_, ok := c.box.get()
	return !ok
}
