//go:build !ios && !android && (amd64 || arm64)

package script

import (
	"github.com/obinnaokechukwu/glfwgo"
)

func axesValue(j *glfwgo.Joystick) Value {
	axes := j.Axes()
	out := make([]Value, len(axes))
	for i, v := range axes {
		out[i] = float64(v)
	}
	return out
}

func buttonsValue(j *glfwgo.Joystick) Value {
	buttons := j.Buttons()
	out := make([]Value, len(buttons))
	for i, b := range buttons {
		out[i] = int(b)
	}
	return out
}

func defineJoystick() {
	c := define("Joystick")
	c.borrowed = true

	c.defStatic("new", func(_ Value, list []Value) (Value, error) {
		a := argsOf("Joystick.new", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		j, err := joystickFor(a, 0)
		if err != nil {
			return nil, err
		}
		return j, nil
	})

	query := func(name string, fn func(j *glfwgo.Joystick) Value) {
		c.def(name, func(recv Value, list []Value) (Value, error) {
			if err := argsOf("Joystick#"+name, list).want(0); err != nil {
				return nil, err
			}
			return fn(recv.(*glfwgo.Joystick)), nil
		})
	}
	query("handle", func(j *glfwgo.Joystick) Value { return j.ID() })
	query("present", func(j *glfwgo.Joystick) Value { return j.PresentValue() })
	query("present?", func(j *glfwgo.Joystick) Value { return j.Present() })
	query("axes", axesValue)
	query("buttons", buttonsValue)
	query("name", func(j *glfwgo.Joystick) Value { return j.Name() })
}

func defineCursor() {
	c := define("Cursor")

	c.defStatic("create", func(_ Value, list []Value) (Value, error) {
		a := argsOf("Cursor.create", list)
		if err := a.want(3); err != nil {
			return nil, err
		}
		img, err := object[glfwgo.Image](a, 0, false, "Image")
		if err != nil {
			return nil, err
		}
		xhot, err := a.integer(1)
		if err != nil {
			return nil, err
		}
		yhot, err := a.integer(2)
		if err != nil {
			return nil, err
		}
		cur, err := glfwgo.NewCursor(img, xhot, yhot)
		if err != nil {
			return nil, err
		}
		return cur, nil
	})
	c.defStatic("create_standard", func(_ Value, list []Value) (Value, error) {
		a := argsOf("Cursor.create_standard", list)
		if err := a.want(1); err != nil {
			return nil, err
		}
		shape, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		cur, err := glfwgo.NewStandardCursor(glfwgo.StandardCursor(shape))
		if err != nil {
			return nil, err
		}
		return cur, nil
	})
	// Cursor.set(window, cursor) is Window#set_cursor.
	c.defStatic("set", func(_ Value, list []Value) (Value, error) {
		a := argsOf("Cursor.set", list)
		if err := a.want(2); err != nil {
			return nil, err
		}
		w, err := object[glfwgo.Window](a, 0, false, "Window")
		if err != nil {
			return nil, err
		}
		return Call(w, "set_cursor", list[1])
	})

	c.def("destroy", func(recv Value, list []Value) (Value, error) {
		if err := argsOf("Cursor#destroy", list).want(0); err != nil {
			return nil, err
		}
		return nil, recv.(*glfwgo.Cursor).Destroy()
	})
	c.def("destroyed?", func(recv Value, list []Value) (Value, error) {
		if err := argsOf("Cursor#destroyed?", list).want(0); err != nil {
			return nil, err
		}
		return recv.(*glfwgo.Cursor).IsDestroyed(), nil
	})
}

func defineImage() {
	c := define("Image")

	m := func(name string, n int, fn func(img *glfwgo.Image, a args) (Value, error)) {
		c.def(name, func(recv Value, list []Value) (Value, error) {
			a := argsOf("Image#"+name, list)
			if err := a.want(n); err != nil {
				return nil, err
			}
			return fn(recv.(*glfwgo.Image), a)
		})
	}

	c.defStatic("new", func(_ Value, list []Value) (Value, error) {
		a := argsOf("Image.new", list)
		if err := a.want(2); err != nil {
			return nil, err
		}
		w, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		h, err := a.integer(1)
		if err != nil {
			return nil, err
		}
		img, err := glfwgo.NewImage(w, h)
		if err != nil {
			return nil, err
		}
		return img, nil
	})

	m("width", 0, func(img *glfwgo.Image, _ args) (Value, error) {
		return img.Width(), nil
	})
	m("height", 0, func(img *glfwgo.Image, _ args) (Value, error) {
		return img.Height(), nil
	})
	m("memsize", 0, func(img *glfwgo.Image, _ args) (Value, error) {
		return img.MemSize(), nil
	})
	m("pixelsize", 0, func(img *glfwgo.Image, _ args) (Value, error) {
		return img.PixelSize(), nil
	})
	m("[]", 2, func(img *glfwgo.Image, a args) (Value, error) {
		x, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		y, err := a.integer(1)
		if err != nil {
			return nil, err
		}
		px := img.At(x, y)
		return []Value{int(px[0]), int(px[1]), int(px[2]), int(px[3])}, nil
	})
	m("[]=", 3, func(img *glfwgo.Image, a args) (Value, error) {
		x, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		y, err := a.integer(1)
		if err != nil {
			return nil, err
		}
		px, err := a.pixel(2)
		if err != nil {
			return nil, err
		}
		img.Set(x, y, px)
		return nil, nil
	})
	m("clear_ary", 1, func(img *glfwgo.Image, a args) (Value, error) {
		px, err := a.pixel(0)
		if err != nil {
			return nil, err
		}
		img.Clear(px)
		return img, nil
	})
	// clear accepts four components or one [r, g, b, a] tuple.
	c.def("clear", func(recv Value, list []Value) (Value, error) {
		if len(list) == 4 {
			list = []Value{list}
		}
		return c.methods["clear_ary"](recv, list)
	})
}
