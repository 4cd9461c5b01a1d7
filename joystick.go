//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"fmt"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// Joystick slot limits.
const (
	Joystick1    = native.Joystick1
	JoystickLast = native.JoystickLast
)

// Joystick is one of the sixteen joystick slots. A slot always exists; the
// device in it may come and go, so query Present before trusting Axes or
// Buttons.
type Joystick struct {
	box handleBox
	id  int
}

// JoystickAt returns the joystick in slot id. The same slot always yields
// the same *Joystick while it is reachable.
func JoystickAt(id int) (*Joystick, error) {
	if id < Joystick1 || id > JoystickLast {
		return nil, fmt.Errorf("%w: joystick %d", ErrIndexOutOfRange, id)
	}
	return joysticks.LookupOrCreate(uintptr(id), func() *Joystick {
		j := &Joystick{id: id}
		j.box.init(native.Handle(id), borrowed)
		return j
	}), nil
}

// ID returns the slot number.
func (j *Joystick) ID() int {
	return j.id
}

// Present reports whether a device is connected to the slot.
func (j *Joystick) Present() bool {
	var present bool
	do("JoystickPresent", func(l native.Library) {
		present = l.JoystickPresent(j.id)
	})
	return present
}

// PresentValue is Present as a GLFW boolean.
func (j *Joystick) PresentValue() int {
	return boolValue(j.Present())
}

// Axes returns the axis positions, each between -1 and 1, or nil if no
// device is connected.
func (j *Joystick) Axes() []float32 {
	var axes []float32
	do("JoystickAxes", func(l native.Library) {
		axes = l.JoystickAxes(j.id)
	})
	return axes
}

// Buttons returns the button states, or nil if no device is connected.
func (j *Joystick) Buttons() []Action {
	var raw []byte
	do("JoystickButtons", func(l native.Library) {
		raw = l.JoystickButtons(j.id)
	})
	if raw == nil {
		return nil
	}
	out := make([]Action, len(raw))
	for i, b := range raw {
		out[i] = Action(b)
	}
	return out
}

// Name returns the device name, or "" if no device is connected.
func (j *Joystick) Name() string {
	var name string
	do("JoystickName", func(l native.Library) {
		name = l.JoystickName(j.id)
	})
	return name
}
