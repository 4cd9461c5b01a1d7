//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"fmt"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// VidMode describes a monitor video mode. It is a plain value copied out of
// GLFW and stays valid after the monitor is gone.
type VidMode struct {
	Width       int // Width in screen coordinates
	Height      int // Height in screen coordinates
	RedBits     int // Bit depth of the red channel
	GreenBits   int // Bit depth of the green channel
	BlueBits    int // Bit depth of the blue channel
	RefreshRate int // Refresh rate in Hz
}

func vidModeFrom(vm native.VidMode) VidMode {
	return VidMode{
		Width:       int(vm.Width),
		Height:      int(vm.Height),
		RedBits:     int(vm.RedBits),
		GreenBits:   int(vm.GreenBits),
		BlueBits:    int(vm.BlueBits),
		RefreshRate: int(vm.RefreshRate),
	}
}

func (m VidMode) String() string {
	return fmt.Sprintf("%dx%d r%dg%db%d %dHz", m.Width, m.Height, m.RedBits, m.GreenBits, m.BlueBits, m.RefreshRate)
}

// GammaRamp is a per-channel gamma lookup table. The three channels always
// have the same length.
type GammaRamp struct {
	Red   []uint16
	Green []uint16
	Blue  []uint16
}

// NewGammaRamp returns a ramp of size zeroed entries.
func NewGammaRamp(size int) (*GammaRamp, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: gamma ramp size %d", ErrInvalidArgument, size)
	}
	return &GammaRamp{
		Red:   make([]uint16, size),
		Green: make([]uint16, size),
		Blue:  make([]uint16, size),
	}, nil
}

// Size returns the number of entries per channel.
func (r *GammaRamp) Size() int {
	return len(r.Red)
}

// Row returns entry i of each channel.
func (r *GammaRamp) Row(i int) (red, green, blue uint16, err error) {
	if i < 0 || i >= r.Size() {
		return 0, 0, 0, fmt.Errorf("%w: gamma ramp row %d of %d", ErrIndexOutOfRange, i, r.Size())
	}
	return r.Red[i], r.Green[i], r.Blue[i], nil
}

// SetRow sets entry i of each channel.
func (r *GammaRamp) SetRow(i int, red, green, blue uint16) error {
	if i < 0 || i >= r.Size() {
		return fmt.Errorf("%w: gamma ramp row %d of %d", ErrIndexOutOfRange, i, r.Size())
	}
	r.Red[i], r.Green[i], r.Blue[i] = red, green, blue
	return nil
}
