//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewImage(t *testing.T) {
	img, err := NewImage(3, 2)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Errorf("size = %dx%d", img.Width(), img.Height())
	}
	if img.MemSize() != 3*2*PixelSize || img.PixelSize() != PixelSize {
		t.Errorf("memsize = %d", img.MemSize())
	}
	for _, b := range img.Pixels() {
		if b != 0 {
			t.Fatal("new image is not zeroed")
		}
	}
	if _, err := NewImage(-1, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewImage(-1, 2) = %v, want ErrInvalidArgument", err)
	}
}

func TestImagePixels(t *testing.T) {
	img, _ := NewImage(4, 4)
	red := [4]uint8{255, 0, 0, 255}

	img.Set(1, 2, red)
	if got := img.At(1, 2); got != red {
		t.Errorf("At(1, 2) = %v, want %v", got, red)
	}
	off := (2*4 + 1) * PixelSize
	if got := img.Pixels()[off : off+PixelSize]; got[0] != 255 || got[3] != 255 {
		t.Errorf("raw pixel = %v", got)
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 4, 0},
		{"y at height", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img.Set(tt.x, tt.y, red)
			if got := img.At(tt.x, tt.y); got != ([4]uint8{}) {
				t.Errorf("At = %v, want zero", got)
			}
		})
	}
}

func TestImageClear(t *testing.T) {
	img, _ := NewImage(5, 3)
	px := [4]uint8{0x12, 0x34, 0x56, 0x78}
	img.Clear(px)
	for y := range 3 {
		for x := range 5 {
			if got := img.At(x, y); got != px {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, px)
			}
		}
	}
}

func TestImageRGBAView(t *testing.T) {
	img, _ := NewImage(2, 2)
	img.RGBA().Set(1, 1, color.RGBA{1, 2, 3, 4})
	if got := img.At(1, 1); got != [4]uint8{1, 2, 3, 4} {
		t.Errorf("At(1, 1) = %v after drawing into the view", got)
	}
}

func TestNewImageFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	for y := 10; y < 12; y++ {
		for x := 10; x < 14; x++ {
			src.Set(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}

	img, err := NewImageFromImage(src, 0, 0)
	if err != nil {
		t.Fatalf("NewImageFromImage: %v", err)
	}
	if img.Width() != 4 || img.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", img.Width(), img.Height())
	}
	if got := img.At(3, 1); got != [4]uint8{0, 0, 255, 255} {
		t.Errorf("At(3, 1) = %v", got)
	}

	scaled, err := NewImageFromImage(src, 8, 4)
	if err != nil {
		t.Fatalf("NewImageFromImage scaled: %v", err)
	}
	if scaled.Width() != 8 || scaled.Height() != 4 {
		t.Errorf("scaled size = %dx%d, want 8x4", scaled.Width(), scaled.Height())
	}
	if got := scaled.At(4, 2); got[2] < 250 || got[3] < 250 {
		t.Errorf("scaled pixel = %v, want opaque blue", got)
	}

	if _, err := NewImageFromImage(nil, 1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewImageFromImage(nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestImageString(t *testing.T) {
	img, _ := NewImage(2, 3)
	want := "Image pixelsize=4 memsize=24 width=2 height=3"
	if got := img.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
