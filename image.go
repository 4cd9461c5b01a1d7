//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/obinnaokechukwu/glfwgo/internal/native"
)

// PixelSize is the number of bytes per Image pixel.
const PixelSize = 4

// Image is an RGBA8 pixel buffer used for cursors and window icons. Pixels
// are stored row by row from the top-left, four bytes each, without
// padding. The buffer belongs to the Image and is released with it; GLFW
// copies it whenever it is passed in.
type Image struct {
	width  int
	height int
	pix    []byte
}

// NewImage returns a width by height image with every pixel [0, 0, 0, 0].
func NewImage(width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d", ErrInvalidArgument, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*PixelSize),
	}, nil
}

// NewImageFromImage converts src to an Image. If width and height are
// positive, src is resampled to that size; otherwise the source size is
// kept.
func NewImageFromImage(src image.Image, width, height int) (*Image, error) {
	if src == nil {
		return nil, ErrInvalidArgument
	}
	b := src.Bounds()
	if width <= 0 || height <= 0 {
		width, height = b.Dx(), b.Dy()
	}
	img, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	dst := img.RGBA()
	if width == b.Dx() && height == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	}
	return img, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// MemSize returns the size of the pixel buffer in bytes.
func (img *Image) MemSize() int {
	return len(img.pix)
}

// PixelSize returns the number of bytes per pixel.
func (img *Image) PixelSize() int {
	return PixelSize
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// At returns the pixel at (x, y) as [r, g, b, a]. Coordinates outside the
// image read as [0, 0, 0, 0].
func (img *Image) At(x, y int) [4]uint8 {
	var px [4]uint8
	if img.inBounds(x, y) {
		off := (y*img.width + x) * PixelSize
		copy(px[:], img.pix[off:off+PixelSize])
	}
	return px
}

// Set stores px at (x, y). Coordinates outside the image are ignored.
func (img *Image) Set(x, y int, px [4]uint8) {
	if !img.inBounds(x, y) {
		return
	}
	off := (y*img.width + x) * PixelSize
	copy(img.pix[off:off+PixelSize], px[:])
}

// Clear sets every pixel to px.
func (img *Image) Clear(px [4]uint8) {
	for off := 0; off < len(img.pix); off += PixelSize {
		copy(img.pix[off:off+PixelSize], px[:])
	}
}

// Pixels returns the pixel buffer. It aliases the image.
func (img *Image) Pixels() []byte {
	return img.pix
}

// RGBA returns an *image.RGBA view of the image. It shares the pixel buffer,
// so drawing into it changes the image.
func (img *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    img.pix,
		Stride: img.width * PixelSize,
		Rect:   image.Rect(0, 0, img.width, img.height),
	}
}

func (img *Image) data() native.ImageData {
	return native.ImageData{Width: int32(img.width), Height: int32(img.height), Pixels: img.pix}
}

func (img *Image) String() string {
	return fmt.Sprintf("Image pixelsize=%d memsize=%d width=%d height=%d", PixelSize, img.MemSize(), img.width, img.height)
}
