// Package hitbuffer holds first-hit-point buffers: per pixel, the position
// where a viewing ray first struck the surface, in normalized texture space.
package hitbuffer

import (
	"image"
	"image/color"

	"github.com/philipparndt/gopoi/pkg/geometry"
)

// Buffer is a row-major hit-point grid. Row 0 is the bottom row. A pixel
// whose ray missed the surface holds the zero vector.
type Buffer struct {
	Width  int
	Height int
	Points []geometry.Vector3
}

// New allocates a buffer with every pixel set to the miss sentinel
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Points: make([]geometry.Vector3, width*height),
	}
}

// Size returns the buffer dimensions in pixels
func (b *Buffer) Size() (int, int) {
	return b.Width, b.Height
}

// At returns the raw sample at (x, y). Out-of-range reads return the miss
// sentinel.
func (b *Buffer) At(x, y int) geometry.Vector3 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return geometry.Vector3{}
	}
	return b.Points[y*b.Width+x]
}

// Set stores a sample; out-of-range writes are dropped
func (b *Buffer) Set(x, y int, p geometry.Vector3) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Points[y*b.Width+x] = p
}

// Clear resets every pixel to the miss sentinel
func (b *Buffer) Clear() {
	for i := range b.Points {
		b.Points[i] = geometry.Vector3{}
	}
}

// Clamp pulls c into the buffer bounds
func (b *Buffer) Clamp(c Coord) Coord {
	return Clamp(c, b.Width, b.Height)
}

// Coverage returns the number of pixels that hold a surface hit
func (b *Buffer) Coverage() int {
	n := 0
	for _, p := range b.Points {
		if !IsMiss(p) {
			n++
		}
	}
	return n
}

// IsMiss reports whether a raw sample must be rejected. Only samples that
// are non-zero in all three channels count as hits; the all-zero vector is
// the "ray missed" sentinel.
func IsMiss(p geometry.Vector3) bool {
	return p.X == 0 || p.Y == 0 || p.Z == 0
}

// Image renders the buffer as a false-colour RGB image (texture coordinates
// mapped to red, green and blue) with the usual top-left image origin.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		row := b.Height - 1 - y
		for x := 0; x < b.Width; x++ {
			p := b.At(x, y)
			if IsMiss(p) {
				img.SetRGBA(x, row, color.RGBA{A: 255})
				continue
			}
			img.SetRGBA(x, row, color.RGBA{
				R: channel(p.X),
				G: channel(p.Y),
				B: channel(p.Z),
				A: 255,
			})
		}
	}
	return img
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
