package pixfx

import (
	"image"
	"image/color"
	"math"
)

// PixelBuffer is an RGBA8 raster: 4 bytes per pixel (R, G, B, A), row-major,
// top-left origin, straight (non-premultiplied) alpha.
//
// len(data) == width*height*4 always holds. Operations that change the
// dimensions build a complete new store before replacing the old one.
//
// A PixelBuffer is not safe for concurrent mutation. Use Clone to hand an
// independent copy to another goroutine.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// New creates a buffer from a copy of data. It fails with a
// *ConstructionError if width or height is not positive or if
// len(data) != width*height*4.
func New(data []byte, width, height int) (*PixelBuffer, error) {
	n, ok := byteLen(width, height)
	if !ok || len(data) != n {
		err := &ConstructionError{Width: width, Height: height, Len: len(data)}
		logRejected(err)
		return nil, err
	}

	buf := make([]uint8, n)
	copy(buf, data)
	return &PixelBuffer{width: width, height: height, data: buf}, nil
}

// byteLen returns width*height*4, reporting false for non-positive
// dimensions or when the product overflows int.
func byteLen(width, height int) (int, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	if height > math.MaxInt/4/width {
		return 0, false
	}
	return width * height * 4, true
}

// Width returns the width of the buffer in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Data returns a copy of the raw pixel data (RGBA format).
func (b *PixelBuffer) Data() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Clone returns an independent copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	return &PixelBuffer{
		width:  b.width,
		height: b.height,
		data:   b.Data(),
	}
}

// Pixel returns the R, G, B, A bytes of the pixel at (x, y).
// Coordinates outside the buffer return transparent black.
func (b *PixelBuffer) Pixel(x, y int) [4]uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return [4]uint8{}
	}
	i := (y*b.width + x) * 4
	return [4]uint8{b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]}
}

// replace swaps in a newly sized store. data must already hold
// width*height*4 bytes.
func (b *PixelBuffer) replace(data []uint8, width, height int) {
	b.data, b.width, b.height = data, width, height
}

// At implements the image.Image interface.
func (b *PixelBuffer) At(x, y int) color.Color {
	p := b.Pixel(x, y)
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Bounds implements the image.Image interface.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
