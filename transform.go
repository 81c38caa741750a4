package pixfx

import "github.com/gogpu/pixfx/internal/transform"

// FlipHorizontal mirrors the image left to right.
func (b *PixelBuffer) FlipHorizontal() {
	transform.FlipHorizontal(b.data, b.width, b.height)
	b.logOp("flipHorizontal")
}

// FlipVertical mirrors the image top to bottom.
func (b *PixelBuffer) FlipVertical() {
	transform.FlipVertical(b.data, b.width, b.height)
	b.logOp("flipVertical")
}

// Rotate90 rotates the image 90° clockwise. Width and height are swapped and
// the buffer gets a new backing store; slices previously returned by Data
// are unaffected.
func (b *PixelBuffer) Rotate90() {
	rotated := transform.Rotate90(b.data, b.width, b.height)
	b.replace(rotated, b.height, b.width)
	b.logOp("rotate90")
}

// Resize resamples the image to newWidth x newHeight with nearest-neighbor
// sampling. Both dimensions must be positive. Resizing to the current
// dimensions reproduces the buffer exactly.
func (b *PixelBuffer) Resize(newWidth, newHeight int) error {
	if err := validateResize(newWidth, newHeight); err != nil {
		logRejected(err)
		return err
	}

	oldWidth, oldHeight := b.width, b.height
	resized := transform.Resize(b.data, b.width, b.height, newWidth, newHeight)
	b.replace(resized, newWidth, newHeight)
	b.logOp("resize", "fromWidth", oldWidth, "fromHeight", oldHeight)
	return nil
}
