package pixfx

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage creates a buffer from any image.Image. Pixels are converted to
// straight-alpha RGBA8; the image's bounds origin becomes (0, 0).
// An empty image fails with a *ConstructionError.
func FromImage(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if _, ok := byteLen(width, height); !ok {
		err := &ConstructionError{Width: width, Height: height}
		logRejected(err)
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)

	return &PixelBuffer{width: width, height: height, data: dst.Pix}, nil
}

// ToImage returns a copy of the buffer as an *image.NRGBA.
func (b *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}
