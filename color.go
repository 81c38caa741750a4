package pixfx

import "github.com/gogpu/pixfx/internal/filter"

// Grayscale replaces R, G and B with round(0.299R + 0.587G + 0.114B).
// Alpha is unchanged.
func (b *PixelBuffer) Grayscale() {
	b.applyMatrix(filter.GrayscaleMatrix())
	b.logOp("grayscale")
}

// Sepia applies the classic sepia tone matrix. Alpha is unchanged.
func (b *PixelBuffer) Sepia() {
	b.applyMatrix(filter.SepiaMatrix())
	b.logOp("sepia")
}

// Invert replaces every color channel C with 255-C. Alpha is unchanged.
func (b *PixelBuffer) Invert() {
	b.applyMatrix(filter.InvertMatrix())
	b.logOp("invert")
}

// Brightness shifts every color channel by amount percent of full scale
// (amount*255/100), clamped to [0, 255]. amount must be within
// [MinAdjustAmount, MaxAdjustAmount].
func (b *PixelBuffer) Brightness(amount int) error {
	if err := validateAdjustAmount("brightness", amount); err != nil {
		logRejected(err)
		return err
	}
	b.applyMatrix(filter.BrightnessMatrix(amount))
	b.logOp("brightness", "amount", amount)
	return nil
}

// Contrast scales every color channel around mid-gray by 1+amount/100,
// clamped to [0, 255]. amount must be within
// [MinAdjustAmount, MaxAdjustAmount]; -100 flattens the image to gray 128.
func (b *PixelBuffer) Contrast(amount int) error {
	if err := validateAdjustAmount("contrast", amount); err != nil {
		logRejected(err)
		return err
	}
	b.applyMatrix(filter.ContrastMatrix(amount))
	b.logOp("contrast", "amount", amount)
	return nil
}

func (b *PixelBuffer) applyMatrix(m filter.ColorMatrix) {
	m.Apply(b.data)
}
