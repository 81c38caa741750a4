package pixfx

import "github.com/gogpu/pixfx/internal/filter"

// SharpenRadius is the blur radius Sharpen uses to build its unsharp mask.
const SharpenRadius = filter.UnsharpRadius

// Blur applies a separable Gaussian blur with the given radius to R, G and B.
// The kernel has ceil(2*radius) taps (forced odd) and sigma radius/3. At the
// image borders only in-bounds taps contribute and the result is
// renormalized by their weight. radius must satisfy 0 < radius <= MaxBlurRadius.
func (b *PixelBuffer) Blur(radius float64) error {
	if err := validateBlurRadius(radius); err != nil {
		logRejected(err)
		return err
	}
	filter.Blur(b.data, b.width, b.height, radius)
	b.logOp("blur", "radius", radius)
	return nil
}

// Sharpen applies unsharp masking: C' = C + amount*(C - blur(C)), with the
// blur taken at SharpenRadius. amount must be within
// [MinSharpenAmount, MaxSharpenAmount]; 0 leaves the buffer unchanged.
func (b *PixelBuffer) Sharpen(amount float64) error {
	if err := validateSharpenAmount(amount); err != nil {
		logRejected(err)
		return err
	}
	filter.Sharpen(b.data, b.width, b.height, amount)
	b.logOp("sharpen", "amount", amount)
	return nil
}

// EdgeDetect replaces the image with a grayscale Sobel edge map computed on
// luminance. Pixels on the outermost rows and columns become black; alpha
// is preserved everywhere.
func (b *PixelBuffer) EdgeDetect() {
	filter.EdgeDetect(b.data, b.width, b.height)
	b.logOp("edgeDetect")
}
