package filter

import "math"

// GaussianKernel generates a 1D Gaussian kernel for the given blur radius.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is ceil(2*radius) forced to the next odd number, and the
// standard deviation is radius/3, so the kernel spans three sigmas on each
// side of the center.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}

	size := KernelSize(radius)
	kernel := make([]float64, size)

	sigma := radius / 3
	twoSigmaSq := 2 * sigma * sigma
	center := KernelCenter(size)
	sum := 0.0

	// The 1/(2πσ²) factor cancels out in normalization.
	for i := 0; i < size; i++ {
		x := float64(i - center)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = val
		sum += val
	}

	if sum > 0 {
		invSum := 1.0 / sum
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// KernelSize returns the number of taps GaussianKernel produces for radius.
func KernelSize(radius float64) int {
	if radius <= 0 {
		return 1
	}
	return int(math.Ceil(radius*2)) | 1
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}
