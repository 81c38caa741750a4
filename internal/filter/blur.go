package filter

// Blur applies a separable Gaussian blur to the color channels of data.
// The alpha channel is left untouched.
//
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: convolve each row with the 1D kernel (data -> temp)
//  2. Vertical pass: convolve each column with the 1D kernel (temp -> data)
//
// Taps that fall outside the image are skipped and the result is divided by
// the weight of the taps that were used, so a uniform image stays uniform
// right up to its edges.
func Blur(data []uint8, width, height int, radius float64) {
	if width <= 0 || height <= 0 || radius <= 0 {
		return
	}

	kernel := GaussianKernel(radius)
	temp := make([]uint8, len(data))

	blurHorizontal(data, temp, width, height, kernel)
	blurVertical(temp, data, width, height, kernel)
}

// blurHorizontal convolves every row of src and writes the result to dst.
func blurHorizontal(src, dst []uint8, width, height int, kernel []float64) {
	half := KernelCenter(len(kernel))

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			kStart, kEnd := tapRange(x, width, half, len(kernel))

			var r, g, b, wsum float64
			for k := kStart; k < kEnd; k++ {
				idx := (row + x + k - half) * 4
				weight := kernel[k]

				r += float64(src[idx+0]) * weight
				g += float64(src[idx+1]) * weight
				b += float64(src[idx+2]) * weight
				wsum += weight
			}

			idx := (row + x) * 4
			dst[idx+0] = clampUint8(r / wsum)
			dst[idx+1] = clampUint8(g / wsum)
			dst[idx+2] = clampUint8(b / wsum)
			dst[idx+3] = src[idx+3]
		}
	}
}

// blurVertical convolves every column of src and writes the result to dst.
func blurVertical(src, dst []uint8, width, height int, kernel []float64) {
	half := KernelCenter(len(kernel))

	for y := 0; y < height; y++ {
		kStart, kEnd := tapRange(y, height, half, len(kernel))

		for x := 0; x < width; x++ {
			var r, g, b, wsum float64
			for k := kStart; k < kEnd; k++ {
				idx := ((y+k-half)*width + x) * 4
				weight := kernel[k]

				r += float64(src[idx+0]) * weight
				g += float64(src[idx+1]) * weight
				b += float64(src[idx+2]) * weight
				wsum += weight
			}

			idx := (y*width + x) * 4
			dst[idx+0] = clampUint8(r / wsum)
			dst[idx+1] = clampUint8(g / wsum)
			dst[idx+2] = clampUint8(b / wsum)
			dst[idx+3] = src[idx+3]
		}
	}
}

// tapRange returns the half-open range of kernel indices whose samples land
// inside [0, n) when the kernel is centered on pos.
func tapRange(pos, n, half, size int) (start, end int) {
	start = half - pos
	if start < 0 {
		start = 0
	}
	end = n - pos + half
	if end > size {
		end = size
	}
	return start, end
}
