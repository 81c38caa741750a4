package filter

import "math"

// Sobel kernels for the horizontal and vertical gradient.
var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// EdgeDetect replaces the color channels of data with a grayscale Sobel
// gradient magnitude computed on luminance.
//
// Pixels on the outermost row or column have no full 3x3 neighborhood and
// are set to black. Alpha is preserved for every pixel.
func EdgeDetect(data []uint8, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	// Luminance is computed up front so the gradient can be written in place.
	lum := make([]float64, width*height)
	for i := range lum {
		p := i * 4
		lum[i] = Luminance(data[p], data[p+1], data[p+2])
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4

			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				data[idx+0] = 0
				data[idx+1] = 0
				data[idx+2] = 0
				continue
			}

			var gx, gy float64
			for ky := 0; ky < 3; ky++ {
				row := (y - 1 + ky) * width
				for kx := 0; kx < 3; kx++ {
					l := lum[row+x-1+kx]
					gx += l * sobelX[ky][kx]
					gy += l * sobelY[ky][kx]
				}
			}

			edge := clampUint8(math.Sqrt(gx*gx + gy*gy))
			data[idx+0] = edge
			data[idx+1] = edge
			data[idx+2] = edge
		}
	}
}
