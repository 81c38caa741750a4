package transform

import "math/bits"

// Resize resamples data to newWidth x newHeight using nearest neighbor and
// returns the new buffer. Destination pixel (dx, dy) is taken from source
// pixel (floor(dx*width/newWidth), floor(dy*height/newHeight)).
func Resize(data []uint8, width, height, newWidth, newHeight int) []uint8 {
	out := make([]uint8, newWidth*newHeight*4)

	// Source byte offset within a row for every destination column.
	cols := make([]int, newWidth)
	for dx := range cols {
		cols[dx] = sourceIndex(dx, width, newWidth) * 4
	}

	for dy := 0; dy < newHeight; dy++ {
		srcRow := sourceIndex(dy, height, newHeight) * width * 4
		dstRow := dy * newWidth * 4
		for dx, col := range cols {
			src := srcRow + col
			dst := dstRow + dx*4
			copy(out[dst:dst+4], data[src:src+4])
		}
	}

	return out
}

// sourceIndex maps a destination coordinate to its nearest source
// coordinate, clamped to [0, srcSize-1]. The product d*srcSize is taken in
// 128 bits so extreme dimension pairs cannot overflow.
func sourceIndex(d, srcSize, dstSize int) int {
	if d <= 0 || srcSize <= 0 || dstSize <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(d), uint64(srcSize))
	if hi >= uint64(dstSize) {
		return srcSize - 1
	}
	q, _ := bits.Div64(hi, lo, uint64(dstSize))
	if q >= uint64(srcSize) {
		return srcSize - 1
	}
	return int(q)
}
