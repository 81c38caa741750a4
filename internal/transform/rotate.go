package transform

// Rotate90 rotates data 90° clockwise and returns a new buffer of
// height x width pixels. Destination pixel (x, y) is taken from source
// pixel (y, height-1-x).
func Rotate90(data []uint8, width, height int) []uint8 {
	out := make([]uint8, len(data))
	newWidth, newHeight := height, width

	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			src := ((height-1-x)*width + y) * 4
			dst := (y*newWidth + x) * 4
			copy(out[dst:dst+4], data[src:src+4])
		}
	}

	return out
}
