package filter

// Test helper functions shared across filter tests.

// newTestBuffer creates a w*h RGBA8 buffer filled with a single color.
func newTestBuffer(w, h int, r, g, b, a uint8) []uint8 {
	data := make([]uint8, w*h*4)
	for i := 0; i < len(data); i += 4 {
		data[i+0] = r
		data[i+1] = g
		data[i+2] = b
		data[i+3] = a
	}
	return data
}

// setPixel writes one pixel of a w-wide RGBA8 buffer.
func setPixel(data []uint8, w, x, y int, r, g, b, a uint8) {
	i := (y*w + x) * 4
	data[i+0] = r
	data[i+1] = g
	data[i+2] = b
	data[i+3] = a
}

// pixel reads one pixel of a w-wide RGBA8 buffer.
func pixel(data []uint8, w, x, y int) [4]uint8 {
	i := (y*w + x) * 4
	return [4]uint8{data[i], data[i+1], data[i+2], data[i+3]}
}

// cloneBytes returns an independent copy of data.
func cloneBytes(data []uint8) []uint8 {
	out := make([]uint8, len(data))
	copy(out, data)
	return out
}
