package filter

// UnsharpRadius is the blur radius used to build the unsharp mask.
const UnsharpRadius = 1.0

// Sharpen applies unsharp masking to the color channels of data:
// each channel moves away from its blurred value by amount times the
// difference. Alpha is left untouched.
func Sharpen(data []uint8, width, height int, amount float64) {
	if width <= 0 || height <= 0 || amount == 0 {
		return
	}

	blurred := make([]uint8, len(data))
	copy(blurred, data)
	Blur(blurred, width, height, UnsharpRadius)

	for i := 0; i < len(data); i += 4 {
		for c := 0; c < 3; c++ {
			orig := float64(data[i+c])
			diff := orig - float64(blurred[i+c])
			data[i+c] = clampUint8(orig + amount*diff)
		}
	}
}
