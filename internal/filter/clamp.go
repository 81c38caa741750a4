package filter

import "math"

// Luminosity weights used by grayscale and edge detection.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luminance returns the perceived brightness of an RGB triple, unrounded.
func Luminance(r, g, b uint8) float64 {
	return LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)
}

// clampUint8 rounds v to the nearest integer and clamps it to [0, 255].
func clampUint8(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
