package filter

// ColorMatrix is a 4x5 color transformation matrix in row-major order.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values.
// Color values are in [0, 255] range during transformation,
// then rounded and clamped back to valid range.
type ColorMatrix [20]float64

// GrayscaleMatrix returns a matrix that sets R, G and B to the luminosity
// 0.299R + 0.587G + 0.114B.
func GrayscaleMatrix() ColorMatrix {
	return ColorMatrix{
		LumaR, LumaG, LumaB, 0, 0,
		LumaR, LumaG, LumaB, 0, 0,
		LumaR, LumaG, LumaB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SepiaMatrix returns the classic sepia tone matrix.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// InvertMatrix returns a matrix that maps each color channel C to 255-C.
func InvertMatrix() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix returns a matrix that shifts every color channel by
// amount percent of full scale (amount*255/100).
func BrightnessMatrix(amount int) ColorMatrix {
	offset := float64(amount) * 255 / 100
	return ColorMatrix{
		1, 0, 0, 0, offset,
		0, 1, 0, 0, offset,
		0, 0, 1, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// ContrastMatrix returns a matrix that scales color channels around 128.
// amount: -100 = flat gray, 0 = unchanged, 100 = doubled contrast
func ContrastMatrix(amount int) ColorMatrix {
	factor := 1 + float64(amount)/100
	if factor < 0 {
		factor = 0
	}
	// (color - 128) * factor + 128
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Apply transforms every pixel of data in place.
func (m ColorMatrix) Apply(data []uint8) {
	for i := 0; i+3 < len(data); i += 4 {
		r := float64(data[i+0])
		g := float64(data[i+1])
		b := float64(data[i+2])
		a := float64(data[i+3])

		newR := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
		newG := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
		newB := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
		newA := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

		data[i+0] = clampUint8(newR)
		data[i+1] = clampUint8(newG)
		data[i+2] = clampUint8(newB)
		data[i+3] = clampUint8(newA)
	}
}
