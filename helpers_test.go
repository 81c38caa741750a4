package pixfx

import "testing"

// Test helper functions shared across pixfx tests.

// mustNew builds a buffer or fails the test.
func mustNew(t *testing.T, data []byte, w, h int) *PixelBuffer {
	t.Helper()
	b, err := New(data, w, h)
	if err != nil {
		t.Fatalf("New(%d bytes, %d, %d): %v", len(data), w, h, err)
	}
	return b
}

// patternBuffer builds a w*h buffer with distinct colors and alphas.
func patternBuffer(t *testing.T, w, h int) *PixelBuffer {
	t.Helper()
	data := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			data[i+0] = uint8(x * 255 / max(w-1, 1))
			data[i+1] = uint8(y * 255 / max(h-1, 1))
			data[i+2] = uint8((x*31 + y*17) % 256)
			data[i+3] = uint8(100 + (x+y)%156)
		}
	}
	return mustNew(t, data, w, h)
}

// alphas extracts the alpha channel of data.
func alphas(data []byte) []byte {
	out := make([]byte, len(data)/4)
	for i := range out {
		out[i] = data[i*4+3]
	}
	return out
}
