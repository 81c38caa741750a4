package pixfx

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInvalidParametersLeaveBufferUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		op      func(b *PixelBuffer) error
		wantOp  string
		wantArg string
	}{
		{"blur 0", func(b *PixelBuffer) error { return b.Blur(0) }, "blur", "radius"},
		{"blur negative", func(b *PixelBuffer) error { return b.Blur(-1) }, "blur", "radius"},
		{"blur 51", func(b *PixelBuffer) error { return b.Blur(51) }, "blur", "radius"},
		{"blur NaN", func(b *PixelBuffer) error { return b.Blur(math.NaN()) }, "blur", "radius"},
		{"blur +Inf", func(b *PixelBuffer) error { return b.Blur(math.Inf(1)) }, "blur", "radius"},
		{"sharpen negative", func(b *PixelBuffer) error { return b.Sharpen(-0.1) }, "sharpen", "amount"},
		{"sharpen 5.01", func(b *PixelBuffer) error { return b.Sharpen(5.01) }, "sharpen", "amount"},
		{"sharpen NaN", func(b *PixelBuffer) error { return b.Sharpen(math.NaN()) }, "sharpen", "amount"},
		{"brightness 101", func(b *PixelBuffer) error { return b.Brightness(101) }, "brightness", "amount"},
		{"brightness -101", func(b *PixelBuffer) error { return b.Brightness(-101) }, "brightness", "amount"},
		{"contrast 101", func(b *PixelBuffer) error { return b.Contrast(101) }, "contrast", "amount"},
		{"contrast -101", func(b *PixelBuffer) error { return b.Contrast(-101) }, "contrast", "amount"},
		{"resize 0x10", func(b *PixelBuffer) error { return b.Resize(0, 10) }, "resize", "newWidth"},
		{"resize 10x0", func(b *PixelBuffer) error { return b.Resize(10, 0) }, "resize", "newHeight"},
		{"resize negative", func(b *PixelBuffer) error { return b.Resize(-3, -3) }, "resize", "newWidth"},
		{"resize overflow", func(b *PixelBuffer) error { return b.Resize(math.MaxInt, 2) }, "resize", "newWidth*newHeight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := patternBuffer(t, 5, 4)
			before := b.Data()

			err := tt.op(b)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("errors.Is(err, ErrInvalidParameter) = false for %v", err)
			}

			var pe *InvalidParameterError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not *InvalidParameterError", err)
			}
			if pe.Op != tt.wantOp || pe.Arg != tt.wantArg {
				t.Errorf("error names %s/%s, want %s/%s", pe.Op, pe.Arg, tt.wantOp, tt.wantArg)
			}
			if pe.Bounds == "" {
				t.Error("error should report the accepted bounds")
			}

			if b.Width() != 5 || b.Height() != 4 {
				t.Errorf("dimensions changed to %dx%d", b.Width(), b.Height())
			}
			if diff := cmp.Diff(before, b.Data()); diff != "" {
				t.Errorf("buffer modified by rejected call (-before +after):\n%s", diff)
			}
		})
	}
}

func TestValidParameterBoundaries(t *testing.T) {
	tests := []struct {
		name string
		op   func(b *PixelBuffer) error
	}{
		{"blur smallest", func(b *PixelBuffer) error { return b.Blur(1e-9) }},
		{"blur 50", func(b *PixelBuffer) error { return b.Blur(MaxBlurRadius) }},
		{"sharpen 0", func(b *PixelBuffer) error { return b.Sharpen(0) }},
		{"sharpen 5", func(b *PixelBuffer) error { return b.Sharpen(MaxSharpenAmount) }},
		{"brightness -100", func(b *PixelBuffer) error { return b.Brightness(MinAdjustAmount) }},
		{"brightness 100", func(b *PixelBuffer) error { return b.Brightness(MaxAdjustAmount) }},
		{"contrast -100", func(b *PixelBuffer) error { return b.Contrast(MinAdjustAmount) }},
		{"contrast 100", func(b *PixelBuffer) error { return b.Contrast(MaxAdjustAmount) }},
		{"resize 1x1", func(b *PixelBuffer) error { return b.Resize(1, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(patternBuffer(t, 3, 3)); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestInvalidParameterErrorMessage(t *testing.T) {
	err := validateBlurRadius(51)
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	for _, want := range []string{"pixfx", "blur", "radius", "51", "(0, 50]"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}
}

func TestConstructionErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ConstructionError
		want string
	}{
		{&ConstructionError{Width: 2, Height: 2, Len: 15}, "data length 15 does not match 2x2 RGBA (want 16)"},
		{&ConstructionError{Width: 0, Height: 3}, "invalid dimensions 0x3"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); !strings.Contains(got, tt.want) {
			t.Errorf("Error() = %q, want it to contain %q", got, tt.want)
		}
	}
}
