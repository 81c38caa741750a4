package pixfx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChainMatchesSequentialCalls(t *testing.T) {
	a := patternBuffer(t, 8, 6)
	b := a.Clone()

	err := Chain(a).
		Grayscale().
		Brightness(10).
		Contrast(-20).
		Blur(1.5).
		Sharpen(0.5).
		Sepia().
		Invert().
		FlipHorizontal().
		FlipVertical().
		Rotate90().
		Resize(4, 4).
		EdgeDetect().
		Err()
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	b.Grayscale()
	mustOK(t, b.Brightness(10))
	mustOK(t, b.Contrast(-20))
	mustOK(t, b.Blur(1.5))
	mustOK(t, b.Sharpen(0.5))
	b.Sepia()
	b.Invert()
	b.FlipHorizontal()
	b.FlipVertical()
	b.Rotate90()
	mustOK(t, b.Resize(4, 4))
	b.EdgeDetect()

	if diff := cmp.Diff(b.Data(), a.Data()); diff != "" {
		t.Errorf("chained result differs (-sequential +chained):\n%s", diff)
	}
}

func TestChainStopsAtFirstError(t *testing.T) {
	b := patternBuffer(t, 4, 4)
	afterInvert := b.Clone()
	afterInvert.Invert()

	c := Chain(b).Invert().Blur(0).Grayscale().Resize(2, 2)

	if !errors.Is(c.Err(), ErrInvalidParameter) {
		t.Fatalf("Err() = %v, want ErrInvalidParameter", c.Err())
	}
	var pe *InvalidParameterError
	if !errors.As(c.Err(), &pe) || pe.Op != "blur" {
		t.Errorf("first error should come from blur, got %v", c.Err())
	}

	if c.Buffer() != b {
		t.Error("Buffer() should return the chained buffer")
	}
	if b.Width() != 4 || b.Height() != 4 {
		t.Errorf("resize after the failure ran: %dx%d", b.Width(), b.Height())
	}
	if diff := cmp.Diff(afterInvert.Data(), b.Data()); diff != "" {
		t.Errorf("operations after the failure ran (-want +got):\n%s", diff)
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
