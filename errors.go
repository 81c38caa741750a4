package pixfx

import (
	"errors"
	"fmt"
)

// Sentinel errors for pixfx. Every error returned by the package matches one
// of these via errors.Is.
var (
	// ErrConstruction is returned when a buffer cannot be built from the
	// given bytes and dimensions.
	ErrConstruction = errors.New("pixfx: invalid buffer")

	// ErrInvalidParameter is returned when an operation argument is outside
	// its documented bounds. The buffer is left unmodified.
	ErrInvalidParameter = errors.New("pixfx: invalid parameter")
)

// ConstructionError reports a mismatch between the pixel data and the
// requested dimensions.
type ConstructionError struct {
	Width  int
	Height int
	Len    int
}

func (e *ConstructionError) Error() string {
	if _, ok := byteLen(e.Width, e.Height); !ok {
		return fmt.Sprintf("pixfx: invalid dimensions %dx%d", e.Width, e.Height)
	}
	return fmt.Sprintf("pixfx: data length %d does not match %dx%d RGBA (want %d)",
		e.Len, e.Width, e.Height, e.Width*e.Height*4)
}

// Is reports whether target is ErrConstruction.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

// InvalidParameterError reports which argument of which operation was out of
// bounds.
type InvalidParameterError struct {
	Op     string  // operation name, e.g. "blur"
	Arg    string  // argument name, e.g. "radius"
	Value  float64 // rejected value
	Bounds string  // human-readable accepted range, e.g. "(0, 50]"
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("pixfx: %s: %s = %g is outside %s", e.Op, e.Arg, e.Value, e.Bounds)
}

// Is reports whether target is ErrInvalidParameter.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}
