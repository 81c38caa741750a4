package pixfx

import "fmt"

// Parameter bounds, inclusive unless noted.
const (
	// MaxBlurRadius is the largest accepted blur radius. The lower bound
	// is exclusive: the radius must be strictly positive.
	MaxBlurRadius = 50.0

	// MinSharpenAmount and MaxSharpenAmount bound the unsharp-mask strength.
	MinSharpenAmount = 0.0
	MaxSharpenAmount = 5.0

	// MinAdjustAmount and MaxAdjustAmount bound brightness and contrast,
	// expressed in percent of full scale.
	MinAdjustAmount = -100
	MaxAdjustAmount = 100
)

// validateBlurRadius accepts 0 < radius <= MaxBlurRadius. NaN is rejected.
func validateBlurRadius(radius float64) error {
	if !(radius > 0 && radius <= MaxBlurRadius) {
		return &InvalidParameterError{
			Op:     "blur",
			Arg:    "radius",
			Value:  radius,
			Bounds: fmt.Sprintf("(0, %g]", MaxBlurRadius),
		}
	}
	return nil
}

// validateSharpenAmount accepts MinSharpenAmount <= amount <= MaxSharpenAmount.
func validateSharpenAmount(amount float64) error {
	if !(amount >= MinSharpenAmount && amount <= MaxSharpenAmount) {
		return &InvalidParameterError{
			Op:     "sharpen",
			Arg:    "amount",
			Value:  amount,
			Bounds: fmt.Sprintf("[%g, %g]", MinSharpenAmount, MaxSharpenAmount),
		}
	}
	return nil
}

// validateAdjustAmount checks a brightness or contrast amount.
func validateAdjustAmount(op string, amount int) error {
	if amount < MinAdjustAmount || amount > MaxAdjustAmount {
		return &InvalidParameterError{
			Op:     op,
			Arg:    "amount",
			Value:  float64(amount),
			Bounds: fmt.Sprintf("[%d, %d]", MinAdjustAmount, MaxAdjustAmount),
		}
	}
	return nil
}

// validateDimension checks one resize target dimension.
func validateDimension(arg string, v int) error {
	if v <= 0 {
		return &InvalidParameterError{
			Op:     "resize",
			Arg:    arg,
			Value:  float64(v),
			Bounds: "(0, +inf)",
		}
	}
	return nil
}

// validateResize checks both resize target dimensions, width first, and
// rejects pairs whose byte size does not fit in an int.
func validateResize(newWidth, newHeight int) error {
	if err := validateDimension("newWidth", newWidth); err != nil {
		return err
	}
	if err := validateDimension("newHeight", newHeight); err != nil {
		return err
	}
	if _, ok := byteLen(newWidth, newHeight); !ok {
		return &InvalidParameterError{
			Op:     "resize",
			Arg:    "newWidth*newHeight",
			Value:  float64(newWidth) * float64(newHeight),
			Bounds: "(0, MaxInt/4]",
		}
	}
	return nil
}
