package validator

import (
	"fmt"
	"math"
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
// NaN never satisfies it.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Cause:   ErrOutOfRange,
			Params:  map[string]any{"min": min},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
			Cause:   ErrOutOfRange,
			Params:  map[string]any{"max": max},
		},
	}
}

// NonNegative validates that value is zero or greater. Negative zero passes,
// any negative fraction fails.
func NonNegative[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value >= zero
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be non-negative",
			Cause:   ErrOutOfRange,
		},
	}
}

// NotNaN validates that a floating point value is a number. Integer types
// always pass.
func NotNaN[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsNaN(float64(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a number",
			Cause:   ErrNotANumber,
		},
	}
}
