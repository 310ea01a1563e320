package cache

import (
	"errors"
	"math"

	"github.com/dmitrymomot/cachemapset/pkg/validator"
)

// Unbounded is the capacity of a container built from +Inf or from any value
// that does not fit in an int.
const Unbounded = math.MaxInt

// Capacity validates n and truncates it toward zero.
// Negative values (including negative fractions) and NaN are rejected with
// ErrInvalidCapacity. +Inf and values beyond math.MaxInt become Unbounded.
func Capacity[N validator.Numeric](n N) (int, error) {
	if err := validator.Apply(
		validator.NotNaN("capacity", n),
		validator.NonNegative("capacity", n),
	); err != nil {
		return 0, errors.Join(ErrInvalidCapacity, err)
	}

	if float64(n) >= float64(math.MaxInt) {
		return Unbounded, nil
	}
	return int(n), nil
}
