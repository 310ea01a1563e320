package cache

import "errors"

var (
	// ErrInvalidCapacity is returned by constructors when the capacity is
	// negative or NaN. The validator's ValidationErrors is joined to it.
	ErrInvalidCapacity = errors.New("cache: invalid capacity")

	// ErrUnknownPolicy is returned when a policy name is not recognised.
	ErrUnknownPolicy = errors.New("cache: unknown eviction policy")
)
