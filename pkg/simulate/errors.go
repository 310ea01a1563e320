package simulate

import "errors"

var (
	// ErrUnknownOp is returned when a trace contains an unsupported operation.
	ErrUnknownOp = errors.New("simulate: unknown operation")

	// ErrEmptyTrace is returned when a trace has no operations.
	ErrEmptyTrace = errors.New("simulate: trace has no operations")

	// ErrInvalidTrace is returned when a trace cannot be decoded.
	ErrInvalidTrace = errors.New("simulate: invalid trace")
)
