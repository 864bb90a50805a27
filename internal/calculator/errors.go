package calculator

import "errors"

var (
	// ErrInvalidCount is returned when a head count for a known animal is negative or not finite.
	ErrInvalidCount = errors.New("animal count must be a non-negative finite number")
	// ErrOverflow is returned when a scaled figure or a total exceeds the float64 range.
	ErrOverflow = errors.New("animal count too large: result exceeds numeric range")
)
