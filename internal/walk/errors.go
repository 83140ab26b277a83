package walk

import "errors"

var (
	// ErrNegativeLength indicates a request to generate a walk of negative length.
	ErrNegativeLength = errors.New("walk: length must not be negative")

	// ErrRange indicates a step range outside [0, Len()] or with start > end.
	ErrRange = errors.New("walk: step range out of bounds")
)
