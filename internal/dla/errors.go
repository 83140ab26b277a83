package dla

import "errors"

// Domain errors for aggregation engines.
var (
	// ErrStickiness indicates a sticking probability outside [0, 1].
	ErrStickiness = errors.New("dla: stickiness must be within [0, 1]")

	// ErrBounds indicates a negative extent, or a zero extent where a launch
	// position has to be drawn from it.
	ErrBounds = errors.New("dla: invalid boundary extent")

	// ErrRadius indicates a negative launch radius.
	ErrRadius = errors.New("dla: launch radius must not be negative")
)
