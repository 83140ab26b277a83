package vec

import "errors"

var (
	// ErrIndexOutOfRange indicates a component index at or beyond the vector's dimension.
	ErrIndexOutOfRange = errors.New("vec: component index out of range")

	// ErrParse indicates text that is not a comma-separated component list of the right length.
	ErrParse = errors.New("vec: malformed vector text")
)
