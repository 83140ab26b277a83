package analysis

import "errors"

var (
	ErrInsufficientData = errors.New("analysis: not enough data points")
	ErrLengthMismatch   = errors.New("analysis: sample lengths differ")
)
