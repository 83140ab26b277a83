package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LogLogSlope fits log(y) = a + b*log(x) by least squares and returns b.
// Pairs with a non-positive coordinate are skipped. At least two pairs with
// distinct x must remain.
func LogLogSlope(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	lx := make([]float64, 0, len(xs))
	ly := make([]float64, 0, len(ys))
	for i := range xs {
		if xs[i] <= 0 || ys[i] <= 0 {
			continue
		}
		lx = append(lx, math.Log(xs[i]))
		ly = append(ly, math.Log(ys[i]))
	}

	if len(lx) < 2 || floats.Min(lx) == floats.Max(lx) {
		return 0, fmt.Errorf("%w: %d usable pairs", ErrInsufficientData, len(lx))
	}
	_, slope := stat.LinearRegression(lx, ly, nil, false)
	return slope, nil
}
