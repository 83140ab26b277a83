package vec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ApproxTolerance is the distance below which two vectors are considered equal
// by ApproxEqual. It is a single bound on the magnitude of the difference, not
// a per-component tolerance.
const ApproxTolerance = 0.1

// Vector is satisfied by the fixed-dimension vector types of this package.
type Vector[V any] interface {
	comparable
	Add(V) V
	Sub(V) V
	Mul(V) V
	Magnitude() float64
	ApproxEqual(V) bool
	Dim() int
	Get(i int) (float64, error)
	String() string
}

func magnitude(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func get(xs []float64, i int) (float64, error) {
	if i < 0 || i >= len(xs) {
		return 0, fmt.Errorf("%w: %d (dimension %d)", ErrIndexOutOfRange, i, len(xs))
	}
	return xs[i], nil
}

func set(xs []float64, i int, v float64) error {
	if i < 0 || i >= len(xs) {
		return fmt.Errorf("%w: %d (dimension %d)", ErrIndexOutOfRange, i, len(xs))
	}
	xs[i] = v
	return nil
}

func format(xs []float64) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return sb.String()
}

func parse(dst []float64, s string) error {
	fields := strings.Split(s, ",")
	if len(fields) != len(dst) {
		return fmt.Errorf("%w: %q has %d components, want %d", ErrParse, s, len(fields), len(dst))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
		dst[i] = x
	}
	return nil
}
