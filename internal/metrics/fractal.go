package metrics

import (
	"math"

	"github.com/san-kum/dlasim/internal/analysis"
	"github.com/san-kum/dlasim/internal/sim"
	"github.com/san-kum/dlasim/internal/vec"
)

var _ sim.Metric = (*FractalDimension)(nil)

// FractalDimension estimates D in N ~ R^D for a radial aggregate. After
// every seed it records the total seed count N and the furthest radius R
// reached so far, then fits log N against log R. Only the last pair for each
// radius is kept, since N keeps growing while R stands still.
type FractalDimension struct {
	name    string
	initial int
	count   int
	radius  float64
	radii   []float64
	counts  []float64
}

// NewFractalDimension counts initial seeds already present before the run,
// one for a Point aggregate.
func NewFractalDimension(initial int) *FractalDimension {
	return &FractalDimension{name: "fractal_dimension", initial: initial}
}

func (f *FractalDimension) Name() string { return f.name }

func (f *FractalDimension) Observe(_ int, seed vec.Vec2) {
	f.count++
	n := float64(f.initial + f.count)

	if r := seed.Magnitude(); r > f.radius {
		f.radius = r
		f.radii = append(f.radii, r)
		f.counts = append(f.counts, n)
		return
	}
	if len(f.counts) > 0 {
		f.counts[len(f.counts)-1] = n
	}
}

// Value is NaN until at least two distinct radii have been seen.
func (f *FractalDimension) Value() float64 {
	d, err := analysis.LogLogSlope(f.radii, f.counts)
	if err != nil {
		return math.NaN()
	}
	return d
}

// Pairs returns the recorded (R, N) pairs.
func (f *FractalDimension) Pairs() (radii, counts []float64) {
	return append([]float64(nil), f.radii...), append([]float64(nil), f.counts...)
}

func (f *FractalDimension) Reset() {
	f.count = 0
	f.radius = 0
	f.radii = f.radii[:0]
	f.counts = f.counts[:0]
}
