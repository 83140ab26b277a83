// Package walk generates random walks on a lattice and computes their
// displacement statistics.
package walk

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/dlasim/internal/lattice"
	"github.com/san-kum/dlasim/internal/rng"
	"github.com/san-kum/dlasim/internal/vec"
)

// Walk is an ordered sequence of steps drawn from one lattice's translation
// set. Steps are stored in lattice units until ApplyBasis is called.
type Walk[V vec.Vector[V]] struct {
	lattice lattice.Lattice[V]
	src     *rng.Source
	steps   []V
}

// New creates an empty walk on lat drawing from src.
func New[V vec.Vector[V]](lat lattice.Lattice[V], src *rng.Source) *Walk[V] {
	return &Walk[V]{lattice: lat, src: src}
}

func (w *Walk[V]) Lattice() lattice.Lattice[V] { return w.lattice }
func (w *Walk[V]) Len() int                    { return len(w.steps) }

// At returns the i-th stored step; i must be in [0, Len()).
func (w *Walk[V]) At(i int) V { return w.steps[i] }

// Steps returns a copy of the stored steps.
func (w *Walk[V]) Steps() []V {
	out := make([]V, len(w.steps))
	copy(out, w.steps)
	return out
}

// Generate replaces the walk with length independent uniform hops.
func (w *Walk[V]) Generate(length int) (*Walk[V], error) {
	if length < 0 {
		return w, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	w.steps = w.steps[:0]
	if cap(w.steps) < length {
		w.steps = make([]V, 0, length)
	}
	for i := 0; i < length; i++ {
		w.steps = append(w.steps, w.sample())
	}
	return w, nil
}

// Step appends one uniform hop and returns it.
func (w *Walk[V]) Step() V {
	s := w.sample()
	w.steps = append(w.steps, s)
	return s
}

func (w *Walk[V]) sample() V {
	return w.lattice.Translation(w.src.Raw() % w.lattice.Len())
}

// Reset drops all stored steps, keeping the allocation.
func (w *Walk[V]) Reset() {
	w.steps = w.steps[:0]
}

// ApplyBasis scales every stored step by the lattice basis in place. Calling
// it twice scales twice.
func (w *Walk[V]) ApplyBasis() *Walk[V] {
	for i, s := range w.steps {
		w.steps[i] = w.lattice.ApplyBasis(s)
	}
	return w
}

// Distance is the straight-line displacement from the first to the last
// position of the walk.
func (w *Walk[V]) Distance() float64 {
	d, _ := w.DistanceBetween(0, len(w.steps))
	return d
}

// DistanceBetween is the magnitude of the sum of steps in [start, end).
func (w *Walk[V]) DistanceBetween(start, end int) (float64, error) {
	if start < 0 || end > len(w.steps) || start > end {
		return 0, fmt.Errorf("%w: [%d, %d) of %d", ErrRange, start, end, len(w.steps))
	}
	var sum V
	for _, s := range w.steps[start:end] {
		sum = sum.Add(s)
	}
	return sum.Magnitude(), nil
}

// Accumulate returns a new walk on the same lattice whose i-th element is the
// sum of the first i+1 steps of w.
func (w *Walk[V]) Accumulate() *Walk[V] {
	out := &Walk[V]{lattice: w.lattice, src: w.src, steps: make([]V, 0, len(w.steps))}
	var total V
	for _, s := range w.steps {
		total = total.Add(s)
		out.steps = append(out.steps, total)
	}
	return out
}

// String renders one step per line, components joined by ", ".
func (w *Walk[V]) String() string {
	var sb strings.Builder
	_, _ = w.WriteTo(&sb)
	return sb.String()
}

// CSV is the String form; each row is a step, each column a component.
func (w *Walk[V]) CSV() string {
	return w.String()
}

// WriteTo writes the String form to out.
func (w *Walk[V]) WriteTo(out io.Writer) (int64, error) {
	var n int64
	for _, s := range w.steps {
		m, err := io.WriteString(out, s.String()+"\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
