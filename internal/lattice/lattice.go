// Package lattice defines the lattices random walks hop on: a per-axis basis
// scale and an ordered set of unit translations in lattice units.
package lattice

import (
	"math"

	"github.com/san-kum/dlasim/internal/vec"
)

// Lattice is an immutable basis plus translation set for dimension V.
//
// The basis is applied element-wise, not as a change-of-basis matrix.
type Lattice[V vec.Vector[V]] struct {
	name         string
	basis        V
	translations []V
}

// New builds a lattice. translations must be non-empty.
func New[V vec.Vector[V]](name string, basis V, translations []V) Lattice[V] {
	if len(translations) == 0 {
		panic("lattice: translation set must not be empty")
	}
	ts := make([]V, len(translations))
	copy(ts, translations)
	return Lattice[V]{name: name, basis: basis, translations: ts}
}

func (l Lattice[V]) Name() string { return l.name }
func (l Lattice[V]) Basis() V     { return l.basis }
func (l Lattice[V]) Len() int     { return len(l.translations) }

// Translation returns the i-th hop direction; i must be in [0, Len()).
func (l Lattice[V]) Translation(i int) V { return l.translations[i] }

// Translations returns a copy of the hop directions in insertion order.
func (l Lattice[V]) Translations() []V {
	ts := make([]V, len(l.translations))
	copy(ts, l.translations)
	return ts
}

// ApplyBasis maps a lattice-unit vector to cartesian coordinates.
func (l Lattice[V]) ApplyBasis(v V) V {
	return l.basis.Mul(v)
}

var rowScale = math.Sqrt(3) / 2

// Triangular is the 2D triangular lattice with six neighbours.
func Triangular() Lattice[vec.Vec2] {
	return New("triangular", vec.Vec2{1, rowScale}, []vec.Vec2{
		{-0.5, 1},  //  a
		{0.5, -1},  // -a
		{0.5, 1},   //  b
		{-0.5, -1}, // -b
		{1, 0},     //  c
		{-1, 0},    // -c
	})
}

// Square is the 2D square lattice with four axis-aligned neighbours.
func Square() Lattice[vec.Vec2] {
	return New("square", vec.Vec2{1, 1}, []vec.Vec2{
		{0, 1},
		{0, -1},
		{1, 0},
		{-1, 0},
	})
}

// SimpleCubic is the 3D cubic lattice with six axis-aligned neighbours.
func SimpleCubic() Lattice[vec.Vec3] {
	return New("cubic", vec.Vec3{1, 1, 1}, []vec.Vec3{
		{0, 1, 0},
		{0, -1, 0},
		{1, 0, 0},
		{-1, 0, 0},
		{0, 0, 1},
		{0, 0, -1},
	})
}

// Hexagonal stacks the triangular hop set in the xy plane and adds a pair of
// hops along z. It is not a close-packed hexagonal lattice.
func Hexagonal() Lattice[vec.Vec3] {
	return New("hexagonal", vec.Vec3{1, rowScale, 1}, []vec.Vec3{
		{-0.5, 1, 0},
		{0.5, -1, 0},
		{0.5, 1, 0},
		{-0.5, -1, 0},
		{1, 0, 0},
		{-1, 0, 0},
		{0, 0, 1},
		{0, 0, -1},
	})
}
