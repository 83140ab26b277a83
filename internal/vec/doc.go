// Package vec provides fixed-dimension real vectors used as lattice positions
// and hop directions.
//
// Dimensionality is part of the type: [Vec2] and [Vec3] are plain arrays, so
// construction from a literal with too many components does not compile and
// constant out-of-range indices are rejected by the compiler. Runtime indices
// go through [Vec2.Get] / [Vec2.Set], which report [ErrIndexOutOfRange].
//
// All arithmetic is element-wise and value-producing:
//
//	a := vec.Vec2{3, 4}
//	b := a.Add(vec.Vec2{1, 0}).Mul(vec.Vec2{1, 0.5})
//	_ = a.Magnitude() // 5
//
// Code that must work for any dimension is written against the [Vector]
// constraint.
package vec
