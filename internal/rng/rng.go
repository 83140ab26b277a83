// Package rng provides the single pseudo-random source shared by walks and
// aggregation engines within one process.
//
// A Source is constructed once (usually in main) and handed by reference to
// every consumer. It is never reseeded after construction.
//
// Thread-safety: NOT thread-safe. Must be used from a single goroutine.
package rng

import (
	"math"
	"math/rand"
	"time"
)

// MaxRaw is the largest value returned by Source.Raw.
const MaxRaw = math.MaxInt32

// Source wraps a seeded *rand.Rand and remembers its seed for run metadata.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New creates a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// NewFromClock creates a Source seeded from the wall clock.
func NewFromClock() *Source {
	return New(ClockSeed())
}

// ClockSeed returns a wall-clock derived seed.
func ClockSeed() int64 {
	return time.Now().UnixNano()
}

// Seed returns the seed this Source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Raw returns a uniform integer in [0, MaxRaw].
//
// Callers reduce it modulo a range size where a small bias toward low
// values is acceptable (translation and launch sampling).
func (s *Source) Raw() int {
	return int(s.r.Int31())
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Angle returns a uniform angle in [0, 2π).
func (s *Source) Angle() float64 {
	return s.r.Float64() * 2 * math.Pi
}

// Truncated returns Raw()/MaxRaw computed in integer arithmetic: 0 for every
// draw except MaxRaw itself, which yields 1.
func (s *Source) Truncated() float64 {
	return float64(s.Raw() / MaxRaw)
}
