package metrics

import (
	"math"

	"github.com/san-kum/dlasim/internal/sim"
	"github.com/san-kum/dlasim/internal/vec"
)

var (
	_ sim.Metric = (*SeedCount)(nil)
	_ sim.Metric = (*FurthestRadius)(nil)
	_ sim.Metric = (*MinY)(nil)
)

// SeedCount counts seeds placed during the run.
type SeedCount struct {
	name  string
	count int
}

func NewSeedCount() *SeedCount {
	return &SeedCount{name: "seeds"}
}

func (s *SeedCount) Name() string              { return s.name }
func (s *SeedCount) Observe(_ int, _ vec.Vec2) { s.count++ }
func (s *SeedCount) Value() float64            { return float64(s.count) }
func (s *SeedCount) Reset()                    { s.count = 0 }

// FurthestRadius tracks the largest seed distance from the origin.
type FurthestRadius struct {
	name   string
	radius float64
}

func NewFurthestRadius() *FurthestRadius {
	return &FurthestRadius{name: "furthest_radius"}
}

func (f *FurthestRadius) Name() string { return f.name }

func (f *FurthestRadius) Observe(_ int, seed vec.Vec2) {
	f.radius = math.Max(f.radius, seed.Magnitude())
}

func (f *FurthestRadius) Value() float64 { return f.radius }
func (f *FurthestRadius) Reset()         { f.radius = 0 }

// MinY tracks the lowest seed y, the advancing edge of a line front. It
// starts at the seeded line y = 0.
type MinY struct {
	name string
	minY float64
}

func NewMinY() *MinY {
	return &MinY{name: "min_y"}
}

func (m *MinY) Name() string { return m.name }

func (m *MinY) Observe(_ int, seed vec.Vec2) {
	m.minY = math.Min(m.minY, seed[1])
}

func (m *MinY) Value() float64 { return m.minY }
func (m *MinY) Reset()         { m.minY = 0 }
