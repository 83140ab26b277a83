package dla

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/dlasim/internal/rng"
	"github.com/san-kum/dlasim/internal/vec"
)

const DefaultInitRadius = 10

// Point grows radially from a single seed at the origin.
type Point struct {
	*Engine
	initRadius     int
	furthestRadius float64
}

// NewPoint creates a radial aggregate seeded with the origin.
func NewPoint(src *rng.Source, opts ...Option) (*Point, error) {
	o := buildOptions(opts)
	if o.initRadius < 0 {
		return nil, fmt.Errorf("%w: init radius %d", ErrRadius, o.initRadius)
	}
	e, err := NewEngine(o.width, o.height, o.stickiness, src)
	if err != nil {
		return nil, err
	}
	e.AddSeed(vec.Vec2{})
	return &Point{Engine: e, initRadius: o.initRadius}, nil
}

func (p *Point) InitRadius() int { return p.initRadius }

// FurthestRadius is the largest seed distance from the origin seen by
// SimulateAtRadius so far. It never decreases.
func (p *Point) FurthestRadius() float64 { return p.furthestRadius }

// StructureRadius scans every seed for the largest distance from the origin.
func (p *Point) StructureRadius() float64 {
	furthest := 0.0
	for _, s := range p.seeds {
		if r := s.Magnitude(); r > furthest {
			furthest = r
		}
	}
	return furthest
}

// Next launches just outside the current structure.
func (p *Point) Next(ctx context.Context, walk Stepper) (vec.Vec2, error) {
	return p.SimulateInRadius(ctx, walk)
}

// SimulateInRadius launches at max(FurthestRadius, InitRadius) + LaunchMargin.
func (p *Point) SimulateInRadius(ctx context.Context, walk Stepper) (vec.Vec2, error) {
	r := int(math.Max(p.furthestRadius, float64(p.initRadius)))
	return p.SimulateAtRadius(ctx, walk, r+LaunchMargin)
}

// SimulateAtRadius launches at a uniform angle on the circle of the given
// radius, wraps inside a square box circumscribing that circle with
// LaunchMargin of slack, and updates FurthestRadius with the new seed.
func (p *Point) SimulateAtRadius(ctx context.Context, walk Stepper, radius int) (vec.Vec2, error) {
	if radius < 0 {
		return vec.Vec2{}, fmt.Errorf("%w: %d", ErrRadius, radius)
	}
	angle := p.src.Angle()
	start := vec.Vec2{
		float64(int(float64(radius) * math.Cos(angle))),
		float64(int(float64(radius) * math.Sin(angle))),
	}
	boundary := launchBoundary(radius)

	seed, err := p.SimulateWithin(ctx, start, walk, boundary, boundary)
	if err != nil {
		return seed, err
	}
	if r := seed.Magnitude(); r > p.furthestRadius {
		p.furthestRadius = r
	}
	return seed, nil
}

// launchBoundary is the side of the square wrap box for a launch circle of
// the given radius: the circle plus LaunchMargin, circumscribed.
func launchBoundary(radius int) int {
	return int(math.Ceil(math.Sqrt2 * float64(radius+LaunchMargin)))
}
