package dla

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/dlasim/internal/rng"
	"github.com/san-kum/dlasim/internal/vec"
)

const (
	// StickDistance is the exclusive distance under which a particle touches
	// a seed. It admits cardinal and diagonal unit neighbours.
	StickDistance = 1.5

	// LaunchMargin is the clearance kept between the structure and launch points.
	LaunchMargin = 50

	DefaultSize       = 1000
	DefaultStickiness = 1.0
)

// Stepper yields one random hop per call. *walk.Walk[vec.Vec2] satisfies it.
type Stepper interface {
	Step() vec.Vec2
}

// Aggregator is one growth mode. Next simulates a single particle until it
// sticks and returns the new seed.
type Aggregator interface {
	Next(ctx context.Context, walk Stepper) (vec.Vec2, error)
	Seeds() []vec.Vec2
	SeedCount() int
}

var (
	_ Aggregator = (*Engine)(nil)
	_ Aggregator = (*Point)(nil)
	_ Aggregator = (*Line)(nil)
)

// Engine holds the seed set and the proximity, acceptance and wraparound
// rules shared by every growth mode.
type Engine struct {
	width      int
	height     int
	stickiness float64
	seeds      []vec.Vec2
	src        *rng.Source
}

// NewEngine creates an engine with an empty seed set. width and height are
// the wrap extents of a box centred on the origin.
func NewEngine(width, height int, stickiness float64, src *rng.Source) (*Engine, error) {
	if err := validateStickiness(stickiness); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBounds, width, height)
	}
	return &Engine{
		width:      width,
		height:     height,
		stickiness: stickiness,
		src:        src,
	}, nil
}

func validateStickiness(s float64) error {
	if math.IsNaN(s) || s < 0 || s > 1 {
		return fmt.Errorf("%w: got %v", ErrStickiness, s)
	}
	return nil
}

func (e *Engine) Width() int           { return e.width }
func (e *Engine) Height() int          { return e.height }
func (e *Engine) SetWidth(width int)   { e.width = width }
func (e *Engine) SetHeight(height int) { e.height = height }
func (e *Engine) Stickiness() float64  { return e.stickiness }
func (e *Engine) SeedCount() int       { return len(e.seeds) }

// Seeds returns a copy of the seeds in growth order.
func (e *Engine) Seeds() []vec.Vec2 {
	out := make([]vec.Vec2, len(e.seeds))
	copy(out, e.seeds)
	return out
}

// AddSeed appends a seed. Seeds are never removed.
func (e *Engine) AddSeed(seed vec.Vec2) {
	e.seeds = append(e.seeds, seed)
}

// CloseToSeed reports whether any seed lies strictly within StickDistance of p.
func (e *Engine) CloseToSeed(p vec.Vec2) bool {
	for _, s := range e.seeds {
		if s.Sub(p).Magnitude() < StickDistance {
			return true
		}
	}
	return false
}

// Next launches a particle uniformly inside the engine's box.
func (e *Engine) Next(ctx context.Context, walk Stepper) (vec.Vec2, error) {
	return e.Simulate(ctx, walk)
}

// Simulate launches from a uniformly drawn integer point in
// [-width/2, width/2) x [-height/2, height/2) and wraps at the engine's box.
// With no seeds it returns the origin without drawing.
func (e *Engine) Simulate(ctx context.Context, walk Stepper) (vec.Vec2, error) {
	if len(e.seeds) == 0 {
		return vec.Vec2{}, nil
	}
	if e.width <= 0 || e.height <= 0 {
		return vec.Vec2{}, fmt.Errorf("%w: cannot launch inside %dx%d", ErrBounds, e.width, e.height)
	}
	x := e.src.Raw()%e.width - e.width/2
	y := e.src.Raw()%e.height - e.height/2
	return e.SimulateFrom(ctx, vec.Vec2{float64(x), float64(y)}, walk)
}

// SimulateFrom walks from initial, wrapping at the engine's box.
func (e *Engine) SimulateFrom(ctx context.Context, initial vec.Vec2, walk Stepper) (vec.Vec2, error) {
	return e.SimulateWithin(ctx, initial, walk, e.width, e.height)
}

// SimulateWithin walks from initial until the particle sticks. A coordinate
// strictly beyond half of its boundary extent teleports to the opposite edge.
// With no seeds it returns the origin and leaves all state untouched.
func (e *Engine) SimulateWithin(ctx context.Context, initial vec.Vec2, walk Stepper, xBoundary, yBoundary int) (vec.Vec2, error) {
	if len(e.seeds) == 0 {
		return vec.Vec2{}, nil
	}
	halfX, halfY := xBoundary/2, yBoundary/2
	wrap := func(p *vec.Vec2) {
		p[0] = wrapAxis(p[0], halfX)
		p[1] = wrapAxis(p[1], halfY)
	}
	return e.aggregate(ctx, initial, walk, wrap, e.src.Float64)
}

func wrapAxis(x float64, half int) float64 {
	h := float64(half)
	if x > h {
		return -h
	}
	if x < -h {
		return h
	}
	return x
}

// aggregate is the per-particle loop: step, test proximity, maybe stick,
// otherwise apply the mode's boundary rule.
func (e *Engine) aggregate(ctx context.Context, current vec.Vec2, walk Stepper, bound func(*vec.Vec2), draw func() float64) (vec.Vec2, error) {
	for {
		select {
		case <-ctx.Done():
			return vec.Vec2{}, ctx.Err()
		default:
		}

		current = current.Add(walk.Step())

		if e.CloseToSeed(current) && e.accept(draw) {
			e.seeds = append(e.seeds, current)
			return current, nil
		}

		bound(&current)
	}
}

func (e *Engine) accept(draw func() float64) bool {
	if e.stickiness == 1 {
		return true
	}
	return draw() < e.stickiness
}
