package dla

import (
	"context"
	"fmt"

	"github.com/san-kum/dlasim/internal/rng"
	"github.com/san-kum/dlasim/internal/vec"
)

const (
	DefaultHalfWidth = 200

	// pushBack is how far below the lowest seed a particle that strays past
	// LaunchMargin is returned to.
	pushBack = 10
)

// Line grows a front downward from the seeded line y = 0, x in
// [-halfWidth, halfWidth]. The engine's width is the half-width.
type Line struct {
	*Engine
	minY          float64
	truncatedDraw bool
}

// NewLine creates a front aggregate with 2*halfWidth+1 seeds on y = 0.
func NewLine(src *rng.Source, opts ...Option) (*Line, error) {
	o := buildOptions(opts)
	if o.halfWidth <= 0 {
		return nil, fmt.Errorf("%w: half-width %d", ErrBounds, o.halfWidth)
	}
	e, err := NewEngine(o.halfWidth, 0, o.stickiness, src)
	if err != nil {
		return nil, err
	}
	l := &Line{Engine: e, truncatedDraw: o.truncatedDraw}
	l.init()
	return l, nil
}

func (l *Line) init() {
	for x := -l.width; x <= l.width; x++ {
		l.AddSeed(vec.Vec2{float64(x), 0})
	}
}

// HighestPoint is the lowest seed y seen so far; growth runs toward -y, so it
// never increases.
func (l *Line) HighestPoint() float64 { return l.minY }

func (l *Line) TruncatedDraw() bool { return l.truncatedDraw }

func (l *Line) Next(ctx context.Context, walk Stepper) (vec.Vec2, error) {
	return l.Simulate(ctx, walk)
}

// Simulate launches at a uniform integer x in [-w, w) and y = HighestPoint -
// LaunchMargin. x wraps at ±w; a particle that drifts below the launch depth
// is pushed back up toward the front.
func (l *Line) Simulate(ctx context.Context, walk Stepper) (vec.Vec2, error) {
	if len(l.seeds) == 0 {
		return vec.Vec2{}, nil
	}
	if l.width <= 0 {
		return vec.Vec2{}, fmt.Errorf("%w: half-width %d", ErrBounds, l.width)
	}
	x := l.src.Raw()%(2*l.width) - l.width
	start := vec.Vec2{float64(x), l.minY - LaunchMargin}

	draw := l.src.Float64
	if l.truncatedDraw {
		draw = l.src.Truncated
	}

	seed, err := l.aggregate(ctx, start, walk, l.bound, draw)
	if err != nil {
		return seed, err
	}
	if seed[1] < l.minY {
		l.minY = seed[1]
	}
	return seed, nil
}

func (l *Line) bound(p *vec.Vec2) {
	w := float64(l.width)
	if p[0] > w {
		p[0] = -w
	}
	if p[0] < -w {
		p[0] = w
	}
	if p[1] < l.minY-LaunchMargin {
		p[1] = l.minY - pushBack
	}
}
