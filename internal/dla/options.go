package dla

type options struct {
	width         int
	height        int
	stickiness    float64
	initRadius    int
	halfWidth     int
	truncatedDraw bool
}

// Option configures NewPoint and NewLine.
type Option func(*options)

// WithStickiness sets the probability that a particle sticks on contact.
func WithStickiness(s float64) Option {
	return func(o *options) { o.stickiness = s }
}

// WithSize sets the box extents of a Point aggregate.
func WithSize(width, height int) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithInitRadius sets the minimum launch radius of a Point aggregate.
func WithInitRadius(r int) Option {
	return func(o *options) { o.initRadius = r }
}

// WithHalfWidth sets the half-width of a Line aggregate's seed line.
func WithHalfWidth(w int) Option {
	return func(o *options) { o.halfWidth = w }
}

// WithTruncatedDraw makes a Line aggregate compute its sticking draw with
// integer division, so the draw is 0 for all but one raw value and every
// contact sticks whenever stickiness > 0.
func WithTruncatedDraw(on bool) Option {
	return func(o *options) { o.truncatedDraw = on }
}

func buildOptions(opts []Option) options {
	o := options{
		width:      DefaultSize,
		height:     DefaultSize,
		stickiness: DefaultStickiness,
		initRadius: DefaultInitRadius,
		halfWidth:  DefaultHalfWidth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
