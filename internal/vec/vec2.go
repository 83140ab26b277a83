package vec

// Vec2 is a 2-dimensional vector.
type Vec2 [2]float64

func (v Vec2) Dim() int { return 2 }

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }

// Add returns the component-wise sum.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v[0] + w[0], v[1] + w[1]} }

// Sub returns the component-wise difference.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v[0] - w[0], v[1] - w[1]} }

// Mul returns the component-wise product.
func (v Vec2) Mul(w Vec2) Vec2 { return Vec2{v[0] * w[0], v[1] * w[1]} }

// Magnitude returns the Euclidean length.
func (v Vec2) Magnitude() float64 { return magnitude(v[:]) }

// Equal reports exact component-wise equality.
func (v Vec2) Equal(w Vec2) bool { return v == w }

// ApproxEqual reports whether |v - w| < ApproxTolerance.
func (v Vec2) ApproxEqual(w Vec2) bool { return v.Sub(w).Magnitude() < ApproxTolerance }

func (v Vec2) Get(i int) (float64, error) { return get(v[:], i) }

func (v *Vec2) Set(i int, x float64) error { return set(v[:], i, x) }

// String renders the components joined by ", ".
func (v Vec2) String() string { return format(v[:]) }

// Parse2 parses the String form of a Vec2.
func Parse2(s string) (Vec2, error) {
	var v Vec2
	err := parse(v[:], s)
	return v, err
}
