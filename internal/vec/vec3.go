package vec

// Vec3 is a 3-dimensional vector.
type Vec3 [3]float64

func (v Vec3) Dim() int { return 3 }

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

func (v Vec3) Mul(w Vec3) Vec3 { return Vec3{v[0] * w[0], v[1] * w[1], v[2] * w[2]} }

func (v Vec3) Magnitude() float64 { return magnitude(v[:]) }

func (v Vec3) Equal(w Vec3) bool { return v == w }

func (v Vec3) ApproxEqual(w Vec3) bool { return v.Sub(w).Magnitude() < ApproxTolerance }

func (v Vec3) Get(i int) (float64, error) { return get(v[:], i) }

func (v *Vec3) Set(i int, x float64) error { return set(v[:], i, x) }

func (v Vec3) String() string { return format(v[:]) }

// Parse3 parses the String form of a Vec3.
func Parse3(s string) (Vec3, error) {
	var v Vec3
	err := parse(v[:], s)
	return v, err
}
