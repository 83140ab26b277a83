package dla

import (
	"github.com/san-kum/dlasim/internal/vec"
)

// scripted is a Stepper whose i-th hop is fn(i).
type scripted struct {
	fn    func(i int) vec.Vec2
	calls int
}

func (s *scripted) Step() vec.Vec2 {
	v := s.fn(s.calls)
	s.calls++
	return v
}

func constant(v vec.Vec2) *scripted {
	return &scripted{fn: func(int) vec.Vec2 { return v }}
}

// oscillate steps by first, then alternates -first, first, ...
func oscillate(first vec.Vec2) *scripted {
	back := vec.Vec2{}.Sub(first)
	return &scripted{fn: func(i int) vec.Vec2 {
		if i%2 == 0 {
			return first
		}
		return back
	}}
}

// climb steps up n times, then alternates down, up, ...
func climb(n int) *scripted {
	return &scripted{fn: func(i int) vec.Vec2 {
		if i < n || (i-n)%2 == 1 {
			return vec.Vec2{0, 1}
		}
		return vec.Vec2{0, -1}
	}}
}

func nearSomeSeed(p vec.Vec2, seeds []vec.Vec2) bool {
	for _, s := range seeds {
		if s.Sub(p).Magnitude() < StickDistance {
			return true
		}
	}
	return false
}

func grid(e *Engine, half int) {
	for x := -half; x <= half; x++ {
		for y := -half; y <= half; y++ {
			e.AddSeed(vec.Vec2{float64(x), float64(y)})
		}
	}
}

// ring adds a seed at every integer point whose distance from the origin
// lies in [lo, hi].
func ring(e *Engine, lo, hi int) {
	for x := -hi; x <= hi; x++ {
		for y := -hi; y <= hi; y++ {
			p := vec.Vec2{float64(x), float64(y)}
			if r := p.Magnitude(); r >= float64(lo) && r <= float64(hi) {
				e.AddSeed(p)
			}
		}
	}
}
