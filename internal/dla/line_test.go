package dla

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dlasim/internal/lattice"
	"github.com/san-kum/dlasim/internal/rng"
	"github.com/san-kum/dlasim/internal/vec"
	"github.com/san-kum/dlasim/internal/walk"
)

var _ = Describe("Line", func() {
	var (
		ctx context.Context
		src *rng.Source
	)

	BeforeEach(func() {
		ctx = context.Background()
		src = rng.New(11)
	})

	It("seeds the full integer line", func() {
		l, err := NewLine(src, WithHalfWidth(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(l.Seeds()).To(Equal([]vec.Vec2{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0}}))
		Expect(l.HighestPoint()).To(Equal(0.0))
		Expect(l.Width()).To(Equal(2))
		Expect(l.Height()).To(Equal(0))
	})

	It("defaults to a half-width of 200", func() {
		l, err := NewLine(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(l.SeedCount()).To(Equal(2*DefaultHalfWidth + 1))
		Expect(l.TruncatedDraw()).To(BeFalse())
	})

	It("rejects a non-positive half-width", func() {
		_, err := NewLine(src, WithHalfWidth(0))
		Expect(err).To(MatchError(ErrBounds))
	})

	Describe("bound", func() {
		var l *Line

		BeforeEach(func() {
			l, _ = NewLine(src, WithHalfWidth(2))
		})

		It("wraps x at the half-width", func() {
			p := vec.Vec2{3, -5}
			l.bound(&p)
			Expect(p).To(Equal(vec.Vec2{-2, -5}))

			p = vec.Vec2{-2.5, -5}
			l.bound(&p)
			Expect(p).To(Equal(vec.Vec2{2, -5}))

			p = vec.Vec2{2, -5}
			l.bound(&p)
			Expect(p).To(Equal(vec.Vec2{2, -5}))
		})

		It("pushes stray particles back toward the front", func() {
			p := vec.Vec2{0, -51}
			l.bound(&p)
			Expect(p).To(Equal(vec.Vec2{0, -10}))

			p = vec.Vec2{0, -50}
			l.bound(&p)
			Expect(p).To(Equal(vec.Vec2{0, -50}))
		})
	})

	It("launches below the front and lowers it", func() {
		l, _ := NewLine(src, WithHalfWidth(5))
		s := constant(vec.Vec2{0, 1})

		got, err := l.Simulate(ctx, s)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.calls).To(Equal(49))
		Expect(got[1]).To(Equal(-1.0))
		Expect(got[0]).To(BeNumerically(">=", -5))
		Expect(got[0]).To(BeNumerically("<", 5))
		Expect(l.HighestPoint()).To(Equal(-1.0))

		// the next launch starts LaunchMargin below the new front
		s = constant(vec.Vec2{0, 1})
		got, err = l.Next(ctx, s)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.calls).To(BeNumerically("<=", 50))
		Expect(l.SeedCount()).To(Equal(13))
		Expect(l.HighestPoint()).To(BeNumerically("<=", -1))
		Expect(got[1]).To(BeNumerically("<=", 0))
	})

	Describe("sticking draw", func() {
		const stickiness = 0.3

		firstContactRate := func(truncated bool, trials int) float64 {
			first := 0
			for i := 0; i < trials; i++ {
				l, err := NewLine(src, WithHalfWidth(5), WithStickiness(stickiness), WithTruncatedDraw(truncated))
				Expect(err).NotTo(HaveOccurred())
				s := climb(49)
				got, err := l.Simulate(ctx, s)
				Expect(err).NotTo(HaveOccurred())
				Expect(got[1]).To(Equal(-1.0))
				if s.calls == 49 {
					first++
				}
			}
			return float64(first) / float64(trials)
		}

		It("is real-valued by default", func() {
			Expect(firstContactRate(false, 3000)).To(BeNumerically("~", stickiness, 0.04))
		})

		It("always sticks on contact when truncated", func() {
			Expect(firstContactRate(true, 200)).To(Equal(1.0))
		})

		It("never sticks with zero stickiness even when truncated", func() {
			l, _ := NewLine(src, WithHalfWidth(3), WithStickiness(0), WithTruncatedDraw(true))
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			s := climb(49)
			inner := s.fn
			s.fn = func(i int) vec.Vec2 {
				if i == 500 {
					cancel()
				}
				return inner(i)
			}
			_, err := l.Simulate(cctx, s)
			Expect(err).To(MatchError(context.Canceled))
			Expect(l.SeedCount()).To(Equal(7))
		})
	})

	It("grows a front on a real walk", func() {
		l, _ := NewLine(src, WithHalfWidth(20))
		w := walk.New(lattice.Square(), src)

		prev := l.HighestPoint()
		for i := 0; i < 25; i++ {
			before := l.Seeds()
			got, err := l.Next(ctx, w)
			Expect(err).NotTo(HaveOccurred())
			w.Reset()

			Expect(nearSomeSeed(got, before)).To(BeTrue())
			// contact is tested before the wrap, so a seed may sit one hop outside
			Expect(got[0]).To(BeNumerically(">=", -21))
			Expect(got[0]).To(BeNumerically("<=", 21))
			Expect(l.HighestPoint()).To(BeNumerically("<=", prev))
			if got[1] < prev {
				Expect(l.HighestPoint()).To(Equal(got[1]))
			}
			prev = l.HighestPoint()
		}
		Expect(l.SeedCount()).To(Equal(41 + 25))
	})
})
