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

var _ = Describe("Engine", func() {
	var (
		ctx context.Context
		src *rng.Source
	)

	BeforeEach(func() {
		ctx = context.Background()
		src = rng.New(42)
	})

	Describe("NewEngine", func() {
		It("rejects stickiness outside [0, 1]", func() {
			for _, s := range []float64{-0.1, 1.01} {
				_, err := NewEngine(10, 10, s, src)
				Expect(err).To(MatchError(ErrStickiness))
			}
		})

		It("rejects negative extents", func() {
			_, err := NewEngine(-1, 10, 1, src)
			Expect(err).To(MatchError(ErrBounds))
		})

		It("starts empty with the given parameters", func() {
			e, err := NewEngine(30, 20, 0.5, src)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.SeedCount()).To(Equal(0))
			Expect(e.Width()).To(Equal(30))
			Expect(e.Height()).To(Equal(20))
			Expect(e.Stickiness()).To(Equal(0.5))
		})
	})

	Describe("CloseToSeed", func() {
		var e *Engine

		BeforeEach(func() {
			var err error
			e, err = NewEngine(10, 10, 1, src)
			Expect(err).NotTo(HaveOccurred())
			e.AddSeed(vec.Vec2{0, 0})
		})

		DescribeTable("distance to a seed at the origin",
			func(p vec.Vec2, want bool) {
				Expect(e.CloseToSeed(p)).To(Equal(want))
			},
			Entry("cardinal neighbour", vec.Vec2{1, 0}, true),
			Entry("diagonal neighbour", vec.Vec2{1, 1}, true),
			Entry("two away", vec.Vec2{2, 0}, false),
			Entry("exactly 1.5 away", vec.Vec2{1.5, 0}, false),
			Entry("on the seed", vec.Vec2{0, 0}, true),
		)

		It("is false with no seeds", func() {
			empty, _ := NewEngine(10, 10, 1, src)
			Expect(empty.CloseToSeed(vec.Vec2{})).To(BeFalse())
		})
	})

	Describe("wrapAxis", func() {
		It("teleports coordinates strictly past the edge", func() {
			Expect(wrapAxis(5.1, 10/2)).To(Equal(-5.0))
			Expect(wrapAxis(-5.1, 10/2)).To(Equal(5.0))
		})

		It("leaves the edge itself untouched", func() {
			Expect(wrapAxis(5.0, 5)).To(Equal(5.0))
			Expect(wrapAxis(-5.0, 5)).To(Equal(-5.0))
			Expect(wrapAxis(0.5, 5)).To(Equal(0.5))
		})

		It("uses the truncated half of an odd extent", func() {
			Expect(wrapAxis(5.5, 11/2)).To(Equal(-5.0))
		})
	})

	Describe("with no seeds", func() {
		It("returns the origin without stepping or mutating", func() {
			e, _ := NewEngine(0, 0, 1, src)
			s := constant(vec.Vec2{1, 0})

			got, err := e.Simulate(ctx, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(vec.Vec2{}))

			got, err = e.SimulateWithin(ctx, vec.Vec2{3, 3}, s, 10, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(vec.Vec2{}))

			Expect(s.calls).To(Equal(0))
			Expect(e.SeedCount()).To(Equal(0))
		})
	})

	Describe("SimulateWithin", func() {
		It("sticks on the first contact when stickiness is 1", func() {
			e, _ := NewEngine(100, 100, 1, src)
			e.AddSeed(vec.Vec2{})
			s := constant(vec.Vec2{-1, 0})

			got, err := e.SimulateWithin(ctx, vec.Vec2{3, 0}, s, 100, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(vec.Vec2{1, 0}))
			Expect(s.calls).To(Equal(2))
			Expect(e.Seeds()).To(Equal([]vec.Vec2{{0, 0}, {1, 0}}))
		})

		It("wraps a particle around the box", func() {
			e, _ := NewEngine(10, 10, 1, src)
			e.AddSeed(vec.Vec2{-4, 0})
			s := constant(vec.Vec2{1, 0})

			// 4 -> 5 stays on the edge, 6 wraps to -5 which touches (-4, 0)
			got, err := e.SimulateFrom(ctx, vec.Vec2{4, 0}, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(vec.Vec2{-4, 0}))
			Expect(s.calls).To(Equal(3))
		})

		It("accepts at a rate converging to the stickiness", func() {
			const trials = 4000
			const stickiness = 0.3

			contacts := 0
			for i := 0; i < trials; i++ {
				e, _ := NewEngine(100, 100, stickiness, src)
				e.AddSeed(vec.Vec2{})
				s := oscillate(vec.Vec2{-1, 0})

				got, err := e.SimulateWithin(ctx, vec.Vec2{2, 0}, s, 100, 100)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(vec.Vec2{1, 0}))
				contacts += (s.calls + 1) / 2
			}
			Expect(float64(trials) / float64(contacts)).To(BeNumerically("~", stickiness, 0.03))
		})

		It("stops when the context is cancelled", func() {
			e, _ := NewEngine(10, 10, 0, src)
			e.AddSeed(vec.Vec2{})

			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			s := &scripted{}
			s.fn = func(i int) vec.Vec2 {
				if i == 1000 {
					cancel()
				}
				return vec.Vec2{1, 0}
			}

			_, err := e.SimulateWithin(cctx, vec.Vec2{}, s, 10, 10)
			Expect(err).To(MatchError(context.Canceled))
			Expect(e.SeedCount()).To(Equal(1))
		})
	})

	Describe("Simulate", func() {
		It("launches on integer points inside the box", func() {
			e, _ := NewEngine(10, 10, 1, src)
			grid(e, 6)
			for i := 0; i < 200; i++ {
				got, err := e.Simulate(ctx, constant(vec.Vec2{}))
				Expect(err).NotTo(HaveOccurred())
				for _, c := range got {
					Expect(c).To(BeNumerically(">=", -5))
					Expect(c).To(BeNumerically("<", 5))
					Expect(c).To(Equal(float64(int(c))))
				}
			}
		})

		It("needs a non-empty box", func() {
			e, _ := NewEngine(10, 0, 1, src)
			e.AddSeed(vec.Vec2{})
			_, err := e.Simulate(ctx, constant(vec.Vec2{}))
			Expect(err).To(MatchError(ErrBounds))
		})

		It("grows a connected aggregate on a real walk", func() {
			e, _ := NewEngine(40, 40, 1, src)
			e.AddSeed(vec.Vec2{})
			w := walk.New(lattice.Square(), src)

			for i := 0; i < 15; i++ {
				before := e.Seeds()
				got, err := e.Next(ctx, w)
				Expect(err).NotTo(HaveOccurred())
				Expect(e.SeedCount()).To(Equal(len(before) + 1))
				Expect(nearSomeSeed(got, before)).To(BeTrue())
				w.Reset()
			}
		})
	})
})
