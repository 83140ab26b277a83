package dla

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dlasim/internal/lattice"
	"github.com/san-kum/dlasim/internal/rng"
	"github.com/san-kum/dlasim/internal/vec"
	"github.com/san-kum/dlasim/internal/walk"
)

var _ = Describe("Point", func() {
	var (
		ctx context.Context
		src *rng.Source
	)

	BeforeEach(func() {
		ctx = context.Background()
		src = rng.New(7)
	})

	It("starts with a single seed at the origin", func() {
		p, err := NewPoint(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Seeds()).To(Equal([]vec.Vec2{{0, 0}}))
		Expect(p.FurthestRadius()).To(Equal(0.0))
		Expect(p.StructureRadius()).To(Equal(0.0))
		Expect(p.InitRadius()).To(Equal(DefaultInitRadius))
		Expect(p.Width()).To(Equal(DefaultSize))
		Expect(p.Height()).To(Equal(DefaultSize))
		Expect(p.Stickiness()).To(Equal(1.0))
	})

	It("applies options", func() {
		p, err := NewPoint(src, WithStickiness(0.25), WithInitRadius(4), WithSize(300, 200))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Stickiness()).To(Equal(0.25))
		Expect(p.InitRadius()).To(Equal(4))
		Expect(p.Width()).To(Equal(300))
		Expect(p.Height()).To(Equal(200))
	})

	It("validates options", func() {
		_, err := NewPoint(src, WithInitRadius(-1))
		Expect(err).To(MatchError(ErrRadius))
		_, err = NewPoint(src, WithStickiness(2))
		Expect(err).To(MatchError(ErrStickiness))
	})

	It("launches on the requested circle with truncated coordinates", func() {
		p, _ := NewPoint(src)
		grid(p.Engine, 4)

		prev := p.FurthestRadius()
		for i := 0; i < 50; i++ {
			got, err := p.SimulateAtRadius(ctx, constant(vec.Vec2{}), 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Magnitude()).To(BeNumerically("<=", 3))
			Expect(got[0]).To(Equal(float64(int(got[0]))))
			Expect(got[1]).To(Equal(float64(int(got[1]))))

			Expect(p.FurthestRadius()).To(Equal(math.Max(prev, got.Magnitude())))
			prev = p.FurthestRadius()
		}
	})

	It("rejects a negative radius", func() {
		p, _ := NewPoint(src)
		_, err := p.SimulateAtRadius(ctx, constant(vec.Vec2{}), -1)
		Expect(err).To(MatchError(ErrRadius))
	})

	It("grows radially with a monotonic furthest radius", func() {
		p, _ := NewPoint(src, WithInitRadius(2))
		w := walk.New(lattice.Square(), src)

		prev := 0.0
		for i := 0; i < 20; i++ {
			before := p.Seeds()
			got, err := p.Next(ctx, w)
			Expect(err).NotTo(HaveOccurred())
			w.Reset()

			Expect(p.SeedCount()).To(Equal(len(before) + 1))
			Expect(nearSomeSeed(got, before)).To(BeTrue())

			want := prev
			if got.Magnitude() > prev {
				want = got.Magnitude()
			}
			Expect(p.FurthestRadius()).To(Equal(want))
			prev = p.FurthestRadius()
		}
		Expect(p.FurthestRadius()).To(Equal(p.StructureRadius()))
	})

	Describe("launch radius", func() {
		// A motionless particle sticks where it launches when a ring of
		// seeds covers the launch circle.
		launch := func(p *Point) float64 {
			got, err := p.SimulateInRadius(ctx, constant(vec.Vec2{}))
			Expect(err).NotTo(HaveOccurred())
			return got.Magnitude()
		}

		It("uses the init radius plus the margin while the structure is small", func() {
			for i := 0; i < 10; i++ {
				p, _ := NewPoint(src)
				ring(p.Engine, 55, 65)
				Expect(p.FurthestRadius()).To(BeNumerically("<=", p.InitRadius()))

				Expect(launch(p)).To(BeNumerically("~", 60, 1.5))
				Expect(p.FurthestRadius()).To(BeNumerically("~", 60, 1.5))
			}
		})

		It("follows the furthest radius once it passes the init radius", func() {
			for i := 0; i < 10; i++ {
				p, _ := NewPoint(src)
				ring(p.Engine, 65, 75)
				p.furthestRadius = 20

				Expect(launch(p)).To(BeNumerically("~", 70, 1.5))
			}
		})

		It("uses a larger init radius over a smaller furthest radius", func() {
			p, _ := NewPoint(src, WithInitRadius(30))
			ring(p.Engine, 75, 85)
			p.furthestRadius = 20

			Expect(launch(p)).To(BeNumerically("~", 80, 1.5))
		})
	})

	Describe("launch boundary", func() {
		It("circumscribes the launch circle plus the margin", func() {
			Expect(launchBoundary(0)).To(Equal(71))
			Expect(launchBoundary(10)).To(Equal(85))
			Expect(launchBoundary(60)).To(Equal(156))
		})

		It("wraps a particle at half the boundary", func() {
			p, _ := NewPoint(src)
			p.AddSeed(vec.Vec2{-36, 0})
			hop := &scripted{fn: func(i int) vec.Vec2 {
				if i == 0 {
					return vec.Vec2{40, 0}
				}
				return vec.Vec2{}
			}}

			got, err := p.SimulateAtRadius(ctx, hop, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(vec.Vec2{-35, 0}))
			Expect(hop.calls).To(Equal(2))
		})
	})

	It("grows on the triangular lattice", func() {
		p, _ := NewPoint(src)
		w := walk.New(lattice.Triangular(), src)
		for i := 0; i < 5; i++ {
			_, err := p.SimulateInRadius(ctx, w)
			Expect(err).NotTo(HaveOccurred())
			w.Reset()
		}
		Expect(p.SeedCount()).To(Equal(6))
	})
})
