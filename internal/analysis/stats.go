package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/dlasim/internal/vec"
)

// Stats summarises a sample of distances.
type Stats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	RMS   float64 `json:"rms"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// DistanceStats returns the zero Stats for an empty sample.
func DistanceStats(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	return Stats{
		Count: len(samples),
		Mean:  stat.Mean(samples, nil),
		RMS:   math.Sqrt(floats.Dot(samples, samples) / float64(len(samples))),
		Min:   floats.Min(samples),
		Max:   floats.Max(samples),
	}
}

// RadiusOfGyration is the RMS distance of points from their centroid.
func RadiusOfGyration(points []vec.Vec2) float64 {
	if len(points) == 0 {
		return 0
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p[0], p[1]
	}
	c := vec.Vec2{stat.Mean(xs, nil), stat.Mean(ys, nil)}

	sq := make([]float64, len(points))
	for i, p := range points {
		d := p.Sub(c).Magnitude()
		sq[i] = d * d
	}
	return math.Sqrt(stat.Mean(sq, nil))
}

// BoxCountingDimension covers the points with square boxes of each size and
// fits log(count) against log(1/size). Sizes must be positive.
func BoxCountingDimension(points []vec.Vec2, sizes []float64) (float64, error) {
	if len(points) == 0 {
		return 0, ErrInsufficientData
	}

	inv := make([]float64, 0, len(sizes))
	counts := make([]float64, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 {
			continue
		}
		boxes := make(map[[2]int64]struct{})
		for _, p := range points {
			key := [2]int64{
				int64(math.Floor(p[0] / size)),
				int64(math.Floor(p[1] / size)),
			}
			boxes[key] = struct{}{}
		}
		inv = append(inv, 1/size)
		counts = append(counts, float64(len(boxes)))
	}

	return LogLogSlope(inv, counts)
}
