package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/dlasim/internal/dla"
	"github.com/san-kum/dlasim/internal/rng"
)

// Factory builds one independent aggregate, its walk and its metrics from a
// dedicated random source.
type Factory func(src *rng.Source) (dla.Aggregator, dla.Stepper, []Metric, error)

// Ensemble grows independent aggregates one after another. Run i owns a
// source seeded with seedStart+i, so each run is reproducible on its own.
type Ensemble struct {
	factory   Factory
	numRuns   int
	seedStart int64
}

func NewEnsemble(factory Factory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns, seedStart: seedStart}
}

// Run returns one result per completed run. When the context is cancelled
// the interrupted run is the last one returned.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, 0, e.numRuns)

	for i := 0; i < e.numRuns; i++ {
		cfgCopy := cfg
		cfgCopy.Seed = e.seedStart + int64(i)

		agg, walk, metrics, err := e.factory(rng.New(cfgCopy.Seed))
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}

		sim := New(agg)
		for _, m := range metrics {
			sim.AddMetric(m)
		}

		res, err := sim.Run(ctx, walk, cfgCopy)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		results = append(results, res)

		logrus.WithFields(logrus.Fields{
			"run":  i,
			"seed": cfgCopy.Seed,
		}).Debug("ensemble run finished")

		if res.Interrupted {
			break
		}
	}

	return results, nil
}

// Mean averages one metric across results, skipping runs that lack it.
func Mean(results []*Result, metric string) float64 {
	sum, n := 0.0, 0
	for _, r := range results {
		if v, ok := r.Metrics[metric]; ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
