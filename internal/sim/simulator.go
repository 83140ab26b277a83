package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/dlasim/internal/dla"
)

// resetter is implemented by steppers that keep per-particle history, such
// as *walk.Walk. The runner clears it after every particle.
type resetter interface {
	Reset()
}

type Simulator struct {
	agg       dla.Aggregator
	metrics   []Metric
	observers []Observer
}

func New(agg dla.Aggregator) *Simulator {
	return &Simulator{
		agg:       agg,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Aggregator() dla.Aggregator { return s.agg }

// Run releases cfg.Particles particles one after another. Cancellation ends
// the run early without an error; the result is marked Interrupted and holds
// every seed placed so far.
func (s *Simulator) Run(ctx context.Context, walk dla.Stepper, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	log := logrus.WithFields(logrus.Fields{
		"particles": cfg.Particles,
		"seeds":     s.agg.SeedCount(),
	})
	log.Info("simulation started")

	result := &Result{Metrics: make(map[string]float64)}
	start := time.Now()
	r, canReset := walk.(resetter)

	for i := 0; cfg.Particles == 0 || i < cfg.Particles; i++ {
		seed, err := s.agg.Next(ctx, walk)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				result.Interrupted = true
				break
			}
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		if canReset {
			r.Reset()
		}

		for _, m := range s.metrics {
			m.Observe(i, seed)
		}
		for _, obs := range s.observers {
			obs.OnSeed(i, seed)
		}
		result.Particles++

		if cfg.Progress > 0 && result.Particles%cfg.Progress == 0 {
			logrus.WithFields(logrus.Fields{
				"placed": result.Particles,
				"seed":   seed.String(),
			}).Debug("progress")
		}
	}

	result.Elapsed = time.Since(start)
	result.Seeds = s.agg.Seeds()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	logrus.WithFields(logrus.Fields{
		"placed":      result.Particles,
		"elapsed":     result.Elapsed,
		"interrupted": result.Interrupted,
	}).Info("simulation finished")

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Particles < 0 {
		return fmt.Errorf("particles must not be negative, got %d", cfg.Particles)
	}
	if cfg.Progress < 0 {
		return fmt.Errorf("progress interval must not be negative, got %d", cfg.Progress)
	}
	return nil
}
