package sim

import (
	"time"

	"github.com/san-kum/dlasim/internal/vec"
)

// Metric accumulates a statistic over the seeds of one run.
type Metric interface {
	Name() string
	Observe(i int, seed vec.Vec2)
	Value() float64
	Reset()
}

type Observer interface {
	OnSeed(i int, seed vec.Vec2)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(i int, seed vec.Vec2)

func (f ObserverFunc) OnSeed(i int, seed vec.Vec2) { f(i, seed) }

type Config struct {
	// Particles is the number of particles to release. Zero runs until the
	// context is cancelled.
	Particles int
	// Progress logs a debug line every Progress seeds when positive.
	Progress int
	Seed     int64
}

type Result struct {
	Seeds       []vec.Vec2
	Metrics     map[string]float64
	Particles   int
	Elapsed     time.Duration
	Interrupted bool
}
