package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dlasim/internal/dla"
	"github.com/san-kum/dlasim/internal/lattice"
)

const (
	ModeWalk     = "walk"
	ModeDistance = "distance"
	ModePoint    = "point"
	ModeLine     = "line"

	EnvPrefix = "DLASIM_"

	DefaultLength    = 200000
	DefaultCount     = 10
	DefaultLattice   = "triangular"
	DefaultHalfWidth = 100
	DefaultProgress  = 1000
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Mode       string  `yaml:"mode" env:"MODE"`
	Lattice    string  `yaml:"lattice" env:"LATTICE"`
	Seed       int64   `yaml:"seed" env:"SEED"`
	Stickiness float64 `yaml:"stickiness" env:"STICKINESS"`
	Particles  int     `yaml:"particles" env:"PARTICLES"`
	Progress   int     `yaml:"progress" env:"PROGRESS"`
	Silent     bool    `yaml:"silent" env:"SILENT"`

	Walk  WalkConfig  `yaml:"walk" envPrefix:"WALK_"`
	Point PointConfig `yaml:"point" envPrefix:"POINT_"`
	Line  LineConfig  `yaml:"line" envPrefix:"LINE_"`
}

type WalkConfig struct {
	Length     int  `yaml:"length" env:"LENGTH"`
	Accumulate bool `yaml:"accumulate" env:"ACCUMULATE"`
	Count      int  `yaml:"count" env:"COUNT"`
}

type PointConfig struct {
	InitRadius int  `yaml:"init_radius" env:"INIT_RADIUS"`
	Width      int  `yaml:"width" env:"WIDTH"`
	Height     int  `yaml:"height" env:"HEIGHT"`
	Fractal    bool `yaml:"fractal" env:"FRACTAL"`
}

type LineConfig struct {
	HalfWidth     int  `yaml:"half_width" env:"HALF_WIDTH"`
	TruncatedDraw bool `yaml:"truncated_draw" env:"TRUNCATED_DRAW"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:       ModeWalk,
		Lattice:    DefaultLattice,
		Stickiness: dla.DefaultStickiness,
		Progress:   DefaultProgress,
		Walk: WalkConfig{
			Length: DefaultLength,
			Count:  DefaultCount,
		},
		Point: PointConfig{
			InitRadius: dla.DefaultInitRadius,
			Width:      dla.DefaultSize,
			Height:     dla.DefaultSize,
		},
		Line: LineConfig{
			HalfWidth: DefaultHalfWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a config file on top of a copy of base. Keys absent from
// the file keep base's values; base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from DLASIM_* variables in the process
// environment. Unset variables leave the field untouched.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(env.Options{Prefix: EnvPrefix})
}

// ApplyEnvFrom is ApplyEnv over an explicit variable set.
func (c *Config) ApplyEnvFrom(vars map[string]string) error {
	return c.applyEnv(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func (c *Config) applyEnv(opts env.Options) error {
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Is3D reports whether the configured lattice is three-dimensional.
func (c *Config) Is3D() bool { return lattice.Is3D(c.Lattice) }

func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWalk, ModeDistance:
		if _, err := lattice.Planar(c.Lattice); err != nil && !lattice.Is3D(c.Lattice) {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	case ModePoint, ModeLine:
		if _, err := lattice.Planar(c.Lattice); err != nil {
			return fmt.Errorf("%w: %s growth needs a 2D lattice: %w", ErrInvalid, c.Mode, err)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}

	if math.IsNaN(c.Stickiness) || c.Stickiness < 0 || c.Stickiness > 1 {
		return fmt.Errorf("%w: stickiness must be in [0, 1], got %v", ErrInvalid, c.Stickiness)
	}
	if c.Particles < 0 {
		return fmt.Errorf("%w: particles must not be negative, got %d", ErrInvalid, c.Particles)
	}
	if c.Progress < 0 {
		return fmt.Errorf("%w: progress must not be negative, got %d", ErrInvalid, c.Progress)
	}
	if c.Walk.Length < 0 {
		return fmt.Errorf("%w: walk length must not be negative, got %d", ErrInvalid, c.Walk.Length)
	}
	if c.Walk.Count < 0 {
		return fmt.Errorf("%w: distance count must not be negative, got %d", ErrInvalid, c.Walk.Count)
	}
	if c.Point.InitRadius < 0 {
		return fmt.Errorf("%w: init radius must not be negative, got %d", ErrInvalid, c.Point.InitRadius)
	}
	if c.Point.Width < 0 || c.Point.Height < 0 {
		return fmt.Errorf("%w: box %dx%d", ErrInvalid, c.Point.Width, c.Point.Height)
	}
	if c.Mode == ModeLine && c.Line.HalfWidth <= 0 {
		return fmt.Errorf("%w: line half-width must be positive, got %d", ErrInvalid, c.Line.HalfWidth)
	}
	return nil
}

// PointOptions translates the config into dla options for a radial aggregate.
func (c *Config) PointOptions() []dla.Option {
	return []dla.Option{
		dla.WithStickiness(c.Stickiness),
		dla.WithSize(c.Point.Width, c.Point.Height),
		dla.WithInitRadius(c.Point.InitRadius),
	}
}

// LineOptions translates the config into dla options for a line front.
func (c *Config) LineOptions() []dla.Option {
	return []dla.Option{
		dla.WithStickiness(c.Stickiness),
		dla.WithHalfWidth(c.Line.HalfWidth),
		dla.WithTruncatedDraw(c.Line.TruncatedDraw),
	}
}
