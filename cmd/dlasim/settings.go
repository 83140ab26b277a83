package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/dlasim/internal/config"
	"github.com/san-kum/dlasim/internal/rng"
)

// resolveConfig layers defaults, then a preset, then a config file, then
// DLASIM_* variables, then any flag set on the command line.
func resolveConfig(cmd *cobra.Command, mode string, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(mode, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
		}
		cfg = p
	}

	if configFile != "" {
		if preset != "" {
			logrus.WithFields(logrus.Fields{
				"preset": preset,
				"config": configFile,
			}).Warn("config file overrides preset values it sets")
		}
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Mode = mode

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	// env may name another mode; the subcommand wins
	cfg.Mode = mode

	if err := applyFlags(cmd, cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"mode":       cfg.Mode,
		"lattice":    cfg.Lattice,
		"stickiness": cfg.Stickiness,
	}).Debug("config resolved")
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) error {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("seed") {
		cfg.Seed = seed
	}
	if changed("lattice") {
		cfg.Lattice = latticeName
	}
	if changed("length") {
		cfg.Walk.Length = length
	}
	if changed("accumulate") {
		cfg.Walk.Accumulate = accumulate
	}
	if changed("count") {
		cfg.Walk.Count = count
	}
	if changed("stickiness") {
		cfg.Stickiness = stickiness
	}
	if changed("particles") {
		cfg.Particles = particles
	}
	if changed("progress") {
		cfg.Progress = progress
	}
	if changed("silent") {
		cfg.Silent = silent
	}
	if changed("init-radius") {
		cfg.Point.InitRadius = initRadius
	}
	if changed("width") {
		cfg.Point.Width = width
	}
	if changed("height") {
		cfg.Point.Height = height
	}
	if changed("fractal") {
		cfg.Point.Fractal = fractal
	}
	if changed("half-width") {
		cfg.Line.HalfWidth = halfWidth
	}
	if changed("truncated-draw") {
		cfg.Line.TruncatedDraw = truncatedDraw
	}

	// walk [length] and distance [count] keep the positional form
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid argument %q: %w", args[0], err)
		}
		switch cfg.Mode {
		case config.ModeWalk:
			cfg.Walk.Length = n
		case config.ModeDistance:
			cfg.Walk.Count = n
		}
	}
	return nil
}

func newSource(cfg *config.Config) *rng.Source {
	src := rng.NewFromClock()
	if cfg.Seed != 0 {
		src = rng.New(cfg.Seed)
	}
	logrus.WithField("seed", src.Seed()).Info("random source ready")
	return src
}
