package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/dlasim/internal/analysis"
	"github.com/san-kum/dlasim/internal/config"
	"github.com/san-kum/dlasim/internal/dla"
	"github.com/san-kum/dlasim/internal/lattice"
	"github.com/san-kum/dlasim/internal/metrics"
	"github.com/san-kum/dlasim/internal/report"
	"github.com/san-kum/dlasim/internal/rng"
	"github.com/san-kum/dlasim/internal/sim"
	"github.com/san-kum/dlasim/internal/storage"
	"github.com/san-kum/dlasim/internal/vec"
	"github.com/san-kum/dlasim/internal/walk"
)

func runWalkCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModeWalk, args)
	if err != nil {
		return err
	}
	src := newSource(cfg)

	out := bufio.NewWriter(cmd.OutOrStdout())
	if cfg.Is3D() {
		lat, _ := lattice.Spatial(cfg.Lattice)
		err = writeWalk(out, lat, src, cfg)
	} else {
		lat, _ := lattice.Planar(cfg.Lattice)
		err = writeWalk(out, lat, src, cfg)
	}
	if err != nil {
		return err
	}
	return out.Flush()
}

// writeWalk generates one walk, converts it to cartesian steps and prints it,
// optionally as running positions.
func writeWalk[V vec.Vector[V]](out io.Writer, lat lattice.Lattice[V], src *rng.Source, cfg *config.Config) error {
	w, err := walk.New(lat, src).Generate(cfg.Walk.Length)
	if err != nil {
		return err
	}
	w.ApplyBasis()
	if cfg.Walk.Accumulate {
		w = w.Accumulate()
	}
	if cfg.Silent {
		return nil
	}
	_, err = w.WriteTo(out)
	return err
}

func runDistanceCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModeDistance, args)
	if err != nil {
		return err
	}
	src := newSource(cfg)

	out := bufio.NewWriter(cmd.OutOrStdout())
	var samples []float64
	if cfg.Is3D() {
		lat, _ := lattice.Spatial(cfg.Lattice)
		samples, err = sampleDistances(cmd.Context(), out, lat, src, cfg)
	} else {
		lat, _ := lattice.Planar(cfg.Lattice)
		samples, err = sampleDistances(cmd.Context(), out, lat, src, cfg)
	}
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil && !isInterrupt(err) {
		return err
	}

	stats := analysis.DistanceStats(samples)
	fmt.Fprintln(cmd.ErrOrStderr(), report.Summary("distance", []report.Row{
		{Label: "lattice", Value: cfg.Lattice},
		{Label: "length", Value: strconv.Itoa(cfg.Walk.Length)},
		{Label: "walks", Value: strconv.Itoa(stats.Count)},
		{Label: "mean", Value: report.Float(stats.Mean)},
		{Label: "rms", Value: report.Float(stats.RMS)},
		{Label: "min", Value: report.Float(stats.Min)},
		{Label: "max", Value: report.Float(stats.Max)},
		{Label: "histogram", Value: report.Sparkline(report.Histogram(samples, 20), 20)},
		{Label: "status", Value: report.Status(isInterrupt(err))},
	}))
	return nil
}

// sampleDistances prints each end-to-end distance truncated to an integer,
// one per line, and returns the exact values.
func sampleDistances[V vec.Vector[V]](ctx context.Context, out io.Writer, lat lattice.Lattice[V], src *rng.Source, cfg *config.Config) ([]float64, error) {
	samples := make([]float64, 0, cfg.Walk.Count)
	err := walk.Sample(ctx, walk.New(lat, src), cfg.Walk.Length, cfg.Walk.Count, func(_ int, d float64) error {
		samples = append(samples, d)
		if cfg.Silent {
			return nil
		}
		_, err := fmt.Fprintln(out, int(d))
		return err
	})
	return samples, err
}

func runPointCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModePoint, args)
	if err != nil {
		return err
	}
	src := newSource(cfg)
	lat, _ := lattice.Planar(cfg.Lattice)
	warnDegenerate(cfg)

	if runs > 1 {
		return runPointEnsemble(cmd, cfg, lat, src.Seed())
	}

	p, err := dla.NewPoint(src, cfg.PointOptions()...)
	if err != nil {
		return err
	}

	s := sim.New(p)
	s.AddMetric(metrics.NewSeedCount())
	s.AddMetric(metrics.NewFurthestRadius())
	s.AddMetric(metrics.NewFractalDimension(1))

	out := bufio.NewWriter(cmd.OutOrStdout())
	if !cfg.Silent {
		s.AddObserver(sim.ObserverFunc(func(_ int, seed vec.Vec2) {
			if cfg.Point.Fractal {
				fmt.Fprintf(out, "%d, %s\n", p.SeedCount(), strconv.FormatFloat(p.FurthestRadius(), 'g', -1, 64))
				return
			}
			fmt.Fprintln(out, seed.String())
		}))
	}

	return grow(cmd, cfg, s, walk.New(lat, src), src, out)
}

func runPointEnsemble(cmd *cobra.Command, cfg *config.Config, lat lattice.Lattice[vec.Vec2], seedStart int64) error {
	if cfg.Particles == 0 {
		logrus.Warn("ensemble without --particles runs until interrupted")
	}
	if cfg.Point.Fractal {
		logrus.Warn("--fractal is ignored with --runs; each run reports its fractal_dimension")
	}

	factory := func(src *rng.Source) (dla.Aggregator, dla.Stepper, []sim.Metric, error) {
		p, err := dla.NewPoint(src, cfg.PointOptions()...)
		if err != nil {
			return nil, nil, nil, err
		}
		return p, walk.New(lat, src), []sim.Metric{
			metrics.NewFurthestRadius(),
			metrics.NewFractalDimension(1),
		}, nil
	}

	results, err := sim.NewEnsemble(factory, runs, seedStart).Run(cmd.Context(), sim.Config{
		Particles: cfg.Particles,
		Progress:  cfg.Progress,
	})
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if !cfg.Silent {
		for i, r := range results {
			fmt.Fprintf(out, "%d, %d, %d, %s, %s\n", i, seedStart+int64(i), len(r.Seeds),
				report.Float(r.Metrics["furthest_radius"]),
				report.Float(r.Metrics["fractal_dimension"]))
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}

	rows := []report.Row{
		{Label: "runs", Value: strconv.Itoa(len(results))},
		{Label: "lattice", Value: cfg.Lattice},
		{Label: "mean furthest_radius", Value: report.Float(sim.Mean(results, "furthest_radius"))},
		{Label: "mean fractal_dimension", Value: report.Float(sim.Mean(results, "fractal_dimension"))},
	}
	if save {
		for i, r := range results {
			runID, err := archive(cfg, seedStart+int64(i), r)
			if err != nil {
				return err
			}
			rows = append(rows, report.Row{Label: fmt.Sprintf("run %d", i), Value: runID})
		}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), report.Summary("point ensemble", rows))
	return nil
}

func runLineCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModeLine, args)
	if err != nil {
		return err
	}
	src := newSource(cfg)
	lat, _ := lattice.Planar(cfg.Lattice)
	warnDegenerate(cfg)

	l, err := dla.NewLine(src, cfg.LineOptions()...)
	if err != nil {
		return err
	}

	s := sim.New(l)
	s.AddMetric(metrics.NewSeedCount())
	s.AddMetric(metrics.NewMinY())

	out := bufio.NewWriter(cmd.OutOrStdout())
	if !cfg.Silent {
		for _, seed := range l.Seeds() {
			fmt.Fprintln(out, seed.String())
		}
		s.AddObserver(sim.ObserverFunc(func(_ int, seed vec.Vec2) {
			fmt.Fprintln(out, seed.String())
		}))
	}

	return grow(cmd, cfg, s, walk.New(lat, src), src, out)
}

// grow runs the simulator, flushes the point stream, prints the summary and
// archives the run when asked.
func grow(cmd *cobra.Command, cfg *config.Config, s *sim.Simulator, w dla.Stepper, src *rng.Source, out *bufio.Writer) error {
	res, err := s.Run(cmd.Context(), w, sim.Config{
		Particles: cfg.Particles,
		Progress:  cfg.Progress,
		Seed:      src.Seed(),
	})
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	rows := []report.Row{
		{Label: "lattice", Value: cfg.Lattice},
		{Label: "seed", Value: strconv.FormatInt(src.Seed(), 10)},
		{Label: "particles", Value: strconv.Itoa(res.Particles)},
		{Label: "elapsed", Value: res.Elapsed.String()},
	}
	rows = append(rows, report.MetricRows(res.Metrics)...)

	if save {
		runID, err := archive(cfg, src.Seed(), res)
		if err != nil {
			return err
		}
		rows = append(rows, report.Row{Label: "run", Value: runID})
	}
	rows = append(rows, report.Row{Label: "status", Value: report.Status(res.Interrupted)})

	fmt.Fprintln(cmd.ErrOrStderr(), report.Summary(cfg.Mode, rows))
	return nil
}

func archive(cfg *config.Config, seed int64, res *sim.Result) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}

	meta := storage.RunMetadata{
		Mode:        cfg.Mode,
		Lattice:     cfg.Lattice,
		Seed:        seed,
		Stickiness:  cfg.Stickiness,
		Particles:   res.Particles,
		Elapsed:     res.Elapsed,
		Interrupted: res.Interrupted,
		Metrics:     res.Metrics,
	}
	switch cfg.Mode {
	case config.ModePoint:
		meta.Width = cfg.Point.Width
		meta.Height = cfg.Point.Height
		meta.InitRadius = cfg.Point.InitRadius
	case config.ModeLine:
		meta.HalfWidth = cfg.Line.HalfWidth
		meta.TruncatedDraw = cfg.Line.TruncatedDraw
	}

	runID, err := st.Save(meta, res.Seeds)
	if err != nil {
		return "", fmt.Errorf("archive run: %w", err)
	}
	logrus.WithField("run", runID).Info("run archived")
	return runID, nil
}

func warnDegenerate(cfg *config.Config) {
	if cfg.Stickiness == 0 {
		logrus.Warn("stickiness is 0: no particle will ever stick")
	}
	if cfg.Mode == config.ModeLine && cfg.Line.TruncatedDraw && cfg.Stickiness > 0 && cfg.Stickiness < 1 {
		logrus.WithField("stickiness", cfg.Stickiness).Warn("truncated draw sticks on every contact")
	}
}

func isInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
