package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dlasim/internal/analysis"
	"github.com/san-kum/dlasim/internal/config"
	"github.com/san-kum/dlasim/internal/report"
	"github.com/san-kum/dlasim/internal/storage"
	"github.com/san-kum/dlasim/internal/vec"
)

var boxSizes = []float64{1, 2, 4, 8, 16, 32}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tLATTICE\tTIME\tSTICKINESS\tPARTICLES\tSTATUS")

	for _, run := range runs {
		status := "done"
		if run.Interrupted {
			status = "interrupted"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%d\t%s\n",
			run.ID,
			run.Mode,
			run.Lattice,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Stickiness,
			run.Particles,
			status,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	radii := make([]float64, len(points))
	for i, p := range points {
		radii[i] = p.Magnitude()
	}

	rows := []report.Row{
		{Label: "mode", Value: meta.Mode},
		{Label: "lattice", Value: meta.Lattice},
		{Label: "time", Value: meta.Timestamp.Format("2006-01-02 15:04:05")},
		{Label: "seed", Value: strconv.FormatInt(meta.Seed, 10)},
		{Label: "stickiness", Value: report.Float(meta.Stickiness)},
		{Label: "particles", Value: strconv.Itoa(meta.Particles)},
		{Label: "points", Value: strconv.Itoa(len(points))},
		{Label: "elapsed", Value: meta.Elapsed.String()},
		{Label: "radius of gyration", Value: report.Float(analysis.RadiusOfGyration(points))},
	}

	if d, err := analysis.BoxCountingDimension(points, boxSizes); err == nil {
		rows = append(rows, report.Row{Label: "box dimension", Value: report.Float(d)})
	} else if !errors.Is(err, analysis.ErrInsufficientData) {
		return err
	}
	rows = append(rows, report.MetricRows(meta.Metrics)...)
	rows = append(rows,
		report.Row{Label: "radius by seed", Value: report.Sparkline(radii, 40)},
		report.Row{Label: "status", Value: report.Status(meta.Interrupted)},
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Summary(meta.ID, rows))

	if len(points) > 1 {
		curve, caption := growthCurve(meta.Mode, points)
		graph := asciigraph.Plot(curve,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Fprintln(out)
		fmt.Fprintln(out, graph)
	}
	return nil
}

// growthCurve is the extent of the structure after each seed: the furthest
// radius for radial growth, the front depth below the line otherwise.
func growthCurve(mode string, points []vec.Vec2) ([]float64, string) {
	curve := make([]float64, len(points))
	extent := 0.0
	for i, p := range points {
		v := p.Magnitude()
		if mode == config.ModeLine {
			v = -p[1]
		}
		if v > extent {
			extent = v
		}
		curve[i] = extent
	}
	if mode == config.ModeLine {
		return curve, "depth vs N"
	}
	return curve, "R vs N"
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(cmd.OutOrStdout(), args[0])
}

func listPresets(cmd *cobra.Command, args []string) error {
	modes := config.Modes()
	if len(args) == 1 {
		if config.ListPresets(args[0]) == nil {
			return fmt.Errorf("unknown mode: %s (available: %v)", args[0], modes)
		}
		modes = args[:1]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tPRESET\tLATTICE\tSTICKINESS")
	for _, mode := range modes {
		for _, name := range config.ListPresets(mode) {
			p := config.GetPreset(mode, name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\n", mode, name, p.Lattice, p.Stickiness)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if configFile == "" {
		return nil
	}
	// --config with presets writes the defaults as a starting file
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("refusing to overwrite %s", configFile)
	}
	return config.Save(configFile, config.DefaultConfig())
}
