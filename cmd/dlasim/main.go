package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/dlasim/internal/config"
	"github.com/san-kum/dlasim/internal/dla"
)

var (
	dataDir    string
	logLevel   string
	seed       int64
	configFile string
	preset     string

	latticeName   string
	length        int
	accumulate    bool
	count         int
	stickiness    float64
	particles     int
	progress      int
	silent        bool
	save          bool
	initRadius    int
	width         int
	height        int
	fractal       bool
	runs          int
	halfWidth     int
	truncatedDraw bool
)

// main wires the cobra command tree and runs it under a context that is
// cancelled on SIGINT or SIGTERM, so an unbounded growth run stops cleanly
// and its output is flushed. It exits with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dlasim",
		Short:        "lattice random walks and diffusion-limited aggregation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(level)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".dlasim", "run archive directory")
	pf.StringVar(&logLevel, "log", "warn", "log level (trace, debug, info, warn, error)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the wall clock)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")

	walkCmd := &cobra.Command{
		Use:   "walk [length]",
		Short: "print one random walk, one step per line",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWalkCmd,
	}
	walkCmd.Flags().StringVar(&latticeName, "lattice", config.DefaultLattice, "lattice (triangular, square, cubic, hexagonal)")
	walkCmd.Flags().IntVar(&length, "length", config.DefaultLength, "walk length")
	walkCmd.Flags().BoolVarP(&accumulate, "accumulate", "a", false, "print positions instead of steps")
	walkCmd.Flags().BoolVar(&silent, "silent", false, "suppress output")

	distanceCmd := &cobra.Command{
		Use:   "distance [count]",
		Short: "print end-to-end distances of independent walks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDistanceCmd,
	}
	distanceCmd.Flags().StringVar(&latticeName, "lattice", config.DefaultLattice, "lattice (triangular, square, cubic, hexagonal)")
	distanceCmd.Flags().IntVar(&length, "length", config.DefaultLength, "walk length")
	distanceCmd.Flags().IntVarP(&count, "count", "d", config.DefaultCount, "number of walks")
	distanceCmd.Flags().BoolVar(&silent, "silent", false, "suppress output")

	pointCmd := &cobra.Command{
		Use:   "point",
		Short: "grow a radial aggregate from a seed at the origin",
		Args:  cobra.NoArgs,
		RunE:  runPointCmd,
	}
	addGrowthFlags(pointCmd)
	pointCmd.Flags().IntVar(&initRadius, "init-radius", dla.DefaultInitRadius, "minimum launch radius")
	pointCmd.Flags().IntVar(&width, "width", dla.DefaultSize, "box width")
	pointCmd.Flags().IntVar(&height, "height", dla.DefaultSize, "box height")
	pointCmd.Flags().BoolVar(&fractal, "fractal", false, "print seed count and furthest radius instead of seeds")
	pointCmd.Flags().IntVar(&runs, "runs", 1, "independent aggregates to grow in sequence")

	lineCmd := &cobra.Command{
		Use:   "line",
		Short: "grow a front down from a seeded line",
		Args:  cobra.NoArgs,
		RunE:  runLineCmd,
	}
	addGrowthFlags(lineCmd)
	lineCmd.Flags().IntVar(&halfWidth, "half-width", config.DefaultHalfWidth, "half-width of the seed line")
	lineCmd.Flags().BoolVar(&truncatedDraw, "truncated-draw", false, "use the integer sticking draw")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "summarise an archived run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(walkCmd, distanceCmd, pointCmd, lineCmd, listCmd, showCmd, exportJSONCmd, presetsCmd)
	return rootCmd
}

func addGrowthFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&latticeName, "lattice", config.DefaultLattice, "lattice (triangular, square)")
	cmd.Flags().Float64Var(&stickiness, "stickiness", dla.DefaultStickiness, "probability of sticking on contact")
	cmd.Flags().IntVar(&particles, "particles", 0, "particles to release (0 runs until interrupted)")
	cmd.Flags().IntVar(&progress, "progress", config.DefaultProgress, "log every n seeds at debug level")
	cmd.Flags().BoolVar(&silent, "silent", false, "suppress output")
	cmd.Flags().BoolVar(&save, "save", false, "archive the run in the data directory")
}
