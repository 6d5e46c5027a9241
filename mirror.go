package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/phil-mansfield/mirror/lib"
	"github.com/phil-mansfield/mirror/lib/config"
	"github.com/phil-mansfield/mirror/lib/dump"
	report "github.com/phil-mansfield/mirror/lib/error"
	"github.com/phil-mansfield/mirror/lib/particles"
	"github.com/phil-mansfield/mirror/lib/run"
	"github.com/phil-mansfield/mirror/lib/thermo"
)

const longHelp = `mirror integrates free-streaming particles inside a box whose faces can be
replaced by reflecting walls. Walls may sit at the box edge, at a fixed
position, or follow an equal-style variable, and may move with a constant
velocity. Particles which cross a wall are mirrored back across it.

Runs are described by a config file, written either in INI style or in TOML
(files ending in .toml). Use "mirror example_config" to get started.`

// overrides are command line values which replace config file values when
// the corresponding flag is set.
type overrides struct {
	threads   int
	steps     int64
	particles string
	output    string
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			report.Internal("%v", r)
		}
	}()

	var logLevel string
	var ov overrides
	log := zerolog.Nop()

	root := &cobra.Command{
		Use:           "mirror",
		Short:         "Free-streaming particles between moving reflecting walls",
		Long:          longHelp,
		Version:       lib.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if log, err = lib.NewLogger(os.Stderr, logLevel); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			report.SetLogger(log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"minimum level of logged messages (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run <config file>",
		Short: "Run a simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args[0], &ov)
			if err != nil {
				return err
			}
			sim, err := run.Setup(cfg, log)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(),
				syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			sum, err := sim.Run(ctx)
			if err != nil {
				return err
			}
			printSummary(cmd, sum, cfg.Box.Dimension)
			return nil
		},
	}
	addOverrideFlags(runCmd.Flags(), &ov)

	checkCmd := &cobra.Command{
		Use:   "check <config file>",
		Short: "Check a config file and its particle catalog for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args[0], &ov)
			if err != nil {
				return err
			}
			if err := run.Check(cfg, log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "No errors detected.")
			return nil
		},
	}
	addOverrideFlags(checkCmd.Flags(), &ov)

	var useTOML bool
	exampleCmd := &cobra.Command{
		Use:   "example_config",
		Short: "Print an example config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.INI
			if useTOML {
				f = config.TOML
			}
			fmt.Fprint(cmd.OutOrStdout(), config.ExampleConfig(f))
			return nil
		},
	}
	exampleCmd.Flags().BoolVar(&useTOML, "toml", false,
		"print the config in TOML instead of INI style")

	var mass float64
	var dim int
	inspectCmd := &cobra.Command{
		Use:   "inspect <dump file> [dump file ...]",
		Short: "Print the header and a summary of dump files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, fname := range args {
				hd, p, err := dump.ReadFile(fname)
				if err != nil {
					return fmt.Errorf("Could not read %s: %w", fname, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s: step %d, %d particles, box %v - %v, dt %g\n",
					fname, hd.Step, hd.N, hd.BoxLo, hd.BoxHi, hd.Dt)
				printSummary(cmd, thermo.Compute(p, particles.AllBit, mass), dim)
			}
			return nil
		},
	}
	inspectCmd.Flags().Float64Var(&mass, "mass", 1, "mass of each particle")
	inspectCmd.Flags().IntVar(&dim, "dimension", 3,
		"dimension used when computing temperatures")

	root.AddCommand(runCmd, checkCmd, exampleCmd, inspectCmd)

	if err := root.Execute(); err != nil {
		report.External("%s", err.Error())
	}
}

func addOverrideFlags(flags *pflag.FlagSet, ov *overrides) {
	flags.IntVar(&ov.threads, "threads", -1,
		"number of threads, -1 uses every core (overrides [run] Threads)")
	flags.Int64Var(&ov.steps, "steps", 0,
		"number of steps (overrides [run] Steps)")
	flags.StringVar(&ov.particles, "particles", "",
		"particle catalog (overrides [run] Particles)")
	flags.StringVar(&ov.output, "output", "",
		"dump file format (overrides [run] Output)")
}

// loadConfig reads a config file and replaces values with any flags which
// were explicitly set.
func loadConfig(
	cmd *cobra.Command, fname string, ov *overrides,
) (*config.Config, error) {
	cfg, err := config.Load(fname)
	if err != nil {
		return nil, err
	}

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "threads":
			cfg.Run.Threads = ov.threads
		case "steps":
			cfg.Run.Steps = ov.steps
		case "particles":
			cfg.Run.Particles = ov.particles
		case "output":
			cfg.Run.Output = ov.output
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printSummary(cmd *cobra.Command, s thermo.Summary, dim int) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  N:        %d\n", s.N)
	fmt.Fprintf(w, "  KE:       %.6g\n", s.KE)
	fmt.Fprintf(w, "  T:        %.6g\n", s.Temperature(dim))
	fmt.Fprintf(w, "  P:        %.6g\n", s.Momentum)
	fmt.Fprintf(w, "  <v>:      %.6g\n", s.MeanV)
	fmt.Fprintf(w, "  std(v):   %.6g\n", s.StdV)
	fmt.Fprintf(w, "  extent:   %.6g - %.6g\n", s.Min, s.Max)
}
