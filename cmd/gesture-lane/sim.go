package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gesture-lane/render"
	"github.com/lixenwraith/gesture-lane/scenario"
)

type simOptions struct {
	Format string
	Ticks  int
}

func newSimCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &simOptions{}

	cmd := &cobra.Command{
		Use:   "sim [scenario.yaml]",
		Short: "Run a session headlessly and print one trace line per tick",
		Long: `Run a session without a terminal UI.

With a scenario file, spawns and input follow the script. Without one, a random
session runs for --ticks ticks with neutral input, using the global config flags.

Example:
  gesture-lane sim scenario/testdata/scenarios/hold_and_floor.yaml
  gesture-lane sim --seed 7 --depth 8 --ticks 100 --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "trace format (text|json)")
	cmd.Flags().IntVar(&opts.Ticks, "ticks", 200, "tick budget without a scenario file")

	return cmd
}

func runSim(cmd *cobra.Command, rootOpts *rootOptions, opts *simOptions, args []string) error {
	format, err := render.ParseTraceFormat(opts.Format)
	if err != nil {
		return err
	}

	var sc *scenario.Scenario
	if len(args) == 1 {
		if sc, err = scenario.Load(args[0]); err != nil {
			return err
		}
	} else {
		cfg, err := loadConfig(cmd, rootOpts)
		if err != nil {
			return err
		}
		sc = &scenario.Scenario{Name: "random", Ticks: opts.Ticks, Config: cfg}
	}

	out := cmd.OutOrStdout()
	trace := render.NewTraceRenderer(out, format)
	res, err := scenario.Run(sc, trace)
	if err != nil {
		return err
	}
	if err := trace.Err(); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}

	if format == render.TraceText {
		st := res.State
		fmt.Fprintf(out, "# %s: reason=%s score=%d streak=%d life=%d ticks=%d\n",
			res.Name, res.Reason, st.Score, st.Streak, st.Life, st.TickCount)
	}
	return nil
}
