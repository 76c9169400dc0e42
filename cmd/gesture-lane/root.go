package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gesture-lane/config"
)

// rootOptions holds global flags for all commands
type rootOptions struct {
	ConfigPath string
	Debug      bool

	Seed     uint64
	Depth    int
	Interval int
	Tick     time.Duration
	Alphabet int
	Hold     time.Duration
	Sensor   string
	Audio    bool

	logFile *os.File
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gesture-lane",
		Short: "Scrolling gesture match game",
		Long: `Symbols scroll down a lane toward a judgment line; match each one with the
right gesture, button or key as it arrives.

Running without a subcommand starts the terminal game.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logFile = setupLogging(opts.Debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != nil {
				_ = opts.logFile.Close()
				opts.logFile = nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	pf.BoolVar(&opts.Debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	pf.Uint64Var(&opts.Seed, "seed", 0, "spawn RNG seed, 0 for time-based")
	pf.IntVar(&opts.Depth, "depth", 0, "lane depth in slots")
	pf.IntVar(&opts.Interval, "interval", 0, "ticks between spawns")
	pf.DurationVar(&opts.Tick, "tick", 0, "tick period")
	pf.IntVar(&opts.Alphabet, "alphabet", 0, "alphabet size including neutral (2-5)")
	pf.DurationVar(&opts.Hold, "hold", 0, "key press decays to neutral after this long, 0 holds")
	pf.StringVar(&opts.Sensor, "sensor", "", "accept remote sensor input on this address")
	pf.BoolVar(&opts.Audio, "audio", false, "play sound cues")

	cmd.AddCommand(newPlayCommand(opts))
	cmd.AddCommand(newSimCommand(opts))
	cmd.AddCommand(newSensorCommand())

	return cmd
}

// loadConfig reads the config file, if any, then applies flags the user set explicitly
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("depth") {
		cfg.QueueDepth = opts.Depth
	}
	if flags.Changed("interval") {
		cfg.SpawnInterval = opts.Interval
	}
	if flags.Changed("tick") {
		cfg.TickPeriod = opts.Tick
	}
	if flags.Changed("alphabet") {
		cfg.AlphabetSize = opts.Alphabet
	}
	if flags.Changed("hold") {
		cfg.InputHold = opts.Hold
	}
	if flags.Changed("sensor") {
		cfg.Sensor.Enabled = opts.Sensor != ""
		if opts.Sensor != "" {
			cfg.Sensor.Address = opts.Sensor
		}
	}
	if flags.Changed("audio") {
		cfg.Audio = opts.Audio
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
