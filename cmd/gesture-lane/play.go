package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gesture-lane/app"
	"github.com/lixenwraith/gesture-lane/audio"
	"github.com/lixenwraith/gesture-lane/core"
)

func newPlayCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "play",
		Short:         "Start the terminal game (default)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Restore the terminal before a background panic prints its stack
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	var sound *audio.SoundManager
	if cfg.Audio {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(screen, cfg, app.Options{
		Logger: log.Default(),
		Sound:  sound,
	})
	if err != nil {
		return err
	}

	log.Printf("starting: alphabet=%d interval=%d depth=%d tick=%s seed=%d",
		cfg.AlphabetSize, cfg.SpawnInterval, cfg.QueueDepth, cfg.TickPeriod, cfg.Seed)
	return a.Run(ctx)
}
