package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gesture-lane/core"
	"github.com/lixenwraith/gesture-lane/network"
)

func newSensorCommand() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "sensor",
		Short: "Forward pose or symbol names from stdin to a running game",
		Long: `Read one name per line and push it to a game started with --sensor.

Symbol names (A-D, neutral, rest, -) are sent as symbols; anything else is sent as a
wearable pose name (fingersSpread, waveIn, waveOut, fist).

Example:
  echo fist | gesture-lane sensor --url ws://localhost:7777/sensor`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			client, err := network.Dial(ctx, url)
			cancel()
			if err != nil {
				return err
			}
			defer client.Close()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			sent := 0
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if sym, err := core.ParseSymbol(line); err == nil {
					err = client.SendSymbol(sym)
					if err != nil {
						return err
					}
				} else if err := client.SendPose(line); err != nil {
					return err
				}
				sent++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "sent %d observations\n", sent)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "ws://localhost:7777/sensor", "sensor websocket endpoint")
	return cmd
}
