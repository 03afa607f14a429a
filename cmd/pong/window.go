package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var windowFlags matchFlags

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open an 800x600 window and start a match.

The window frontend needs the ebiten build tag:
  go build -tags ebiten ./cmd/pong

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle
  F1         - Pause
  F5         - Reset
  Esc        - Quit

Examples:
  pong window
  pong window --right random --sound`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowFlags.bind(windowCmd, "human", "human")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := windowFlags.apply(cmd, &cfg, false); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "pong")
	if err != nil {
		return err
	}
	defer closeLog()

	world, closeWorld, err := newWorld(cfg, resolveSeed(), logger)
	if err != nil {
		return err
	}
	defer closeWorld()

	err = window.Run(world, window.Options{Window: cfg.Window, TickRate: flagFPS})
	if errors.Is(err, window.ErrUnavailable) {
		fmt.Fprintln(os.Stderr, "This build of pong has no window support.")
		fmt.Fprintln(os.Stderr, "Rebuild with `go build -tags ebiten ./cmd/pong` or use `pong play`.")
		closeWorld()
		closeLog()
		os.Exit(2)
	}
	return err
}
