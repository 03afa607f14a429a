package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playFlags matchFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a match in the current terminal.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle
  P/Esc      - Pause
  R          - Reset
  ?          - Toggle help
  Ctrl+S     - Screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Terminals do not report key releases: a paddle keeps moving for a moment
after its key is let go (see terminal.hold_window in the config).

Examples:
  pong play
  pong play --right random
  pong play --left random --right random --speed fast
  pong play --log-file ~/.pong/pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playFlags.bind(playCmd, "human", "human")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := playFlags.apply(cmd, &cfg, false); err != nil {
		return err
	}

	// The alt screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "pong")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	world, closeWorld, err := newWorld(cfg, rt.Seed, logger)
	if err != nil {
		return err
	}
	defer closeWorld()

	logger.Info("starting terminal match", "screen", width, "rows", height, "fps", rt.TickRate)
	return tui.Run(world, cfg, rt, logger)
}
