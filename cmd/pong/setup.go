package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/logging"
)

// matchFlags are the per-command overrides of the loaded configuration.
type matchFlags struct {
	left  string
	right string
	speed string
	sound bool
}

func (f *matchFlags) bind(cmd *cobra.Command, left, right string) {
	cmd.Flags().StringVar(&f.left, "left", left, "Left paddle control: human, random")
	cmd.Flags().StringVar(&f.right, "right", right, "Right paddle control: human, random")
	cmd.Flags().StringVar(&f.speed, "speed", "", "Speed preset: slow, normal, fast")
	cmd.Flags().BoolVar(&f.sound, "sound", false, "Play sound cues on bounces")
}

// apply overrides cfg with the flags the user set. When force is true the
// paddle controls are applied even at their defaults.
func (f *matchFlags) apply(cmd *cobra.Command, cfg *config.PongConfig, force bool) error {
	if force || cmd.Flags().Changed("left") {
		c, err := config.ParseControl(f.left)
		if err != nil {
			return fmt.Errorf("--left: %w", err)
		}
		cfg.Paddles.Left.Control = c
	}
	if force || cmd.Flags().Changed("right") {
		c, err := config.ParseControl(f.right)
		if err != nil {
			return fmt.Errorf("--right: %w", err)
		}
		cfg.Paddles.Right.Control = c
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = config.SpeedPreset(f.speed)
	}
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = f.sound
	}
	return cfg.Validate()
}

// loadConfig loads the configuration named by --config or found on the
// search path.
func loadConfig() (config.PongConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close function is never nil.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger, err := logging.New(w, flagLogLevel, prefix)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newWorld builds the world and hooks up event logging and, when enabled,
// sound cues. Audio failures only cost the sound.
func newWorld(cfg config.PongConfig, seed int64, logger *log.Logger) (*pong.World, func(), error) {
	world, err := pong.NewFromConfig(cfg, seed)
	if err != nil {
		return nil, nil, err
	}
	world.Subscribe(logging.Events(logger))
	logger.Debug("world created", "seed", seed, "left", cfg.Paddles.Left.Control, "right", cfg.Paddles.Right.Control)

	if !cfg.Audio.Enabled {
		return world, func() {}, nil
	}
	cues := audio.NewCues(cfg.Audio.Volume)
	if err := cues.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return world, func() {}, nil
	}
	world.Subscribe(cues)
	return world, cues.Close, nil
}
