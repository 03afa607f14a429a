package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

func newFlagCmd(left, right string) (*cobra.Command, *matchFlags) {
	var f matchFlags
	cmd := &cobra.Command{Use: "test"}
	f.bind(cmd, left, right)
	return cmd, &f
}

func TestMatchFlagsKeepConfigUnlessSet(t *testing.T) {
	cmd, f := newFlagCmd("human", "human")
	cfg := config.DefaultPongConfig()
	cfg.Paddles.Right.Control = config.ControlRandom

	if err := f.apply(cmd, &cfg, false); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Paddles.Right.Control != config.ControlRandom {
		t.Errorf("right control = %q, want config value kept", cfg.Paddles.Right.Control)
	}
}

func TestMatchFlagsOverride(t *testing.T) {
	cmd, f := newFlagCmd("human", "human")
	for name, value := range map[string]string{
		"left":  "random",
		"speed": "fast",
		"sound": "true",
	} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("Set(%s): %v", name, err)
		}
	}

	cfg := config.DefaultPongConfig()
	if err := f.apply(cmd, &cfg, false); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Paddles.Left.Control != config.ControlRandom {
		t.Errorf("left control = %q, want random", cfg.Paddles.Left.Control)
	}
	if cfg.Paddles.Right.Control != config.ControlHuman {
		t.Errorf("right control = %q, want human", cfg.Paddles.Right.Control)
	}
	if cfg.Speed != config.SpeedFast {
		t.Errorf("speed = %q, want fast", cfg.Speed)
	}
	if !cfg.Audio.Enabled {
		t.Error("sound should be enabled")
	}
}

func TestMatchFlagsForcedDefaults(t *testing.T) {
	cmd, f := newFlagCmd("human", "random")
	cfg := config.DefaultPongConfig()

	if err := f.apply(cmd, &cfg, true); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Paddles.Right.Control != config.ControlRandom {
		t.Errorf("right control = %q, want random", cfg.Paddles.Right.Control)
	}
}

func TestMatchFlagsErrors(t *testing.T) {
	tests := []struct {
		flag, value string
		want        error
	}{
		{"right", "robot", config.ErrUnknownControl},
		{"speed", "ludicrous", config.ErrUnknownPreset},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			cmd, f := newFlagCmd("human", "human")
			if err := cmd.Flags().Set(tt.flag, tt.value); err != nil {
				t.Fatalf("Set: %v", err)
			}
			cfg := config.DefaultPongConfig()
			if err := f.apply(cmd, &cfg, false); !errors.Is(err, tt.want) {
				t.Errorf("apply() = %v, want %v", err, tt.want)
			}
		})
	}
}
