// Package config provides YAML-based configuration loading for the Pong
// simulation and its frontends.
package config

import (
	"fmt"
	"time"
)

// PongConfig contains all configuration for a Pong match and its frontends.
type PongConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Paddles  PaddlesConfig  `yaml:"paddles"`
	Speed    SpeedPreset    `yaml:"speed"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Audio    AudioConfig    `yaml:"audio"`
}

// ArenaConfig defines the arena geometry and entity speeds, in world units.
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	WallHeight   float64 `yaml:"wall_height"`
	Padding      float64 `yaml:"padding"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	BallRadius   float64 `yaml:"ball_radius"`
	BallSpeed    float64 `yaml:"ball_speed"`
}

// PaddlesConfig selects the control source of each paddle.
type PaddlesConfig struct {
	Left  PaddleConfig `yaml:"left"`
	Right PaddleConfig `yaml:"right"`
}

// PaddleConfig describes one paddle's control source.
// Up and Down are only used by human control.
type PaddleConfig struct {
	Control Control `yaml:"control"`
	Up      string  `yaml:"up"`
	Down    string  `yaml:"down"`
}

// Control names a paddle control source.
type Control string

const (
	ControlHuman  Control = "human"
	ControlRandom Control = "random"
)

// WindowConfig is handed to the window frontend.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	Background RGB    `yaml:"background"`
	Wall       RGB    `yaml:"wall"`
	Paddle     RGB    `yaml:"paddle"`
	Ball       RGB    `yaml:"ball"`
}

// RGB is a colour with components in [0, 1].
type RGB [3]float64

// TerminalConfig tunes the terminal frontend.
type TerminalConfig struct {
	// HoldWindow is how long a key counts as held after its last key event.
	// Terminals report presses and auto-repeats but never releases.
	HoldWindow time.Duration `yaml:"hold_window"`
	// MaxDelta caps the simulated time of a single frame.
	MaxDelta time.Duration `yaml:"max_delta"`
	ShowHelp bool          `yaml:"show_help"`
}

// AudioConfig controls bounce sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// SpeedPreset represents a named speed level.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// MultiplierForPreset returns the speed multiplier for a preset.
// An empty preset means normal.
func MultiplierForPreset(preset SpeedPreset) (float64, error) {
	switch preset {
	case SpeedSlow:
		return 0.7, nil
	case SpeedNormal, "":
		return 1.0, nil
	case SpeedFast:
		return 1.4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}
