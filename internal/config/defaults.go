package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration: the classic
// 800x600 arena with W/S and Up/Down human paddles.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			Width:        800,
			Height:       600,
			WallHeight:   25,
			Padding:      30,
			PaddleWidth:  20,
			PaddleHeight: 100,
			PaddleSpeed:  500,
			BallRadius:   10,
			BallSpeed:    250,
		},
		Paddles: PaddlesConfig{
			Left:  PaddleConfig{Control: ControlHuman, Up: "w", Down: "s"},
			Right: PaddleConfig{Control: ControlHuman, Up: "up", Down: "down"},
		},
		Speed: SpeedNormal,
		Window: WindowConfig{
			Title:      "Pong!",
			Resizable:  false,
			Background: RGB{0.2, 0.2, 0.2},
			Wall:       RGB{0.5, 0.5, 0.5},
			Paddle:     RGB{0.5, 0.5, 1.0},
			Ball:       RGB{1.0, 0.5, 0.5},
		},
		Terminal: TerminalConfig{
			HoldWindow: 150 * time.Millisecond,
			MaxDelta:   100 * time.Millisecond,
			ShowHelp:   true,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.3,
		},
	}
}
