package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// ArenaFromConfig builds the arena geometry, with the speed preset applied
// to both paddle and ball speed.
func ArenaFromConfig(cfg config.PongConfig) (Arena, error) {
	mult, err := config.MultiplierForPreset(cfg.Speed)
	if err != nil {
		return Arena{}, err
	}
	a := cfg.Arena
	return Arena{
		Width:        a.Width,
		Height:       a.Height,
		WallHeight:   a.WallHeight,
		Padding:      a.Padding,
		PaddleWidth:  a.PaddleWidth,
		PaddleHeight: a.PaddleHeight,
		PaddleSpeed:  a.PaddleSpeed * mult,
		BallRadius:   a.BallRadius,
		BallSpeed:    a.BallSpeed * mult,
	}, nil
}

// ControllerFromConfig builds a paddle controller.
func ControllerFromConfig(p config.PaddleConfig, rng *rand.Rand) (Controller, error) {
	switch p.Control {
	case config.ControlHuman:
		return NewHuman(core.Key(p.Up), core.Key(p.Down)), nil
	case config.ControlRandom:
		return NewRandom(rng), nil
	default:
		return nil, fmt.Errorf("pong: %w: %q", config.ErrUnknownControl, p.Control)
	}
}

// NewFromConfig validates cfg and builds a world seeded with seed.
func NewFromConfig(cfg config.PongConfig, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}
	arena, err := ArenaFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	left, err := ControllerFromConfig(cfg.Paddles.Left, rng)
	if err != nil {
		return nil, err
	}
	right, err := ControllerFromConfig(cfg.Paddles.Right, rng)
	if err != nil {
		return nil, err
	}
	return NewWorld(arena, left, right, rng), nil
}
