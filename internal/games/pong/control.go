package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Controller produces a paddle's intent once per frame.
type Controller interface {
	Intent(kb core.Keyboard) Intent
	fmt.Stringer
}

// Human drives a paddle from two keys.
type Human struct {
	Up   core.Key
	Down core.Key
}

// NewHuman returns a keyboard controller for the given keys.
func NewHuman(up, down core.Key) Human {
	return Human{Up: up, Down: down}
}

// Intent reads the current pressed state of both keys.
func (h Human) Intent(kb core.Keyboard) Intent {
	if kb == nil {
		return Intent{}
	}
	return Intent{
		Up:   kb.Pressed(h.Up),
		Down: kb.Pressed(h.Down),
	}
}

func (h Human) String() string {
	return fmt.Sprintf("human(%s/%s)", h.Up, h.Down)
}

// Random flips two fair coins every frame, ignoring the keyboard.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a controller sampling from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Intent samples up and down independently.
func (r *Random) Intent(core.Keyboard) Intent {
	return Intent{
		Up:   r.rng.Intn(2) == 1,
		Down: r.rng.Intn(2) == 1,
	}
}

func (r *Random) String() string {
	return "random"
}
