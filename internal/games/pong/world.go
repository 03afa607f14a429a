package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// World owns the two paddles and the optional ball.
// It is not safe for concurrent use; a single frame loop drives it.
type World struct {
	arena     Arena
	paddles   [2]Paddle
	ball      *Ball
	rng       *rand.Rand
	tick      uint64
	events    []Event
	listeners []Listener
}

// StepResult reports what happened during one frame.
type StepResult struct {
	Tick   uint64
	Events []Event
}

// NewWorld creates both paddles at their fixed columns, centred vertically.
// No ball exists until the first Step.
func NewWorld(arena Arena, left, right Controller, rng *rand.Rand) *World {
	w := &World{
		arena: arena,
		rng:   rng,
	}
	w.paddles[SideLeft] = Paddle{Side: SideLeft, X: arena.PaddleX(SideLeft), Control: left}
	w.paddles[SideRight] = Paddle{Side: SideRight, X: arena.PaddleX(SideRight), Control: right}
	return w
}

// Subscribe registers a listener for frame events.
func (w *World) Subscribe(l Listener) {
	w.listeners = append(w.listeners, l)
}

// Reset recentres the paddles, removes the ball and rewinds the frame count.
// Controllers and listeners are kept.
func (w *World) Reset() {
	for i := range w.paddles {
		w.paddles[i].Y = 0
		w.paddles[i].Intent = Intent{}
	}
	w.ball = nil
	w.tick = 0
}

// Step advances the simulation by delta seconds.
// Stages run in a fixed order: every collision rule assumes post-movement
// positions, and a ball destroyed this frame is only replaced next frame.
func (w *World) Step(delta float64, kb core.Keyboard) StepResult {
	if delta < 0 {
		delta = 0
	}
	w.tick++
	w.events = w.events[:0]

	w.sampleInput(kb)
	w.movePaddles(delta)
	w.spawnBall()
	w.moveBall(delta)
	w.collideWalls()
	w.collidePaddles()
	w.despawnBall()

	events := make([]Event, len(w.events))
	copy(events, w.events)
	for _, ev := range events {
		for _, l := range w.listeners {
			l.OnEvent(ev)
		}
	}

	return StepResult{Tick: w.tick, Events: events}
}

func (w *World) emit(kind EventKind, side Side) {
	ev := Event{Kind: kind, Tick: w.tick, Side: side}
	if w.ball != nil {
		ev.Pos = w.ball.Pos
		ev.Vel = w.ball.Vel
	}
	w.events = append(w.events, ev)
}

// Arena returns the world's geometry.
func (w *World) Arena() Arena {
	return w.arena
}

// Tick returns the number of frames stepped since creation or Reset.
func (w *World) Tick() uint64 {
	return w.tick
}

// Paddles returns copies of both paddles, left first.
func (w *World) Paddles() [2]Paddle {
	return w.paddles
}

// Paddle returns a copy of the paddle on the given side.
func (w *World) Paddle(side Side) Paddle {
	return w.paddles[side]
}

// Ball returns a copy of the ball and whether one exists.
func (w *World) Ball() (Ball, bool) {
	if w.ball == nil {
		return Ball{}, false
	}
	return *w.ball, true
}

// PlaceBall puts a ball in play, replacing any existing one.
func (w *World) PlaceBall(b Ball) {
	w.ball = &b
}
