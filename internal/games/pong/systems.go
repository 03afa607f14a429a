package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// sampleInput asks each paddle's controller for this frame's intent.
func (w *World) sampleInput(kb core.Keyboard) {
	for i := range w.paddles {
		p := &w.paddles[i]
		if p.Control == nil {
			p.Intent = Intent{}
			continue
		}
		p.Intent = p.Control.Intent(kb)
	}
}

// movePaddles integrates intent into vertical position, clamped between the walls.
func (w *World) movePaddles(delta float64) {
	lo, hi := w.arena.PaddleYRange()
	for i := range w.paddles {
		p := &w.paddles[i]
		y := p.Y + p.Intent.Direction()*w.arena.PaddleSpeed*delta
		p.Y = core.ClampF(y, lo, hi)
	}
}

// spawnBall serves a new ball from the centre when none is in play.
func (w *World) spawnBall() {
	if w.ball != nil {
		return
	}

	speedY := (w.rng.Float64()*2 - 1) * spawnSpread
	sign := 1.0
	if w.rng.Intn(2) == 0 {
		sign = -1.0
	}
	speedX := math.Sqrt(1-speedY*speedY) * sign

	w.ball = &Ball{
		Pos: core.V(0, 0),
		Vel: core.V(speedX, speedY).Normalize().Scale(w.arena.BallSpeed),
	}
	w.emit(EventBallSpawned, sideOf(speedX))
}

// moveBall integrates the ball's position. Bounds are left to the
// collision stages that follow.
func (w *World) moveBall(delta float64) {
	if w.ball == nil {
		return
	}
	w.ball.Pos = w.ball.Pos.Add(w.ball.Vel.Scale(delta))
}

// collideWalls reflects the ball off the top and bottom walls.
func (w *World) collideWalls() {
	if w.ball == nil {
		return
	}

	lo, hi := w.arena.BallYRange()
	y := w.ball.Pos.Y
	if y < lo || y > hi {
		w.ball.Pos.Y = core.ClampF(y, lo, hi)
		w.ball.Vel.Y = -w.ball.Vel.Y
		w.emit(EventWallBounce, sideOf(w.ball.Vel.X))
	}
}

// collidePaddles bounces the ball off the paddle it is travelling towards
// once it crosses that paddle's face line. The return angle depends on where
// the ball meets the paddle: centre hits come back flat, edge hits steep.
func (w *World) collidePaddles() {
	if w.ball == nil {
		return
	}

	p, ok := w.targetPaddle()
	if !ok {
		return
	}

	b := w.ball
	minX, maxX := w.arena.BallXRange()
	crossed := (p.Side == SideLeft && b.Pos.X < minX) || (p.Side == SideRight && b.Pos.X > maxX)
	if !crossed {
		return
	}

	lo, hi := p.Extent(w.arena.PaddleHeight)
	if b.Pos.Y < lo || b.Pos.Y > hi {
		return // miss: the ball carries on towards the exit
	}

	fraction := (b.Pos.Y - lo) / (hi - lo)
	factor := fraction*2 - 1

	b.Pos.X = core.ClampF(b.Pos.X, minX, maxX)
	b.Vel.X = -b.Vel.X
	b.Vel.Y = factor * w.arena.BallSpeed
	w.emit(EventPaddleBounce, p.Side)
}

// targetPaddle picks the paddle the ball is moving towards and has not yet
// passed. A stationary ball targets nothing.
func (w *World) targetPaddle() (Paddle, bool) {
	b := w.ball
	for _, p := range w.paddles {
		if (b.Vel.X > 0 && b.Pos.X < p.X) || (b.Vel.X < 0 && b.Pos.X > p.X) {
			return p, true
		}
	}
	return Paddle{}, false
}

// despawnBall removes a ball that has left the arena horizontally.
func (w *World) despawnBall() {
	if w.ball == nil || w.arena.Contains(w.ball.Pos.X) {
		return
	}
	w.emit(EventBallDespawned, sideOf(w.ball.Pos.X))
	w.ball = nil
}

// sideOf maps a horizontal sign to the side it points at.
func sideOf(x float64) Side {
	if x < 0 {
		return SideLeft
	}
	return SideRight
}
