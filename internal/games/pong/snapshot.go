package pong

import "math"

// Snapshot is a flat copy of the world state.
// Uses primitive types only for stable comparison and serialization.
type Snapshot struct {
	Tick      uint64
	LeftY     float64
	RightY    float64
	BallAlive bool
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   w.tick,
		LeftY:  w.paddles[SideLeft].Y,
		RightY: w.paddles[SideRight].Y,
	}
	if w.ball != nil {
		snap.BallAlive = true
		snap.BallX = w.ball.Pos.X
		snap.BallY = w.ball.Pos.Y
		snap.BallVX = w.ball.Vel.X
		snap.BallVY = w.ball.Vel.Y
	}
	return snap
}

// Hash computes a hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []float64{snap.LeftY, snap.RightY, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(v)
	}
	if snap.BallAlive {
		h = h*31 + 1
	}
	return h
}
