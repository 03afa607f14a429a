package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Side identifies one of the two paddles.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Intent is a paddle's desired movement for the current frame.
// Up and Down may both be set, in which case they cancel.
type Intent struct {
	Up   bool
	Down bool
}

// Direction returns +1 for up, -1 for down and 0 for none or both.
func (in Intent) Direction() float64 {
	d := 0.0
	if in.Up {
		d++
	}
	if in.Down {
		d--
	}
	return d
}

// Paddle is one of the two player paddles. X is fixed at creation.
type Paddle struct {
	Side    Side
	X       float64
	Y       float64
	Intent  Intent
	Control Controller
}

// Pos returns the paddle centre.
func (p Paddle) Pos() core.Vec2 {
	return core.V(p.X, p.Y)
}

// Extent returns the paddle's vertical span, edges included.
func (p Paddle) Extent(height float64) (lo, hi float64) {
	return p.Y - height/2, p.Y + height/2
}

// Ball is the single ball in play.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2
}
