// Package pong implements the Pong simulation: two paddles, at most one ball,
// and a fixed per-frame update pipeline. It knows nothing about terminals or
// windows; frontends supply the frame delta and keyboard state.
package pong

// Default arena settings, in world units with the origin at the arena centre.
const (
	DefaultArenaWidth  = 800.0
	DefaultArenaHeight = 600.0
	DefaultWallHeight  = 25.0
	DefaultPadding     = 30.0

	DefaultPaddleWidth  = 20.0
	DefaultPaddleHeight = 100.0
	DefaultPaddleSpeed  = 500.0

	DefaultBallRadius = 10.0
	DefaultBallSpeed  = 250.0
)

// spawnSpread bounds the normalised vertical component of a new ball's
// direction, so serves are always shallow.
const spawnSpread = 0.2

// Arena holds the fixed geometry and speeds of a match.
// Wall and paddle bounds are derived on demand and never stored.
type Arena struct {
	Width      float64
	Height     float64
	WallHeight float64
	Padding    float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64

	BallRadius float64
	BallSpeed  float64
}

// DefaultArena returns the classic 800x600 arena.
func DefaultArena() Arena {
	return Arena{
		Width:        DefaultArenaWidth,
		Height:       DefaultArenaHeight,
		WallHeight:   DefaultWallHeight,
		Padding:      DefaultPadding,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		PaddleSpeed:  DefaultPaddleSpeed,
		BallRadius:   DefaultBallRadius,
		BallSpeed:    DefaultBallSpeed,
	}
}

// PaddleYRange returns the allowed range for a paddle's centre.
func (a Arena) PaddleYRange() (lo, hi float64) {
	lo = -a.Height/2 + a.PaddleHeight/2 + a.WallHeight
	hi = a.Height/2 - a.PaddleHeight/2 - a.WallHeight
	return lo, hi
}

// BallYRange returns the vertical range a ball centre may occupy between
// the walls.
func (a Arena) BallYRange() (lo, hi float64) {
	lo = -a.Height/2 + a.WallHeight + a.BallRadius
	hi = a.Height/2 - a.WallHeight - a.BallRadius
	return lo, hi
}

// BallXRange returns the horizontal band between the paddles' faces.
// Leaving it towards a paddle is what triggers a paddle bounce check.
func (a Arena) BallXRange() (lo, hi float64) {
	lo = -a.Width/2 + a.PaddleWidth + a.Padding + a.BallRadius
	hi = a.Width/2 - a.PaddleWidth - a.Padding - a.BallRadius
	return lo, hi
}

// PaddleX returns the fixed horizontal centre of the paddle on the given side.
func (a Arena) PaddleX(side Side) float64 {
	x := a.Width/2 - a.PaddleWidth/2 - a.Padding
	if side == SideLeft {
		return -x
	}
	return x
}

// Contains reports whether x lies within the arena's horizontal span,
// edges included.
func (a Arena) Contains(x float64) bool {
	return x >= -a.Width/2 && x <= a.Width/2
}

// TopWallY returns the centre line of the top wall.
func (a Arena) TopWallY() float64 {
	return a.Height/2 - a.WallHeight/2
}

// BottomWallY returns the centre line of the bottom wall.
func (a Arena) BottomWallY() float64 {
	return -a.Height/2 + a.WallHeight/2
}
