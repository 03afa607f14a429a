// Package window runs the Pong simulation in a native window with ebiten.
// The ebiten frontend is only compiled with the ebiten build tag; without it
// Run reports ErrUnavailable.
package window

import (
	"errors"
	"image/color"
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the ebiten tag; rebuild with -tags ebiten")

// Options configures a window run.
type Options struct {
	Window   config.WindowConfig
	TickRate int
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Layout converts world coordinates (origin at the centre, +Y up) to screen
// pixels (origin top-left, +Y down). One world unit is one pixel.
type Layout struct {
	arena pong.Arena
}

// NewLayout returns the layout for arena.
func NewLayout(arena pong.Arena) Layout {
	return Layout{arena: arena}
}

// Size returns the logical screen size in pixels.
func (l Layout) Size() (int, int) {
	return int(math.Round(l.arena.Width)), int(math.Round(l.arena.Height))
}

// Point maps a world position to the screen.
func (l Layout) Point(p core.Vec2) (float32, float32) {
	return float32(p.X + l.arena.Width/2), float32(l.arena.Height/2 - p.Y)
}

// Centered maps a world-space box given by its centre and size.
func (l Layout) Centered(c core.Vec2, w, h float64) Rect {
	x, y := l.Point(c)
	return Rect{X: x - float32(w/2), Y: y - float32(h/2), W: float32(w), H: float32(h)}
}

// Walls returns the top and bottom wall rectangles.
func (l Layout) Walls() (top, bottom Rect) {
	a := l.arena
	top = l.Centered(core.V(0, a.TopWallY()), a.Width, a.WallHeight)
	bottom = l.Centered(core.V(0, a.BottomWallY()), a.Width, a.WallHeight)
	return top, bottom
}

// Paddle returns the rectangle covered by p.
func (l Layout) Paddle(p pong.Paddle) Rect {
	return l.Centered(p.Pos(), l.arena.PaddleWidth, l.arena.PaddleHeight)
}

// RGBA converts a [0, 1] colour to an opaque color.RGBA.
func RGBA(c config.RGB) color.RGBA {
	ch := func(v float64) uint8 {
		return uint8(math.Round(core.ClampF(v, 0, 1) * 255))
	}
	return color.RGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: 0xff}
}
