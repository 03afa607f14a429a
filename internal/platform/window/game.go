//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// ebitenKeys maps key names to ebiten key codes.
var ebitenKeys = map[core.Key]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,

	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	" ":     ebiten.KeySpace,
	"space": ebiten.KeySpace,
}

// keyboard reads live key state from ebiten. Unlike a terminal, a window
// gets real press and release events, so no hold window is needed.
type keyboard struct{}

func (keyboard) Pressed(k core.Key) bool {
	ek, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// Game adapts a pong.World to the ebiten.Game interface.
type Game struct {
	world  *pong.World
	layout Layout
	delta  float64
	paused bool
	title  string

	background color.Color
	wall       color.Color
	paddle     color.Color
	ball       color.Color
}

// NewGame wraps world. Each Update advances it by one fixed frame.
func NewGame(world *pong.World, opts Options) *Game {
	rt := core.RuntimeConfig{TickRate: opts.TickRate}
	return &Game{
		world:      world,
		layout:     NewLayout(world.Arena()),
		delta:      rt.FrameDelta(),
		title:      opts.Window.Title,
		background: RGBA(opts.Window.Background),
		wall:       RGBA(opts.Window.Wall),
		paddle:     RGBA(opts.Window.Paddle),
		ball:       RGBA(opts.Window.Ball),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.paused = !g.paused
		if g.paused {
			ebiten.SetWindowTitle(g.title + " (paused)")
		} else {
			ebiten.SetWindowTitle(g.title)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.world.Reset()
	}

	if !g.paused {
		g.world.Step(g.delta, keyboard{})
	}
	return nil
}

// Draw renders walls, paddles and the ball.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	top, bottom := g.layout.Walls()
	fillRect(screen, top, g.wall)
	fillRect(screen, bottom, g.wall)

	for _, p := range g.world.Paddles() {
		fillRect(screen, g.layout.Paddle(p), g.paddle)
	}

	if b, ok := g.world.Ball(); ok {
		x, y := g.layout.Point(b.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(g.world.Arena().BallRadius), g.ball, true)
	}

}

// Layout returns the logical screen size: one pixel per world unit.
func (g *Game) Layout(int, int) (int, int) {
	return g.layout.Size()
}

func fillRect(dst *ebiten.Image, r Rect, c color.Color) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, c, false)
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(world *pong.World, opts Options) error {
	w, h := NewLayout(world.Arena()).Size()

	ebiten.SetWindowTitle(opts.Window.Title)
	ebiten.SetWindowSize(w, h)
	if opts.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(NewGame(world, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
