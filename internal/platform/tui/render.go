package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPaddle:  lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	core.ColorBall:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
	core.ColorNet:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

const (
	runeWall   = '█'
	runePaddle = '█'
	runeBall   = '●'
	runeNet    = '│'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Projection maps world coordinates (origin at the centre, +Y up) onto a
// grid of terminal cells (origin top-left, rows growing downwards).
type Projection struct {
	arena pong.Arena
	cols  int
	rows  int
}

// NewProjection fits the arena onto a cols×rows grid.
func NewProjection(arena pong.Arena, cols, rows int) Projection {
	return Projection{arena: arena, cols: max(cols, 1), rows: max(rows, 1)}
}

// Col returns the column containing world x, clamped to the grid.
func (p Projection) Col(x float64) int {
	c := int(math.Floor((x + p.arena.Width/2) / p.arena.Width * float64(p.cols)))
	return core.Clamp(c, 0, p.cols-1)
}

// Row returns the row containing world y, clamped to the grid.
func (p Projection) Row(y float64) int {
	r := int(math.Floor((p.arena.Height/2 - y) / p.arena.Height * float64(p.rows)))
	return core.Clamp(r, 0, p.rows-1)
}

// Cells returns how many columns a world width covers, at least one.
func (p Projection) Cells(w float64) int {
	return max(1, int(math.Round(w/p.arena.Width*float64(p.cols))))
}

// Lines returns how many rows a world height covers, at least one.
func (p Projection) Lines(h float64) int {
	return max(1, int(math.Round(h/p.arena.Height*float64(p.rows))))
}

// DrawWorld renders walls, net, paddles and ball into the top rows of s.
func DrawWorld(s *core.Screen, w *pong.World, rows int) {
	rows = min(rows, s.Height())
	if rows <= 0 || s.Width() <= 0 {
		return
	}
	arena := w.Arena()
	proj := NewProjection(arena, s.Width(), rows)

	wall := proj.Lines(arena.WallHeight)
	s.DrawRect(core.NewRect(0, 0, s.Width(), wall), runeWall, core.ColorWall)
	s.DrawRect(core.NewRect(0, rows-wall, s.Width(), wall), runeWall, core.ColorWall)

	net := s.Width() / 2
	for y := wall; y < rows-wall; y += 2 {
		s.SetColored(net, y, runeNet, core.ColorNet)
	}

	width := proj.Cells(arena.PaddleWidth)
	for _, p := range w.Paddles() {
		lo, hi := p.Extent(arena.PaddleHeight)
		top, bottom := proj.Row(hi), proj.Row(lo)
		left := core.Clamp(proj.Col(p.X)-width/2, 0, s.Width()-width)
		s.DrawRect(core.NewRect(left, top, width, bottom-top+1), runePaddle, core.ColorPaddle)
	}

	if b, ok := w.Ball(); ok {
		s.SetColored(proj.Col(b.Pos.X), proj.Row(b.Pos.Y), runeBall, core.ColorBall)
	}
}

// drawBanner draws a boxed message in the middle of the playfield.
func drawBanner(s *core.Screen, rows int, text string) {
	w := len([]rune(text)) + 4
	if w > s.Width() || rows < 3 {
		return
	}
	x := (s.Width() - w) / 2
	y := rows/2 - 1
	s.DrawRect(core.NewRect(x, y, w, 3), ' ', core.ColorText)
	s.DrawBox(core.NewRect(x, y, w, 3))
	for i, r := range []rune(text) {
		s.SetColored(x+2+i, y+1, r, core.ColorText)
	}
}
