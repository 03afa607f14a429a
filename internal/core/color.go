package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the terminal frontend.
type Color uint8

// Predefined colors for arena elements.
const (
	ColorDefault Color = iota
	ColorWall
	ColorPaddle
	ColorBall
	ColorNet
	ColorText
)
