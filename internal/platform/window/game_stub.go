//go:build !ebiten

package window

import "github.com/vovakirdan/tui-pong/internal/games/pong"

// Run always fails in builds without the ebiten tag.
func Run(*pong.World, Options) error {
	return ErrUnavailable
}
