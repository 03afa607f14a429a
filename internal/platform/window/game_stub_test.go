//go:build !ebiten

package window

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestRunWithoutEbitenTag(t *testing.T) {
	w, err := pong.NewFromConfig(config.DefaultPongConfig(), 1)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if err := Run(w, Options{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run() = %v, want ErrUnavailable", err)
	}
}
