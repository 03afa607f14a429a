// Package logging builds the process logger and adapts simulation events
// to structured log lines.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// New creates a logger writing to w at the given level ("debug", "info", ...).
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// OpenFile opens path for appending, creating parent directories as needed.
// A leading ~ expands to the home directory.
func OpenFile(path string) (*os.File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}

// Events returns a listener that logs every simulation event at debug level.
func Events(logger *log.Logger) pong.Listener {
	return pong.ListenerFunc(func(ev pong.Event) {
		switch ev.Kind {
		case pong.EventPaddleBounce, pong.EventBallDespawned:
			logger.Debug(ev.Kind.String(), "tick", ev.Tick, "side", ev.Side, "x", ev.Pos.X, "y", ev.Pos.Y)
		default:
			logger.Debug(ev.Kind.String(), "tick", ev.Tick, "vx", ev.Vel.X, "vy", ev.Vel.Y)
		}
	})
}
