package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap holds the frontend's own bindings plus help entries for the
// human-controlled paddles. It implements help.KeyMap.
type KeyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Help       key.Binding
	Screenshot key.Binding

	Paddles []key.Binding
}

// DefaultKeyMap returns the frontend bindings with help entries for every
// human paddle in cfg.
func DefaultKeyMap(cfg config.PaddlesConfig) KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}

	for _, p := range []struct {
		name string
		cfg  config.PaddleConfig
	}{{"left", cfg.Left}, {"right", cfg.Right}} {
		if p.cfg.Control != config.ControlHuman {
			continue
		}
		km.Paddles = append(km.Paddles, key.NewBinding(
			key.WithKeys(p.cfg.Up, p.cfg.Down),
			key.WithHelp(keyLabel(p.cfg.Up)+"/"+keyLabel(p.cfg.Down), p.name+" paddle"),
		))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.Paddles)+4)
	out = append(out, km.Paddles...)
	return append(out, km.Pause, km.Reset, km.Help, km.Quit)
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.Paddles,
		{km.Pause, km.Reset, km.Screenshot},
		{km.Help, km.Quit},
	}
}

func keyLabel(k string) string {
	switch k {
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

// KeyName normalizes a key message to the name used by core.Key.
// Single letters are lowercased so a held shift does not change the binding.
func KeyName(msg tea.KeyMsg) core.Key {
	s := msg.String()
	if len([]rune(s)) == 1 {
		s = strings.ToLower(s)
	}
	return core.Key(s)
}

// HeldKeys turns a stream of key presses into held-key state.
// Terminals report presses and auto-repeats but no releases, so a key counts
// as held until window has passed since its last event.
type HeldKeys struct {
	window time.Duration
	last   map[core.Key]time.Time
	now    time.Time
}

// NewHeldKeys creates an empty tracker. A non-positive window falls back to
// 150ms, slightly longer than a typical keyboard's auto-repeat delay.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = 150 * time.Millisecond
	}
	return &HeldKeys{
		window: window,
		last:   make(map[core.Key]time.Time),
	}
}

// Press records an event for k at the given time.
func (h *HeldKeys) Press(k core.Key, at time.Time) {
	h.last[k] = at
	if at.After(h.now) {
		h.now = at
	}
}

// Advance moves the tracker's clock forward and forgets expired keys.
func (h *HeldKeys) Advance(now time.Time) {
	h.now = now
	for k, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, k)
		}
	}
}

// Pressed implements core.Keyboard.
func (h *HeldKeys) Pressed(k core.Key) bool {
	t, ok := h.last[k]
	return ok && h.now.Sub(t) <= h.window
}

// Release forgets every key.
func (h *HeldKeys) Release() {
	clear(h.last)
}
