package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

const paddleSpeed = 500.0

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestModel(t *testing.T) (Model, *clock) {
	t.Helper()
	cfg := config.DefaultPongConfig()
	w, err := pong.NewFromConfig(cfg, 1)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	m := NewModel(w, cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil)
	c := &clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	m.now = c.Now
	return m, c
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	m, c := newTestModel(t)

	m, _ = update(t, m, runeKey('w'))
	m, cmd := update(t, m, TickMsg(c.now.Add(10*time.Millisecond)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	// The first frame has no previous tick and uses the nominal frame time.
	want := paddleSpeed / 60
	if got := m.World().Paddle(pong.SideLeft).Y; !almostEqual(got, want) {
		t.Errorf("left paddle y = %v, want %v", got, want)
	}
	if got := m.World().Paddle(pong.SideRight).Y; got != 0 {
		t.Errorf("right paddle y = %v, want 0", got)
	}
}

func TestModelKeyExpires(t *testing.T) {
	m, c := newTestModel(t)

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, TickMsg(c.now))
	before := m.World().Paddle(pong.SideLeft).Y

	// No repeat arrives within the hold window: the key counts as released.
	m, _ = update(t, m, TickMsg(c.now.Add(500*time.Millisecond)))
	if got := m.World().Paddle(pong.SideLeft).Y; got != before {
		t.Errorf("paddle moved after release: %v -> %v", before, got)
	}
}

func TestModelDeltaIsCapped(t *testing.T) {
	m, c := newTestModel(t)

	m, _ = update(t, m, TickMsg(c.now))
	start := m.World().Paddle(pong.SideRight).Y

	c.now = c.now.Add(time.Second)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg(c.now))

	// A one second stall simulates at most max_delta (100ms).
	want := start + paddleSpeed*0.1
	if got := m.World().Paddle(pong.SideRight).Y; !almostEqual(got, want) {
		t.Errorf("right paddle y = %v, want %v", got, want)
	}
}

func TestModelPause(t *testing.T) {
	m, c := newTestModel(t)

	m, _ = update(t, m, TickMsg(c.now))
	m, _ = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("p should pause")
	}

	for i := 1; i <= 5; i++ {
		m, _ = update(t, m, TickMsg(c.now.Add(time.Duration(i)*16*time.Millisecond)))
	}
	if got := m.World().Tick(); got != 1 {
		t.Errorf("tick = %d while paused, want 1", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show a banner")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Paused() {
		t.Fatal("esc should resume")
	}
	m, _ = update(t, m, TickMsg(c.now.Add(time.Second)))
	if got := m.World().Tick(); got != 2 {
		t.Errorf("tick = %d after resume, want 2", got)
	}
}

func TestModelReset(t *testing.T) {
	m, c := newTestModel(t)

	for i := range 10 {
		m, _ = update(t, m, TickMsg(c.now.Add(time.Duration(i)*16*time.Millisecond)))
	}
	if _, ok := m.World().Ball(); !ok {
		t.Fatal("ball should be in play")
	}

	m, _ = update(t, m, runeKey('r'))
	if got := m.World().Tick(); got != 0 {
		t.Errorf("tick = %d after reset, want 0", got)
	}
	if _, ok := m.World().Ball(); ok {
		t.Error("reset should remove the ball")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m, cmd := update(t, m, tt.msg)
			if !m.IsQuitting() {
				t.Error("model should be quitting")
			}
			if cmd == nil {
				t.Error("quit should return a command")
			}
			if m.View() != "" {
				t.Error("quitting view should be empty")
			}
		})
	}
}

func TestModelViewSize(t *testing.T) {
	m, c := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 15})
	m, _ = update(t, m, TickMsg(c.now))

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 15 {
		t.Errorf("view has %d lines with help, want 15", len(lines))
	}

	m, _ = update(t, m, runeKey('?'))
	lines = strings.Split(m.View(), "\n")
	if len(lines) != 15 {
		t.Errorf("view has %d lines without help, want 15", len(lines))
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m, c := newTestModel(t)
	m, _ = update(t, m, TickMsg(c.now))
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(home, ".pong", "screenshots", "pong_*.txt"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(files))
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.ContainsRune(string(data), runePaddle) {
		t.Error("screenshot should contain the paddles")
	}
}
