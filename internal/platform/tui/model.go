package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Model is the Bubble Tea model driving one Pong world.
type Model struct {
	world    *pong.World
	screen   *core.Screen
	keys     *HeldKeys
	keyMap   KeyMap
	help     help.Model
	config   core.RuntimeConfig
	terminal config.TerminalConfig
	logger   *log.Logger
	now      func() time.Time

	lastTick time.Time
	showHelp bool
	paused   bool
	quitting bool
	status   string
}

// NewModel creates a model for world sized to cfg's screen.
func NewModel(world *pong.World, pc config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		world:    world,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewHeldKeys(pc.Terminal.HoldWindow),
		keyMap:   DefaultKeyMap(pc.Paddles),
		help:     help.New(),
		config:   cfg,
		terminal: pc.Terminal,
		logger:   logger,
		now:      time.Now,
		showHelp: pc.Terminal.ShowHelp,
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Frontend bindings win over paddle keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Pause):
		m.paused = !m.paused
		m.keys.Release()
		return m, nil
	case key.Matches(msg, m.keyMap.Reset):
		m.world.Reset()
		m.keys.Release()
		m.logger.Info("world reset")
		return m, nil
	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = false
		return m, nil
	case key.Matches(msg, m.keyMap.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil
	}

	m.keys.Press(KeyName(msg), m.now())
	return m, nil
}

// handleResize processes window resize events. World coordinates do not
// depend on the terminal size, so the match carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame. The simulated time is the wall time
// since the previous tick, capped so a stalled terminal does not teleport
// the ball through a paddle.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	delta := m.frameDelta(t)
	m.lastTick = t
	m.keys.Advance(t)

	if !m.paused {
		m.world.Step(delta.Seconds(), m.keys)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) frameDelta(t time.Time) time.Duration {
	if m.lastTick.IsZero() {
		return time.Duration(m.config.FrameDelta() * float64(time.Second))
	}
	delta := max(t.Sub(m.lastTick), 0)
	if m.terminal.MaxDelta > 0 {
		delta = min(delta, m.terminal.MaxDelta)
	}
	return delta
}

// fieldRows is the number of screen rows given to the playfield.
func (m Model) fieldRows() int {
	if m.showHelp {
		return max(m.screen.Height()-1, 0)
	}
	return m.screen.Height()
}

func (m Model) render() {
	m.screen.Clear()
	rows := m.fieldRows()
	DrawWorld(m.screen, m.world, rows)
	if m.paused {
		drawBanner(m.screen, rows, "PAUSED")
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("pong_%s_%d.txt", m.now().Format("20060102_150405"), m.world.Tick())
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	rows := m.fieldRows()
	out := RenderScreen(m.screen)
	if !m.showHelp || rows == m.screen.Height() {
		return out
	}

	footer := m.help.View(m.keyMap)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	// The last screen row is left blank for the footer.
	idx := strings.LastIndexByte(out, '\n')
	if idx < 0 {
		return footer
	}
	return out[:idx] + "\n" + footer
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// World returns the simulated world.
func (m Model) World() *pong.World {
	return m.world
}

// Run starts the Bubble Tea program for world on the local terminal.
func Run(world *pong.World, pc config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(world, pc, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
