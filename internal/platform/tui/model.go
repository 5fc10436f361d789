package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golddigger/internal/config"
	"github.com/vovakirdan/golddigger/internal/core"
	"github.com/vovakirdan/golddigger/internal/registry"
	"github.com/vovakirdan/golddigger/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	hold       *HoldTracker
	input      textinput.Model
	dialogErr  string
	maxDelta   time.Duration
	lastTick   time.Time
	now        func() time.Time
	log        *log.Logger

	screenshotDir string

	embedded   bool // Running inside a session; back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, in config.InputConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		hold: NewHoldTracker(
			time.Duration(in.HoldInitialMS)*time.Millisecond,
			time.Duration(in.HoldRepeatMS)*time.Millisecond,
		),
		input:         newDialogInput(),
		maxDelta:      time.Duration(in.MaxFrameDeltaMS) * time.Millisecond,
		now:           time.Now,
		log:           logger,
		screenshotDir: defaultScreenshotDir(),
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".golddigger", "screenshots")
	}
	return filepath.Join(home, ".golddigger", "screenshots")
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)

	// Start the tick loop
	return tea.Batch(tickCmd(m.config.TickRate), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if d, ok := m.game.Dialog(); ok {
			return m.handleDialogKey(msg, d)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	// Cursor blink and other text input messages
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch {
	case IsDirection(action):
		m.hold.Press(action, m.now())
	case action == core.ActionBack:
		if m.gameState.Paused {
			return m.leave()
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleDialogKey routes keys to the open dialog.
func (m Model) handleDialogKey(msg tea.KeyMsg, d core.Dialog) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()

	case tea.KeyEnter:
		if err := m.game.Submit(m.input.Value()); err != nil {
			m.dialogErr = capitalize(err.Error())
			return m, nil
		}
		m.closeDialog()
		return m, nil

	case tea.KeyEsc:
		if d.HasInput() {
			m.game.Dismiss()
			m.closeDialog()
		}
		return m, nil
	}

	if !d.HasInput() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.dialogErr = ""
	return m, cmd
}

func (m *Model) closeDialog() {
	m.input.Reset()
	m.input.Blur()
	m.dialogErr = ""
}

// quit records the run and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.game.Finish(storage.EndQuit)
	m.quitting = true
	return m, tea.Quit
}

// leave returns to the menu, or quits when running on its own.
func (m Model) leave() (tea.Model, tea.Cmd) {
	if !m.embedded {
		return m.quit()
	}
	m.game.Finish(storage.EndQuit)
	m.backToMenu = true
	return m, nil
}

// handleResize processes window resize events.
// The world is kept; only the view changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := m.frameDelta(now)

	if _, open := m.game.Dialog(); open {
		// Keys pressed before the dialog opened must not keep digging after it closes
		m.hold.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Frame(now, &m.inputFrame)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	for _, e := range result.Events {
		m.log.Debug("game event", "mode", m.game.ID(), "event", e)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	var cmd tea.Cmd
	if d, open := m.game.Dialog(); open && d.HasInput() {
		m.input.Reset()
		cmd = m.input.Focus()
	}

	return m, tea.Batch(tickCmd(m.config.TickRate), cmd)
}

// frameDelta returns the time since the previous tick, clamped so a stall
// does not turn into one huge step.
func (m *Model) frameDelta(now time.Time) time.Duration {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return 0
	}
	dt := now.Sub(m.lastTick)
	m.lastTick = now
	if dt < 0 {
		return 0
	}
	if m.maxDelta > 0 && dt > m.maxDelta {
		return m.maxDelta
	}
	return dt
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.log.Warn("cannot create screenshot directory", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if d, ok := m.game.Dialog(); ok {
		view = overlay(view, renderDialog(d, m.input, m.dialogErr), m.screen.Width())
	}
	return view
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, in config.InputConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, in, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
