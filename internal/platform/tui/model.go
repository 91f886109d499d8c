package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/export"
	"github.com/vovakirdan/termtris/internal/storage"
	"github.com/vovakirdan/termtris/internal/tetris"
)

// Options configure a game model. Store, Exporter and Logger are
// optional.
type Options struct {
	Game     config.TetrisConfig
	Runtime  core.RuntimeConfig
	Store    storage.Store
	Exporter *export.Exporter
	Logger   *log.Logger
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	session  *tetris.Session
	screen   *core.Screen
	store    storage.Store
	exporter *export.Exporter
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model

	input      core.InputFrame
	lastTick   time.Time
	gameState  core.GameState
	started    bool
	quitting   bool
	scoreSaved bool // Whether the current game over has been submitted
	status     string
}

// NewModel creates a model with a fresh session waiting for the first key.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		session:  tetris.NewSession(opts.Game, cfg.Seed),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:    opts.Store,
		exporter: opts.Exporter,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.session.SetHighScore(m.loadHighScore())
	m.gameState = m.session.State()
	return m
}

// loadHighScore reads the stored best. Failures read as 0.
func (m Model) loadHighScore() int {
	if m.store == nil {
		return 0
	}
	high, err := m.store.HighScore()
	if err != nil {
		m.logger.Debug("cannot read high score", "error", err)
		return 0
	}
	return high
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.input.Push(core.ActionQuit)
		m.session.Step(m.input)
		m.input.Clear()
		m.quitting = true
		m.logger.Info("session quit", "score", m.gameState.Score)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copyBoard()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.started {
		m.started = true
		m.lastTick = time.Time{}
		return m, nil
	}

	if m.gameState.GameOver {
		if key.Matches(msg, m.keys.Restart) {
			m.restart()
		}
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.input.Push(a)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by the wall-clock time since the last
// tick. Nothing advances before the first key or after game over.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	next := tickCmd(m.config.TickInterval())
	if !m.started || m.gameState.GameOver {
		m.lastTick = now
		return m, next
	}

	m.input.Elapsed = elapsedSince(m.lastTick, now)
	m.lastTick = now

	result := m.session.Step(m.input)
	m.input.Clear()
	m.gameState = result.State

	if result.Cleared > 0 {
		m.logger.Debug("rows cleared",
			"rows", result.Cleared,
			"lines", result.State.Lines,
			"level", result.State.Level,
		)
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.submitScore()
	}
	return m, next
}

// submitScore reports the finished game to the store once.
func (m *Model) submitScore() {
	m.scoreSaved = true
	st := m.gameState
	m.logger.Info("game over", "score", st.Score, "lines", st.Lines, "level", st.Level)

	if m.store == nil {
		return
	}
	best, err := m.store.Submit(storage.Result{Score: st.Score, Lines: st.Lines, Level: st.Level})
	if err != nil {
		m.logger.Debug("cannot save score", "error", err)
		return
	}
	if best {
		m.session.SetHighScore(st.Score)
		m.status = "New high score!"
	}
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.session.Reset(m.config.Seed)
	m.session.SetHighScore(m.loadHighScore())
	m.gameState = m.session.State()
	m.scoreSaved = false
	m.status = ""
	m.input.Clear()
	m.lastTick = time.Time{}
	m.logger.Debug("session restarted", "seed", m.config.Seed)
}

// saveScreenshot writes the current frame as text and the board as PNG.
func (m *Model) saveScreenshot() {
	if m.exporter == nil {
		return
	}
	m.draw()
	paths, err := m.exporter.Save(m.screen, export.BoardOf(m.session), export.FormatText, export.FormatPNG)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "Screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "files", paths)
	m.status = "Saved to " + m.exporter.Dir()
}

// copyBoard puts the text frame on the clipboard.
func (m *Model) copyBoard() {
	m.draw()
	if err := export.CopyText(export.Text(m.screen)); err != nil {
		m.logger.Debug("clipboard unavailable", "error", err)
		m.status = "Clipboard unavailable"
		return
	}
	m.status = "Copied to clipboard"
}

// draw renders the current phase into the screen buffer.
func (m Model) draw() {
	if !m.started {
		tetris.RenderMessage(m.screen, "TERMTRIS",
			"Press any key to begin",
			fmt.Sprintf("High score: %d", m.session.HighScore()))
		return
	}
	m.session.Render(m.screen)
}

// View renders the screen buffer followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(footer))
	return b.String()
}

// Session returns the game session driven by the model.
func (m Model) Session() *tetris.Session {
	return m.session
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
