package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/oddtile/internal/core"
	"github.com/vovakirdan/oddtile/internal/oddtile"
)

// Model is the Bubble Tea model for one game of oddtile.
type Model struct {
	game     *oddtile.Game
	screen   *core.Screen
	painter  *Painter
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game. A zero seed
// lets the game seed itself from the clock. A nil renderer uses the process
// default; a nil logger discards.
func NewModel(game *oddtile.Game, cfg core.RuntimeConfig, r *lipgloss.Renderer, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		painter: NewPainter(r),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		logger:  logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	m.game.Reset(m.gameConfig())
	return m
}

// Init implements tea.Model. Nothing runs until the player starts a game.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.relayout()
		return m, nil

	case CountdownMsg:
		return m.handleCountdown(msg)

	case FeedbackClearMsg:
		m.game.ClearFeedback(msg.Token)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	return m, m.apply(m.game.Apply(action))
}

// handleMouse picks the clicked tile.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	return m, m.apply(m.game.Click(msg.X, msg.Y))
}

// handleCountdown applies one countdown tick and re-arms while playing.
func (m Model) handleCountdown(msg CountdownMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	wasPlaying := m.game.State().Playing
	if m.game.Tick(msg.Token) {
		if !msg.At.IsZero() {
			m.logger.Debug("tick", "time_left", m.game.Snapshot().TimeLeft, "lag", now.Sub(msg.At))
		}
		return m, countdownCmd(msg.Token, nextTick(msg, m.game.Timing().Tick, now))
	}

	if state := m.game.State(); wasPlaying && state.GameOver {
		m.logger.Info("game over", "score", state.Score, "level", state.Level)
	}
	return m, nil
}

// apply logs an input result and schedules the timers it armed.
func (m Model) apply(res oddtile.Result) tea.Cmd {
	var cmds []tea.Cmd
	timing := m.game.Timing()

	if res.Started {
		m.logger.Info("game started")
	}
	if res.Countdown != 0 {
		cmds = append(cmds, countdownCmd(res.Countdown, time.Now().Add(timing.Tick)))
	}
	if res.Outcome != oddtile.OutcomeNone {
		snap := m.game.Snapshot()
		m.logger.Debug("tile picked",
			"outcome", res.Outcome,
			"score", snap.Score,
			"level", snap.Level,
			"time_left", snap.TimeLeft,
		)
	}
	if res.Feedback != 0 {
		cmds = append(cmds, feedbackCmd(res.Feedback, timing.Feedback))
	}

	return tea.Batch(cmds...)
}

// relayout resizes the screen buffer to the space left above the help
// footer.
func (m *Model) relayout() {
	m.screen.Resize(m.config.ScreenW, m.screenHeight())
	m.game.Resize(m.config.ScreenW, m.screenHeight())
}

// screenHeight is the terminal height minus the help footer.
func (m Model) screenHeight() int {
	return max(m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)), 0)
}

// gameConfig is the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screenHeight()
	return cfg
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(game *oddtile.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tiles are clickable
	)

	_, err := p.Run()
	return err
}
