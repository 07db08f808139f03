package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timing/internal/core"
	"github.com/vovakirdan/tui-timing/internal/games/timing"
	"github.com/vovakirdan/tui-timing/internal/storage"
)

// helpHeight is the number of terminal rows reserved for the key help footer.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the timing game.
type Model struct {
	game       *timing.Game
	screen     *core.Screen
	journal    *storage.Journal
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model and starts the first session.
// journal and logger may be nil.
func NewModel(game *timing.Game, journal *storage.Journal, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		journal:    journal,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}

	game.Reset(cfg)
	m.gameState = game.State()
	m.logger.Info("session started", "seed", cfg.Seed, "fps", cfg.TickRate, "session", m.sessionID())

	return m
}

// playfieldHeight returns the rows left for the game below the help footer.
func playfieldHeight(termHeight int) int {
	return max(1, termHeight-helpHeight)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "successes", m.gameState.Successes, "failures", m.gameState.Failures)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer. The field is logical, so the
// session continues unchanged at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new session with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	if m.journal != nil {
		m.journal.NewSession()
	}
	m.logger.Info("session restarted", "seed", m.config.Seed, "session", m.sessionID())
}

// handleEvents logs transitions and journals resolved attempts.
func (m Model) handleEvents(events []timing.Event) {
	for _, ev := range events {
		if ev.Resolution == nil {
			m.logger.Debug(ev.Kind.String(), "from", ev.From, "to", ev.To, "at", ev.At,
				"speed", ev.Params.RiseSpeed, "hold_ms", ev.Params.HoldMs)
			continue
		}

		res := ev.Resolution
		m.logger.Info("attempt resolved",
			"outcome", res.Outcome,
			"cause", res.Cause,
			"phase", res.Phase,
			"held_ms", res.HeldMs,
			"hold_ms", res.Params.HoldMs,
			"target_y", res.Challenge.TargetY,
		)

		if m.journal == nil {
			continue
		}
		if _, err := m.journal.RecordAttempt(attemptRecord(res)); err != nil {
			// Best-effort, the game continues regardless
			m.logger.Warn("could not record attempt", "error", err)
		}
	}
}

// attemptRecord converts a resolution to its journal form.
func attemptRecord(res *timing.Resolution) storage.AttemptRecord {
	outcome := storage.OutcomeFailure
	if res.Outcome == timing.OutcomeSuccess {
		outcome = storage.OutcomeSuccess
	}
	return storage.AttemptRecord{
		Outcome:    outcome,
		Cause:      res.Cause.String(),
		Phase:      res.Phase.String(),
		HeldMs:     res.HeldMs,
		HoldMs:     res.Params.HoldMs,
		RiseSpeed:  res.Params.RiseSpeed,
		TargetY:    res.Challenge.TargetY,
		ResolvedAt: res.At,
	}
}

func (m Model) sessionID() string {
	if m.journal == nil {
		return ""
	}
	return m.journal.SessionID()
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for one game and blocks until the
// player quits.
func Run(game *timing.Game, journal *storage.Journal, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, journal, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
