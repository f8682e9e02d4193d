package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simon-says/internal/config"
	"github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/simon"
)

// RunRecorder stores the level reached in each lost round.
type RunRecorder interface {
	RecordRun(level int)
}

// GameDeps are the collaborators a play screen wires into its game.
type GameDeps struct {
	Config  config.SimonConfig
	Scores  simon.ScoreKeeper // nil keeps the high score in memory
	History RunRecorder       // nil skips the round history
	Speaker simon.Speaker     // nil is silent
	Logger  *log.Logger
}

// NewSpeaker returns the cue player selected by the sound settings, or nil
// when sound is off.
func NewSpeaker(w io.Writer, s config.SoundConfig) simon.Speaker {
	switch {
	case s.Tones:
		return simon.NewToneSpeaker(w)
	case s.Bell:
		return simon.NewBellSpeaker(w)
	}
	return nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one Simon Says play screen.
type Model struct {
	game       *simon.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	loop       uint64
	lastTick   time.Time
	quitting   bool
	backToMenu bool
}

// NewModel creates a play screen. The game is idle until the player presses
// start.
func NewModel(deps GameDeps, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hooks := simon.Hooks{
		OnStatus: func(s simon.Status) {
			logger.Debug("status", "kind", s.Kind, "level", s.Level)
		},
	}
	if deps.History != nil {
		hooks.OnLost = deps.History.RecordRun
	}

	board := simon.NewBoard(simon.DefaultPads(), deps.Speaker)
	game := simon.NewGame(deps.Config, board, deps.Scores,
		simon.WithSeed(cfg.Seed),
		simon.WithLogger(logger),
		simon.WithHooks(hooks),
	)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		loop:      newTickLoop(),
	}
}

// fitScreen sizes the board to the space left above the help footer.
func (m *Model) fitScreen() {
	footer := lipgloss.Height(m.help.View(m.keyMapper.Keys()))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 0))
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop, m.config.TickRate)
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
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionStart:
		m.game.Start()
	case action == core.ActionBack:
		// Leaving mid-level would abandon the round silently.
		if m.game.Snapshot().Started {
			return m, nil
		}
		m.backToMenu = true
	case action.IsPad():
		if c, ok := PadColor(action); ok {
			m.game.Tap(c)
		}
	}

	return m, nil
}

// handleMouse forwards left clicks to the board.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.game.TapAt(msg.X, msg.Y)
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.game.Step(max(dt, 0))
	return m, tickCmd(m.loop, m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Game returns the game driven by this screen.
func (m Model) Game() *simon.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
