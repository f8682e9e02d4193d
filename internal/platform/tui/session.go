package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/simon"
	"github.com/vovakirdan/simon-says/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for local play and for SSH sessions.
type SessionModel struct {
	deps     GameDeps
	store    *storage.Store
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that opens on the menu. store may be nil,
// which hides the score screen.
func NewSessionModel(deps GameDeps, store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	if deps.Scores == nil {
		// One keeper per session so the menu and every game agree.
		deps.Scores = simon.NewMemoryKeeper(0)
	}

	return SessionModel{
		deps:   deps,
		store:  store,
		config: cfg,
		menu:   NewMenuModel(deps.Scores, store != nil, cfg),
	}
}

// PlayFirst makes the session skip the menu and open on a game.
func (m SessionModel) PlayFirst() SessionModel {
	m.openGame()
	return m
}

// Init initializes the current screen.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		switch selected.Choice {
		case MenuPlay:
			m.openGame()
			return m, m.game.Init()
		case MenuScores:
			sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			sb.embedded = true
			m.scores = &sb
			m.screen = screenScores
			return m, sb.Init()
		}
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.openMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		return m.openMenu()
	}

	return m, cmd
}

func (m *SessionModel) openGame() {
	gm := NewModel(m.deps, m.config)
	m.game = &gm
	m.screen = screenGame
}

func (m SessionModel) openMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.scores = nil
	m.menu = NewMenuModel(m.deps.Scores, m.store != nil, m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs a local session. With playFirst the menu is skipped until
// the player backs out of the first game.
func RunSession(deps GameDeps, store *storage.Store, cfg core.RuntimeConfig, playFirst bool) error {
	model := NewSessionModel(deps, store, cfg)
	if playFirst {
		model = model.PlayFirst()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
