package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/game"
	"github.com/vovakirdan/fluppy/internal/storage"
)

// maxFrameDt bounds the wall-clock delta fed to the simulation, so a
// suspended terminal does not teleport the bird on resume.
const maxFrameDt = 250 * time.Millisecond

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       PlayKeyMap
	help       help.Model
	inputFrame core.InputFrame
	status     game.Status
	lastTick   time.Time
	quitting   bool
	scoreSaved bool // one save per finished run
}

// NewModel creates the model for a constructed game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		keys:       DefaultPlayKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		status:     g.Status(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model.
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

// handleKey buffers actions into the frame consumed by the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionRestart && m.status.State != game.StateGameOver {
		return m, nil // restart only means something after a run ends
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the screen buffer and playfield in sync with the
// terminal. The help footer takes the bottom row.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, msg.Height-1
	if w < 20 {
		w = 20
	}
	if h < 10 {
		h = 10
	}
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.game.Resize(w, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame from the wall-clock delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Duration(0)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	if dt > maxFrameDt {
		dt = maxFrameDt
	}
	m.lastTick = now

	wasOver := m.status.State == game.StateGameOver
	m.status = m.game.Step(dt.Seconds(), m.inputFrame)
	m.inputFrame.Clear()

	if m.status.State == game.StateGameOver && !wasOver && !m.scoreSaved && m.status.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.Preset().Name, m.status.Score)
		}
		m.scoreSaved = true
	}
	if m.status.State != game.StateGameOver {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run drives a game session to completion.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
