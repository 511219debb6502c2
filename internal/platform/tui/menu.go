package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
)

// DifficultyModel is the pre-game difficulty selector.
type DifficultyModel struct {
	names     []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
}

// NewDifficultyModel creates the selector, with the cursor on the currently
// resolved preset.
func NewDifficultyModel(current string, width, height int) DifficultyModel {
	names := config.Names()
	cursor := 0
	for i, n := range names {
		if n == current {
			cursor = i
		}
	}
	return DifficultyModel{
		names:     names,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.choosing = false
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the selector.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("F L U P P Y", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, name := range m.names {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		p, _ := config.Lookup(name)
		extra := ""
		if p.Sway.Enabled {
			extra = ", swaying pipes"
		}
		line := fmt.Sprintf("%s%-6s  (speed %.0f, gap %d%s)", cursor, name, p.PipeSpeed, p.PipeGap, extra)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen preset name, empty while still choosing or
// after a quit.
func (m DifficultyModel) Selected() string {
	if m.choosing || m.quitting {
		return ""
	}
	return m.names[m.cursor]
}

// RunDifficultySelector shows the selector and returns the chosen preset
// name, or empty when the user quit instead.
func RunDifficultySelector(current string, cfg core.RuntimeConfig) (string, error) {
	model := NewDifficultyModel(current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
