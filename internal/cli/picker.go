package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pindex-dev/pindex/pkg/lockfile"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LockfileListModel - Interactive lockfile selection
// =============================================================================

// LockfileListModel is the bubbletea model for choosing one of several
// located lockfiles.
type LockfileListModel struct {
	Files    []lockfile.File
	Cursor   int
	Selected *lockfile.File
}

// NewLockfileListModel creates a new lockfile list model.
func NewLockfileListModel(files []lockfile.File) LockfileListModel {
	return LockfileListModel{Files: files}
}

func (m LockfileListModel) Init() tea.Cmd {
	return nil
}

func (m LockfileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Files[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LockfileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Lockfile"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, f := range m.Files {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-15s  %s", cursor, f.Type, listDimStyle.Render(f.Path))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Files))))

	return b.String()
}

// runLockfilePicker shows the interactive picker and returns the chosen
// file, or nil when the user quit without selecting.
func runLockfilePicker(files []lockfile.File) (*lockfile.File, error) {
	m := NewLockfileListModel(files)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := finalModel.(LockfileListModel)
	if !ok {
		return nil, nil
	}
	return fm.Selected, nil
}
