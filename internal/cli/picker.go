package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grfixtures/grgen/pkg/gen"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// presetListModel is the bubbletea model for interactive preset selection,
// shown when generate is run with no arguments on a terminal.
type presetListModel struct {
	Sizes    []gen.Size
	Cursor   int
	Selected string
}

func newPresetListModel() presetListModel {
	return presetListModel{Sizes: gen.Presets()}
}

func (m presetListModel) Init() tea.Cmd {
	return nil
}

func (m presetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Sizes)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Sizes[m.Cursor].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m presetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Graph Size"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, size := range m.Sizes {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%-8s %6d nodes, %d edges", size.Name, size.Spec.Nodes, size.Spec.EdgeCount())
		b.WriteString(cursor + style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// pickPreset runs the interactive preset picker and returns the chosen
// preset name, or "" when the user quit without selecting.
func pickPreset() (string, error) {
	final, err := tea.NewProgram(newPresetListModel()).Run()
	if err != nil {
		return "", fmt.Errorf("preset picker: %w", err)
	}
	m, ok := final.(presetListModel)
	if !ok {
		return "", nil
	}
	return m.Selected, nil
}
