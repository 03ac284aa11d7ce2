package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/labelplot/labelplot/pkg/dataset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Roles assigned by the interactive column picker, in selection order.
var pickerRoles = []string{"label", "x axis", "y axis"}

// ColumnPickerModel is the bubbletea model for interactive column mapping.
// The user assigns the label, x and y roles to header columns one role at a
// time.
type ColumnPickerModel struct {
	Header    []string
	Detected  dataset.Columns
	Cursor    int
	Stage     int // index into pickerRoles
	Choices   [3]int
	Done      bool
	Cancelled bool
}

// NewColumnPickerModel creates a picker primed with the heuristic mapping.
func NewColumnPickerModel(header []string, detected dataset.Columns) ColumnPickerModel {
	return ColumnPickerModel{
		Header:   header,
		Detected: detected,
		Cursor:   detected.Label,
		Choices:  [3]int{detected.Label, detected.X, detected.Y},
	}
}

func (m ColumnPickerModel) Init() tea.Cmd {
	return nil
}

func (m ColumnPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Header)-1 {
			m.Cursor++
		}
	case "enter":
		m.Choices[m.Stage] = m.Cursor
		m.Stage++
		if m.Stage >= len(pickerRoles) {
			m.Done = true
			return m, tea.Quit
		}
		// Preselect the heuristic choice for the next role.
		m.Cursor = [3]int{m.Detected.Label, m.Detected.X, m.Detected.Y}[m.Stage]
	}
	return m, nil
}

func (m ColumnPickerModel) View() string {
	if m.Done || m.Cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select the " + pickerRoles[m.Stage] + " column"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, h := range m.Header {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := cursor + style.Render(h)
		if role := m.assignedRole(i); role != "" {
			line += listDimStyle.Render("  (" + role + ")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// assignedRole names the role already assigned to column i, if any.
func (m ColumnPickerModel) assignedRole(i int) string {
	for stage := 0; stage < m.Stage; stage++ {
		if m.Choices[stage] == i {
			return pickerRoles[stage]
		}
	}
	return ""
}

// Overrides converts the picked columns into dataset overrides.
func (m ColumnPickerModel) Overrides() dataset.Overrides {
	return dataset.Overrides{
		Label: m.Header[m.Choices[0]],
		X:     m.Header[m.Choices[1]],
		Y:     m.Header[m.Choices[2]],
	}
}

// pickColumns runs the interactive picker and returns the chosen overrides.
func pickColumns(header []string, detected dataset.Columns) (dataset.Overrides, bool, error) {
	model := NewColumnPickerModel(header, detected)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return dataset.Overrides{}, false, err
	}
	picked, ok := final.(ColumnPickerModel)
	if !ok || !picked.Done {
		return dataset.Overrides{}, false, nil
	}
	return picked.Overrides(), true, nil
}
