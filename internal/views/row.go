package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/tasklist/internal/model"
)

var (
	activeLabelStyle    = lipgloss.NewStyle()
	completedLabelStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	selectedRowStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	deleteMarkerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RowProps describes one task row. The row never changes Task; user actions
// go through the callbacks.
type RowProps struct {
	Task            model.Task
	Selected        bool
	OnCheckedChange func(checked bool)
	OnDelete        func()
}

// Key identifies the row across renders.
func (p RowProps) Key() int { return p.Task.ID }

func (p RowProps) SetChecked(checked bool) {
	if p.OnCheckedChange != nil {
		p.OnCheckedChange(checked)
	}
}

// ToggleChecked reports the opposite of the rendered checkbox state.
func (p RowProps) ToggleChecked() {
	p.SetChecked(!p.Task.Completed)
}

func (p RowProps) Delete() {
	if p.OnDelete != nil {
		p.OnDelete()
	}
}

func RenderRow(p RowProps) string {
	cursor := " "
	if p.Selected {
		cursor = ">"
	}
	box := "[ ]"
	label := activeLabelStyle.Render(p.Task.Label)
	if p.Task.Completed {
		box = "[x]"
		label = completedLabelStyle.Render(p.Task.Label)
	}
	line := fmt.Sprintf("%s %s #%d %s", cursor, box, p.Task.ID, label)
	if p.Selected {
		line = selectedRowStyle.Render(fmt.Sprintf("%s %s #%d", cursor, box, p.Task.ID)) + " " + label
	}
	return line + "  " + deleteMarkerStyle.Render("[del]")
}
