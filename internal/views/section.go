package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/tasklist/internal/model"
)

var (
	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	emptyStateStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

type ListSectionProps struct {
	Title           string
	Tasks           []model.Task
	EmptyMessage    string
	SelectedID      int
	OnCheckedChange func(task model.Task, checked bool)
	OnDelete        func(task model.Task)
}

// Rows binds the section callbacks to each record, in order.
func (p ListSectionProps) Rows() []RowProps {
	out := make([]RowProps, 0, len(p.Tasks))
	for _, task := range p.Tasks {
		row := RowProps{
			Task:     task,
			Selected: p.SelectedID != 0 && p.SelectedID == task.ID,
		}
		if p.OnCheckedChange != nil {
			row.OnCheckedChange = func(checked bool) { p.OnCheckedChange(task, checked) }
		}
		if p.OnDelete != nil {
			row.OnDelete = func() { p.OnDelete(task) }
		}
		out = append(out, row)
	}
	return out
}

// RenderListSection shows only the empty message when there are no tasks;
// the title appears only above a non-empty list.
func RenderListSection(p ListSectionProps) string {
	if len(p.Tasks) == 0 {
		return emptyStateStyle.Render(p.EmptyMessage)
	}
	lines := make([]string, 0, len(p.Tasks)+1)
	lines = append(lines, sectionTitleStyle.Render(p.Title))
	for _, row := range p.Rows() {
		lines = append(lines, RenderRow(row))
	}
	return strings.Join(lines, "\n")
}
