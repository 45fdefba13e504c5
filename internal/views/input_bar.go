package views

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	inputFocusedStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
	inputBlurredStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	addButtonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// InputBarProps holds the pending text and the two callbacks. InputView is
// the rendered text field; when empty, Text is shown instead.
type InputBarProps struct {
	Text         string
	InputView    string
	Focused      bool
	OnTextChange func(text string)
	OnAddItem    func()
}

func (p InputBarProps) ChangeText(text string) {
	if p.OnTextChange != nil {
		p.OnTextChange(text)
	}
}

func (p InputBarProps) Submit() {
	if p.OnAddItem != nil {
		p.OnAddItem()
	}
}

func RenderInputBar(p InputBarProps) string {
	field := p.InputView
	if field == "" {
		field = "new task> " + p.Text
	}
	style := inputBlurredStyle
	if p.Focused {
		style = inputFocusedStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, style.Width(48).Render(field), " ", addButtonStyle.Render("[enter] Add"))
}
