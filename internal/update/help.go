package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tasklist/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	var md strings.Builder
	md.WriteString(fmt.Sprintf("### %s focus\n\n", m.Focus))
	for _, kb := range m.focusBindings() {
		md.WriteString(fmt.Sprintf("- `%s` %s\n", kb.Key, kb.Action))
	}
	md.WriteString("\n### palette\n\n`add <label>` `done <id>` `undo <id>` `delete <id>` `clear`\n")
	bindings := m.helpBindings()
	return views.RenderHelpPanel(views.HelpPanelData{
		Markdown: md.String(),
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Focus, Action: "switch focus"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Suspend, Action: "suspend"},
		{Key: "ctrl+c", Action: "quit app"},
	}
}

func (m Model) focusBindings() []KeyBinding {
	switch m.Focus {
	case FocusInput:
		return []KeyBinding{
			{Key: "enter", Action: "add task"},
			{Key: "esc", Action: "go to list"},
		}
	case FocusList:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "toggle completed"},
			{Key: "d", Action: "delete task"},
			{Key: "i", Action: "edit new task"},
			{Key: "/", Action: "open command palette"},
			{Key: m.Keys.Help, Action: "toggle help panel"},
			{Key: m.Keys.Quit, Action: "quit app"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.focusBindings()))
	for _, kb := range append(m.globalBindings(), m.focusBindings()...) {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
