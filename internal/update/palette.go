package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
)

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		m.closePalette()
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
}

func (m *Model) executePaletteCommand() {
	defer m.closePalette()

	cmd, err := commands.Parse(strings.TrimSpace(m.Palette.Input))
	if err != nil {
		m.showToast(err.Error(), true)
		return
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			draft := m.store.InputText()
			m.store.SetInputText(a.Label)
			task, err := m.store.AddTask()
			m.store.SetInputText(draft)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added #%d %s", task.ID, task.Label)}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			return m.setCompletedByID(a.ID, true), nil
		},
		Undo: func(a commands.TargetArgs) (commands.Result, error) {
			return m.setCompletedByID(a.ID, false), nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			task, ok := m.store.Task(a.ID)
			if !ok {
				return commands.Result{Message: fmt.Sprintf("task #%d not found", a.ID)}, nil
			}
			m.deleteTask(task)
			return commands.Result{Message: fmt.Sprintf("deleted #%d", a.ID)}, nil
		},
		Clear: func() (commands.Result, error) {
			m.store.SetInputText("")
			return commands.Result{Message: "input cleared"}, nil
		},
	})
	if err != nil {
		m.showToast(err.Error(), true)
		m.notify("Command Failed", err.Error(), "error")
		return
	}
	m.showToast(res.Message, false)
	m.notify("Command", res.Message, "info")
}

func (m *Model) setCompletedByID(id int, completed bool) commands.Result {
	task, ok := m.store.Task(id)
	if !ok {
		return commands.Result{Message: fmt.Sprintf("task #%d not found", id)}
	}
	m.setCompleted(task, completed)
	state := "active"
	if completed {
		state = "completed"
	}
	return commands.Result{Message: fmt.Sprintf("#%d marked %s", id, state)}
}
