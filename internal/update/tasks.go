package update

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/views"
)

// screen composes the views from the current store state. The callbacks
// close over m, so they must be invoked while m is the model being updated.
func (m *Model) screen() views.ScreenProps {
	selected := 0
	if m.Focus == FocusList && !m.Palette.Active {
		selected = m.selectedTaskID()
	}
	return views.ComposeScreen(
		m.store.InputText(),
		m.store.ActiveTasks(),
		m.store.CompletedTasks(),
		selected,
		views.ScreenCallbacks{
			OnTextChange:    m.store.SetInputText,
			OnAddItem:       m.addTask,
			OnCheckedChange: m.setCompleted,
			OnDelete:        m.deleteTask,
		},
	)
}

// orderedTasks returns tasks in on-screen order: active, then completed.
func (m Model) orderedTasks() []model.Task {
	return append(m.store.ActiveTasks(), m.store.CompletedTasks()...)
}

func (m Model) selectedTaskID() int {
	tasks := m.orderedTasks()
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return 0
	}
	return tasks[m.Cursor].ID
}

func (m *Model) moveCursorTo(id int) {
	for i, task := range m.orderedTasks() {
		if task.ID == id {
			m.Cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) addTask() {
	task, err := m.store.AddTask()
	if err != nil {
		log.Printf("add task rejected: %v", err)
		m.showToast(err.Error(), true)
		m.notify("Validation", err.Error(), "error")
		return
	}
	m.showToast(fmt.Sprintf("added #%d %s", task.ID, task.Label), false)
}

func (m *Model) setCompleted(task model.Task, completed bool) {
	m.store.ToggleCompletion(task.ID, completed)
	m.moveCursorTo(task.ID)
}

func (m *Model) deleteTask(task model.Task) {
	m.store.DeleteTask(task.ID)
	m.clampCursor()
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.screen().Input.Submit()
		return nil
	case m.Keys.Focus, "esc":
		m.Focus = FocusList
		return nil
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	if v := m.taskInput.Value(); v != m.store.InputText() {
		m.screen().Input.ChangeText(v)
	}
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) {
	rows := m.screen().Rows()
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(rows)-1 {
			m.Cursor++
		}
	case " ", "x", "enter":
		if m.Cursor < len(rows) {
			rows[m.Cursor].ToggleChecked()
		}
	case "d", "delete", "backspace":
		if m.Cursor < len(rows) {
			rows[m.Cursor].Delete()
		}
	case m.Keys.Focus, "i", "a":
		m.Focus = FocusInput
	}
}
