package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/tasklist/internal/views"
)

const (
	listWidth   = 60
	chromeLines = 12
	minListRows = 4
)

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "new task> "
	m.taskInput.Placeholder = "What needs doing?"
	m.taskInput.Width = 36

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.Width = 40

	m.listViewport = viewport.New(listWidth, listHeightFor(m.height))
	m.doneProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())
	m.helpModel = help.New()
}

func listHeightFor(windowHeight int) int {
	h := windowHeight - chromeLines
	if h < minListRows {
		return minListRows
	}
	return h
}

// syncBubbleData pushes store state into the bubble components. Called at
// the end of every Update.
func (m *Model) syncBubbleData() {
	if m.taskInput.Value() != m.store.InputText() {
		m.taskInput.SetValue(m.store.InputText())
	}
	if m.commandInput.Value() != m.Palette.Input {
		m.commandInput.SetValue(m.Palette.Input)
	}
	if m.Focus == FocusInput && !m.Palette.Active {
		m.taskInput.Focus()
	} else {
		m.taskInput.Blur()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}

	m.clampCursor()
	m.listViewport.Width = listWidth
	m.listViewport.Height = listHeightFor(m.height)
	m.listViewport.SetContent(views.RenderSections(m.screen()))
	m.scrollToCursor()
}

func (m *Model) clampCursor() {
	n := m.store.Len()
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// cursorLine is the line of the selected row inside the rendered sections.
func (m Model) cursorLine() int {
	activeCount := len(m.store.ActiveTasks())
	if m.Cursor < activeCount {
		return 1 + m.Cursor
	}
	completedStart := 1
	if activeCount > 0 {
		completedStart = 1 + activeCount
	}
	// blank separator, then the completed title
	return completedStart + 2 + (m.Cursor - activeCount)
}

func (m *Model) scrollToCursor() {
	if m.Focus != FocusList || m.store.Len() == 0 {
		return
	}
	line := m.cursorLine()
	if line < m.listViewport.YOffset {
		m.listViewport.SetYOffset(line)
		return
	}
	if bottom := m.listViewport.YOffset + m.listViewport.Height; line >= bottom {
		m.listViewport.SetYOffset(line - m.listViewport.Height + 1)
	}
}
