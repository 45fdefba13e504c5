package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	seq := m.Toast.Seq
	var cmd tea.Cmd

	switch typed := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.handleWindowSize(typed)
	case tea.ResumeMsg:
		m.resume()
	case TeardownMsg:
		if err := m.teardown(typed.Reason); err != nil {
			m.reportLifecycleError(err)
		}
	case RebuildMsg:
		if err := m.rebuild(); err != nil {
			m.reportLifecycleError(err)
		}
	case ShowToastMsg:
		m.showToast(typed.Text, typed.IsError)
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
	case ClearToastMsg:
		if typed.Seq == m.Toast.Seq {
			m.Toast = Toast{Seq: m.Toast.Seq}
		}
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.showToast(typed.Err.Error(), true)
			m.notify("Error", typed.Err.Error(), "error")
		}
	default:
		if m.Focus == FocusInput {
			m.taskInput, cmd = m.taskInput.Update(msg)
		}
	}

	m.syncBubbleData()
	return m, tea.Batch(cmd, m.toastCmd(seq))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return tea.Quit
	case m.Keys.Suspend:
		return m.suspend()
	case m.Keys.Palette:
		if m.Palette.Active {
			m.closePalette()
		} else {
			m.openPalette()
		}
		return nil
	}

	if m.Palette.Active {
		m.handlePaletteKey(msg)
		return nil
	}
	if m.Focus == FocusInput {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return nil
	case "/":
		m.openPalette()
		return nil
	}
	m.handleListKey(msg)
	return nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	screen := m.screen()
	input := screen.Input
	input.InputView = m.taskInput.View()
	input.Focused = m.Focus == FocusInput && !m.Palette.Active

	done := len(screen.Completed.Tasks)
	total := done + len(screen.Active.Tasks)
	body := []string{
		views.RenderInputBar(input),
		"",
		m.listViewport.View(),
	}
	if line := views.RenderProgress(done, total, m.doneProgress.ViewAs(completionRatio(done, total))); line != "" {
		body = append(body, line)
	}

	side := strings.TrimSpace(strings.Join([]string{
		views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()),
		m.renderHelpIfVisible(),
	}, "\n"))

	status := ""
	if m.Toast.Text != "" {
		status = views.RenderToast(levelFromError(m.Toast.IsError), m.Toast.Text)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("tasklist | %d active | %d completed | focus: %s", len(screen.Active.Tasks), done, m.Focus),
		Body:       strings.Join(body, "\n"),
		SidePane:   side,
		StatusLine: status,
		IsError:    m.Toast.IsError,
		Footer:     fmt.Sprintf("keys: %s focus | %s cmd | %s help | %s quit", m.Keys.Focus, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
