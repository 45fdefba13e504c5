package update

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const maxNotifications = 40

func (m *Model) showToast(text string, isErr bool) {
	m.Toast = Toast{Text: text, IsError: isErr, Seq: m.Toast.Seq + 1}
}

// toastCmd schedules dismissal when a toast was raised since seq.
func (m Model) toastCmd(seq int) tea.Cmd {
	if m.Toast.Seq == seq || m.Toast.Text == "" {
		return nil
	}
	current := m.Toast.Seq
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return ClearToastMsg{Seq: current}
	})
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
	if m.desktopEnabled && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			log.Printf("desktop notification failed: %v", err)
		}
	}
}
