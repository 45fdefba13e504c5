package update

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/store"
)

// teardown saves the store into the session repository. The view
// components are about to be discarded.
func (m *Model) teardown(reason string) error {
	saved := m.store.Save()
	err := m.sessions.Save(context.Background(), storage.Snapshot{
		Tasks:     saved.Tasks,
		InputText: saved.InputText,
		LastID:    saved.LastID,
		SavedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save session (%s): %w", reason, err)
	}
	m.Lifecycle = LifecycleSuspended
	log.Printf("lifecycle: saved %d task(s) on %s", len(saved.Tasks), reason)
	return nil
}

// rebuild recreates the view components and restores the store from the
// last saved snapshot. A snapshot that cannot be restored leaves an empty
// collection and reports the error.
func (m *Model) rebuild() error {
	snap, err := m.sessions.Load(context.Background())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			m.initBubbleComponents()
			m.Lifecycle = LifecycleRestored
			return nil
		}
		return fmt.Errorf("load session: %w", err)
	}

	restored, restoreErr := store.Restore(store.SavedState{
		Tasks:     snap.Tasks,
		InputText: snap.InputText,
		LastID:    snap.LastID,
	}, store.WithIDPolicy(m.idPolicy))
	m.store = restored
	m.initBubbleComponents()
	m.Lifecycle = LifecycleRestored
	m.Rebuilds++
	if restoreErr != nil {
		return fmt.Errorf("restore session: %w", restoreErr)
	}
	log.Printf("lifecycle: restored %d task(s)", m.store.Len())
	return nil
}

// cycle runs a full teardown/rebuild. Failures surface as an error toast;
// the UI keeps running either way.
func (m *Model) cycle(reason string) {
	if err := m.teardown(reason); err != nil {
		m.reportLifecycleError(err)
		return
	}
	if err := m.rebuild(); err != nil {
		m.reportLifecycleError(err)
	}
}

func (m *Model) reportLifecycleError(err error) {
	log.Printf("lifecycle: %v", err)
	m.LastError = err
	m.showToast("saved tasks could not be restored: "+err.Error(), true)
	m.notify("Error", err.Error(), "error")
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	first := !m.sizedOnce
	changed := msg.Width != m.width || msg.Height != m.height
	m.width = msg.Width
	m.height = msg.Height
	m.sizedOnce = true
	if first || !changed {
		return
	}
	m.cycle("resize")
}

// suspend saves state before handing the terminal back to the shell.
func (m *Model) suspend() tea.Cmd {
	if err := m.teardown("suspend"); err != nil {
		m.reportLifecycleError(err)
		return nil
	}
	return tea.Suspend
}

func (m *Model) resume() {
	if m.Lifecycle != LifecycleSuspended {
		return
	}
	if err := m.rebuild(); err != nil {
		m.reportLifecycleError(err)
	}
}
