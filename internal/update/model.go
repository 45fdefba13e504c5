package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/store"
)

type Focus string

const (
	FocusInput Focus = "input"
	FocusList  Focus = "list"
)

// LifecycleState tracks where the UI is in a teardown/rebuild cycle.
type LifecycleState string

const (
	LifecycleLive      LifecycleState = "live"
	LifecycleSuspended LifecycleState = "suspended"
	LifecycleRestored  LifecycleState = "restored"
)

type Toast struct {
	Text    string
	IsError bool
	Seq     int
}

type GlobalKeyMap struct {
	Help    string
	Palette string
	Focus   string
	Quit    string
	Suspend string
}

type Model struct {
	Focus         Focus
	Cursor        int
	Toast         Toast
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Lifecycle     LifecycleState
	Rebuilds      int
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	store          *store.Store
	sessions       storage.SessionRepository
	notifier       DesktopNotifier
	desktopEnabled bool
	toastDuration  time.Duration
	idPolicy       store.IDPolicy
	width          int
	height         int
	sizedOnce      bool
	// Bubble components; discarded and rebuilt on every teardown/rebuild.
	taskInput    textinput.Model
	commandInput textinput.Model
	listViewport viewport.Model
	doneProgress progress.Model
	helpModel    help.Model
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", "--expire-time=3000", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// ShowToastMsg asks the model to surface a short-lived notice.
type ShowToastMsg struct {
	Text    string
	IsError bool
}

// ClearToastMsg dismisses the toast with the matching sequence number. A
// newer toast is left alone.
type ClearToastMsg struct {
	Seq int
}

type AppErrorMsg struct {
	Err error
}

// TeardownMsg and RebuildMsg drive a save/restore cycle explicitly. Window
// resizes and resume-after-suspend trigger the same cycle.
type TeardownMsg struct {
	Reason string
}

type RebuildMsg struct{}

func NewModel() Model {
	return NewModelWithConfig(DefaultRuntimeConfig(), storage.NewMemoryRepository(), nil)
}

func NewModelWithConfig(cfg RuntimeConfig, sessions storage.SessionRepository, notifier DesktopNotifier) Model {
	if sessions == nil {
		sessions = storage.NewMemoryRepository()
	}
	if notifier == nil {
		notifier = NoopDesktopNotifier{}
	}
	toast := cfg.ToastDuration
	if toast <= 0 {
		toast = DefaultRuntimeConfig().ToastDuration
	}
	m := Model{
		Focus:     FocusInput,
		Lifecycle: LifecycleLive,
		Keys: GlobalKeyMap{
			Help:    "?",
			Palette: "ctrl+p",
			Focus:   "tab",
			Quit:    "q",
			Suspend: "ctrl+z",
		},
		store:          store.New(store.WithIDPolicy(cfg.IDPolicy)),
		sessions:       sessions,
		notifier:       notifier,
		desktopEnabled: cfg.DesktopNotifications,
		toastDuration:  toast,
		idPolicy:       cfg.IDPolicy,
		width:          80,
		height:         24,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

// Tasks returns a copy of the collection in insertion order.
func (m Model) Tasks() []model.Task { return m.store.Tasks() }

func (m Model) InputText() string { return m.store.InputText() }
