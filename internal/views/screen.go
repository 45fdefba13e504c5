package views

import (
	"strings"

	"github.com/sandeepkv93/tasklist/internal/model"
)

const (
	ActiveSectionTitle        = "Items"
	ActiveSectionEmptyMessage = "No items yet!"
	DoneSectionTitle          = "Completed Items"
	DoneSectionEmptyMessage   = "No completed items yet."
)

// ScreenCallbacks are the store operations the screen hands down to its
// children.
type ScreenCallbacks struct {
	OnTextChange    func(text string)
	OnAddItem       func()
	OnCheckedChange func(task model.Task, checked bool)
	OnDelete        func(task model.Task)
}

type ScreenProps struct {
	Input     InputBarProps
	Active    ListSectionProps
	Completed ListSectionProps
}

// ComposeScreen wires the two partitions and the input text into the screen
// layout.
func ComposeScreen(inputText string, active, completed []model.Task, selectedID int, cb ScreenCallbacks) ScreenProps {
	return ScreenProps{
		Input: InputBarProps{
			Text:         inputText,
			OnTextChange: cb.OnTextChange,
			OnAddItem:    cb.OnAddItem,
		},
		Active: ListSectionProps{
			Title:           ActiveSectionTitle,
			Tasks:           active,
			EmptyMessage:    ActiveSectionEmptyMessage,
			SelectedID:      selectedID,
			OnCheckedChange: cb.OnCheckedChange,
			OnDelete:        cb.OnDelete,
		},
		Completed: ListSectionProps{
			Title:           DoneSectionTitle,
			Tasks:           completed,
			EmptyMessage:    DoneSectionEmptyMessage,
			SelectedID:      selectedID,
			OnCheckedChange: cb.OnCheckedChange,
			OnDelete:        cb.OnDelete,
		},
	}
}

// Rows lists active rows followed by completed rows, the order in which
// they appear on screen.
func (p ScreenProps) Rows() []RowProps {
	return append(p.Active.Rows(), p.Completed.Rows()...)
}

func RenderSections(p ScreenProps) string {
	return strings.Join([]string{
		RenderListSection(p.Active),
		"",
		RenderListSection(p.Completed),
	}, "\n")
}

func RenderScreen(p ScreenProps) string {
	return RenderInputBar(p.Input) + "\n\n" + RenderSections(p)
}
