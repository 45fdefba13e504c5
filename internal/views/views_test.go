package views

import (
	"strings"
	"testing"

	"github.com/sandeepkv93/tasklist/internal/model"
)

func TestRenderListSectionEmptyShowsOnlyMessage(t *testing.T) {
	out := RenderListSection(ListSectionProps{
		Title:        "Completed Items",
		EmptyMessage: "No completed items yet.",
	})
	if !strings.Contains(out, "No completed items yet.") {
		t.Fatalf("expected empty message, got %q", out)
	}
	if strings.Contains(out, "Completed Items") {
		t.Fatalf("title must be suppressed for empty list, got %q", out)
	}
}

func TestRenderListSectionShowsTitleAndRowsInOrder(t *testing.T) {
	out := RenderListSection(ListSectionProps{
		Title:        "Items",
		EmptyMessage: "No items yet!",
		Tasks:        []model.Task{{ID: 3, Label: "first"}, {ID: 1, Label: "second"}},
	})
	if strings.Contains(out, "No items yet!") {
		t.Fatalf("empty message must not show for non-empty list: %q", out)
	}
	titleAt := strings.Index(out, "Items")
	firstAt := strings.Index(out, "first")
	secondAt := strings.Index(out, "second")
	if titleAt < 0 || firstAt < titleAt || secondAt < firstAt {
		t.Fatalf("unexpected layout: %q", out)
	}
}

func TestRenderRowCheckbox(t *testing.T) {
	active := RenderRow(RowProps{Task: model.Task{ID: 1, Label: "write"}})
	if !strings.Contains(active, "[ ]") || !strings.Contains(active, "write") || !strings.Contains(active, "#1") {
		t.Fatalf("unexpected active row: %q", active)
	}
	done := RenderRow(RowProps{Task: model.Task{ID: 2, Label: "ship", Completed: true}, Selected: true})
	if !strings.Contains(done, "[x]") || !strings.Contains(done, "ship") || !strings.Contains(done, ">") {
		t.Fatalf("unexpected completed row: %q", done)
	}
}

func TestRowCallbacksCarryRecord(t *testing.T) {
	var gotTask model.Task
	var gotChecked bool
	var deleted model.Task
	section := ListSectionProps{
		Tasks: []model.Task{{ID: 1, Label: "a"}, {ID: 2, Label: "b", Completed: true}},
		OnCheckedChange: func(task model.Task, checked bool) {
			gotTask, gotChecked = task, checked
		},
		OnDelete: func(task model.Task) { deleted = task },
	}
	rows := section.Rows()
	if len(rows) != 2 || rows[0].Key() != 1 || rows[1].Key() != 2 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	rows[1].ToggleChecked()
	if gotTask.ID != 2 || gotChecked {
		t.Fatalf("expected uncheck of task 2, got %+v checked=%v", gotTask, gotChecked)
	}
	rows[0].SetChecked(true)
	if gotTask.ID != 1 || !gotChecked {
		t.Fatalf("expected check of task 1, got %+v checked=%v", gotTask, gotChecked)
	}
	rows[0].Delete()
	if deleted.ID != 1 {
		t.Fatalf("expected delete of task 1, got %+v", deleted)
	}
	if section.Tasks[0].Completed {
		t.Fatal("row must not mutate the record")
	}
}

func TestNilCallbacksAreSafe(t *testing.T) {
	RowProps{}.SetChecked(true)
	RowProps{}.Delete()
	InputBarProps{}.ChangeText("x")
	InputBarProps{}.Submit()
	rows := ListSectionProps{Tasks: []model.Task{{ID: 1, Label: "a"}}}.Rows()
	rows[0].ToggleChecked()
	rows[0].Delete()
}

func TestInputBarInvokesCallbacks(t *testing.T) {
	var text string
	added := 0
	bar := InputBarProps{
		OnTextChange: func(s string) { text = s },
		OnAddItem:    func() { added++ },
	}
	bar.ChangeText("milk")
	bar.Submit()
	if text != "milk" || added != 1 {
		t.Fatalf("unexpected callbacks: text=%q added=%d", text, added)
	}
	out := RenderInputBar(InputBarProps{Text: "draft"})
	if !strings.Contains(out, "draft") || !strings.Contains(out, "Add") {
		t.Fatalf("unexpected input bar: %q", out)
	}
}

func TestComposeScreenWiresPartitions(t *testing.T) {
	screen := ComposeScreen("", []model.Task{{ID: 1, Label: "a"}}, nil, 0, ScreenCallbacks{})
	if screen.Active.Title != "Items" || screen.Active.EmptyMessage != "No items yet!" {
		t.Fatalf("unexpected active section: %+v", screen.Active)
	}
	if screen.Completed.Title != "Completed Items" || screen.Completed.EmptyMessage != "No completed items yet." {
		t.Fatalf("unexpected completed section: %+v", screen.Completed)
	}
	out := RenderScreen(screen)
	if !strings.Contains(out, "Items") || !strings.Contains(out, "No completed items yet.") {
		t.Fatalf("unexpected screen: %q", out)
	}
	if strings.Contains(out, "Completed Items") {
		t.Fatalf("completed title must be hidden while empty: %q", out)
	}
}

func TestScreenRowsOrderActiveThenCompleted(t *testing.T) {
	screen := ComposeScreen("",
		[]model.Task{{ID: 1, Label: "a"}, {ID: 3, Label: "c"}},
		[]model.Task{{ID: 2, Label: "b", Completed: true}},
		3, ScreenCallbacks{})
	rows := screen.Rows()
	if len(rows) != 3 || rows[0].Key() != 1 || rows[1].Key() != 3 || rows[2].Key() != 2 {
		t.Fatalf("unexpected row order: %+v", rows)
	}
	if !rows[1].Selected || rows[0].Selected {
		t.Fatalf("unexpected selection: %+v", rows)
	}
}

func TestRenderProgressAndToast(t *testing.T) {
	if RenderProgress(0, 0, "bar") != "" {
		t.Fatal("expected no progress line for empty list")
	}
	if got := RenderProgress(1, 4, "[#---]"); got != "[#---] 1/4 done" {
		t.Fatalf("unexpected progress: %q", got)
	}
	if got := RenderToast("error", "Task name cannot be empty"); got != "[ERROR] Task name cannot be empty" {
		t.Fatalf("unexpected toast: %q", got)
	}
	if RenderToast("info", "  ") != "" {
		t.Fatal("expected blank toast to render nothing")
	}
}
