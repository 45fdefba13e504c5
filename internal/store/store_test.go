package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sandeepkv93/tasklist/internal/model"
)

func addAll(t *testing.T, s *Store, labels ...string) {
	t.Helper()
	for _, label := range labels {
		s.SetInputText(label)
		if _, err := s.AddTask(); err != nil {
			t.Fatalf("add %q: %v", label, err)
		}
	}
}

func ids(tasks []model.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func TestAddTaskRejectsBlankInput(t *testing.T) {
	s := New()
	for _, in := range []string{"", "   ", "\t\n"} {
		s.SetInputText(in)
		_, err := s.AddTask()
		if !errors.Is(err, model.ErrTaskNameEmpty) {
			t.Fatalf("input %q: expected ErrTaskNameEmpty, got %v", in, err)
		}
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("input %q: expected ValidationError type, got %T", in, err)
		}
		if s.Len() != 0 {
			t.Fatalf("input %q: collection changed, len=%d", in, s.Len())
		}
		if s.InputText() != in {
			t.Fatalf("input %q: input text must not be cleared on failure, got %q", in, s.InputText())
		}
	}
}

func TestAddTaskTrimsAndClearsInput(t *testing.T) {
	s := New()
	s.SetInputText(" a ")
	task, err := s.AddTask()
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.Label != "a" || task.Completed || task.ID != 1 {
		t.Fatalf("unexpected task: %+v", task)
	}
	if s.InputText() != "" {
		t.Fatalf("expected cleared input, got %q", s.InputText())
	}
}

func TestSetInputTextIsVerbatim(t *testing.T) {
	s := New()
	s.SetInputText("  spaced  ")
	if s.InputText() != "  spaced  " {
		t.Fatalf("unexpected input text: %q", s.InputText())
	}
}

func TestIDAssignmentMaxPlusOne(t *testing.T) {
	s := New()
	addAll(t, s, "x", "y", "z")
	if got := ids(s.Tasks()); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("unexpected ids: %v", got)
	}

	s.DeleteTask(2)
	addAll(t, s, "w")
	if got := ids(s.Tasks()); !reflect.DeepEqual(got, []int{1, 3, 4}) {
		t.Fatalf("expected max(remaining)+1 = 4, got %v", got)
	}

	s.DeleteTask(4)
	s.DeleteTask(3)
	addAll(t, s, "v")
	if got := ids(s.Tasks()); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("expected id 2 to be reused, got %v", got)
	}
}

func TestIDAssignmentCounterNeverReuses(t *testing.T) {
	s := New(WithIDPolicy(IDPolicyCounter))
	addAll(t, s, "x", "y", "z")
	s.DeleteTask(3)
	addAll(t, s, "w")
	if got := ids(s.Tasks()); !reflect.DeepEqual(got, []int{1, 2, 4}) {
		t.Fatalf("unexpected ids: %v", got)
	}
}

func TestWithIDPolicyIgnoresUnknown(t *testing.T) {
	s := New(WithIDPolicy(IDPolicy("bogus")))
	if s.Policy() != IDPolicyMaxPlusOne {
		t.Fatalf("unexpected policy: %q", s.Policy())
	}
}

func TestIDsStayUniqueAcrossAddDelete(t *testing.T) {
	for _, policy := range []IDPolicy{IDPolicyMaxPlusOne, IDPolicyCounter} {
		s := New(WithIDPolicy(policy))
		for round := 0; round < 20; round++ {
			addAll(t, s, "a", "b", "c")
			tasks := s.Tasks()
			s.DeleteTask(tasks[round%len(tasks)].ID)
			if round%3 == 0 {
				s.DeleteTask(s.Tasks()[s.Len()-1].ID)
			}
			seen := make(map[int]bool)
			for _, id := range ids(s.Tasks()) {
				if seen[id] {
					t.Fatalf("policy %s round %d: duplicate id %d in %v", policy, round, id, ids(s.Tasks()))
				}
				seen[id] = true
			}
		}
	}
}

func TestPartitionsCoverCollection(t *testing.T) {
	s := New()
	addAll(t, s, "a", "b", "c", "d", "e")
	s.ToggleCompletion(2, true)
	s.ToggleCompletion(4, true)

	active := s.ActiveTasks()
	completed := s.CompletedTasks()
	if got := ids(active); !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Fatalf("unexpected active ids: %v", got)
	}
	if got := ids(completed); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("unexpected completed ids: %v", got)
	}
	if len(active)+len(completed) != s.Len() {
		t.Fatalf("partitions do not cover collection")
	}
}

func TestToggleCompletionKeepsPosition(t *testing.T) {
	s := New()
	addAll(t, s, "a", "b", "c")
	s.ToggleCompletion(2, true)
	s.ToggleCompletion(2, true)

	tasks := s.Tasks()
	if tasks[1].ID != 2 || !tasks[1].Completed || tasks[1].Label != "b" {
		t.Fatalf("unexpected record after toggle: %+v", tasks[1])
	}
	if got := ids(s.ActiveTasks()); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("unexpected active ids: %v", got)
	}
	if got := ids(s.CompletedTasks()); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("unexpected completed ids: %v", got)
	}

	s.ToggleCompletion(2, false)
	if got := ids(s.ActiveTasks()); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("expected task back in active partition in place, got %v", got)
	}
}

func TestToggleAndDeleteMissingAreNoOps(t *testing.T) {
	s := New()
	s.DeleteTask(999)
	s.ToggleCompletion(999, true)
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}

	addAll(t, s, "a", "b")
	before := s.Tasks()
	s.DeleteTask(999)
	s.ToggleCompletion(999, true)
	if !reflect.DeepEqual(before, s.Tasks()) {
		t.Fatalf("collection changed: %+v -> %+v", before, s.Tasks())
	}
}

func TestEmptyStorePartitions(t *testing.T) {
	s := New()
	if len(s.ActiveTasks()) != 0 || len(s.CompletedTasks()) != 0 {
		t.Fatal("expected empty partitions")
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s := New()
	addAll(t, s, "a")
	snapshot := s.Tasks()
	snapshot[0].Label = "mutated"
	if got, _ := s.Task(1); got.Label != "a" {
		t.Fatalf("store mutated through snapshot: %+v", got)
	}
}
