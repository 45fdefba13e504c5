package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/tasklist/internal/model"
)

var ErrDuplicateID = errors.New("store: duplicate task id")

type IDPolicy string

const (
	// IDPolicyMaxPlusOne assigns max(existing ids)+1, so deleting the
	// highest id lets the next add reuse it.
	IDPolicyMaxPlusOne IDPolicy = "max"
	// IDPolicyCounter assigns from a counter that only moves forward.
	IDPolicyCounter IDPolicy = "counter"
)

func (p IDPolicy) IsValid() bool {
	switch p {
	case IDPolicyMaxPlusOne, IDPolicyCounter:
		return true
	default:
		return false
	}
}

type Option func(*Store)

func WithIDPolicy(p IDPolicy) Option {
	return func(s *Store) {
		if p.IsValid() {
			s.policy = p
		}
	}
}

// Store owns the task collection and the pending input text. It is not safe
// for concurrent use; all calls happen on the UI event loop.
type Store struct {
	tasks     []model.Task
	inputText string
	policy    IDPolicy
	lastID    int
}

func New(opts ...Option) *Store {
	s := &Store{
		tasks:  make([]model.Task, 0),
		policy: IDPolicyMaxPlusOne,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Policy() IDPolicy { return s.policy }

func (s *Store) InputText() string { return s.inputText }

func (s *Store) SetInputText(text string) {
	s.inputText = text
}

// AddTask turns the pending input text into a new task. A blank input
// returns model.ErrTaskNameEmpty and leaves the store untouched.
func (s *Store) AddTask() (model.Task, error) {
	trimmed := strings.TrimSpace(s.inputText)
	if trimmed == "" {
		return model.Task{}, model.ErrTaskNameEmpty
	}
	task := model.Task{
		ID:    s.nextID(),
		Label: trimmed,
	}
	s.tasks = append(s.tasks, task)
	s.inputText = ""
	return task, nil
}

func (s *Store) nextID() int {
	maxID := s.maxID()
	if s.policy == IDPolicyCounter {
		if s.lastID < maxID {
			s.lastID = maxID
		}
		s.lastID++
		return s.lastID
	}
	return maxID + 1
}

func (s *Store) maxID() int {
	out := 0
	for _, task := range s.tasks {
		if task.ID > out {
			out = task.ID
		}
	}
	return out
}

// ToggleCompletion sets the completion flag of the task with the given id,
// keeping its position. Unknown ids are ignored.
func (s *Store) ToggleCompletion(id int, completed bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.tasks[idx] = s.tasks[idx].WithCompleted(completed)
}

// DeleteTask removes the first task with the given id. Unknown ids are
// ignored.
func (s *Store) DeleteTask(id int) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
}

func (s *Store) indexOf(id int) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Task(id int) (model.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.tasks[idx], true
}

func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of the whole collection in insertion order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) ActiveTasks() []model.Task {
	active, _ := model.PartitionTasks(s.tasks)
	return active
}

func (s *Store) CompletedTasks() []model.Task {
	_, completed := model.PartitionTasks(s.tasks)
	return completed
}

func (s *Store) load(tasks []model.Task) error {
	seen := make(map[int]bool, len(tasks))
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("restore task %d: %w", task.ID, err)
		}
		if seen[task.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, task.ID)
		}
		seen[task.ID] = true
	}
	s.tasks = append(make([]model.Task, 0, len(tasks)), tasks...)
	s.lastID = s.maxID()
	return nil
}
