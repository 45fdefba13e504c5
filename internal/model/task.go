package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTaskNameEmpty is returned when a task is added with a blank label. Its
// message is shown to the user verbatim.
var ErrTaskNameEmpty = &ValidationError{Message: "Task name cannot be empty"}

// ValidationError reports input that cannot become a task.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError carrying the same message.
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return other.Message == e.Message
}

// DeserializationError reports a saved tuple that cannot be turned back into
// a task.
type DeserializationError struct {
	Index  int
	Reason string
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("model: cannot restore task at index %d: %s", e.Index, e.Reason)
}

type Task struct {
	ID        int
	Label     string
	Completed bool
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return &ValidationError{Message: fmt.Sprintf("model: task id must be positive, got %d", t.ID)}
	}
	if strings.TrimSpace(t.Label) == "" {
		return ErrTaskNameEmpty
	}
	return nil
}

// WithCompleted returns a copy of t with only the completion flag changed.
func (t Task) WithCompleted(completed bool) Task {
	t.Completed = completed
	return t
}

// PartitionTasks splits tasks into active and completed, keeping the
// relative order of each side. Both results are non-nil.
func PartitionTasks(tasks []Task) (active []Task, completed []Task) {
	active = make([]Task, 0, len(tasks))
	completed = make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed {
			completed = append(completed, task)
			continue
		}
		active = append(active, task)
	}
	return active, completed
}
