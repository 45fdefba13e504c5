package model

import "fmt"

// tupleArity is the number of positional fields in a saved task:
// id, label, completed.
const tupleArity = 3

// Tuple is the saved form of a Task: an ordered (id, label, completed) triple.
type Tuple []any

// Serialize converts tasks to tuples, preserving order. An empty input
// yields an empty, non-nil sequence.
func Serialize(tasks []Task) []Tuple {
	out := make([]Tuple, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, Tuple{task.ID, task.Label, task.Completed})
	}
	return out
}

// Deserialize rebuilds tasks from tuples by position.
func Deserialize(tuples []Tuple) ([]Task, error) {
	out := make([]Task, 0, len(tuples))
	for i, tuple := range tuples {
		if len(tuple) < tupleArity {
			return nil, &DeserializationError{Index: i, Reason: fmt.Sprintf("expected %d fields, got %d", tupleArity, len(tuple))}
		}
		id, ok := asInt(tuple[0])
		if !ok {
			return nil, &DeserializationError{Index: i, Reason: fmt.Sprintf("id has type %T, want integer", tuple[0])}
		}
		label, ok := tuple[1].(string)
		if !ok {
			return nil, &DeserializationError{Index: i, Reason: fmt.Sprintf("label has type %T, want string", tuple[1])}
		}
		completed, ok := tuple[2].(bool)
		if !ok {
			return nil, &DeserializationError{Index: i, Reason: fmt.Sprintf("completed has type %T, want bool", tuple[2])}
		}
		out = append(out, Task{ID: id, Label: label, Completed: completed})
	}
	return out, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
