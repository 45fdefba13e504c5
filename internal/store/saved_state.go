package store

import "github.com/sandeepkv93/tasklist/internal/model"

// SavedState is what survives a UI teardown: the serialized collection and
// the pending input text, which is kept as an opaque string.
type SavedState struct {
	Tasks     []model.Tuple
	InputText string
	LastID    int
}

func (s *Store) Save() SavedState {
	return SavedState{
		Tasks:     model.Serialize(s.tasks),
		InputText: s.inputText,
		LastID:    s.lastID,
	}
}

// Restore rebuilds a store from saved state. When the saved tasks cannot be
// restored it still returns a usable store holding an empty collection and
// the saved input text, together with the error.
func Restore(saved SavedState, opts ...Option) (*Store, error) {
	s := New(opts...)
	s.inputText = saved.InputText

	tasks, err := model.Deserialize(saved.Tasks)
	if err != nil {
		return s, err
	}
	if err := s.load(tasks); err != nil {
		return s, err
	}
	if saved.LastID > s.lastID {
		s.lastID = saved.LastID
	}
	return s, nil
}
