package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/tasklist/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Snapshot is the saved UI session: the serialized task tuples in order plus
// the pending input text.
type Snapshot struct {
	Tasks     []model.Tuple
	InputText string
	LastID    int
	SavedAt   time.Time
}

// SessionRepository keeps one snapshot for the lifetime of the process. It
// is never backed by durable storage.
type SessionRepository interface {
	Save(ctx context.Context, in Snapshot) error
	Load(ctx context.Context) (Snapshot, error)
	Close() error
}

type Kind string

const (
	KindMemory Kind = "memory"
	KindSQLite Kind = "sqlite"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindMemory, KindSQLite:
		return true
	default:
		return false
	}
}

// Open returns the session repository for kind. Unknown kinds fall back to
// memory.
func Open(kind Kind) (SessionRepository, error) {
	if kind == KindSQLite {
		return OpenSessionSQLite("tasklist-session")
	}
	return NewMemoryRepository(), nil
}

func cloneTuples(in []model.Tuple) []model.Tuple {
	out := make([]model.Tuple, 0, len(in))
	for _, tuple := range in {
		out = append(out, append(model.Tuple(nil), tuple...))
	}
	return out
}
