package storage

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu    sync.Mutex
	saved *Snapshot
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(ctx context.Context, in Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	in.Tasks = cloneTuples(in.Tasks)
	r.saved = &in
	return nil
}

func (r *MemoryRepository) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saved == nil {
		return Snapshot{}, ErrNotFound
	}
	out := *r.saved
	out.Tasks = cloneTuples(r.saved.Tasks)
	return out, nil
}

func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = nil
	return nil
}
