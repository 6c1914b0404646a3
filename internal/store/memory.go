package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRepo is an in-process Repo. Values are copied through JSON so callers
// never share slices with the stored value.
type MemoryRepo[T any] struct {
	mu    sync.RWMutex
	data  []byte
	Saves int
}

// NewMemoryRepo returns an empty MemoryRepo.
func NewMemoryRepo[T any]() *MemoryRepo[T] {
	return &MemoryRepo[T]{}
}

func (r *MemoryRepo[T]) Load(_ context.Context) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(r.data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *MemoryRepo[T]) Save(_ context.Context, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = b
	r.Saves++
	return nil
}

func (r *MemoryRepo[T]) Delete(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = nil
	return nil
}
