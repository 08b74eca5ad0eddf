package metadata

import (
	"context"
	"sync"
)

// InMemoryRepository is a map-backed Repository. It is used by tests and as
// a throwaway store when persistence is not wanted.
type InMemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string][]byte)}
}

func (r *InMemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *InMemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *InMemoryRepository) SetMulti(ctx context.Context, kv map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range kv {
		r.data[key] = append([]byte(nil), value...)
	}
	return nil
}

func (r *InMemoryRepository) DeleteMulti(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.data, key)
	}
	return nil
}

func (r *InMemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string][]byte)
	return nil
}
