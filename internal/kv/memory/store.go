package memory

import (
	"context"
	"sync"

	"github.com/mquinn/rpsduel-go/internal/kv"
	"github.com/mquinn/rpsduel-go/internal/model"
)

// Store is an in-memory implementation of the kv store interface
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates a new in-memory store instance
func New() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Ensure Store implements the interface
var _ kv.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", model.ErrKeyNotFound
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
