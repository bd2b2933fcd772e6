package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/katalvlaran/warp/pb"
)

// ErrEmptyKey is returned when a store is asked for the empty key.
var ErrEmptyKey = errors.New("cache: empty key")

// Store persists alignment results by key.
//
// Get returns (nil, false, nil) on a miss; an error only signals a backend
// failure. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (*pb.Alignment, bool, error)
	Put(ctx context.Context, key string, value *pb.Alignment) error
}

// MemoryStore is an in-process Store backed by a map.
// Values are cloned on the way in and out.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*pb.Alignment
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]*pb.Alignment{}}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (*pb.Alignment, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	return pb.Clone(v), true, nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, key string, value *pb.Alignment) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		return pb.ErrNilAlignment
	}
	s.mu.Lock()
	s.items[key] = pb.Clone(value)
	s.mu.Unlock()

	return nil
}

// Len returns the number of stored results.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
