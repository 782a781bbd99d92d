package catdb

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore is the process-local Store backend. Records are loaded once
// at construction and never change afterwards.
//
// Concurrency: protected by RWMutex. Enumeration is ascending by ID so that
// repeated calls observe the same order.
type InMemoryStore struct {
	mu    sync.RWMutex
	cats  map[int]Cat
	order []int
}

// NewInMemoryStore creates a store holding the given records.
func NewInMemoryStore(cats ...Cat) *InMemoryStore {
	s := &InMemoryStore{
		cats:  make(map[int]Cat, len(cats)),
		order: make([]int, 0, len(cats)),
	}
	for _, c := range cats {
		if _, exists := s.cats[c.ID]; !exists {
			s.order = append(s.order, c.ID)
		}
		s.cats[c.ID] = c
	}
	sort.Ints(s.order)
	return s
}

// Get returns a copy of the record with the given ID, or (nil, nil) when it
// does not exist.
func (s *InMemoryStore) Get(_ context.Context, id int) (*Cat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cats[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// All returns copies of every record in ascending ID order.
func (s *InMemoryStore) All(_ context.Context) ([]Cat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Cat, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.cats[id])
	}
	return result, nil
}

// Filter returns every record satisfying pred, in All's order.
func (s *InMemoryStore) Filter(_ context.Context, pred func(Cat) bool) ([]Cat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Cat, 0)
	for _, id := range s.order {
		if c := s.cats[id]; pred(c) {
			result = append(result, c)
		}
	}
	return result, nil
}
