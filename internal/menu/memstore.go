package menu

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store for tests and local development.
type MemStore struct {
	mu    sync.RWMutex
	items map[string]Item
}

// NewMemStore returns an empty in-memory menu store.
func NewMemStore() *MemStore {
	return &MemStore{items: make(map[string]Item)}
}

func (s *MemStore) Create(_ context.Context, item *Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = *item
	return nil
}

func (s *MemStore) ByID(_ context.Context, id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := item
	return &out, nil
}

func (s *MemStore) ByChef(_ context.Context, chefID string, availableOnly bool) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []Item{}
	for _, item := range s.items {
		if item.ChefID != chefID {
			continue
		}
		if availableOnly && !item.IsAvailable {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (s *MemStore) Update(_ context.Context, id string, upd ItemUpdate) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	if upd.IsAvailable != nil {
		item.IsAvailable = *upd.IsAvailable
	}
	s.items[id] = item
	out := item
	return &out, nil
}

func (s *MemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}
