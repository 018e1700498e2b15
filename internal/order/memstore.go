package order

import (
	"context"
	"slices"
	"sort"
	"sync"
)

// MemStore is an in-memory Store for tests and local development.
type MemStore struct {
	mu     sync.RWMutex
	orders map[string]Order
}

// NewMemStore returns an empty in-memory order store.
func NewMemStore() *MemStore {
	return &MemStore{orders: make(map[string]Order)}
}

func (s *MemStore) Create(_ context.Context, o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *o
	cp.Lines = slices.Clone(o.Lines)
	s.orders[o.ID] = cp
	return nil
}

func (s *MemStore) ByID(_ context.Context, id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := o
	out.Lines = slices.Clone(o.Lines)
	return &out, nil
}

func (s *MemStore) ByChef(_ context.Context, chefID string) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := []Order{}
	for _, o := range s.orders {
		if o.ChefID == chefID {
			cp := o
			cp.Lines = slices.Clone(o.Lines)
			orders = append(orders, cp)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })
	return orders, nil
}

func (s *MemStore) Apply(_ context.Context, id string, upd Update) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	if upd.ClientName != nil {
		o.ClientName = *upd.ClientName
	}
	if upd.ClientPhone != nil {
		o.ClientPhone = *upd.ClientPhone
	}
	if upd.ClientAddress != nil {
		o.ClientAddress = *upd.ClientAddress
	}
	if upd.Observations != nil {
		o.Observations = *upd.Observations
	}
	s.orders[id] = o
	out := o
	out.Lines = slices.Clone(o.Lines)
	return &out, nil
}

func (s *MemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return ErrNotFound
	}
	delete(s.orders, id)
	return nil
}
