package chef

import (
	"context"
	"sync"
	"time"
)

// MemStore is an in-memory Store for tests and local development.
// Values are copied on the way in and out so callers cannot mutate state
// behind the store's back.
type MemStore struct {
	mu    sync.RWMutex
	chefs map[string]Chef
}

// NewMemStore returns an empty in-memory chef store.
func NewMemStore() *MemStore {
	return &MemStore{chefs: make(map[string]Chef)}
}

func (s *MemStore) Create(_ context.Context, c *Chef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.chefs {
		if existing.Email == c.Email {
			return ErrEmailTaken
		}
	}
	s.chefs[c.ID] = clone(*c)
	return nil
}

func (s *MemStore) ByID(_ context.Context, id string) (*Chef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chefs[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := clone(c)
	return &out, nil
}

func (s *MemStore) ByEmail(_ context.Context, email string) (*Chef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.chefs {
		if c.Email == email {
			out := clone(c)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UpdateProfile(_ context.Context, id string, upd ProfileUpdate) (*Chef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chefs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.RestaurantName != nil {
		c.RestaurantName = *upd.RestaurantName
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	s.chefs[id] = c
	out := clone(c)
	return &out, nil
}

func (s *MemStore) SetPlan(_ context.Context, id string, state PlanState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chefs[id]
	if !ok {
		return ErrNotFound
	}
	c.PlanActive = state.Active
	c.PlanExpiresAt = copyTime(state.ExpiresAt)
	c.LastPaymentRef = state.PaymentRef
	s.chefs[id] = c
	return nil
}

func (s *MemStore) DeactivateIfExpired(_ context.Context, id string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chefs[id]
	if !ok {
		return false, nil
	}
	if !c.PlanActive || c.PlanExpiresAt == nil || c.PlanExpiresAt.After(now) {
		return false, nil
	}
	c.PlanActive = false
	s.chefs[id] = c
	return true, nil
}

func (s *MemStore) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, c := range s.chefs {
		if c.PlanActive && c.PlanExpiresAt != nil && !c.PlanExpiresAt.After(now) {
			c.PlanActive = false
			s.chefs[id] = c
			n++
		}
	}
	return n, nil
}

func clone(c Chef) Chef {
	c.PlanExpiresAt = copyTime(c.PlanExpiresAt)
	return c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
