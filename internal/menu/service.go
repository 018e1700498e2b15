package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service implements menu management and the public menu listing.
type Service struct {
	store Store
}

// NewService returns a Service backed by the given store.
// Panics on a nil store to fail fast during initialization.
func NewService(store Store) *Service {
	if store == nil {
		panic("menu: Store is required")
	}
	return &Service{store: store}
}

// CreateInput carries the fields for a new menu item.
type CreateInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsAvailable *bool   `json:"isAvailable"`
}

// Create adds an item to the chef's menu. New items default to available.
func (s *Service) Create(ctx context.Context, chefID string, in CreateInput) (*Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	item := &Item{
		ID:          uuid.NewString(),
		ChefID:      chefID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		IsAvailable: available,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get returns an item by id.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.store.ByID(ctx, id)
}

// ListByChef returns the full menu of a chef, management view.
func (s *Service) ListByChef(ctx context.Context, chefID string) ([]Item, error) {
	return s.store.ByChef(ctx, chefID, false)
}

// ListAvailable returns the public menu: available items only.
func (s *Service) ListAvailable(ctx context.Context, chefID string) ([]Item, error) {
	return s.store.ByChef(ctx, chefID, true)
}

// Update applies an allow-listed item update.
func (s *Service) Update(ctx context.Context, id string, upd ItemUpdate) (*Item, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if upd.Price != nil && *upd.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	return s.store.Update(ctx, id, upd)
}

// Delete removes an item from the menu.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
