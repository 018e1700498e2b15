package menu

import "context"

// ItemUpdate is the allow-listed set of fields a chef may change on an item.
type ItemUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"isAvailable"`
}

// Store is the menu item persistence boundary.
type Store interface {
	// Create inserts a new item.
	Create(ctx context.Context, item *Item) error

	// ByID returns the item or ErrNotFound.
	ByID(ctx context.Context, id string) (*Item, error)

	// ByChef returns all items belonging to a chef. availableOnly restricts
	// the result to items currently offered (the public menu view).
	ByChef(ctx context.Context, chefID string, availableOnly bool) ([]Item, error)

	// Update applies the non-nil fields and returns the updated item,
	// or ErrNotFound.
	Update(ctx context.Context, id string, upd ItemUpdate) (*Item, error)

	// Delete removes the item, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
