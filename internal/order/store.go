package order

import "context"

// Update is the allow-listed set of fields the restaurant may change on an
// order. Lines and total are deliberately immutable after creation.
type Update struct {
	Status        *Status `json:"status"`
	ClientName    *string `json:"clientName"`
	ClientPhone   *string `json:"clientPhone"`
	ClientAddress *string `json:"clientAddress"`
	Observations  *string `json:"observations"`
}

// Store is the order persistence boundary.
type Store interface {
	// Create inserts a new order.
	Create(ctx context.Context, o *Order) error

	// ByID returns the order or ErrNotFound.
	ByID(ctx context.Context, id string) (*Order, error)

	// ByChef returns a chef's orders sorted by orderDate descending.
	ByChef(ctx context.Context, chefID string) ([]Order, error)

	// Apply applies the non-nil fields and returns the updated order,
	// or ErrNotFound.
	Apply(ctx context.Context, id string, upd Update) (*Order, error)

	// Delete removes the order, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
