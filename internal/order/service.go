package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/menuzap/menuzap/internal/chef"
	"github.com/menuzap/menuzap/internal/menu"
)

// ChefDirectory resolves chefs for order intake. Satisfied by chef.Store.
type ChefDirectory interface {
	ByID(ctx context.Context, id string) (*chef.Chef, error)
}

// MenuLookup resolves menu items for pricing. Satisfied by menu.Store.
type MenuLookup interface {
	ByID(ctx context.Context, id string) (*menu.Item, error)
}

// Service implements order intake (the pricing engine) and management
// operations on persisted orders.
type Service struct {
	orders Store
	chefs  ChefDirectory
	items  MenuLookup
}

// NewService returns a Service with the given dependencies.
// Panics on nil dependencies to fail fast during initialization.
func NewService(orders Store, chefs ChefDirectory, items MenuLookup) *Service {
	if orders == nil {
		panic("order: Store is required")
	}
	if chefs == nil {
		panic("order: ChefDirectory is required")
	}
	if items == nil {
		panic("order: MenuLookup is required")
	}
	return &Service{orders: orders, chefs: chefs, items: items}
}

// LineInput is one requested order line as submitted by the client.
type LineInput struct {
	MenuItemID   string `json:"menuItemId"`
	Quantity     int    `json:"quantity"`
	Observations string `json:"observations"`
}

// PlaceInput is a public order submission. Any client-supplied total is
// ignored by construction: the struct has no total field.
type PlaceInput struct {
	ChefID        string      `json:"chefId"`
	Items         []LineInput `json:"items"`
	ClientName    string      `json:"clientName"`
	ClientPhone   string      `json:"clientPhone"`
	ClientAddress string      `json:"clientAddress"`
	Observations  string      `json:"observations"`
}

func (in *PlaceInput) validate() error {
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	for i, line := range in.Items {
		if strings.TrimSpace(line.MenuItemID) == "" {
			return fmt.Errorf("%w: items[%d].menuItemId is required", ErrInvalidInput, i)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d].quantity must be a positive integer", ErrInvalidInput, i)
		}
	}
	if strings.TrimSpace(in.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	return nil
}

// Place validates and prices a public order submission, persists it with
// status pending, and returns it along with the WhatsApp notification link.
//
// Validation is fail-fast: the first unknown menu item aborts the whole
// submission and nothing is persisted. Item name and unit price are
// snapshotted from the menu as it is at this moment; a concurrent price edit
// may be observed either before or after, both are valid snapshots.
//
// When the chef has no phone configured the order is still persisted but
// Place returns ErrChefPhoneMissing alongside it, since the restaurant cannot
// be notified. Callers must treat that as a failed submission.
func (s *Service) Place(ctx context.Context, in PlaceInput) (*Order, string, error) {
	c, err := s.chefs.ByID(ctx, in.ChefID)
	if err != nil {
		return nil, "", err
	}

	if err := in.validate(); err != nil {
		return nil, "", err
	}

	var total float64
	lines := make([]Line, 0, len(in.Items))
	for _, req := range in.Items {
		item, err := s.items.ByID(ctx, req.MenuItemID)
		if err != nil {
			return nil, "", fmt.Errorf("menu item %q: %w", req.MenuItemID, err)
		}

		total += item.Price * float64(req.Quantity)
		lines = append(lines, Line{
			MenuItemID:   item.ID,
			ItemName:     item.Name,
			UnitPrice:    item.Price,
			Quantity:     req.Quantity,
			Observations: strings.TrimSpace(req.Observations),
		})
	}

	o := &Order{
		ID:            uuid.NewString(),
		ChefID:        c.ID,
		Lines:         lines,
		Total:         total,
		ClientName:    strings.TrimSpace(in.ClientName),
		ClientPhone:   strings.TrimSpace(in.ClientPhone),
		ClientAddress: strings.TrimSpace(in.ClientAddress),
		Observations:  strings.TrimSpace(in.Observations),
		Status:        StatusPending,
		OrderDate:     time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, "", err
	}

	if c.Phone == "" {
		// The order exists but the restaurant cannot be reached.
		return o, "", ErrChefPhoneMissing
	}

	return o, WhatsAppURL(c.Phone, c.RestaurantName, o), nil
}

// Get returns an order by id.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.orders.ByID(ctx, id)
}

// ListByChef returns a chef's orders, newest first.
func (s *Service) ListByChef(ctx context.Context, chefID string) ([]Order, error) {
	return s.orders.ByChef(ctx, chefID)
}

// Apply applies an allow-listed management update to an order.
func (s *Service) Apply(ctx context.Context, id string, upd Update) (*Order, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *upd.Status)
	}
	if upd.ClientName != nil && strings.TrimSpace(*upd.ClientName) == "" {
		return nil, fmt.Errorf("%w: clientName cannot be empty", ErrInvalidInput)
	}
	if upd.ClientPhone != nil && strings.TrimSpace(*upd.ClientPhone) == "" {
		return nil, fmt.Errorf("%w: clientPhone cannot be empty", ErrInvalidInput)
	}
	return s.orders.Apply(ctx, id, upd)
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}
