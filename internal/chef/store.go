package chef

import (
	"context"
	"time"
)

// ProfileUpdate is the allow-listed set of profile fields a chef may change.
// Email, password, and plan state are deliberately not patchable through it.
type ProfileUpdate struct {
	RestaurantName *string `json:"restaurantName"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
}

// PlanState is a full replacement of the chef's subscription plan fields.
// Applied by the plan package on webhook events.
type PlanState struct {
	Active     bool
	ExpiresAt  *time.Time
	PaymentRef string
}

// Store is the chef persistence boundary. All operations are single-document
// and atomic; DeactivateIfExpired and DeactivateExpired are conditional
// updates so concurrent readers cannot resurrect an expired plan.
type Store interface {
	// Create inserts a new chef. Returns ErrEmailTaken if the email is used.
	Create(ctx context.Context, c *Chef) error

	// ByID returns the chef or ErrNotFound.
	ByID(ctx context.Context, id string) (*Chef, error)

	// ByEmail returns the chef or ErrNotFound.
	ByEmail(ctx context.Context, email string) (*Chef, error)

	// UpdateProfile applies the non-nil fields and returns the updated chef,
	// or ErrNotFound.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*Chef, error)

	// SetPlan replaces the chef's plan fields, or returns ErrNotFound.
	SetPlan(ctx context.Context, id string, state PlanState) error

	// DeactivateIfExpired atomically flips planActive to false when the plan
	// is active with an expiration at or before now. Reports whether the
	// document was modified.
	DeactivateIfExpired(ctx context.Context, id string, now time.Time) (bool, error)

	// DeactivateExpired deactivates every chef whose active plan expired at
	// or before now and returns the number of chefs deactivated.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
