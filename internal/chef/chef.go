// Package chef holds the restaurant/vendor account entity and its
// registration, authentication, and profile operations. Plan state lives on
// the chef document and is mutated by the plan package and lazily by readers
// that observe an expired plan.
package chef

import "time"

// Chef is the restaurant account. Management features are gated on its
// subscription plan state.
type Chef struct {
	ID             string     `bson:"_id" json:"id"`
	RestaurantName string     `bson:"restaurantName" json:"restaurantName"`
	Email          string     `bson:"email" json:"email"`
	PasswordHash   string     `bson:"passwordHash" json:"-"`
	Phone          string     `bson:"phone" json:"phone"`
	Address        string     `bson:"address,omitempty" json:"address,omitempty"`
	PlanActive     bool       `bson:"planActive" json:"planActive"`
	PlanExpiresAt  *time.Time `bson:"planExpiresAt" json:"planExpiresAt,omitempty"`
	// LastPaymentRef records the provider resource id and status of the last
	// applied subscription event, so webhook redelivery is a no-op.
	LastPaymentRef string    `bson:"lastPaymentRef,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// PlanExpired reports whether the plan has an expiration in the past.
func (c *Chef) PlanExpired(now time.Time) bool {
	return c.PlanExpiresAt != nil && c.PlanExpiresAt.Before(now)
}

// HasActivePlan reports whether the chef may use gated features right now.
// A plan flagged active but past its expiration does not count; callers are
// expected to trigger lazy deactivation when they observe that state.
func (c *Chef) HasActivePlan(now time.Time) bool {
	return c.PlanActive && !c.PlanExpired(now)
}

// PublicProfile is the subset of chef data exposed on the public menu page.
type PublicProfile struct {
	ID             string `json:"id"`
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone"`
}

// Public returns the chef's public menu profile.
func (c *Chef) Public() PublicProfile {
	return PublicProfile{
		ID:             c.ID,
		RestaurantName: c.RestaurantName,
		Address:        c.Address,
		Phone:          c.Phone,
	}
}
