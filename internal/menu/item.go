// Package menu holds menu items and their management operations. Items are
// read-only from the ordering side: the order package snapshots name and
// price at order-creation time, so later menu edits never affect existing
// orders.
package menu

import "time"

// Item is a single dish on a chef's menu.
type Item struct {
	ID          string    `bson:"_id" json:"id"`
	ChefID      string    `bson:"chefId" json:"chefId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
