// Package order implements order intake and pricing. Incoming orders are
// validated against the current menu, line prices are snapshotted at creation
// time, and the total is always computed server-side.
package order

import "time"

// Status is the fulfillment state of an order. Transitions are made only by
// the restaurant through the management update endpoint, never automatically.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusDelivered Status = "delivered"
)

// Valid reports whether s is a known order status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusDelivered:
		return true
	}
	return false
}

// Line is one ordered item. ItemName and UnitPrice are snapshots taken from
// the menu at order-creation time; later menu edits never change them.
type Line struct {
	MenuItemID   string  `bson:"menuItemId" json:"menuItemId"`
	ItemName     string  `bson:"itemName" json:"itemName"`
	UnitPrice    float64 `bson:"unitPrice" json:"unitPrice"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	Observations string  `bson:"observations,omitempty" json:"observations,omitempty"`
}

// Order is a client's order against a chef's menu.
type Order struct {
	ID            string    `bson:"_id" json:"id"`
	ChefID        string    `bson:"chefId" json:"chefId"`
	Lines         []Line    `bson:"items" json:"items"`
	Total         float64   `bson:"total" json:"total"`
	ClientName    string    `bson:"clientName" json:"clientName"`
	ClientPhone   string    `bson:"clientPhone" json:"clientPhone"`
	ClientAddress string    `bson:"clientAddress,omitempty" json:"clientAddress,omitempty"`
	Observations  string    `bson:"observations,omitempty" json:"observations,omitempty"`
	Status        Status    `bson:"status" json:"status"`
	OrderDate     time.Time `bson:"orderDate" json:"orderDate"`
}
