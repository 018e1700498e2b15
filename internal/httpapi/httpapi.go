// Package httpapi exposes the service over HTTP: routing, request binding,
// the JSON response envelope, and the subscription access gate that fronts
// chef-facing management routes.
package httpapi

import (
	"log/slog"

	"github.com/menuzap/menuzap/internal/chef"
	"github.com/menuzap/menuzap/internal/menu"
	"github.com/menuzap/menuzap/internal/order"
	"github.com/menuzap/menuzap/internal/plan"
)

// Handlers bundles the services the HTTP layer fronts.
type Handlers struct {
	chefs  *chef.Service
	menu   *menu.Service
	orders *order.Service
	plans  *plan.Service
	log    *slog.Logger
}

// Option configures Handlers.
type Option func(*Handlers)

// WithLogger supplies a request-scoped logger. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handlers) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandlers wires the services into the HTTP layer.
// Panics on nil services to fail fast during initialization.
func NewHandlers(chefs *chef.Service, menuSvc *menu.Service, orders *order.Service, plans *plan.Service, opts ...Option) *Handlers {
	if chefs == nil {
		panic("httpapi: chef service is required")
	}
	if menuSvc == nil {
		panic("httpapi: menu service is required")
	}
	if orders == nil {
		panic("httpapi: order service is required")
	}
	if plans == nil {
		panic("httpapi: plan service is required")
	}
	h := &Handlers{
		chefs:  chefs,
		menu:   menuSvc,
		orders: orders,
		plans:  plans,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
