package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/menuzap/menuzap/internal/chef"
)

type ctxKey int

const chefCtxKey ctxKey = iota

// ChefFromContext returns the chef the access gate attached to the request,
// or nil when the route is not gated.
func ChefFromContext(ctx context.Context) *chef.Chef {
	c, _ := ctx.Value(chefCtxKey).(*chef.Chef)
	return c
}

// requireActivePlan gates management routes on the owning chef's plan.
// The chef is resolved from the chefID URL param, or from the owner of the
// addressed menu item or order. Unknown chefs are a 404, chefs without an
// active plan a 403 (expired plans are deactivated on the way), and requests
// from which no chef can be resolved a 401.
func (h *Handlers) requireActivePlan(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chefID, err := h.resolveChefID(r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		c, err := h.chefs.ResolveActive(r.Context(), chefID)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), chefCtxKey, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handlers) resolveChefID(r *http.Request) (string, error) {
	if chefID := chi.URLParam(r, "chefID"); chefID != "" {
		return chefID, nil
	}
	if itemID := chi.URLParam(r, "itemID"); itemID != "" {
		item, err := h.menu.Get(r.Context(), itemID)
		if err != nil {
			return "", err
		}
		return item.ChefID, nil
	}
	if orderID := chi.URLParam(r, "orderID"); orderID != "" {
		o, err := h.orders.Get(r.Context(), orderID)
		if err != nil {
			return "", err
		}
		return o.ChefID, nil
	}
	return "", ErrUnauthorized
}
