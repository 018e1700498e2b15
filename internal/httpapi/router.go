package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthCheck probes a backing dependency. A nil check is skipped.
type HealthCheck func(ctx context.Context) error

// NewRouter builds the HTTP routing tree: the /api surface plus /health.
func NewRouter(h *Handlers, checks ...HealthCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health(checks))

	r.Route("/api", func(r chi.Router) {
		r.Post("/beAChef", h.registerChef)
		r.Post("/loginChef", h.loginChef)

		r.Route("/chefs/{chefID}", func(r chi.Router) {
			r.Get("/", h.getChef)
			r.Put("/", h.updateChef)

			r.Group(func(r chi.Router) {
				r.Use(h.requireActivePlan)
				r.Post("/menuItems", h.createMenuItem)
				r.Get("/menuItems", h.listMenuItems)
				r.Get("/orders", h.listOrders)
			})
		})

		r.Route("/menuItems/{itemID}", func(r chi.Router) {
			r.Use(h.requireActivePlan)
			r.Get("/", h.getMenuItem)
			r.Put("/", h.updateMenuItem)
			r.Delete("/", h.deleteMenuItem)
		})

		r.Route("/orders/{orderID}", func(r chi.Router) {
			r.Use(h.requireActivePlan)
			r.Put("/", h.updateOrder)
			r.Delete("/", h.deleteOrder)
		})

		r.Post("/public/orders", h.placeOrder)
		r.Get("/public/menu/{chefID}", h.publicProfile)
		r.Get("/public/menu/{chefID}/items", h.publicMenu)

		r.Post("/planMensal", h.checkoutMonthly)
		r.Post("/planAnual", h.checkoutAnnual)
		r.Post("/mercadopago/webhook", h.webhook)

		r.Post("/generate-qr", h.generateQR)
	})

	return r
}

func (h *Handlers) health(checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(r.Context()); err != nil {
				h.log.ErrorContext(r.Context(), "healthcheck failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, JSONResponse{Error: &ErrorDetail{
					Code: "unhealthy",
				}})
				return
			}
		}
		respond(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
