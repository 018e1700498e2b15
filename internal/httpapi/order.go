package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/menuzap/menuzap/internal/order"
)

func (h *Handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListByChef(r.Context(), ChefFromContext(r.Context()).ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handlers) updateOrder(w http.ResponseWriter, r *http.Request) {
	var upd order.Update
	if err := decodeJSON(r, &upd); err != nil {
		h.respondError(w, r, err)
		return
	}

	o, err := h.orders.Apply(r.Context(), chi.URLParam(r, "orderID"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handlers) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
