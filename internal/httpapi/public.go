package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/menuzap/menuzap/internal/order"
)

type placedOrderResponse struct {
	Order       *order.Order `json:"order"`
	WhatsAppURL string       `json:"whatsappUrl"`
}

// placeOrder handles public order submission. The order persists even when
// the chef has no phone configured, but the submission is reported as failed
// because the restaurant cannot be notified.
func (h *Handlers) placeOrder(w http.ResponseWriter, r *http.Request) {
	var in order.PlaceInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	o, waURL, err := h.orders.Place(r.Context(), in)
	if err != nil {
		if errors.Is(err, order.ErrChefPhoneMissing) {
			h.log.WarnContext(r.Context(), "order placed for chef without phone",
				"orderId", o.ID, "chefId", o.ChefID)
		}
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusCreated, placedOrderResponse{Order: o, WhatsAppURL: waURL})
}

func (h *Handlers) publicProfile(w http.ResponseWriter, r *http.Request) {
	c, err := h.chefs.ResolveActive(r.Context(), chi.URLParam(r, "chefID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, c.Public())
}

func (h *Handlers) publicMenu(w http.ResponseWriter, r *http.Request) {
	c, err := h.chefs.ResolveActive(r.Context(), chi.URLParam(r, "chefID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	items, err := h.menu.ListAvailable(r.Context(), c.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}
