package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/menuzap/menuzap/internal/plan"
)

type checkoutRequest struct {
	EmailChef string `json:"emailChef"`
}

type checkoutResponse struct {
	InitPoint string `json:"init_point"`
}

func (h *Handlers) checkoutMonthly(w http.ResponseWriter, r *http.Request) {
	h.checkout(w, r, plan.KindMonthly)
}

func (h *Handlers) checkoutAnnual(w http.ResponseWriter, r *http.Request) {
	h.checkout(w, r, plan.KindAnnual)
}

func (h *Handlers) checkout(w http.ResponseWriter, r *http.Request, kind plan.Kind) {
	var in checkoutRequest
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	initPoint, err := h.plans.CreateCheckout(r.Context(), kind, in.EmailChef)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, checkoutResponse{InitPoint: initPoint})
}

// webhook receives payment provider notifications. Decoding is lenient
// because the provider sends fields beyond the ones acted on, and
// notification types this service does not handle still get a 200 so the
// provider stops retrying.
func (h *Handlers) webhook(w http.ResponseWriter, r *http.Request) {
	var n plan.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		h.respondError(w, r, fmt.Errorf("%w: %v", errInvalidJSON, err))
		return
	}

	if err := h.plans.HandleWebhook(r.Context(), n); err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "processed"})
}
