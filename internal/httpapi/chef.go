package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/menuzap/menuzap/internal/chef"
)

func (h *Handlers) registerChef(w http.ResponseWriter, r *http.Request) {
	var in chef.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	c, err := h.chefs.Register(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, c)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) loginChef(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	c, err := h.chefs.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handlers) getChef(w http.ResponseWriter, r *http.Request) {
	c, err := h.chefs.Get(r.Context(), chi.URLParam(r, "chefID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handlers) updateChef(w http.ResponseWriter, r *http.Request) {
	var upd chef.ProfileUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.respondError(w, r, err)
		return
	}

	c, err := h.chefs.UpdateProfile(r.Context(), chi.URLParam(r, "chefID"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, c)
}
