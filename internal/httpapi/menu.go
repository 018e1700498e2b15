package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/menuzap/menuzap/internal/menu"
)

func (h *Handlers) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var in menu.CreateInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.menu.Create(r.Context(), ChefFromContext(r.Context()).ID, in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, item)
}

func (h *Handlers) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.ListByChef(r.Context(), ChefFromContext(r.Context()).ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handlers) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.menu.Get(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, item)
}

func (h *Handlers) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var upd menu.ItemUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.menu.Update(r.Context(), chi.URLParam(r, "itemID"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, item)
}

func (h *Handlers) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.Delete(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
