package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dominionleague/internal/catalog"
)

// KingdomResponse is a kingdom with its card records resolved.
type KingdomResponse struct {
	catalog.Kingdom
	Cards []catalog.Card `json:"cards"`
}

// KingdomJSON returns a recommended kingdom by name.
// GET /kingdom/{name}
func (h *Handler) KingdomJSON(w http.ResponseWriter, r *http.Request) {
	k, found := h.catalog.Kingdom(chi.URLParam(r, "name"))
	if !found {
		writeText(w, msgUnknownKingdom)
		return
	}
	h.writeJSON(w, KingdomResponse{Kingdom: *k, Cards: h.catalog.KingdomCards(k)})
}

// KingdomNames lists the names of all recommended kingdoms.
// GET /kingdoms
func (h *Handler) KingdomNames(w http.ResponseWriter, r *http.Request) {
	kingdoms := h.catalog.Kingdoms()
	names := make([]string, len(kingdoms))
	for i, k := range kingdoms {
		names[i] = k.Name
	}
	h.writeJSON(w, names)
}
