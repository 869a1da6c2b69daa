package handlers

import (
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dominionleague/internal/assets"
	"dominionleague/internal/catalog"
)

// CardJSON returns a card by id, or by name when ref is not an id.
// GET /card_json/{ref}
func (h *Handler) CardJSON(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	if id, ok := parseCardID(ref); ok {
		card, found := h.catalog.CardByID(id)
		if !found {
			writeText(w, msgUnknownCardID)
			return
		}
		h.writeJSON(w, card)
		return
	}

	card, found := h.catalog.CardByName(ref)
	if !found {
		writeText(w, msgUnknownCardName)
		return
	}
	h.writeJSON(w, card)
}

// CardArt redirects a numeric id to the art of the card's latest edition.
// Anything else is looked up as a file in the card art directory.
// GET /card/{ref}
func (h *Handler) CardArt(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	id, ok := parseCardID(ref)
	if !ok {
		h.cardFiles.ServeHTTP(w, r)
		return
	}

	card, found := h.catalog.CardByID(id)
	if !found {
		seeOther(w, r, noSuchCardID)
		return
	}
	edition, ok := card.LatestEdition()
	if !ok {
		seeOther(w, r, noSuchEdition)
		return
	}
	h.redirectToArt(w, r, card, edition)
}

// CardArtEdition redirects to the art of one edition of a card.
// GET /card/{ref}/{edition}
func (h *Handler) CardArtEdition(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCardID(chi.URLParam(r, "ref"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	edition, err := strconv.Atoi(chi.URLParam(r, "edition"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	card, found := h.catalog.CardByID(id)
	if !found {
		seeOther(w, r, noSuchCardID)
		return
	}
	if !card.HasEdition(edition) {
		seeOther(w, r, noSuchEdition)
		return
	}
	h.redirectToArt(w, r, card, edition)
}

func (h *Handler) redirectToArt(w http.ResponseWriter, r *http.Request, card *catalog.Card, edition int) {
	rel, err := assets.RelativePath(card, edition, assets.KindCardArt)
	if err != nil {
		h.logger.Error("failed to resolve card art", "card", card.ID, "edition", edition, "error", err)
		seeOther(w, r, noSuchEdition)
		return
	}
	// rel is "cards/<file>"; card art is served under /card/.
	seeOther(w, r, "/card/"+url.PathEscape(path.Base(rel)))
}
