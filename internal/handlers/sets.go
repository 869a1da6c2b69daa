package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"dominionleague/internal/assets"
)

// SetJSON returns a set by id.
// GET /set_json/{id}
func (h *Handler) SetJSON(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSetID(chi.URLParam(r, "id"))
	if !ok {
		writeText(w, msgUnknownSetID)
		return
	}
	set, found := h.catalog.SetByID(id)
	if !found {
		writeText(w, msgUnknownSetID)
		return
	}
	h.writeJSON(w, set)
}

// SetAsset redirects to the cover, rulebook or icon of a set edition.
// GET /set/{id}/{edition}/{kind}
func (h *Handler) SetAsset(w http.ResponseWriter, r *http.Request) {
	kind, err := assets.ParseKind(chi.URLParam(r, "kind"))
	if err != nil || kind == assets.KindCardArt {
		http.NotFound(w, r)
		return
	}
	edition, err := strconv.Atoi(chi.URLParam(r, "edition"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	id, ok := parseSetID(chi.URLParam(r, "id"))
	if !ok {
		seeOther(w, r, noSuchSetID)
		return
	}
	set, found := h.catalog.SetByID(id)
	if !found {
		seeOther(w, r, noSuchSetID)
		return
	}

	rel, err := assets.RelativePath(set, edition, kind)
	if err != nil {
		seeOther(w, r, noSuchSetEd)
		return
	}
	seeOther(w, r, "/assets/"+escapePath(rel))
}

// Assets serves the scraped file tree.
// GET /assets/*
func (h *Handler) Assets(w http.ResponseWriter, r *http.Request) {
	h.assetFS.ServeHTTP(w, r)
}

func escapePath(rel string) string {
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
