package handlers

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"dominionleague/internal/assets"
	"dominionleague/internal/logger"
	"dominionleague/internal/store"
)

// Miss responses. They are sent with status 200 so clients can tell a
// catalog miss from a routing error.
const (
	msgUnknownCardID   = "Unknown card id"
	msgUnknownCardName = "Unknown card name"
	msgUnknownSetID    = "Unknown set id"
	msgUnknownKingdom  = "Unknown kingdom"
)

// Redirect targets for lookups that fail inside an art redirect.
const (
	noSuchCardID  = "/card/no_such_card_id"
	noSuchEdition = "/card/no_such_edition"
	noSuchSetID   = "/assets/no_such_set_id"
	noSuchSetEd   = "/assets/no_such_edition"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog   *store.Catalog
	resolver  *assets.Resolver
	logger    *slog.Logger
	cardFiles http.Handler
	assetFS   http.Handler
}

// New creates a new handler. Static files are served from the resolver root.
func New(catalog *store.Catalog, resolver *assets.Resolver, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		catalog:   catalog,
		resolver:  resolver,
		logger:    log,
		cardFiles: http.StripPrefix("/card/", http.FileServer(noListing{http.Dir(resolver.CardDir())})),
		assetFS:   http.StripPrefix("/assets/", http.FileServer(noListing{http.Dir(resolver.Root())})),
	}
}

// Catalog returns the handler's catalog (for testing)
func (h *Handler) Catalog() *store.Catalog {
	return h.catalog
}

// Health answers the plain "Ok" liveness probe.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, "Ok")
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func writeText(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(msg))
}

func seeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func parseCardID(s string) (uint16, bool) {
	id, err := strconv.ParseUint(s, 10, 16)
	return uint16(id), err == nil
}

func parseSetID(s string) (uint8, bool) {
	id, err := strconv.ParseUint(s, 10, 8)
	return uint8(id), err == nil
}

// noListing hides directory indexes of the asset tree.
type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
