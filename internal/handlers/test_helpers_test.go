package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"dominionleague"
	"dominionleague/internal/assets"
	"dominionleague/internal/config"
	"dominionleague/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var copperArt = []byte("copper second edition")

// newTestHandler creates a handler over the embedded catalog and an asset
// root holding a single card image.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cat, err := store.Load(dominionleague.CardsJSON, dominionleague.SetsJSON, dominionleague.KingdomsYAML)
	require.NoError(t, err)

	resolver, err := assets.NewResolver(t.TempDir())
	require.NoError(t, err)

	copper, ok := cat.CardByID(0)
	require.True(t, ok)
	path, err := resolver.Path(copper, 2, assets.KindCardArt)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, copperArt, 0644))

	return New(cat, resolver, nil)
}

// setupTestRouter creates a router without rate limiting or access logs
func setupTestRouter(h *Handler) *chi.Mux {
	cfg := config.DefaultConfig()
	return SetupRouter(h, cfg, &RouterOptions{
		DisableRateLimiting:  true,
		DisableRequestLogger: true,
	})
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}
