package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dominionleague/internal/config"
	localMiddleware "dominionleague/internal/middleware"
)

const defaultRequestTimeout = 60 * time.Second

// RouterOptions allows customization of router setup for tests
type RouterOptions struct {
	DisableRateLimiting  bool
	DisableRequestLogger bool
	CustomMiddleware     []func(http.Handler) http.Handler
	// RateLimiter is used instead of a fresh limiter so the caller can evict
	// idle clients.
	RateLimiter *localMiddleware.RateLimiter
	// Logger receives the access log. Defaults to slog.Default().
	Logger *slog.Logger
}

// SetupRouter creates the application router with all routes and middleware
func SetupRouter(h *Handler, cfg *config.Config, opts *RouterOptions) *chi.Mux {
	if opts == nil {
		opts = &RouterOptions{}
	}

	r := chi.NewRouter()

	// Chi's built-in middleware (conditionally applied)
	r.Use(middleware.RequestID)
	if cfg.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	if !opts.DisableRequestLogger {
		log := opts.Logger
		if log == nil {
			log = slog.Default()
		}
		r.Use(localMiddleware.RequestLogger(log))
	}
	r.Use(middleware.Recoverer)

	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	r.Use(middleware.Timeout(timeout))

	// Our custom middleware
	r.Use(localMiddleware.RequestSizeLimiter(cfg.Server.MaxRequestSize))
	r.Use(localMiddleware.SecurityHeaders())

	// Rate limiting (conditionally applied)
	if !opts.DisableRateLimiting && cfg.Server.RateLimit > 0 {
		rateLimiter := opts.RateLimiter
		if rateLimiter == nil {
			rateLimiter = localMiddleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitBurst)
		}
		r.Use(rateLimiter.Middleware())
	}

	for _, mw := range opts.CustomMiddleware {
		r.Use(mw)
	}

	// Catalog queries
	r.Get("/card_json/{ref}", h.CardJSON)
	r.Get("/card/{ref}", h.CardArt)
	r.Get("/card/{ref}/{edition}", h.CardArtEdition)
	r.Get("/set_json/{id}", h.SetJSON)
	r.Get("/set/{id}/{edition}/{kind}", h.SetAsset)
	r.Get("/kingdom/{name}", h.KingdomJSON)
	r.Get("/kingdoms", h.KingdomNames)

	// Scraped files
	r.Get("/assets/*", h.Assets)

	// Health check endpoints (no auth required)
	r.Get("/health", h.Health)
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		// The catalog is loaded before the listener starts, so serving means ready.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
