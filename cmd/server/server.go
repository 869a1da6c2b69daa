package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"dominionleague"
	"dominionleague/internal/assets"
	"dominionleague/internal/config"
	"dominionleague/internal/handlers"
	localMiddleware "dominionleague/internal/middleware"
	"dominionleague/internal/store"
)

// app is the wired HTTP service.
type app struct {
	handler     http.Handler
	catalog     *store.Catalog
	rateLimiter *localMiddleware.RateLimiter
}

// setupApp loads the embedded catalog and builds the router. It fails fast on
// a catalog that does not index cleanly.
func setupApp(cfg *config.Config, log *slog.Logger) (*app, error) {
	catalog, err := store.Load(dominionleague.CardsJSON, dominionleague.SetsJSON, dominionleague.KingdomsYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	resolver, err := assets.NewResolver(cfg.Storage.Root)
	if err != nil {
		return nil, err
	}

	cards, sets, kingdoms := catalog.Stats()
	log.Info("catalog loaded", "cards", cards, "sets", sets, "kingdoms", kingdoms, "storage_root", resolver.Root())

	rateLimiter := localMiddleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitBurst)
	h := handlers.New(catalog, resolver, log)

	return &app{
		handler: handlers.SetupRouter(h, cfg, &handlers.RouterOptions{
			RateLimiter: rateLimiter,
			Logger:      log,
		}),
		catalog:     catalog,
		rateLimiter: rateLimiter,
	}, nil
}
