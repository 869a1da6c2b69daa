package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dominionleague/internal/assets"
	"dominionleague/internal/catalog"
	"dominionleague/internal/logger"
)

// Fetcher stores the body of source at destination.
type Fetcher interface {
	Download(ctx context.Context, destination, source string) error
}

// Options tunes a Scraper.
type Options struct {
	// SkipExisting leaves assets already on disk alone and counts them as done.
	SkipExisting bool
}

// Scraper walks entities edition by edition and fetches every asset slot.
type Scraper struct {
	resolver     *assets.Resolver
	fetcher      Fetcher
	logger       *slog.Logger
	skipExisting bool
}

// New creates a scraper writing below resolver's root.
func New(resolver *assets.Resolver, fetcher Fetcher, opts Options, log *slog.Logger) *Scraper {
	if log == nil {
		log = logger.Discard()
	}
	return &Scraper{
		resolver:     resolver,
		fetcher:      fetcher,
		logger:       log,
		skipExisting: opts.SkipExisting,
	}
}

// ScrapeCard downloads the art of every edition of card. The first failure
// stops the remaining editions of this card.
func (s *Scraper) ScrapeCard(ctx context.Context, card *catalog.Card) error {
	if len(card.ArtURL) != len(card.Editions) {
		return fmt.Errorf("card %d (%q): %w", card.ID, card.Name, catalog.ErrMisalignedArt)
	}
	for i, edition := range card.Editions {
		if err := s.fetch(ctx, card, edition, assets.KindCardArt, card.ArtURL[i]); err != nil {
			return err
		}
	}
	return nil
}

// ScrapeSet downloads cover, rulebook and icon for every edition of set, in
// that order. The first failure stops the remaining assets of this set.
func (s *Scraper) ScrapeSet(ctx context.Context, set *catalog.Set) error {
	n := len(set.Editions)
	if n == 0 || len(set.CoverArtURL) != n || len(set.RuleBookURL) != n || len(set.IconURL) != n {
		return &catalog.ConstructionError{
			SetID:    set.ID,
			Name:     set.Name,
			Editions: n,
			Covers:   len(set.CoverArtURL),
			Rules:    len(set.RuleBookURL),
			Icons:    len(set.IconURL),
		}
	}
	for i, edition := range set.Editions {
		urls := map[assets.Kind]string{
			assets.KindSetCover:    set.CoverArtURL[i],
			assets.KindSetRulebook: set.RuleBookURL[i],
			assets.KindSetIcon:     set.IconURL[i],
		}
		for _, kind := range assets.SetKinds {
			if err := s.fetch(ctx, set, edition, kind, urls[kind]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ScrapeCards runs ScrapeCard over every card.
func (s *Scraper) ScrapeCards(ctx context.Context, cards []catalog.Card) Summary {
	return RunBatch(ctx, s.logger.With("batch", "cards"), cards,
		func(c catalog.Card) string { return c.Name },
		func(ctx context.Context, c catalog.Card) error { return s.ScrapeCard(ctx, &c) },
	)
}

// ScrapeSets runs ScrapeSet over every set.
func (s *Scraper) ScrapeSets(ctx context.Context, sets []catalog.Set) Summary {
	return RunBatch(ctx, s.logger.With("batch", "sets"), sets,
		func(set catalog.Set) string { return set.Name },
		func(ctx context.Context, set catalog.Set) error { return s.ScrapeSet(ctx, &set) },
	)
}

func (s *Scraper) fetch(ctx context.Context, e assets.Entity, edition int, kind assets.Kind, url string) error {
	dest, err := s.resolver.Path(e, edition, kind)
	if err != nil {
		return err
	}

	if s.skipExisting {
		if _, err := os.Stat(dest); err == nil {
			s.logger.Debug("skipping existing asset", "name", e.AssetName(), "edition", edition, "kind", kind.String())
			return nil
		}
	}

	if err := s.fetcher.Download(ctx, dest, url); err != nil {
		return fmt.Errorf("%s edition %d %s: %w", e.AssetName(), edition, kind, err)
	}
	return nil
}
