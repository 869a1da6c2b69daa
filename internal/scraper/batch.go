package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"dominionleague/internal/logger"
)

// Failure records one entity that did not scrape cleanly.
type Failure struct {
	Name string
	Err  error
}

// Summary is the outcome of a batch.
type Summary struct {
	Succeeded int
	Total     int
	Failures  []Failure
}

// String formats the summary as "<succeeded>/<total>".
func (s Summary) String() string {
	return fmt.Sprintf("%d/%d", s.Succeeded, s.Total)
}

// OK reports whether every entity succeeded.
func (s Summary) OK() bool {
	return s.Succeeded == s.Total
}

// RunBatch scrapes items one after another. A failing item is logged and
// recorded, and the batch moves on to the next one. Cancelling ctx stops the
// batch before the next item; items not reached count as not succeeded.
// A nil log discards output.
func RunBatch[T any](ctx context.Context, log *slog.Logger, items []T, label func(T) string, scrape func(context.Context, T) error) Summary {
	if log == nil {
		log = logger.Discard()
	}
	summary := Summary{Total: len(items)}
	log.Info("starting batch", "total", len(items))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			log.Warn("batch cancelled", "remaining", len(items)-i, "error", err)
			break
		}

		name := label(item)
		log.Info("scraping", "name", name)
		if err := scrape(ctx, item); err != nil {
			log.Error("scrape failed", "name", name, "error", err)
			summary.Failures = append(summary.Failures, Failure{Name: name, Err: err})
			continue
		}
		summary.Succeeded++
	}

	log.Info("batch complete", "result", summary.String())
	return summary
}
