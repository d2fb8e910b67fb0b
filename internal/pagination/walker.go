package pagination

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
)

// DefaultMaxPages bounds a walk when the caller does not set a limit,
// guarding against providers that never return a terminal cursor.
const DefaultMaxPages = 1000

// Page is a single batch of items with the cursor for the next batch.
// An empty NextCursor marks the last page.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

// FetchFunc fetches one page for the given cursor. The first call receives
// an empty cursor. The cursor is opaque to the walker: offset integers,
// page tokens and block-range bounds are all encoded by the fetch function.
type FetchFunc[T any] func(ctx context.Context, cursor string) (Page[T], error)

// Options controls a walk.
type Options struct {
	// PageDelay is the etiquette delay between consecutive page fetches.
	PageDelay time.Duration

	// MaxPages caps the number of fetches. Zero means DefaultMaxPages.
	MaxPages int

	// MaxItems stops the walk once this many items have been accumulated.
	// Zero means unlimited. The result is truncated to MaxItems.
	MaxItems int

	// PageSize is the page size requested from the provider. When set, a
	// batch shorter than PageSize is treated as an implicit last page even
	// if the provider returned a next cursor.
	PageSize int
}

// Walk repeatedly invokes fetch, accumulating items, until the provider
// signals the last page or a configured bound is reached.
func Walk[T any](ctx context.Context, clock adapter.Clock, opts Options, fetch FetchFunc[T]) ([]T, error) {
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var items []T
	cursor := ""

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return items, err
		}

		result, err := fetch(ctx, cursor)
		if err != nil {
			return items, err
		}

		items = append(items, result.Items...)

		if opts.MaxItems > 0 && len(items) >= opts.MaxItems {
			items = items[:opts.MaxItems]
			return items, nil
		}

		// Terminal conditions: no items, no cursor, or a short batch when
		// the provider omits an explicit terminal marker
		if len(result.Items) == 0 || result.NextCursor == "" {
			return items, nil
		}
		if opts.PageSize > 0 && len(result.Items) < opts.PageSize {
			return items, nil
		}

		// A cursor that does not advance would loop forever
		if result.NextCursor == cursor {
			logger.Warn("pagination cursor did not advance, stopping walk",
				zap.String("cursor", cursor),
				zap.Int("pages", page),
			)
			return items, nil
		}
		cursor = result.NextCursor

		if page >= maxPages {
			logger.Warn("pagination walk reached page limit",
				zap.Int("max_pages", maxPages),
				zap.Int("items", len(items)),
			)
			return items, nil
		}

		if opts.PageDelay > 0 {
			select {
			case <-ctx.Done():
				return items, ctx.Err()
			case <-clock.After(opts.PageDelay):
			}
		}
	}
}
