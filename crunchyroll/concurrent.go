package crunchyroll

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of lookups FromIDs runs at once
const DefaultConcurrency = 10

// FromIDs fetches every id concurrently, at most limit at a time (limit <= 0
// uses DefaultConcurrency). Results are in the order of ids. The first
// failure cancels the lookups still in flight and is returned alone.
func FromIDs[T any, PT interface {
	*T
	IDConstructible
}](ctx context.Context, e *Executor, ids []string, limit int) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]*T, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, id := range ids {
		g.Go(func() error {
			item, err := FromID[T, PT](ctx, e, id)
			if err != nil {
				return err
			}
			// each goroutine owns its own index
			results[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SeriesFromIDs fetches several series concurrently
func (c *Crunchyroll) SeriesFromIDs(ctx context.Context, ids []string, limit int) ([]*Series, error) {
	return FromIDs[Series](ctx, c.executor, ids, limit)
}

// MovieListingsFromIDs fetches several movie listings concurrently
func (c *Crunchyroll) MovieListingsFromIDs(ctx context.Context, ids []string, limit int) ([]*MovieListing, error) {
	return FromIDs[MovieListing](ctx, c.executor, ids, limit)
}
