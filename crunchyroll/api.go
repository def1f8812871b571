package crunchyroll

import (
	"context"
)

// API defines the catalog operations the CLI depends on
type API interface {
	// Index fetches the session index
	Index(ctx context.Context) (*Index, error)

	// Query searches the catalog
	Query(ctx context.Context, query string, opts QueryOptions) (*QueryResults, error)

	// SeriesFromIDs fetches several series concurrently
	SeriesFromIDs(ctx context.Context, ids []string, limit int) ([]*Series, error)

	// MovieListingsFromIDs fetches several movie listings concurrently
	MovieListingsFromIDs(ctx context.Context, ids []string, limit int) ([]*MovieListing, error)

	// Resolve fetches the entity a parsed url points to
	Resolve(ctx context.Context, parsed ParsedURL) (Available, error)
}

var _ API = (*Crunchyroll)(nil)
