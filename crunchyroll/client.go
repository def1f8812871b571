package crunchyroll

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Crunchyroll is the entry point of the client. It owns the session's
// Executor; every object it returns shares that executor.
type Crunchyroll struct {
	executor *Executor
}

// IndexCMS is the signing section of the index endpoint
type IndexCMS struct {
	Bucket    string `json:"bucket"`
	Policy    string `json:"policy"`
	Signature string `json:"signature"`
	KeyPairID string `json:"key_pair_id"`
	Expires   string `json:"expires"`
}

// Index is the session index. It carries the bucket and signing parameters
// catalog requests need.
type Index struct {
	NoExecutor

	CMS                   IndexCMS `json:"cms"`
	ServiceAvailable      bool     `json:"service_available"`
	DefaultMarketingOptIn bool     `json:"default_marketing_opt_in"`
}

// New creates a new client. When no bucket was configured the index endpoint
// is queried to obtain bucket and signing parameters; this is the only point
// at which session state is written.
func New(ctx context.Context, opts ...Option) (*Crunchyroll, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.config.APIURL == "" || o.config.ContentURL == "" {
		return nil, fmt.Errorf("%w: api url is required", ErrInvalidConfig)
	}
	if o.config.Bucket == "" && o.token == "" {
		return nil, fmt.Errorf("%w: either a bucket or an access token is required", ErrInvalidConfig)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	e := &Executor{
		httpClient: httpClient,
		config:     o.config,
		token:      o.token,
		logger:     o.logger,
	}

	if e.config.Bucket == "" {
		index, err := fetchIndex(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("failed to load session index: %w", err)
		}
		e.config.Bucket = strings.Trim(index.CMS.Bucket, "/")
		if e.config.CMS == (CMS{}) {
			e.config.CMS = CMS{
				Policy:    index.CMS.Policy,
				Signature: index.CMS.Signature,
				KeyPairID: index.CMS.KeyPairID,
			}
		}
		e.logger.Debug().Str("bucket", e.config.Bucket).Msg("Loaded crunchyroll session index")
	}

	return &Crunchyroll{executor: e}, nil
}

// fetchIndex loads the session index
func fetchIndex(ctx context.Context, e *Executor) (*Index, error) {
	req, err := e.NewRequest(ctx, http.MethodGet, e.config.APIURL+"/index/v2", nil)
	if err != nil {
		return nil, err
	}
	return Request[Index](e, req)
}

// Executor returns the session executor
func (c *Crunchyroll) Executor() *Executor {
	return c.executor
}

// Index fetches the session index. It can be used to check connectivity and
// credentials; the session itself is not changed.
func (c *Crunchyroll) Index(ctx context.Context) (*Index, error) {
	return fetchIndex(ctx, c.executor)
}

// SeriesFromID fetches a series by id
func (c *Crunchyroll) SeriesFromID(ctx context.Context, id string) (*Series, error) {
	return FromID[Series](ctx, c.executor, id)
}

// MovieListingFromID fetches a movie listing by id
func (c *Crunchyroll) MovieListingFromID(ctx context.Context, id string) (*MovieListing, error) {
	return FromID[MovieListing](ctx, c.executor, id)
}
