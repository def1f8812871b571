package crunchyroll

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// QueryType restricts a search to one kind of result
type QueryType string

const (
	// QueryTypeSeries only returns series
	QueryTypeSeries QueryType = "series"
	// QueryTypeMovieListing only returns movie listings
	QueryTypeMovieListing QueryType = "movie_listing"
	// QueryTypeEpisode only returns episodes
	QueryTypeEpisode QueryType = "episode"
)

// ParseQueryType converts s into a QueryType
func ParseQueryType(s string) (QueryType, error) {
	switch t := QueryType(s); t {
	case QueryTypeSeries, QueryTypeMovieListing, QueryTypeEpisode:
		return t, nil
	}
	return "", fmt.Errorf("invalid query type: %s (must be 'series', 'movie_listing' or 'episode')", s)
}

// DefaultQueryLimit is the page size used when QueryOptions.Limit is zero
const DefaultQueryLimit = 20

// QueryOptions configures a search
type QueryOptions struct {
	// Limit is the maximum number of results per result type
	Limit uint32
	// ResultType restricts the search to one kind; empty searches all kinds
	ResultType QueryType
}

func (o QueryOptions) params() url.Values {
	params := url.Values{}
	limit := o.Limit
	if limit == 0 {
		limit = DefaultQueryLimit
	}
	params.Set("n", strconv.FormatUint(uint64(limit), 10))
	if o.ResultType != "" {
		params.Set("type", string(o.ResultType))
	}
	return params
}

// QueryResults is the outcome of a search. The api returns one bucket per
// result type; every slot is nil when its type did not appear.
type QueryResults struct {
	executor *Executor

	TopResults   *BulkResult[*Collection]
	Series       *BulkResult[*Collection]
	MovieListing *BulkResult[*Collection]
	Episode      *BulkResult[*Collection]
}

// queryBucket is one result type section of the raw search payload.
type queryBucket struct {
	ResultType string        `json:"type"`
	Items      []*Collection `json:"items"`
	Total      uint32        `json:"total"`
}

// queryBucket has no follow-up calls; the items are hydrated once they moved
// into their slot.
func (*queryBucket) SetExecutor(*Executor) {}
func (*queryBucket) Executor() *Executor   { return nil }

// UnmarshalJSON decodes the bucket list and moves every bucket into the slot
// named by its type. An unknown or repeated type fails the whole decode.
func (q *QueryResults) UnmarshalJSON(data []byte) error {
	var raw BulkResult[*queryBucket]
	if err := decodeJSON(data, &raw); err != nil {
		return err
	}

	var out QueryResults
	for _, bucket := range raw.Items {
		if bucket == nil {
			continue
		}

		var slot **BulkResult[*Collection]
		switch bucket.ResultType {
		case "top_results":
			slot = &out.TopResults
		case "series":
			slot = &out.Series
		case "movie_listing":
			slot = &out.MovieListing
		case "episode":
			slot = &out.Episode
		default:
			return &DecodeError{Message: fmt.Sprintf("invalid result type found: '%s'", bucket.ResultType)}
		}

		if *slot != nil {
			return &DecodeError{Message: fmt.Sprintf("duplicate result type found: '%s'", bucket.ResultType)}
		}

		items := dropNil(bucket.Items)
		if items == nil {
			items = []*Collection{}
		}
		*slot = &BulkResult[*Collection]{Items: items, Total: bucket.Total}
	}

	*q = out
	return nil
}

// SetExecutor hydrates every present slot
func (q *QueryResults) SetExecutor(e *Executor) {
	if q == nil {
		return
	}
	q.executor = e
	for _, slot := range q.slots() {
		slot.SetExecutor(e)
	}
}

// Executor returns the executor set during hydration
func (q *QueryResults) Executor() *Executor {
	if q == nil {
		return nil
	}
	return q.executor
}

// slots returns the present slots in display order
func (q *QueryResults) slots() []*BulkResult[*Collection] {
	slots := make([]*BulkResult[*Collection], 0, 4)
	for _, slot := range []*BulkResult[*Collection]{q.TopResults, q.Series, q.MovieListing, q.Episode} {
		if slot != nil {
			slots = append(slots, slot)
		}
	}
	return slots
}

// All returns the items of every present slot, top results first. The same
// collection can appear more than once when it is listed in several slots.
func (q *QueryResults) All() []*Collection {
	all := []*Collection{}
	for _, slot := range q.slots() {
		all = append(all, slot.Items...)
	}
	return all
}

// Query searches the catalog.
func (c *Crunchyroll) Query(ctx context.Context, query string, opts QueryOptions) (*QueryResults, error) {
	e := c.executor

	params := opts.params()
	params.Set("q", query)
	params.Set("locale", string(e.Locale()))

	req, err := e.NewRequest(ctx, http.MethodGet, e.config.ContentURL+"/content/v1/search", params)
	if err != nil {
		return nil, err
	}

	return Request[QueryResults](e, req)
}
