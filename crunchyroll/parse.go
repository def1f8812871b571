package crunchyroll

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// URLKind is the kind of entity a crunchyroll url points to
type URLKind int

const (
	// URLSeries is a series page
	URLSeries URLKind = iota + 1
	// URLMovieListing is a movie listing page
	URLMovieListing
	// URLEpisodeOrMovie is a watch page; the id alone does not tell episodes
	// and movies apart
	URLEpisodeOrMovie
)

// String returns the string representation of a URLKind
func (k URLKind) String() string {
	switch k {
	case URLSeries:
		return "series"
	case URLMovieListing:
		return "movie_listing"
	case URLEpisodeOrMovie:
		return "episode_or_movie"
	default:
		return "unknown"
	}
}

// ParsedURL is the result of classifying a url
type ParsedURL struct {
	Kind URLKind
	ID   string
}

// URLPattern maps a url shape to a kind. Pattern must contain a named group "id".
type URLPattern struct {
	Kind    URLKind
	Pattern *regexp.Regexp
}

// urlPrefix matches the host and an optional locale segment such as "de/" or "pt-br/".
const urlPrefix = `^https?://(?:(?:www|beta)\.)?crunchyroll\.com/(?:[a-zA-Z]{2}(?:-[a-zA-Z]{2,3})?/)?`

// urlSuffix matches an optional slug, query and fragment after the id.
const urlSuffix = `(?:/[^?#]*)?(?:[?#].*)?$`

// DefaultURLPatterns are the url shapes of the crunchyroll website.
var DefaultURLPatterns = []URLPattern{
	{Kind: URLSeries, Pattern: regexp.MustCompile(urlPrefix + `series/(?P<id>[^/?#]+)` + urlSuffix)},
	{Kind: URLMovieListing, Pattern: regexp.MustCompile(urlPrefix + `movie_listing/(?P<id>[^/?#]+)` + urlSuffix)},
	{Kind: URLEpisodeOrMovie, Pattern: regexp.MustCompile(urlPrefix + `watch/(?P<id>[^/?#]+)` + urlSuffix)},
}

// ClassifyURL matches raw against patterns in order and returns the first hit.
// It never performs I/O.
func ClassifyURL(raw string, patterns []URLPattern) (ParsedURL, error) {
	input := strings.TrimSpace(raw)
	for _, p := range patterns {
		if p.Pattern == nil {
			continue
		}
		match := p.Pattern.FindStringSubmatch(input)
		if match == nil {
			continue
		}
		idx := p.Pattern.SubexpIndex("id")
		if idx < 0 || match[idx] == "" {
			continue
		}
		return ParsedURL{Kind: p.Kind, ID: match[idx]}, nil
	}
	return ParsedURL{}, &ClassificationError{Input: raw}
}

// ParseURL classifies raw against DefaultURLPatterns.
func ParseURL(raw string) (ParsedURL, error) {
	return ClassifyURL(raw, DefaultURLPatterns)
}

// Resolve fetches the entity a parsed url points to. Watch pages are not
// resolvable because episodes and movies live outside this client.
func (c *Crunchyroll) Resolve(ctx context.Context, parsed ParsedURL) (Available, error) {
	switch parsed.Kind {
	case URLSeries:
		series, err := c.SeriesFromID(ctx, parsed.ID)
		if err != nil {
			return nil, err
		}
		return series, nil
	case URLMovieListing:
		listing, err := c.MovieListingFromID(ctx, parsed.ID)
		if err != nil {
			return nil, err
		}
		return listing, nil
	default:
		return nil, fmt.Errorf("cannot resolve %s url: %w", parsed.Kind, ErrUnsupportedKind)
	}
}
