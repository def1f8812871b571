package crunchyroll

import (
	"context"
	"fmt"
)

// CollectionImages holds the pictures attached to a search result
type CollectionImages struct {
	PosterTall [][]Image `json:"poster_tall"`
	PosterWide [][]Image `json:"poster_wide"`
	Thumbnail  [][]Image `json:"thumbnail"`
}

// SeriesMetadata is set on collections of type series
type SeriesMetadata struct {
	EpisodeCount      uint32   `json:"episode_count"`
	SeasonCount       uint32   `json:"season_count"`
	SeriesLaunchYear  uint32   `json:"series_launch_year"`
	IsSimulcast       bool     `json:"is_simulcast"`
	IsSubbed          bool     `json:"is_subbed"`
	IsDubbed          bool     `json:"is_dubbed"`
	IsMature          bool     `json:"is_mature"`
	MatureBlocked     bool     `json:"mature_blocked"`
	AudioLocales      []Locale `json:"audio_locales"`
	SubtitleLocales   []Locale `json:"subtitle_locales"`
	MaturityRatings   []string `json:"maturity_ratings"`
	AvailabilityNotes string   `json:"availability_notes"`
}

// MovieListingMetadata is set on collections of type movie_listing
type MovieListingMetadata struct {
	MovieReleaseYear  uint32   `json:"movie_release_year"`
	DurationMS        uint32   `json:"duration_ms"`
	IsPremiumOnly     bool     `json:"is_premium_only"`
	IsSubbed          bool     `json:"is_subbed"`
	IsDubbed          bool     `json:"is_dubbed"`
	IsMature          bool     `json:"is_mature"`
	MatureBlocked     bool     `json:"mature_blocked"`
	SubtitleLocales   []Locale `json:"subtitle_locales"`
	MaturityRatings   []string `json:"maturity_ratings"`
	AvailabilityNotes string   `json:"availability_notes"`
}

// EpisodeMetadata is set on collections of type episode
type EpisodeMetadata struct {
	SeriesID          string   `json:"series_id"`
	SeriesTitle       string   `json:"series_title"`
	SeasonID          string   `json:"season_id"`
	SeasonTitle       string   `json:"season_title"`
	SeasonNumber      uint32   `json:"season_number"`
	Episode           string   `json:"episode"`
	EpisodeNumber     uint32   `json:"episode_number"`
	DurationMS        uint32   `json:"duration_ms"`
	IsPremiumOnly     bool     `json:"is_premium_only"`
	IsSubbed          bool     `json:"is_subbed"`
	IsDubbed          bool     `json:"is_dubbed"`
	IsMature          bool     `json:"is_mature"`
	MatureBlocked     bool     `json:"mature_blocked"`
	AudioLocale       Locale   `json:"audio_locale"`
	SubtitleLocales   []Locale `json:"subtitle_locales"`
	MaturityRatings   []string `json:"maturity_ratings"`
	AvailabilityNotes string   `json:"availability_notes"`
}

// SearchMetadata carries the ranking of a search hit
type SearchMetadata struct {
	Score float64 `json:"score"`
}

// Collection is a single search result. Which metadata block is set depends
// on Type.
type Collection struct {
	executor *Executor

	ID                string    `json:"id"`
	ExternalID        string    `json:"external_id"`
	ChannelID         string    `json:"channel_id"`
	Type              MediaType `json:"type"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	SlugTitle         string    `json:"slug_title"`
	Description       string    `json:"description"`
	PromoTitle        string    `json:"promo_title"`
	PromoDescription  string    `json:"promo_description"`
	LinkedResourceKey string    `json:"linked_resource_key"`
	New               bool      `json:"new"`
	NewContent        bool      `json:"new_content"`

	Images CollectionImages `json:"images"`

	SearchMetadata       *SearchMetadata       `json:"search_metadata,omitempty"`
	SeriesMetadata       *SeriesMetadata       `json:"series_metadata,omitempty"`
	MovieListingMetadata *MovieListingMetadata `json:"movie_listing_metadata,omitempty"`
	EpisodeMetadata      *EpisodeMetadata      `json:"episode_metadata,omitempty"`
}

// SetExecutor stores e for follow-up calls
func (c *Collection) SetExecutor(e *Executor) {
	if c == nil {
		return
	}
	c.executor = e
}

// Executor returns the executor set during hydration
func (c *Collection) Executor() *Executor {
	if c == nil {
		return nil
	}
	return c.executor
}

// IsPremiumOnly reports whether the metadata marks the result as premium only
func (c *Collection) IsPremiumOnly() bool {
	switch {
	case c == nil:
		return false
	case c.MovieListingMetadata != nil:
		return c.MovieListingMetadata.IsPremiumOnly
	case c.EpisodeMetadata != nil:
		return c.EpisodeMetadata.IsPremiumOnly
	}
	return false
}

// Available reports whether the result can be watched with the session's
// entitlement.
func (c *Collection) Available() bool {
	if c == nil {
		return false
	}
	return !c.IsPremiumOnly() || premiumOf(c.executor)
}

// Series fetches the full series this result refers to.
func (c *Collection) Series(ctx context.Context) (*Series, error) {
	if c.Type != MediaTypeSeries {
		return nil, fmt.Errorf("collection %s is a %s: %w", c.ID, c.Type, ErrUnsupportedKind)
	}
	if c.executor == nil {
		return nil, ErrNoExecutor
	}
	return FromID[Series](ctx, c.executor, c.ID)
}

// MovieListing fetches the full movie listing this result refers to.
func (c *Collection) MovieListing(ctx context.Context) (*MovieListing, error) {
	if c.Type != MediaTypeMovieListing {
		return nil, fmt.Errorf("collection %s is a %s: %w", c.ID, c.Type, ErrUnsupportedKind)
	}
	if c.executor == nil {
		return nil, ErrNoExecutor
	}
	return FromID[MovieListing](ctx, c.executor, c.ID)
}
