package crunchyroll

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MediaType is the kind of a media collection
type MediaType string

const (
	// MediaTypeSeries represents a series
	MediaTypeSeries MediaType = "series"
	// MediaTypeMovieListing represents a movie listing
	MediaTypeMovieListing MediaType = "movie_listing"
	// MediaTypeEpisode represents an episode
	MediaTypeEpisode MediaType = "episode"
	// MediaTypeMovie represents a single movie of a movie listing
	MediaTypeMovie MediaType = "movie"
)

// Image is the standard representation of images how the api returns them.
type Image struct {
	Source    string `json:"source"`
	ImageType string `json:"type"`
	Height    uint32 `json:"height"`
	Width     uint32 `json:"width"`
}

// MovieListingImages holds the poster variants of a movie listing. Each outer
// entry is one picture in several resolutions.
type MovieListingImages struct {
	PosterTall [][]Image `json:"poster_tall"`
	PosterWide [][]Image `json:"poster_wide"`
}

// SeriesImages holds the poster variants of a series
type SeriesImages = MovieListingImages

// Largest returns the widest resolution of the first picture in variants.
func Largest(variants [][]Image) (Image, bool) {
	if len(variants) == 0 || len(variants[0]) == 0 {
		return Image{}, false
	}
	best := variants[0][0]
	for _, img := range variants[0][1:] {
		if img.Width > best.Width {
			best = img
		}
	}
	return best, true
}

// MovieListing represents a movie collection.
type MovieListing struct {
	executor *Executor

	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`

	Slug                string `json:"slug"`
	Title               string `json:"title"`
	SlugTitle           string `json:"slug_title"`
	SeoTitle            string `json:"seo_title"`
	Description         string `json:"description"`
	SeoDescription      string `json:"seo_description"`
	ExtendedDescription string `json:"extended_description"`

	MovieReleaseYear uint32 `json:"movie_release_year"`
	ContentProvider  string `json:"content_provider"`

	Keywords   []string `json:"keywords"`
	SeasonTags []string `json:"season_tags"`

	Images MovieListingImages `json:"images"`

	IsSubbed        bool     `json:"is_subbed"`
	IsDubbed        bool     `json:"is_dubbed"`
	SubtitleLocales []Locale `json:"subtitle_locales"`

	HDFlag        bool `json:"hd_flag"`
	IsPremiumOnly bool `json:"is_premium_only"`

	MaturityRatings []string `json:"maturity_ratings"`
	IsMature        bool     `json:"is_mature"`
	MatureBlocked   bool     `json:"mature_blocked"`

	FreeAvailableDate    time.Time `json:"free_available_date"`
	PremiumAvailableDate time.Time `json:"premium_available_date"`

	AvailableOffline  bool   `json:"available_offline"`
	AvailabilityNotes string `json:"availability_notes"`

	// Fields the api sends whose shape is not relied on.
	ExtendedMaturityRating json.RawMessage `json:"extended_maturity_rating,omitempty"`
	AvailableDate          json.RawMessage `json:"available_date,omitempty"`
	PremiumDate            json.RawMessage `json:"premium_date,omitempty"`
}

// SetExecutor stores e for follow-up calls
func (m *MovieListing) SetExecutor(e *Executor) {
	if m == nil {
		return
	}
	m.executor = e
}

// Executor returns the executor set during hydration
func (m *MovieListing) Executor() *Executor {
	if m == nil {
		return nil
	}
	return m.executor
}

// Available reports whether the movie listing can be watched with the
// session's entitlement.
func (m *MovieListing) Available() bool {
	if m == nil {
		return false
	}
	return !m.IsPremiumOnly || premiumOf(m.executor)
}

// EndpointForID implements IDConstructible
func (*MovieListing) EndpointForID(bucket, id string) string {
	return fmt.Sprintf("/cms/v2/%s/movie_listings/%s", bucket, url.PathEscape(id))
}

// Series represents a crunchyroll series.
type Series struct {
	executor *Executor

	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`

	Slug                string `json:"slug"`
	Title               string `json:"title"`
	SlugTitle           string `json:"slug_title"`
	SeoTitle            string `json:"seo_title"`
	Description         string `json:"description"`
	SeoDescription      string `json:"seo_description"`
	ExtendedDescription string `json:"extended_description"`

	SeriesLaunchYear uint32 `json:"series_launch_year"`
	ContentProvider  string `json:"content_provider"`

	EpisodeCount uint32 `json:"episode_count"`
	SeasonCount  uint32 `json:"season_count"`
	MediaCount   uint32 `json:"media_count"`

	Keywords   []string `json:"keywords"`
	SeasonTags []string `json:"season_tags"`

	Images SeriesImages `json:"images"`

	IsSubbed        bool     `json:"is_subbed"`
	IsDubbed        bool     `json:"is_dubbed"`
	IsSimulcast     bool     `json:"is_simulcast"`
	AudioLocales    []Locale `json:"audio_locales"`
	SubtitleLocales []Locale `json:"subtitle_locales"`

	MaturityRatings []string `json:"maturity_ratings"`
	IsMature        bool     `json:"is_mature"`
	MatureBlocked   bool     `json:"mature_blocked"`

	AvailabilityNotes string `json:"availability_notes"`

	ExtendedMaturityRating json.RawMessage `json:"extended_maturity_rating,omitempty"`
}

// SetExecutor stores e for follow-up calls
func (s *Series) SetExecutor(e *Executor) {
	if s == nil {
		return
	}
	s.executor = e
}

// Executor returns the executor set during hydration
func (s *Series) Executor() *Executor {
	if s == nil {
		return nil
	}
	return s.executor
}

// Available reports whether the series can be watched with the session's
// entitlement. Series bound to a channel need premium.
func (s *Series) Available() bool {
	if s == nil {
		return false
	}
	return s.ChannelID == "" || premiumOf(s.executor)
}

// EndpointForID implements IDConstructible
func (*Series) EndpointForID(bucket, id string) string {
	return fmt.Sprintf("/cms/v2/%s/series/%s", bucket, url.PathEscape(id))
}

// FromID fetches the entity with the given id. The endpoint is built from the
// executor's bucket; errors from Request are returned unchanged.
func FromID[T any, PT interface {
	*T
	IDConstructible
}](ctx context.Context, e *Executor, id string) (*T, error) {
	endpoint := e.config.APIURL + PT(new(T)).EndpointForID(e.Bucket(), id)

	req, err := e.NewRequest(ctx, http.MethodGet, endpoint, e.MediaQuery())
	if err != nil {
		return nil, err
	}

	return Request[T, PT](e, req)
}
