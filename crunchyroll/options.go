package crunchyroll

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Default endpoints of the public api
const (
	DefaultAPIURL     = "https://beta-api.crunchyroll.com"
	DefaultContentURL = "https://beta.crunchyroll.com"
	DefaultTimeout    = 30 * time.Second
)

// Option configures a Crunchyroll client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the client.
type clientOptions struct {
	config     Config
	token      string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

func defaultOptions() clientOptions {
	return clientOptions{
		config: Config{
			APIURL:     DefaultAPIURL,
			ContentURL: DefaultContentURL,
			Locale:     LocaleEnUS,
		},
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
}

// WithHTTPClient uses client for every request. The client's own timeout is kept.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithAccessToken sets the bearer token sent with every request.
func WithAccessToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithLocale sets the locale results are returned in.
func WithLocale(locale Locale) Option {
	return func(o *clientOptions) {
		if locale != "" {
			o.config.Locale = locale
		}
	}
}

// WithBucket sets the region bucket. Without it the bucket is loaded from the
// index endpoint when the client is created.
func WithBucket(bucket string) Option {
	return func(o *clientOptions) {
		o.config.Bucket = strings.Trim(bucket, "/")
	}
}

// WithPremium marks the session as having a premium entitlement.
func WithPremium(premium bool) Option {
	return func(o *clientOptions) {
		o.config.Premium = premium
	}
}

// WithCMS sets the signing parameters for catalog requests.
func WithCMS(cms CMS) Option {
	return func(o *clientOptions) {
		o.config.CMS = cms
	}
}

// WithBaseURL points both the catalog and the content api at url.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		url = strings.TrimRight(url, "/")
		o.config.APIURL = url
		o.config.ContentURL = url
	}
}

// WithAPIURL sets the base url of the catalog api.
func WithAPIURL(url string) Option {
	return func(o *clientOptions) {
		o.config.APIURL = strings.TrimRight(url, "/")
	}
}

// WithContentURL sets the base url of the search api.
func WithContentURL(url string) Option {
	return func(o *clientOptions) {
		o.config.ContentURL = strings.TrimRight(url, "/")
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
