package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Crunchyroll CrunchyrollConfig `mapstructure:"crunchyroll"`
	Search      SearchConfig      `mapstructure:"search"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency"`
	Filter      FilterConfig      `mapstructure:"filter"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// CrunchyrollConfig holds the API endpoints and session settings
type CrunchyrollConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	ContentURL  string        `mapstructure:"content_url"`
	AccessToken string        `mapstructure:"access_token"`
	Locale      string        `mapstructure:"locale"`
	Bucket      string        `mapstructure:"bucket"`
	Premium     bool          `mapstructure:"premium"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CMS         CMSConfig     `mapstructure:"cms"`
}

// CMSConfig holds pre-signed catalog parameters. When empty they are taken
// from the session index.
type CMSConfig struct {
	Policy    string `mapstructure:"policy"`
	Signature string `mapstructure:"signature"`
	KeyPairID string `mapstructure:"key_pair_id"`
}

// SearchConfig contains search defaults
type SearchConfig struct {
	Limit uint32 `mapstructure:"limit"`
}

// ConcurrencyConfig bounds parallel lookups and filter evaluation
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers"`
}

// FilterConfig contains the default filter and named filter presets
type FilterConfig struct {
	Default string            `mapstructure:"default"`
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
