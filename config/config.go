package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/s0up4200/crunchy/crunchyroll"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g.
// CRUNCHY_CRUNCHYROLL_ACCESS_TOKEN
const EnvPrefix = "CRUNCHY"

// Load loads the configuration from configPath, or from the standard
// locations when configPath is empty. A missing file in the standard
// locations is not an error: defaults and environment overrides still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".crunchy"))
		}
		v.AddConfigPath("/etc/crunchy/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key that can be
// overridden from the environment needs a default, otherwise viper does not
// know about it when unmarshaling.
func setDefaults(v *viper.Viper) {
	v.SetDefault("crunchyroll.api_url", crunchyroll.DefaultAPIURL)
	v.SetDefault("crunchyroll.content_url", crunchyroll.DefaultContentURL)
	v.SetDefault("crunchyroll.access_token", "")
	v.SetDefault("crunchyroll.locale", string(crunchyroll.LocaleEnUS))
	v.SetDefault("crunchyroll.bucket", "")
	v.SetDefault("crunchyroll.premium", false)
	v.SetDefault("crunchyroll.timeout", crunchyroll.DefaultTimeout)
	v.SetDefault("crunchyroll.cms.policy", "")
	v.SetDefault("crunchyroll.cms.signature", "")
	v.SetDefault("crunchyroll.cms.key_pair_id", "")

	v.SetDefault("search.limit", crunchyroll.DefaultQueryLimit)
	v.SetDefault("concurrency.workers", crunchyroll.DefaultConcurrency)

	v.SetDefault("filter.default", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	for key, raw := range map[string]string{
		"crunchyroll.api_url":     cfg.Crunchyroll.APIURL,
		"crunchyroll.content_url": cfg.Crunchyroll.ContentURL,
	} {
		if raw == "" {
			return fmt.Errorf("%s is required", key)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s is not a valid url: %s", key, raw)
		}
	}

	if cfg.Crunchyroll.Bucket == "" && cfg.Crunchyroll.AccessToken == "" {
		return fmt.Errorf("crunchyroll.access_token or crunchyroll.bucket must be set")
	}

	if cfg.Crunchyroll.Timeout < 0 {
		return fmt.Errorf("crunchyroll.timeout must not be negative")
	}

	if cfg.Concurrency.Workers < 1 {
		return fmt.Errorf("concurrency.workers must be at least 1, got %d", cfg.Concurrency.Workers)
	}

	if cfg.Search.Limit == 0 {
		return fmt.Errorf("search.limit must be at least 1")
	}

	if cfg.Filter.Default != "" {
		if _, ok := cfg.Filter.Presets[cfg.Filter.Default]; !ok {
			return fmt.Errorf("filter.default references unknown preset: %s", cfg.Filter.Default)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ClientOptions converts the crunchyroll section into client options
func (c CrunchyrollConfig) ClientOptions() []crunchyroll.Option {
	opts := []crunchyroll.Option{
		crunchyroll.WithAPIURL(c.APIURL),
		crunchyroll.WithContentURL(c.ContentURL),
		crunchyroll.WithLocale(crunchyroll.Locale(c.Locale)),
		crunchyroll.WithPremium(c.Premium),
		crunchyroll.WithTimeout(c.Timeout),
	}
	if c.AccessToken != "" {
		opts = append(opts, crunchyroll.WithAccessToken(c.AccessToken))
	}
	if c.Bucket != "" {
		opts = append(opts, crunchyroll.WithBucket(c.Bucket))
	}
	if c.CMS != (CMSConfig{}) {
		opts = append(opts, crunchyroll.WithCMS(crunchyroll.CMS{
			Policy:    c.CMS.Policy,
			Signature: c.CMS.Signature,
			KeyPairID: c.CMS.KeyPairID,
		}))
	}
	return opts
}
