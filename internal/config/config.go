// Package config loads and validates scanner configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Sites   SitesConfig   `mapstructure:"sites"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SitesConfig names the listing endpoints and the inclusive page range
// scanned on each of them.
type SitesConfig struct {
	BaseURLs  []string `mapstructure:"base_urls"`
	StartPage int      `mapstructure:"start_page"`
	EndPage   int      `mapstructure:"end_page"`
}

// HTTPConfig configures the HTTP client.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// FetchConfig governs per-page retry behavior. The delay is fixed between
// attempts; there is no backoff growth and no jitter.
type FetchConfig struct {
	MaxAttempts  int `mapstructure:"max_attempts"`
	RetryDelayMs int `mapstructure:"retry_delay_ms"`
}

// ScanConfig sizes the worker pool.
type ScanConfig struct {
	Workers int `mapstructure:"workers"`
}

// MetricsConfig controls the optional health/metrics HTTP listener.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NEWSSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sites.base_urls", []string{
		"https://www.artnews.com/c/art-news/market/",
		"https://www.artnews.com/art-news/market/",
	})
	v.SetDefault("sites.start_page", 2)
	v.SetDefault("sites.end_page", 100)
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.user_agent", "newsscan-bot/0.1")
	v.SetDefault("fetch.max_attempts", 3)
	v.SetDefault("fetch.retry_delay_ms", 2000)
	v.SetDefault("scan.workers", 5)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if len(c.Sites.BaseURLs) == 0 {
		return fmt.Errorf("sites.base_urls must not be empty")
	}
	for _, u := range c.Sites.BaseURLs {
		if u == "" {
			return fmt.Errorf("sites.base_urls must not contain empty entries")
		}
	}
	if c.Sites.StartPage < 1 {
		return fmt.Errorf("sites.start_page must be >= 1")
	}
	if c.Sites.EndPage < c.Sites.StartPage {
		return fmt.Errorf("sites.end_page must be >= sites.start_page")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.Fetch.MaxAttempts < 1 {
		return fmt.Errorf("fetch.max_attempts must be >= 1")
	}
	if c.Fetch.RetryDelayMs < 0 {
		return fmt.Errorf("fetch.retry_delay_ms must be >= 0")
	}
	if c.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be >= 1")
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr must be set when metrics are enabled")
	}
	return nil
}

// HTTPTimeout converts the configured timeout into a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// RetryDelay converts the configured inter-attempt delay into a duration.
func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.Fetch.RetryDelayMs) * time.Millisecond
}
