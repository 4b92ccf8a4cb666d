package model

import "time"

// Config holds the complete panvet configuration
type Config struct {
	HTTP         HTTPConfig         `yaml:"http" json:"http"`
	Input        InputConfig        `yaml:"input" json:"input"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" json:"concurrency"`
	Cache        CacheConfig        `yaml:"cache" json:"cache"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" json:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" json:"output"`
}

// HTTPConfig controls fetching of URL sources
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
}

// InputConfig controls how source content is interpreted
type InputConfig struct {
	Column    string `yaml:"column" json:"column"`         // CSV column (name or 0-based index)
	HasHeader bool   `yaml:"has_header" json:"has_header"` // First CSV row is a header
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	Workers         int `yaml:"workers" json:"workers"`                   // Batch source workers
	ClassifyWorkers int `yaml:"classify_workers" json:"classify_workers"` // Per-source classification fan-out
}

// CacheConfig controls verdict memoization
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// RateLimitingConfig controls per-host throttling of URL sources
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "panvet/0.2 (+https://github.com/skanade/panvet)",
			MaxBodyBytes: 2_000_000,
		},
		Input: InputConfig{
			Column:    "0",
			HasHeader: false,
		},
		Concurrency: ConcurrencyConfig{
			Workers:         4,
			ClassifyWorkers: 8,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         5,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
