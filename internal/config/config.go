// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Import   ImportConfig
	Catalog  CatalogConfig
	Matching MatchingConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// ImportConfig holds CSV import processing settings.
type ImportConfig struct {
	// MaxFileSize is the maximum allowed upload size in bytes (default: 20MB)
	MaxFileSize int64 `env:"IMPORT_MAX_FILE_SIZE" default:"20971520"`

	// HighValueThreshold is the price above which rows are flagged as
	// probable data-entry errors (default: 50000)
	HighValueThreshold int `env:"IMPORT_HIGH_VALUE_THRESHOLD" default:"50000"`
}

// CatalogConfig holds reference-catalog API client settings.
type CatalogConfig struct {
	// BaseURL is the catalog API root (default: https://api.pokemontcg.io/v2)
	BaseURL string `env:"CATALOG_BASE_URL" default:"https://api.pokemontcg.io/v2"`

	// APIKey authenticates catalog requests (optional; unauthenticated
	// requests are rate-limited harder)
	APIKey string `env:"CATALOG_API_KEY"`

	// Timeout is the per-request timeout for catalog searches (default: 10s)
	Timeout time.Duration `env:"CATALOG_TIMEOUT" default:"10s"`

	// MaxRetries is how many times a failed search is retried (default: 2)
	MaxRetries int `env:"CATALOG_MAX_RETRIES" default:"2"`

	// PageSize is the number of candidates fetched per search (default: 20)
	PageSize int `env:"CATALOG_PAGE_SIZE" default:"20"`
}

// MatchingConfig holds record-matching engine settings.
type MatchingConfig struct {
	// MinScore is the minimum total score for a candidate to count as a
	// match (default: 30)
	MinScore int `env:"MATCH_MIN_SCORE" default:"30"`

	// MaxResults caps ranked results per record (default: 5)
	MaxResults int `env:"MATCH_MAX_RESULTS" default:"5"`

	// Strict additionally requires a nonzero name score (default: false)
	Strict bool `env:"MATCH_STRICT" default:"false"`

	// Concurrency bounds the batch-matching worker pool (default: 4)
	Concurrency int `env:"MATCH_CONCURRENCY" default:"4"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
