package postgres

import "time"

// Config holds Postgres connection settings
type Config struct {
	// URL is the connection string (e.g. postgres://user@localhost:5432/pawhaven)
	URL string

	// Pool settings
	MaxConns    int32
	ConnTimeout time.Duration
}

// DefaultConfig returns sensible defaults for Postgres configuration
func DefaultConfig() Config {
	return Config{
		URL:         "postgres://postgres@localhost:5432/pawhaven",
		MaxConns:    10,
		ConnTimeout: 5 * time.Second,
	}
}
