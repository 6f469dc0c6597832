package cli

import (
	"errors"
	"os"

	"github.com/sibro/pawhaven/internal/storage/postgres"
)

// Config holds CLI configuration
type Config struct {
	DatabaseURL string
	Output      string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Output:      "text",
	}
}

// StorageConfig builds the Postgres config from the CLI settings
func (c *Config) StorageConfig() (postgres.Config, error) {
	if c.DatabaseURL == "" {
		return postgres.Config{}, errors.New("database URL required (set --database-url or DATABASE_URL)")
	}

	pgCfg := postgres.DefaultConfig()
	pgCfg.URL = c.DatabaseURL
	return pgCfg, nil
}
