// Package factory wires the application components together
package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/sibro/pawhaven/internal/dependencies/clock"
	"github.com/sibro/pawhaven/internal/dependencies/random"
	"github.com/sibro/pawhaven/internal/services/auth"
	"github.com/sibro/pawhaven/internal/session"
	sessionmemory "github.com/sibro/pawhaven/internal/session/memory"
	sessionredis "github.com/sibro/pawhaven/internal/session/redis"
	"github.com/sibro/pawhaven/internal/storage"
	"github.com/sibro/pawhaven/internal/storage/memory"
	"github.com/sibro/pawhaven/internal/storage/postgres"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
)

// Session backend constants
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store    storage.Store
	Sessions session.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// PostgresConfig holds Postgres connection settings (required if
	// StorageType is "postgres")
	PostgresConfig *postgres.Config

	// SessionBackend selects the session store ("memory" or "redis")
	// If empty, defaults to "memory"
	SessionBackend string
	// RedisConfig holds Redis connection settings (required if
	// SessionBackend is "redis")
	RedisConfig *sessionredis.Config
	// SessionConfig holds session lifecycle settings (optional)
	// If zero value, defaults to session.DefaultConfig()
	SessionConfig session.Config

	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config

	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()
	rnd := random.New()

	sessionCfg := cfg.SessionConfig
	if sessionCfg.TTL == 0 {
		sessionCfg = session.DefaultConfig()
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sessions, err := newSessionStore(cfg, sessionCfg, clk, rnd)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, sessions, clk, rnd, cfg.AuthConfig, logger), nil
}

func newStore(ctx context.Context, cfg Config) (storage.Store, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		return postgres.New(ctx, *cfg.PostgresConfig)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'postgres'")
	}
}

func newSessionStore(cfg Config, sessionCfg session.Config, clk clock.Clock, rnd random.Random) (session.Store, error) {
	backend := cfg.SessionBackend
	if backend == "" {
		backend = SessionBackendMemory
	}

	switch backend {
	case SessionBackendMemory:
		return sessionmemory.New(clk, rnd, sessionCfg), nil
	case SessionBackendRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when SessionBackend is redis")
		}
		redisCfg := *cfg.RedisConfig
		redisCfg.Session = sessionCfg
		return sessionredis.New(redisCfg, clk, rnd)
	default:
		return nil, errors.New("invalid SessionBackend: must be 'memory' or 'redis'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, sessions session.Store, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	authService := auth.New(store, sessions, clk, authCfg, logger)

	return &App{
		Store:       store,
		Sessions:    sessions,
		Clock:       clk,
		Random:      rnd,
		AuthService: authService,
	}
}
