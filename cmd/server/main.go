package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sibro/pawhaven/internal/factory"
	"github.com/sibro/pawhaven/internal/services/auth"
	"github.com/sibro/pawhaven/internal/session"
	sessionredis "github.com/sibro/pawhaven/internal/session/redis"
	"github.com/sibro/pawhaven/internal/storage/postgres"
	"github.com/sibro/pawhaven/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, serverCfg, bootstrapEnabled, err := configFromEnv(logger)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Apply schema migrations when running against Postgres
	if pgStore, ok := app.Store.(*postgres.Store); ok {
		if err := pgStore.Migrate(ctx); err != nil {
			logger.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pgStore.Close()
	}

	router := web.NewRouter(web.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		Store:            app.Store,
		Clock:            app.Clock,
		BootstrapEnabled: bootstrapEnabled,
	})

	server := web.NewServer(router, serverCfg, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// configFromEnv builds the factory and server configuration from
// environment variables
func configFromEnv(logger *slog.Logger) (factory.Config, web.ServerConfig, bool, error) {
	cfg := factory.Config{
		Logger:         logger,
		StorageType:    os.Getenv("STORAGE_TYPE"),
		SessionBackend: os.Getenv("SESSION_BACKEND"),
	}

	if cfg.StorageType == factory.StorageTypePostgres {
		pgCfg := postgres.DefaultConfig()
		pgCfg.URL = os.Getenv("DATABASE_URL")
		if pgCfg.URL == "" {
			return cfg, web.ServerConfig{}, false, errMissingEnv("DATABASE_URL", "STORAGE_TYPE=postgres")
		}
		cfg.PostgresConfig = &pgCfg
	}

	if cfg.SessionBackend == factory.SessionBackendRedis {
		redisCfg := sessionredis.DefaultConfig()
		redisCfg.URL = os.Getenv("REDIS_URL")
		if redisCfg.URL == "" {
			return cfg, web.ServerConfig{}, false, errMissingEnv("REDIS_URL", "SESSION_BACKEND=redis")
		}
		cfg.RedisConfig = &redisCfg
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return cfg, web.ServerConfig{}, false, err
		}
		cfg.SessionConfig = session.Config{TTL: d}
	}

	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		n, err := strconv.Atoi(cost)
		if err != nil {
			return cfg, web.ServerConfig{}, false, err
		}
		cfg.AuthConfig = auth.Config{BcryptCost: n}
	}

	serverCfg := web.DefaultServerConfig()
	if addr := os.Getenv("ADDR"); addr != "" {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return cfg, web.ServerConfig{}, false, err
		}
		p, err := strconv.Atoi(port)
		if err != nil {
			return cfg, web.ServerConfig{}, false, err
		}
		serverCfg.Host = host
		serverCfg.Port = p
	}

	// Bootstrap endpoint defaults to enabled; set BOOTSTRAP_ENABLED=false
	// once the first admin exists
	bootstrapEnabled := true
	if v := os.Getenv("BOOTSTRAP_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, web.ServerConfig{}, false, err
		}
		bootstrapEnabled = b
	}

	return cfg, serverCfg, bootstrapEnabled, nil
}

func errMissingEnv(name, when string) error {
	return fmt.Errorf("%s required when %s", name, when)
}
