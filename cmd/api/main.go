package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventhub/event-platform/internal/api"
	"github.com/eventhub/event-platform/internal/infrastructure/db/postgres"
	redisdb "github.com/eventhub/event-platform/internal/infrastructure/db/redis"
	"github.com/eventhub/event-platform/internal/pkg/config"
	"github.com/eventhub/event-platform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Event Platform API
// @version         1.0
// @description     Minimal event-management backend: signup/login, admin event CRUD, ticket registration.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in    header
// @name  Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; fall back to stderr.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	bootstrapCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := postgres.EnsureSchema(bootstrapCtx, pool); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	cancel()

	// Redis is optional: without it the event listing simply skips the cache.
	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, event listing cache disabled")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	e := api.NewRouter(pool, rdb, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
		log.Info().Msg("server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	return redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
}
