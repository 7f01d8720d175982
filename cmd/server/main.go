package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/api"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/service"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/infrastructure/config"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/infrastructure/db/postgres"
	redisdb "github.com/Sgarrido33/devsecops-pos-pipeline/internal/infrastructure/db/redis"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/infrastructure/http/handlers"
	"github.com/Sgarrido33/devsecops-pos-pipeline/pkg/logger"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// --- PostgreSQL ---
	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("postgres migrate failed")
	}

	// --- Redis (optional catalog cache) ---
	var cache service.ProductCache
	var readiness *handlers.HealthDependenciesHandler
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
			readiness = handlers.NewHealthDependenciesHandler(pool, nil)
		} else {
			defer rdb.Close()
			cache = redisdb.NewCatalogCache(rdb)
			readiness = handlers.NewHealthDependenciesHandler(pool, rdb)
		}
	} else {
		readiness = handlers.NewHealthDependenciesHandler(pool, nil)
	}

	// --- Router ---
	e := api.NewRouter(api.Dependencies{
		Users:     postgres.NewUserRepository(pool),
		Products:  postgres.NewProductRepository(pool),
		Sales:     postgres.NewSaleRepository(pool),
		Tokens:    service.NewTokenService(cfg.JWTSecret),
		Cache:     cache,
		Readiness: readiness.Readiness,
		Logger:    log,
	})

	// --- Server ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
