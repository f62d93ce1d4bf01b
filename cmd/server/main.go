package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/esdoorn/practice-api/internal/api"
	"github.com/esdoorn/practice-api/internal/core/ports"
	"github.com/esdoorn/practice-api/internal/infrastructure/config"
	"github.com/esdoorn/practice-api/internal/infrastructure/db/postgres"
	redisdb "github.com/esdoorn/practice-api/internal/infrastructure/db/redis"
	"github.com/esdoorn/practice-api/internal/infrastructure/storage"
	"github.com/esdoorn/practice-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	images, err := buildImageStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise image store")
	}

	e := api.NewRouter(db, rdb, images, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("image_storage", cfg.Images.Mode).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func buildImageStore(cfg *config.Config) (ports.ImageStore, error) {
	if cfg.Images.Mode == "inline" {
		return storage.NewInlineStore(), nil
	}
	return storage.NewFileStore(cfg.Images.UploadDir, cfg.Images.PublicBaseURL)
}
