package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yog-patel/home-designer-ai-app/internal/adapter/repo"
	"github.com/yog-patel/home-designer-ai-app/internal/entitlement"
	"github.com/yog-patel/home-designer-ai-app/internal/generation"
	"github.com/yog-patel/home-designer-ai-app/internal/http/handlers"
	"github.com/yog-patel/home-designer-ai-app/internal/http/httpapi"
	"github.com/yog-patel/home-designer-ai-app/internal/infra"
	"github.com/yog-patel/home-designer-ai-app/internal/infra/geoip"
	"github.com/yog-patel/home-designer-ai-app/internal/middleware"
	"github.com/yog-patel/home-designer-ai-app/internal/providers/image"
	"github.com/yog-patel/home-designer-ai-app/internal/providers/usage"
	"github.com/yog-patel/home-designer-ai-app/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		bootLogger := infra.NewLogger("production")
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := infra.NewLogger(cfg.AppEnv)
	logger.Info().Str("env", cfg.AppEnv).Str("port", cfg.Port).Msg("starting api server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	sqlRunner := infra.NewSQLRunner(pool, logger)

	var store entitlement.Store
	if cfg.RedisURL != "" {
		redisStore, err := entitlement.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		logger.Warn().Msg("REDIS_URL not set, usage cache is in-memory only")
		store = entitlement.NewMemoryStore()
	}

	usageClient, err := usage.NewClient(usage.Options{
		BaseURL: cfg.UsageAPIBaseURL,
		APIKey:  cfg.UsageAPIKey,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure usage client")
	}

	tracker := entitlement.NewTracker(store, usageClient, logger)

	imageClient, err := image.NewClient(image.Options{
		BaseURL: cfg.GenerationAPIBaseURL,
		APIKey:  cfg.GenerationAPIKey,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure generation client")
	}

	var uploader storage.Uploader
	if cfg.StorageBaseURL != "" {
		uploader, err = storage.NewBucketClient(storage.BucketOptions{
			BaseURL: cfg.StorageBaseURL,
			Bucket:  cfg.StorageBucket,
			APIKey:  cfg.StorageAPIKey,
		})
	} else {
		logger.Warn().Msg("STORAGE_BASE_URL not set, storing uploads on local disk")
		uploader, err = storage.NewFileStore(cfg.StorageLocalPath, cfg.StoragePublicURL)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure storage")
	}

	designs := repo.NewDesignRepository(sqlRunner)

	orchestrator, err := generation.NewOrchestrator(generation.Options{
		Tracker:   tracker,
		Uploader:  uploader,
		Generator: imageClient,
		Designs:   designs,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build generation pipeline")
	}

	var countries middleware.CountryLookup
	if cfg.GeoIPDBPath != "" {
		resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
		if err != nil {
			logger.Warn().Err(err).Msg("geoip database unavailable, country tagging disabled")
		} else {
			defer resolver.Close()
			countries = resolver
		}
	}

	app := &handlers.App{
		Logger:      logger,
		Generator:   orchestrator,
		Entitlement: tracker,
		Designs:     designs,
		Events:      repo.NewUsageEventRepository(sqlRunner),
	}

	server := infra.NewHTTPServer(cfg, httpapi.NewRouter(cfg, app, countries))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
