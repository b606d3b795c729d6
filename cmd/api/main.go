package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-seller-service/config"
	httpHandler "marketplace-seller-service/internal/adapter/http/handler"
	gcsStorage "marketplace-seller-service/internal/adapter/storage/gcs"
	pgStorage "marketplace-seller-service/internal/adapter/storage/postgres"
	redisStorage "marketplace-seller-service/internal/adapter/storage/redis"
	"marketplace-seller-service/internal/core/ports"
	"marketplace-seller-service/internal/service"
	"marketplace-seller-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Marketplace Seller Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Run schema migrations
	if err := pgStorage.RunMigrations(cfg.Database.DSN(), log); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize GCS object store
	gcsClient, err := gcsStorage.NewClient(ctx, cfg.Storage.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Cloud Storage client")
	}
	defer gcsClient.Close()
	objectStore := gcsStorage.NewObjectStore(gcsClient, cfg.Storage.Bucket)
	log.Info().Str("bucket", cfg.Storage.Bucket).Msg("Cloud Storage ready")

	// Initialize repositories
	sellerRepo := pgStorage.NewSellerRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	docRepo := pgStorage.NewDocumentRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	draftStore := redisStorage.NewDraftStore(rdb)
	profileCache := redisStorage.NewProfileCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	onboardingSvc := service.NewOnboardingService(
		sellerRepo,
		userRepo,
		transactor,
		draftStore,
		profileCache,
		cfg.Documents.DraftTTL,
		cfg.Documents.ProfileTTL,
		log,
	)
	documentSvc := service.NewDocumentService(
		sellerRepo,
		docRepo,
		objectStore,
		cfg.Documents.MaxSizeBytes,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OnboardingSvc:  onboardingSvc,
		DocumentSvc:    documentSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		MaxUploadBytes: cfg.Documents.MaxSizeBytes,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
