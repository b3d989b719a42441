package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamassss/urlist/internal/handler"
	"github.com/gamassss/urlist/internal/logger"
	"github.com/gamassss/urlist/internal/metadata"
	"github.com/gamassss/urlist/internal/repository/postgres"
	redisRepo "github.com/gamassss/urlist/internal/repository/redis"
	"github.com/gamassss/urlist/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Pending migrations are applied before the server
starts listening.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	log := logger.Get()
	log.Info("Starting urlist service",
		"version", version,
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	dbPool, err := setupDatabase(ctx, cfg.Database)
	if err != nil {
		log.Error("Failed to setup database", "error", err)
		return err
	}
	defer dbPool.Close()

	if err := postgres.Migrate(ctx, dbPool); err != nil {
		log.Error("Failed to apply migrations", "error", err)
		return err
	}

	redisClient := setupRedis(ctx, cfg.Redis, log)
	defer redisClient.Close()

	cache := redisRepo.NewListCache(redisClient)
	fetcher := metadata.NewFetcher(metadata.Config{
		Timeout:           cfg.Metadata.Timeout,
		UserAgent:         cfg.Metadata.UserAgent,
		AllowPrivateHosts: cfg.Metadata.AllowPrivateHosts,
	})

	listService := service.NewListService(postgres.NewListRepository(dbPool), cache, cfg.Redis.ListTTL)
	urlService := service.NewURLService(postgres.NewURLRepository(dbPool), fetcher, cache, service.URLServiceConfig{
		Enrich:   cfg.Metadata.Enrich,
		CacheTTL: cfg.Metadata.CacheTTL,
	})

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Handlers{
		Lists:  handler.NewListHandler(listService),
		URLs:   handler.NewURLHandler(urlService),
		Public: handler.NewPublicHandler(listService, urlService),
		Health: handler.NewHealthHandler(version, handler.DatabaseProbe(dbPool), handler.RedisProbe(redisClient)),
	}, cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server listening", "address", srv.Addr, "base_url", cfg.Server.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	return gracefulShutdown(srv, cfg.Server.ShutdownTimeout, serverErr, dbPool, redisClient, log)
}

func gracefulShutdown(srv *http.Server, timeout time.Duration, serverErr <-chan error, dbPool *pgxpool.Pool, redisClient *redis.Client, log *slog.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		log.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		log.Error("Server failed", "error", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}

	dbPool.Close()
	log.Info("Database connection closed")

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis", "error", err)
	}

	log.Info("Graceful shutdown completed")
	return nil
}
