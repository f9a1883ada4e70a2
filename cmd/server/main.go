package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/fitsmart/internal/api"
	"github.com/Rrens/fitsmart/internal/config"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/logging"
	"github.com/Rrens/fitsmart/internal/metrics"
	"github.com/Rrens/fitsmart/internal/repository/memory"
	"github.com/Rrens/fitsmart/internal/repository/redis"
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	envLoaded := ""
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			envLoaded = p
			break
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.Logging, os.Getenv("ENV")); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if envLoaded != "" {
		log.Info().Str("path", envLoaded).Msg("Loaded .env")
	} else {
		log.Warn().Msg(".env file not found in any standard location")
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Tracker.Store).
		Msg("Starting FitSmart API server")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("fitsmart", "analyzer", registry)

	deps := api.Deps{
		Metrics:  metricsManager,
		Gatherer: registry,
	}

	// Initialize tracker store
	var store domain.KeyValueStore
	switch cfg.Tracker.Store {
	case "redis":
		redisClient, err := redis.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()

		store = redis.NewStore(redisClient, cfg.Tracker.TTL)
		deps.Ready = redisClient
	case "memory", "":
		store = memory.NewStore()
	default:
		log.Fatal().Str("store", cfg.Tracker.Store).Msg("Unknown tracker store")
	}
	deps.Store = store

	// Initialize router
	router := api.NewRouter(cfg, deps)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
