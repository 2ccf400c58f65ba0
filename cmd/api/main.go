// ABOUTME: Main entry point for the NewsSniff API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newssniff-api/api"
	"newssniff-api/core/analysis"
	"newssniff-api/core/crosscheck"
	"newssniff-api/core/extract"
	"newssniff-api/core/interfaces"
	"newssniff-api/infrastructure/cache/memory"
	"newssniff-api/infrastructure/cache/redis"
	stdhttp "newssniff-api/infrastructure/http/standard"
	"newssniff-api/infrastructure/logger/structured"
	"newssniff-api/infrastructure/storage/sqlite"
	"newssniff-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger()
	logger.Info("Starting NewsSniff API", map[string]interface{}{
		"port":            cfg.Server.Port,
		"cache_type":      cfg.Cache.Type,
		"search_provider": cfg.Analysis.SearchProvider,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create analysis history storage
	var storage interfaces.AnalysisStorage
	if cfg.Storage.SQLitePath != "" {
		store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
		if err != nil {
			logger.Error("Failed to open analysis storage, history disabled", map[string]interface{}{
				"error": err.Error(),
				"path":  cfg.Storage.SQLitePath,
			})
		} else {
			storage = store
			defer store.Close()
		}
	}

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the cross-check search provider
	var search interfaces.SearchProvider
	switch cfg.Analysis.SearchProvider {
	case "webscrape":
		search = crosscheck.NewWebScrapeProvider(logger)
	default:
		search = crosscheck.NewNewsRSSProvider(deps)
	}
	logger.Info("Using search provider", map[string]interface{}{
		"provider": search.Name(),
	})

	extractor := extract.NewService(deps)
	analysisService := analysis.NewService(deps, extractor, search, storage, analysis.Config{
		SearchResultLimit:    cfg.Analysis.SearchResultLimit,
		ExtraReliableDomains: cfg.Analysis.ExtraReliableDomains,
	})

	handler := api.NewHandler(api.Config{
		Logger:     logger,
		Analysis:   analysisService,
		Storage:    storage,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
