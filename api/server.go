// ABOUTME: HTTP server assembly for the analysis API
// ABOUTME: Wires routes, CORS, rate limiting, and request logging

package api

import (
	"net/http"
	"time"

	"newssniff-api/api/handlers"
	"newssniff-api/api/middleware"
	"newssniff-api/core/interfaces"

	"github.com/rs/cors"
)

// Config holds configuration for the API server
type Config struct {
	Logger     interfaces.Logger
	Analysis   interfaces.AnalysisService
	Storage    interfaces.AnalysisStorage
	RateLimit  int
	RateWindow time.Duration
}

// NewHandler builds the fully wired HTTP handler for the API
func NewHandler(cfg Config) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /api/analyze", handlers.NewAnalyzeHandler(cfg.Analysis, cfg.Logger))
	mux.Handle("GET /api/health", handlers.NewHealthHandler())
	mux.Handle("GET /api/history", handlers.NewHistoryHandler(cfg.Storage, cfg.Logger))

	var handler http.Handler = mux

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		handler = middleware.RateLimitMiddleware(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	// CORS wraps everything so preflight requests short-circuit
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	return c.Handler(handler)
}
