// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports service liveness as a JSON body

package handlers

import (
	"net/http"
	"time"

	"newssniff-api/api/dto/responses"
)

// HealthHandler handles GET /api/health
type HealthHandler struct{}

// NewHealthHandler creates a health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP implements http.Handler
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
