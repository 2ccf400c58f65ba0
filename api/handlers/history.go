// ABOUTME: HTTP handler for the analysis history endpoint
// ABOUTME: Serves recently stored analyses from persistent storage

package handlers

import (
	"net/http"
	"strconv"

	"newssniff-api/api/dto/mappers"
	"newssniff-api/core/interfaces"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryHandler handles GET /api/history
type HistoryHandler struct {
	storage interfaces.AnalysisStorage
	logger  interfaces.Logger
}

// NewHistoryHandler creates a history handler
func NewHistoryHandler(storage interfaces.AnalysisStorage, logger interfaces.Logger) *HistoryHandler {
	return &HistoryHandler{
		storage: storage,
		logger:  logger,
	}
}

// ServeHTTP implements http.Handler
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeDetail(w, http.StatusNotFound, "History is not enabled")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeDetail(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.storage.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to read analysis history", map[string]interface{}{
			"error": err.Error(),
		})
		writeDetail(w, http.StatusInternalServerError, "Failed to read history")
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToHistoryResponse(records))
}
