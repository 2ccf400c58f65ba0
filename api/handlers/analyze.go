// ABOUTME: HTTP handler for the analysis endpoint
// ABOUTME: Decodes analyze requests, runs the service, and writes results

package handlers

import (
	"encoding/json"
	"net/http"

	"newssniff-api/api/dto/mappers"
	"newssniff-api/api/dto/requests"
	"newssniff-api/core/interfaces"
)

// AnalyzeHandler handles POST /api/analyze
type AnalyzeHandler struct {
	service interfaces.AnalysisService
	logger  interfaces.Logger
}

// NewAnalyzeHandler creates an analyze handler
func NewAnalyzeHandler(service interfaces.AnalysisService, logger interfaces.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		logger:  logger,
	}
}

// ServeHTTP implements http.Handler
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req requests.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Analyze(r.Context(), req.URLOrText)
	if err != nil {
		h.logger.Error("Analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToAnalyzeResponse(result))
}
