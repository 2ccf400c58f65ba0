// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP statuses with detail bodies

package handlers

import (
	"encoding/json"
	"net/http"

	"newssniff-api/api/dto/responses"
	"newssniff-api/core/errors"
)

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail writes an error body of the form {"detail": ...}
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, responses.ErrorResponse{Detail: detail})
}

// writeError maps a domain error to an HTTP status and detail body
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsValidation(err):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.IsNotFound(err):
		writeDetail(w, http.StatusNotFound, err.Error())
	case errors.IsExternalAPI(err):
		writeDetail(w, http.StatusBadGateway, err.Error())
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
