// ABOUTME: Request DTOs for analysis endpoints
// ABOUTME: Defines request structures with validation

package requests

import (
	"strings"

	"newssniff-api/core/errors"
)

// AnalyzeRequest is the body for POST /api/analyze
type AnalyzeRequest struct {
	URLOrText string `json:"url_or_text"`
}

// Validate checks the request for required fields
func (r *AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.URLOrText) == "" {
		return &errors.ValidationError{
			Field:   "url_or_text",
			Message: "url_or_text is required",
		}
	}
	return nil
}
