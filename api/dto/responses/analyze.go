// ABOUTME: Response DTOs for analysis endpoints
// ABOUTME: Defines the wire format returned to API clients

package responses

import "time"

// AnalyzeResponse is the body for a successful POST /api/analyze
type AnalyzeResponse struct {
	SuspicionScore  int                     `json:"suspicion_score"`
	ContentSummary  string                  `json:"content_summary"`
	Factors         []string                `json:"factors"`
	SourcesChecked  []string                `json:"sources_checked"`
	AnalysisDetails AnalysisDetailsResponse `json:"analysis_details"`
}

// AnalysisDetailsResponse carries supplementary signals behind the score
type AnalysisDetailsResponse struct {
	OriginalDomain          string `json:"original_domain,omitempty"`
	ReliableConfirmations   int    `json:"reliable_confirmations"`
	TotalResults            int    `json:"total_results"`
	ContentLength           int    `json:"content_length"`
	SuspiciousPatternsFound int    `json:"suspicious_patterns_found"`
	ExtractionMethod        string `json:"extraction_method,omitempty"`
}

// ErrorResponse is the body for any error status
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body for GET /api/health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryItem is a single stored analysis in GET /api/history
type HistoryItem struct {
	ID        int64           `json:"id"`
	Input     string          `json:"input"`
	Result    AnalyzeResponse `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// HistoryResponse is the body for GET /api/history
type HistoryResponse struct {
	Analyses []HistoryItem `json:"analyses"`
	Count    int           `json:"count"`
}
