// ABOUTME: Public types returned by the sniffclient library
// ABOUTME: Mirrors the analysis API wire format

package sniffclient

import "time"

// Result is a completed credibility analysis
type Result struct {
	SuspicionScore int             `json:"suspicion_score"`
	ContentSummary string          `json:"content_summary"`
	Factors        []string        `json:"factors"`
	SourcesChecked []string        `json:"sources_checked"`
	Details        AnalysisDetails `json:"analysis_details"`
}

// AnalysisDetails carries supplementary signals behind the score
type AnalysisDetails struct {
	OriginalDomain          string `json:"original_domain"`
	ReliableConfirmations   int    `json:"reliable_confirmations"`
	TotalResults            int    `json:"total_results"`
	ContentLength           int    `json:"content_length"`
	SuspiciousPatternsFound int    `json:"suspicious_patterns_found"`
	ExtractionMethod        string `json:"extraction_method"`
}

// Health is the service health report
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Healthy reports whether the service considers itself up
func (h *Health) Healthy() bool {
	return h.Status == "healthy"
}
