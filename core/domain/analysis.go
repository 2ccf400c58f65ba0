// ABOUTME: Domain models for news credibility analysis
// ABOUTME: Defines the analysis result structure and score bucketing rules

package domain

import "time"

// ScoreBucket classifies a suspicion score into a display bucket
type ScoreBucket string

const (
	// BucketLow indicates low suspicion (score <= 30)
	BucketLow ScoreBucket = "low"

	// BucketModerate indicates moderate suspicion (31-60)
	BucketModerate ScoreBucket = "moderate"

	// BucketHigh indicates high suspicion (score > 60)
	BucketHigh ScoreBucket = "high"
)

// AnalysisResult represents the outcome of a credibility analysis
type AnalysisResult struct {
	// SuspicionScore is an integer in [0,100], higher means more suspicious
	SuspicionScore int `json:"suspicion_score"`

	// ContentSummary is a human-readable synopsis of the analyzed content
	ContentSummary string `json:"content_summary"`

	// Factors are the discrete signals that contributed to the score, in order
	Factors []string `json:"factors"`

	// SourcesChecked are the URLs consulted while forming the verdict
	SourcesChecked []string `json:"sources_checked"`

	// Details carries diagnostic metadata about how the analysis ran
	Details AnalysisDetails `json:"analysis_details"`
}

// AnalysisDetails holds diagnostic metadata for an analysis run
type AnalysisDetails struct {
	OriginalDomain        string `json:"original_domain,omitempty"`
	ReliableConfirmations int    `json:"reliable_confirmations"`
	TotalResults          int    `json:"total_results"`
	ContentLength         int    `json:"content_length"`
	SuspiciousPatterns    int    `json:"suspicious_patterns_found"`
	ExtractionMethod      string `json:"extraction_method"`
}

// AnalysisRecord is a persisted analysis with its input and timestamp
type AnalysisRecord struct {
	ID        int64          `json:"id"`
	Input     string         `json:"input"`
	Result    AnalysisResult `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}

// ClampScore forces a score into the valid [0,100] range
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Bucket returns the display bucket for a score.
// Out-of-range scores are clamped to the nearest bucket.
func Bucket(score int) ScoreBucket {
	score = ClampScore(score)
	switch {
	case score <= 30:
		return BucketLow
	case score <= 60:
		return BucketModerate
	default:
		return BucketHigh
	}
}
