// ABOUTME: Pure rendering helpers for analysis results
// ABOUTME: Thermometer bucketing, factor lines, and source link building

package sniffclient

import (
	"net/url"

	"newssniff-api/core/domain"
)

// maxSourceLinks caps how many checked sources are rendered
const maxSourceLinks = 5

// Bucket classifies a suspicion score. Scores outside [0,100] are
// clamped before classification.
type Bucket string

const (
	// BucketLow covers scores up to 30
	BucketLow Bucket = "low"

	// BucketModerate covers scores 31 through 60
	BucketModerate Bucket = "moderate"

	// BucketHigh covers scores above 60
	BucketHigh Bucket = "high"
)

// ScoreBucket returns the display bucket for a score
func ScoreBucket(score int) Bucket {
	return Bucket(domain.Bucket(score))
}

// ThermometerState is the visual state of the score thermometer
type ThermometerState struct {
	// FillPercent is the fill height in [0,100]
	FillPercent int

	// ScoreHidden reports whether the numeric score is replaced by
	// a placeholder
	ScoreHidden bool

	// Bucket selects the severity styling
	Bucket Bucket
}

// Thermometer computes the widget state for a score. While animating,
// the fill is forced to zero and the score hidden so a stale value never
// shows during a new request.
func Thermometer(score int, animating bool) ThermometerState {
	clamped := domain.ClampScore(score)

	if animating {
		return ThermometerState{
			FillPercent: 0,
			ScoreHidden: true,
			Bucket:      ScoreBucket(clamped),
		}
	}

	return ThermometerState{
		FillPercent: clamped,
		ScoreHidden: false,
		Bucket:      ScoreBucket(clamped),
	}
}

// FactorLines returns the factors to render, in full and in order
func FactorLines(result *Result) []string {
	if result == nil || len(result.Factors) == 0 {
		return []string{}
	}
	lines := make([]string, len(result.Factors))
	copy(lines, result.Factors)
	return lines
}

// SourceLink is a rendered source entry
type SourceLink struct {
	// Label is the source hostname
	Label string

	// URL is the full source address
	URL string
}

// SourceLinks builds links for the first entries of sourcesChecked, in
// order. Malformed entries are skipped without failing the rest.
func SourceLinks(sourcesChecked []string) []SourceLink {
	limit := len(sourcesChecked)
	if limit > maxSourceLinks {
		limit = maxSourceLinks
	}

	links := make([]SourceLink, 0, limit)
	for _, raw := range sourcesChecked[:limit] {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Hostname() == "" {
			continue
		}
		links = append(links, SourceLink{
			Label: parsed.Hostname(),
			URL:   raw,
		})
	}

	return links
}
