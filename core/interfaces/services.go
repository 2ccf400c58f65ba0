// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"newssniff-api/core/domain"
)

// AnalysisService runs a credibility analysis over a URL or text snippet
type AnalysisService interface {
	Analyze(ctx context.Context, urlOrText string) (*domain.AnalysisResult, error)
}

// ContentExtractor recovers article content from a URL or raw text input
type ContentExtractor interface {
	Extract(ctx context.Context, urlOrText string) *domain.ExtractedContent
}

// SearchProvider finds related coverage for a query
type SearchProvider interface {
	// Search returns up to limit results for the query.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)

	// Name identifies the provider in logs and diagnostics.
	Name() string
}
