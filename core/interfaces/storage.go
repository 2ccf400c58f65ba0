// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"newssniff-api/core/domain"
)

// AnalysisStorage defines the interface for analysis history persistence
type AnalysisStorage interface {
	// Save persists a completed analysis
	Save(ctx context.Context, record *domain.AnalysisRecord) error

	// Recent retrieves the most recent analyses, newest first
	Recent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)

	// Close releases the underlying storage resources
	Close() error
}
