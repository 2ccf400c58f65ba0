package handlers

import (
	"context"
	"errors"

	"newssniff-api/core/domain"
)

var errTestBoom = errors.New("boom")

// mockAnalysisService implements interfaces.AnalysisService
type mockAnalysisService struct {
	result    *domain.AnalysisResult
	err       error
	lastInput string
	calls     int
}

func (m *mockAnalysisService) Analyze(ctx context.Context, urlOrText string) (*domain.AnalysisResult, error) {
	m.calls++
	m.lastInput = urlOrText
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockStorage implements interfaces.AnalysisStorage
type mockStorage struct {
	records []domain.AnalysisRecord
	err     error
	lastN   int
}

func (m *mockStorage) Save(ctx context.Context, record *domain.AnalysisRecord) error {
	m.records = append(m.records, *record)
	return nil
}

func (m *mockStorage) Recent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	m.lastN = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *mockStorage) Close() error { return nil }

// nopLogger implements interfaces.Logger and discards everything
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
