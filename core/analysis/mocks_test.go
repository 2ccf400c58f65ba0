package analysis

import (
	"context"
	"errors"
	"time"

	"newssniff-api/core/domain"
)

var errKeyNotFound = errors.New("key not found")

// mockExtractor is a mock implementation of the ContentExtractor interface
type mockExtractor struct {
	extractFunc func(ctx context.Context, urlOrText string) *domain.ExtractedContent
}

func (m *mockExtractor) Extract(ctx context.Context, urlOrText string) *domain.ExtractedContent {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, urlOrText)
	}
	return &domain.ExtractedContent{Method: domain.ExtractMethodFailed}
}

// mockSearchProvider is a mock implementation of the SearchProvider interface
type mockSearchProvider struct {
	searchFunc func(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}

func (m *mockSearchProvider) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockSearchProvider) Name() string {
	return "mock"
}

// mockStorage records saved analyses
type mockStorage struct {
	saved   []*domain.AnalysisRecord
	saveErr error
}

func (m *mockStorage) Save(ctx context.Context, record *domain.AnalysisRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, record)
	return nil
}

func (m *mockStorage) Recent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	return nil, nil
}

func (m *mockStorage) Close() error {
	return nil
}

// mockCache is a simple map-backed cache
type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, errKeyNotFound
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
