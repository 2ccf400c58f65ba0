// ABOUTME: SQLite-based storage for analysis history
// ABOUTME: Persists completed analyses so they survive application restarts

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"newssniff-api/core/domain"
)

// Store implements the AnalysisStorage interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore creates a new SQLite analysis store
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "analyses.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the analyses table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			result BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_created_at ON analyses(created_at);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save persists a completed analysis
func (s *Store) Save(ctx context.Context, record *domain.AnalysisRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if record.Input == "" {
		return errors.New("record input cannot be empty")
	}

	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := "INSERT INTO analyses (input, result, created_at) VALUES (?, ?, ?)"
	res, err := s.db.ExecContext(ctx, query, record.Input, resultJSON, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		record.ID = id
	}

	return nil
}

// Recent retrieves the most recent analyses, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	if limit < 1 {
		return nil, errors.New("limit must be at least 1")
	}

	query := "SELECT id, input, result, created_at FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var records []domain.AnalysisRecord
	for rows.Next() {
		var rec domain.AnalysisRecord
		var resultJSON []byte
		var createdAt int64

		if err := rows.Scan(&rec.ID, &rec.Input, &resultJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}

		if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored result: %w", err)
		}

		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
