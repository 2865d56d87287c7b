// Package store persists enrichment records in the relational store. The
// table is append-only from the pipeline's point of view: the processor
// inserts rows, the reporting surface reads them, nothing updates them.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"example.com/audioinsights/internal/types"
)

// PersistenceError wraps any store connectivity or write failure. These are
// transient from the pipeline's point of view; retry is the invoking
// framework's responsibility.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS transcriptions (
		id SERIAL PRIMARY KEY,
		audio_file_name VARCHAR(255),
		file_type VARCHAR(50),
		transcription_text TEXT,
		transcription_sentiment_score REAL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

// EnrichmentStore wraps a sql.DB handle for the transcriptions table.
type EnrichmentStore struct {
	db *sql.DB
}

// Open connects to the store. The caller owns the handle and must Close it
// on both success and failure paths.
func Open(dsn string) (*EnrichmentStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	return &EnrichmentStore{db: db}, nil
}

// NewWithDB wraps an existing handle. Used by tests and by callers that
// manage the connection themselves.
func NewWithDB(db *sql.DB) *EnrichmentStore {
	return &EnrichmentStore{db: db}
}

func (s *EnrichmentStore) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the transcriptions table if it does not exist yet.
// Safe to call before every write.
func (s *EnrichmentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return &PersistenceError{Op: "ensure schema", Err: err}
	}
	return nil
}

// Insert appends one enrichment record. The store assigns id and
// created_at.
func (s *EnrichmentStore) Insert(ctx context.Context, rec types.EnrichmentRecord) error {
	const insertSQL = `
		INSERT INTO transcriptions (audio_file_name, file_type, transcription_text, transcription_sentiment_score)
		VALUES ($1, $2, $3, $4)`
	_, err := s.db.ExecContext(ctx, insertSQL,
		rec.AudioFileName, rec.FileType, rec.Text, rec.SentimentScore)
	if err != nil {
		return &PersistenceError{Op: "insert", Err: err}
	}
	return nil
}

// ListAll returns every enrichment record in insertion-time order. An empty
// table yields an empty slice, not an error. NULL transcript text scans to
// the empty string so derived statistics treat it as length zero.
func (s *EnrichmentStore) ListAll(ctx context.Context) ([]types.EnrichmentRecord, error) {
	const listSQL = `
		SELECT id, audio_file_name, file_type, transcription_text, transcription_sentiment_score, created_at
		FROM transcriptions
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, listSQL)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	defer rows.Close()

	records := []types.EnrichmentRecord{}
	for rows.Next() {
		var rec types.EnrichmentRecord
		var text sql.NullString
		if err := rows.Scan(&rec.ID, &rec.AudioFileName, &rec.FileType, &text, &rec.SentimentScore, &rec.CreatedAt); err != nil {
			return nil, &PersistenceError{Op: "scan", Err: err}
		}
		if text.Valid {
			rec.Text = text.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return records, nil
}
