// Package storage implements analysis-history persistence on SQLite.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/haesol/sajukit/internal/common"
	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/model"
	"github.com/haesol/sajukit/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements service.Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (and creates if needed) the history database.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath is required")
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveAnalysis stores a record and returns its assigned ID.
func (s *SQLiteStore) SaveAnalysis(ctx context.Context, record service.AnalysisRecord) (int64, error) {
	pillarsJSON, err := json.Marshal(record.Pillars)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal pillars: %w", err)
	}
	configJSON, err := json.Marshal(record.Config)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config: %w", err)
	}
	analysisJSON, err := json.Marshal(record.Analysis)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (label, pillars, config, analysis, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		record.Label, string(pillarsJSON), string(configJSON), string(analysisJSON), createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return id, nil
}

// GetAnalysis returns a stored record, or common.ErrNotFound.
func (s *SQLiteStore) GetAnalysis(ctx context.Context, id int64) (*service.AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, label, pillars, config, analysis, created_at
		 FROM analyses WHERE id = ?`, id)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("analysis %d: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return record, nil
}

// ListAnalyses returns the most recent records, newest first.
func (s *SQLiteStore) ListAnalyses(ctx context.Context, limit int) ([]service.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, pillars, config, analysis, created_at
		 FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []service.AnalysisRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return records, nil
}

// DeleteAnalysis removes a stored record.
func (s *SQLiteStore) DeleteAnalysis(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("analysis %d: %w", id, common.ErrNotFound)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRecord(row scannable) (*service.AnalysisRecord, error) {
	var record service.AnalysisRecord
	var pillarsJSON, configJSON, analysisJSON string

	if err := row.Scan(&record.ID, &record.Label, &pillarsJSON, &configJSON, &analysisJSON, &record.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(pillarsJSON), &record.Pillars); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pillars: %w", err)
	}
	record.Config = config.Config{}
	if err := json.Unmarshal([]byte(configJSON), &record.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	record.Analysis = &model.Analysis{}
	if err := json.Unmarshal([]byte(analysisJSON), record.Analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &record, nil
}

var _ service.Store = (*SQLiteStore)(nil)
