// Package service defines the interfaces between the analysis pipeline and
// its collaborators.
package service

import (
	"context"
	"time"

	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/model"
)

// AnalysisRecord is one stored analysis run: the chart, the effective
// configuration, and the assembled result.
type AnalysisRecord struct {
	CreatedAt time.Time       `json:"created_at"`
	Label     string          `json:"label"`
	Pillars   model.PillarSet `json:"pillars"`
	Config    config.Config   `json:"config"`
	Analysis  *model.Analysis `json:"analysis"`
	ID        int64           `json:"id"`
}

// Store persists analysis history.
type Store interface {
	// Migrate brings the schema to the expected version.
	Migrate(ctx context.Context) error
	// SaveAnalysis stores a record and returns its assigned ID.
	SaveAnalysis(ctx context.Context, record AnalysisRecord) (int64, error)
	// GetAnalysis returns a stored record, or common.ErrNotFound.
	GetAnalysis(ctx context.Context, id int64) (*AnalysisRecord, error)
	// ListAnalyses returns the most recent records, newest first.
	ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error)
	// DeleteAnalysis removes a stored record.
	DeleteAnalysis(ctx context.Context, id int64) error
	// Close releases the underlying resources.
	Close() error
}
