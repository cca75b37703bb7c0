package store

import (
	"context"
	"fmt"
)

// Timestamps are RFC 3339 UTC text and booleans are 0/1 integers so the
// same statements run on both drivers.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS analysis (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    is_fasta INTEGER NOT NULL DEFAULT 0,
    sequence_count INTEGER NOT NULL,
    sequence_length INTEGER NOT NULL,
    total_findings INTEGER NOT NULL,
    density DOUBLE PRECISION NOT NULL,
    type_counts TEXT NOT NULL,
    min_repeat_length INTEGER NOT NULL,
    max_repeat_length INTEGER NOT NULL,
    min_repeat_count INTEGER NOT NULL,
    min_tandem_length INTEGER NOT NULL,
    mismatch_percentage INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_created_at ON analysis(created_at)`,
	`CREATE TABLE IF NOT EXISTS finding (
    analysis_id TEXT NOT NULL REFERENCES analysis(id) ON DELETE CASCADE,
    ordinal INTEGER NOT NULL,
    id TEXT NOT NULL,
    sequence_id TEXT NOT NULL,
    type TEXT NOT NULL,
    motif TEXT NOT NULL,
    start_pos INTEGER NOT NULL,
    end_pos INTEGER NOT NULL,
    run_length INTEGER NOT NULL,
    repeat_count INTEGER NOT NULL,
    mismatch_count INTEGER NOT NULL,
    PRIMARY KEY (analysis_id, ordinal)
)`,
}

// CreateSchema creates all tables needed by the store.
// Safe to call multiple times - uses IF NOT EXISTS.
func (s *Store) CreateSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
