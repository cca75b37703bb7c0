package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"ssrfind/pkg/api"
)

// ErrNotFound is returned for a run id the store does not hold.
var ErrNotFound = errors.New("analysis not found")

// Store is a handle on the analysis database. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects with driver "sqlite" or "postgres", pings, and creates the
// schema.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// single connection: SQLite allows one writer at a time
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", driver, err)
	}
	s := &Store{db: db, driver: driver}
	if err := s.CreateSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// NewRunID returns a fresh analysis id (UUIDv4).
func NewRunID() string { return uuid.NewString() }

// Stamp fills in RunID and CreatedAt when they are empty.
func Stamp(a *api.AnalysisV1, now time.Time) {
	if a.RunID == "" {
		a.RunID = NewRunID()
	}
	if a.CreatedAt == "" {
		a.CreatedAt = now.UTC().Format(time.RFC3339)
	}
}

// rebind turns ? placeholders into $n for postgres.
func (s *Store) rebind(q string) string {
	if s.driver != "postgres" {
		return q
	}
	var b strings.Builder
	n := 0
	for i := 0; i < len(q); i++ {
		if q[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(q[i])
	}
	return b.String()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Save writes a and all its findings in one transaction. RunID and
// CreatedAt must be set (see Stamp).
func (s *Store) Save(ctx context.Context, a api.AnalysisV1) error {
	if a.RunID == "" || a.CreatedAt == "" {
		return errors.New("store: save: run id and created_at are required")
	}
	counts, err := json.Marshal(a.Statistics.TypeCounts)
	if err != nil {
		return fmt.Errorf("store: encode type counts: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	c, st := a.Constraints, a.Statistics
	_, err = tx.ExecContext(ctx, s.rebind(`
		INSERT INTO analysis (id, created_at, is_fasta, sequence_count, sequence_length,
			total_findings, density, type_counts, min_repeat_length, max_repeat_length,
			min_repeat_count, min_tandem_length, mismatch_percentage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		a.RunID, a.CreatedAt, boolInt(a.IsFasta), a.SequenceCount, st.SequenceLength,
		st.TotalFindings, st.Density, string(counts), c.MinRepeatLength, c.MaxRepeatLength,
		c.MinRepeatCount, c.MinTandemLength, c.MismatchPercentage,
	)
	if err != nil {
		return fmt.Errorf("store: insert analysis %s: %w", a.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.rebind(`
		INSERT INTO finding (analysis_id, ordinal, id, sequence_id, type, motif,
			start_pos, end_pos, run_length, repeat_count, mismatch_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("store: prepare finding insert: %w", err)
	}
	defer stmt.Close()
	for i, f := range a.Findings {
		if _, err := stmt.ExecContext(ctx, a.RunID, i, f.ID, f.SequenceID, f.Type, f.Motif,
			f.Start, f.End, f.Length, f.RepeatCount, f.MismatchCount); err != nil {
			return fmt.Errorf("store: insert finding %s: %w", f.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit %s: %w", a.RunID, err)
	}
	return nil
}

// Get loads one analysis with its findings in stored order.
func (s *Store) Get(ctx context.Context, runID string) (api.AnalysisV1, error) {
	var (
		a       api.AnalysisV1
		isFasta int
		counts  string
	)
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, created_at, is_fasta, sequence_count, sequence_length, total_findings,
			density, type_counts, min_repeat_length, max_repeat_length, min_repeat_count,
			min_tandem_length, mismatch_percentage
		FROM analysis WHERE id = ?`), runID,
	).Scan(
		&a.RunID, &a.CreatedAt, &isFasta, &a.SequenceCount, &a.Statistics.SequenceLength,
		&a.Statistics.TotalFindings, &a.Statistics.Density, &counts,
		&a.Constraints.MinRepeatLength, &a.Constraints.MaxRepeatLength, &a.Constraints.MinRepeatCount,
		&a.Constraints.MinTandemLength, &a.Constraints.MismatchPercentage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return api.AnalysisV1{}, fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	if err != nil {
		return api.AnalysisV1{}, fmt.Errorf("store: get %s: %w", runID, err)
	}
	a.IsFasta = isFasta != 0
	if err := json.Unmarshal([]byte(counts), &a.Statistics.TypeCounts); err != nil {
		return api.AnalysisV1{}, fmt.Errorf("store: decode type counts of %s: %w", runID, err)
	}
	if a.Statistics.TypeCounts == nil {
		a.Statistics.TypeCounts = map[string]int{}
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, sequence_id, type, motif, start_pos, end_pos, run_length, repeat_count, mismatch_count
		FROM finding WHERE analysis_id = ? ORDER BY ordinal`), runID)
	if err != nil {
		return api.AnalysisV1{}, fmt.Errorf("store: findings of %s: %w", runID, err)
	}
	defer rows.Close()
	a.Findings = []api.FindingV1{}
	for rows.Next() {
		var f api.FindingV1
		if err := rows.Scan(&f.ID, &f.SequenceID, &f.Type, &f.Motif, &f.Start, &f.End,
			&f.Length, &f.RepeatCount, &f.MismatchCount); err != nil {
			return api.AnalysisV1{}, fmt.Errorf("store: scan finding: %w", err)
		}
		a.Findings = append(a.Findings, f)
	}
	if err := rows.Err(); err != nil {
		return api.AnalysisV1{}, fmt.Errorf("store: findings of %s: %w", runID, err)
	}
	return a, nil
}

// List returns up to limit summaries, newest first. limit <= 0 means 50.
func (s *Store) List(ctx context.Context, limit int) ([]api.AnalysisSummaryV1, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, created_at, sequence_count, sequence_length, total_findings, density
		FROM analysis ORDER BY created_at DESC, id LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()
	out := []api.AnalysisSummaryV1{}
	for rows.Next() {
		var r api.AnalysisSummaryV1
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.SequenceCount, &r.SequenceLength,
			&r.TotalFindings, &r.Density); err != nil {
			return nil, fmt.Errorf("store: scan summary: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Delete removes a run and its findings.
func (s *Store) Delete(ctx context.Context, runID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	// SQLite does not enforce ON DELETE CASCADE unless foreign keys are on.
	if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM finding WHERE analysis_id = ?`), runID); err != nil {
		return fmt.Errorf("store: delete findings of %s: %w", runID, err)
	}
	res, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM analysis WHERE id = ?`), runID)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", runID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", runID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	return tx.Commit()
}
