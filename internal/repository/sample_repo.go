package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"isolated_box/internal/models"
)

// SampleSQLite keeps consumed samples and the regulator decision for each.
type SampleSQLite struct {
	db *sql.DB
}

func NewSampleSQLite(db *sql.DB) *SampleSQLite { return &SampleSQLite{db: db} }

const (
	defaultRecentSamples = 50
	maxRecentSamples     = 1000

	insertSampleSQL = `
		INSERT INTO box_samples (id, observed_at, value, unit, source, temp_c, decision)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectRecentSamplesSQL = `
		SELECT id, observed_at, value, unit, source, temp_c, decision
		FROM box_samples ORDER BY observed_at DESC LIMIT ?
	`
)

// Append stores one sample.
func (r *SampleSQLite) Append(ctx context.Context, s models.StoredSample) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.ObservedAt.IsZero() {
		s.ObservedAt = time.Now().UTC()
	} else {
		s.ObservedAt = s.ObservedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertSampleSQL,
		s.ID,
		s.ObservedAt,
		s.Value,
		s.Unit,
		s.Source,
		s.TempC,
		s.Decision,
	)
	if err != nil {
		return fmt.Errorf("insert sample %s: %w", s.ID, err)
	}
	return nil
}

// Recent returns up to limit samples, newest first. Non-positive limits use
// the default page size.
func (r *SampleSQLite) Recent(ctx context.Context, limit int) ([]models.StoredSample, error) {
	if limit <= 0 {
		limit = defaultRecentSamples
	}
	if limit > maxRecentSamples {
		limit = maxRecentSamples
	}

	rows, err := r.db.QueryContext(ctx, selectRecentSamplesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select samples: %w", err)
	}
	defer rows.Close()

	out := make([]models.StoredSample, 0, limit)
	for rows.Next() {
		var s models.StoredSample
		var source sql.NullString
		if err := rows.Scan(&s.ID, &s.ObservedAt, &s.Value, &s.Unit, &source, &s.TempC, &s.Decision); err != nil {
			return nil, err
		}
		s.Source = source.String
		s.ObservedAt = s.ObservedAt.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
