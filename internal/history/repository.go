// Package history persists completed scans as a best-effort audit trail.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/electa-app/electa/internal/contracts"
)

// ScanRecord is one persisted scan with its ranked outcome and the policy
// hash that produced it.
type ScanRecord struct {
	ID          int64                   `json:"id"`
	ProjectName string                  `json:"project_name"`
	ProjectType string                  `json:"project_type"`
	FromDate    string                  `json:"from_date"`
	ToDate      string                  `json:"to_date"`
	PolicyHash  string                  `json:"policy_hash"`
	BestDate    string                  `json:"best_date"`
	BestScore   int                     `json:"best_score"`
	Results     []contracts.ScoreResult `json:"results"`
	CreatedAt   time.Time               `json:"created_at"`
}

// Repository handles scan persistence.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository instance.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the history table if it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS election_scans (
			id           BIGSERIAL PRIMARY KEY,
			project_name TEXT NOT NULL,
			project_type TEXT NOT NULL,
			from_date    DATE NOT NULL,
			to_date      DATE NOT NULL,
			policy_hash  TEXT NOT NULL,
			best_date    TEXT NOT NULL,
			best_score   INT NOT NULL,
			results      JSONB NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create election_scans: %w", err)
	}
	return nil
}

// SaveScan stores a completed scan. The best rated day, if any, is
// denormalized for cheap listing queries.
func (r *Repository) SaveScan(ctx context.Context, rec *ScanRecord) error {
	resultsJSON, err := json.Marshal(rec.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	query := `
		INSERT INTO election_scans (
			project_name, project_type, from_date, to_date,
			policy_hash, best_date, best_score, results, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		rec.ProjectName,
		rec.ProjectType,
		rec.FromDate,
		rec.ToDate,
		rec.PolicyHash,
		rec.BestDate,
		rec.BestScore,
		resultsJSON,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}

	return nil
}

// RecentScans lists the latest persisted scans, newest first.
func (r *Repository) RecentScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	query := `
		SELECT
			id, project_name, project_type,
			to_char(from_date, 'YYYY-MM-DD'),
			to_char(to_date, 'YYYY-MM-DD'),
			policy_hash, best_date, best_score, results, created_at
		FROM election_scans
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent scans: %w", err)
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var rec ScanRecord
		var resultsJSON []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.ProjectName,
			&rec.ProjectType,
			&rec.FromDate,
			&rec.ToDate,
			&rec.PolicyHash,
			&rec.BestDate,
			&rec.BestScore,
			&resultsJSON,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal(resultsJSON, &rec.Results); err != nil {
			return nil, fmt.Errorf("unmarshal results: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteOlderThan removes scans persisted before the cutoff and returns
// the deleted row count.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM election_scans WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old scans: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RecordFromResults builds a ScanRecord from a completed scan. The best
// day is the first rated entry (results arrive ranked).
func RecordFromResults(req string, projectType contracts.ProjectType, from, to string, policyHash string, results []contracts.ScoreResult) *ScanRecord {
	rec := &ScanRecord{
		ProjectName: req,
		ProjectType: string(projectType),
		FromDate:    from,
		ToDate:      to,
		PolicyHash:  policyHash,
		Results:     results,
	}
	for _, r := range results {
		if !r.Unratable {
			rec.BestDate = r.Date
			rec.BestScore = r.Score
			break
		}
	}
	return rec
}
