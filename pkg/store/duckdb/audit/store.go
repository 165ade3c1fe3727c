package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ad-tools/ad-pulse/pkg/models/store"
	"github.com/ad-tools/ad-pulse/pkg/store/duckdb"
)

// Store persists audit runs so the dashboard can chart score trends.
type Store interface {
	Add(ctx context.Context, run store.AuditRun) error
	History(ctx context.Context, account string, limit int) ([]store.AuditRun, error)
}

type auditStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &auditStore{db: db}, nil
}

func (s *auditStore) Add(ctx context.Context, run store.AuditRun) error {
	scores, err := json.Marshal(run.DimensionScores)
	if err != nil {
		return fmt.Errorf("marshal dimension scores: %w", err)
	}

	query := `
		INSERT INTO audit_runs (
			id, account, overall_score, grade, total_issues, dimension_scores, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	tx := duckdb.GetTransaction(ctx)
	if tx == nil {
		_, err = s.db.ExecContext(ctx, query,
			run.ID, run.Account, run.OverallScore, run.Grade, run.TotalIssues, string(scores), run.CreatedAt)
	} else {
		_, err = tx.ExecContext(ctx, query,
			run.ID, run.Account, run.OverallScore, run.Grade, run.TotalIssues, string(scores), run.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("insert audit run: %w", err)
	}
	return nil
}

func (s *auditStore) History(ctx context.Context, account string, limit int) ([]store.AuditRun, error) {
	query := `
		SELECT id, account, overall_score, grade, total_issues, dimension_scores, created_at
		FROM audit_runs
		WHERE account = ?
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, account, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit history: %w", err)
	}
	defer rows.Close()

	var runs []store.AuditRun
	for rows.Next() {
		var run store.AuditRun
		var scores string
		err = rows.Scan(&run.ID, &run.Account, &run.OverallScore, &run.Grade,
			&run.TotalIssues, &scores, &run.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan audit run: %w", err)
		}
		if scores != "" {
			if err := json.Unmarshal([]byte(scores), &run.DimensionScores); err != nil {
				return nil, fmt.Errorf("unmarshal dimension scores: %w", err)
			}
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
