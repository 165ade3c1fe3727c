package status

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ad-tools/ad-pulse/pkg/models/store"
)

// Store tracks the last known fatigue status per creative. The creative
// service compares it with freshly computed results to detect flips.
type Store interface {
	Get(ctx context.Context, account, creativeID string) (*store.CreativeStatus, error)
	Upsert(ctx context.Context, status store.CreativeStatus) error
}

type statusStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &statusStore{db: db}, nil
}

// Get returns nil without error when no status has been recorded yet.
func (s *statusStore) Get(ctx context.Context, account, creativeID string) (*store.CreativeStatus, error) {
	query := `
		SELECT account, creative_id, status, score, updated_at
		FROM creative_status
		WHERE account = ? AND creative_id = ?`

	var cs store.CreativeStatus
	err := s.db.QueryRowContext(ctx, query, account, creativeID).
		Scan(&cs.Account, &cs.CreativeID, &cs.Status, &cs.Score, &cs.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query creative status: %w", err)
	}
	return &cs, nil
}

func (s *statusStore) Upsert(ctx context.Context, status store.CreativeStatus) error {
	query := `
		INSERT OR REPLACE INTO creative_status (
			account, creative_id, status, score, updated_at
		) VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		status.Account, status.CreativeID, status.Status, status.Score, status.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert creative status: %w", err)
	}
	return nil
}
