package status

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ad-tools/ad-pulse/pkg/models/store"
	"github.com/ad-tools/ad-pulse/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStore_RoundTrip(t *testing.T) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("unknown creative has no status", func(t *testing.T) {
		cs, err := s.Get(ctx, "acme", "cr-404")
		require.NoError(t, err)
		assert.Nil(t, cs)
	})

	t.Run("upsert then get", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		require.NoError(t, s.Upsert(ctx, store.CreativeStatus{
			Account: "acme", CreativeID: "cr-1", Status: "warning", Score: 55, UpdatedAt: at,
		}))

		cs, err := s.Get(ctx, "acme", "cr-1")
		require.NoError(t, err)
		require.NotNil(t, cs)
		assert.Equal(t, "warning", cs.Status)
		assert.Equal(t, 55, cs.Score)
	})

	t.Run("upsert replaces the previous status", func(t *testing.T) {
		at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		require.NoError(t, s.Upsert(ctx, store.CreativeStatus{
			Account: "acme", CreativeID: "cr-1", Status: "fatigued", Score: 78, UpdatedAt: at,
		}))

		cs, err := s.Get(ctx, "acme", "cr-1")
		require.NoError(t, err)
		require.NotNil(t, cs)
		assert.Equal(t, "fatigued", cs.Status)
		assert.Equal(t, 78, cs.Score)
	})
}

func TestStatusStore_QueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("get propagates query failures", func(t *testing.T) {
		mock.ExpectQuery("SELECT account, creative_id").WillReturnError(assert.AnError)

		_, err := s.Get(ctx, "acme", "cr-1")
		assert.Error(t, err)
	})

	t.Run("upsert propagates exec failures", func(t *testing.T) {
		mock.ExpectExec("INSERT OR REPLACE INTO creative_status").WillReturnError(assert.AnError)

		err := s.Upsert(ctx, store.CreativeStatus{Account: "acme", CreativeID: "cr-1"})
		assert.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
