package store

import (
	"context"
	"testing"
	"time"

	"github.com/Matoxx01/mikes-backend/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newInternalTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return New(db, time.Minute)
}

func TestNestedTransactRejected(t *testing.T) {
	s := newInternalTestStore(t)

	err := s.transact(context.Background(), "outer", func(ctx context.Context, tx *gorm.DB) error {
		// A workflow must not open a second scope on the same chain
		return s.transact(ctx, "inner", func(ctx context.Context, tx *gorm.DB) error {
			return nil
		})
	})

	require.ErrorIs(t, err, ErrTransactionOpen)

	var txErr *TxError
	require.ErrorAs(t, err, &txErr)
	require.Equal(t, "outer", txErr.Workflow)
}

func TestTransactSurfacesTimeout(t *testing.T) {
	s := newInternalTestStore(t)

	// A context that is already past its deadline makes the scope abort
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	err := s.transact(ctx, "expired", func(ctx context.Context, tx *gorm.DB) error {
		return ctx.Err()
	})

	require.ErrorIs(t, err, ErrTimeout)
}

func TestFailMapsDeadlineToTimeout(t *testing.T) {
	err := fail("select something", context.DeadlineExceeded)
	require.ErrorIs(t, err, ErrTimeout)

	var qErr *QueryError
	require.ErrorAs(t, err, &qErr)
	require.Equal(t, "select something", qErr.Op)
}
