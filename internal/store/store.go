// Package store implements the data-integrity core of the backend: the
// transaction scope, the cascading deletion workflows that maintain the
// client → nomina → user → product hierarchy without foreign-key cascades,
// the bulk ingestion pipeline, and the aggregation queries.
package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Store runs every database workflow on an explicitly provided, pooled GORM
// handle. Each transaction scope checks one connection out of the pool for
// its duration, so independent scopes can run concurrently.
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// New constructs a Store. A zero timeout disables statement timeouts.
func New(db *gorm.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

type txMarkerKey struct{}

// transact runs fn inside one transaction: all statements commit together or
// none do. The context passed to fn is marked so a nested transact call on
// the same chain fails with ErrTransactionOpen instead of silently opening a
// second scope. Statements inside the scope never commit individually; only
// the surrounding transaction does.
func (s *Store) transact(ctx context.Context, workflow string, fn func(ctx context.Context, tx *gorm.DB) error) error {
	if ctx.Value(txMarkerKey{}) != nil {
		return ErrTransactionOpen
	}
	ctx = context.WithValue(ctx, txMarkerKey{}, workflow)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
	if err == nil {
		return nil
	}
	if isTimeout(err) {
		return &TxError{Workflow: workflow, Err: ErrTimeout}
	}
	return &TxError{Workflow: workflow, Err: err}
}

// withTimeout derives the deadline context for a statement or scope
func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// fail wraps a single-statement error, mapping deadline expiry to ErrTimeout
func fail(op string, err error) error {
	if isTimeout(err) {
		return &QueryError{Op: op, Err: ErrTimeout}
	}
	return &QueryError{Op: op, Err: err}
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
