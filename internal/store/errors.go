package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPayload reports malformed or incomplete caller input.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrTransactionOpen reports an attempt to open a transaction scope
	// while one is already open on the same call chain. Nesting is not
	// supported.
	ErrTransactionOpen = errors.New("transaction already open")

	// ErrTimeout reports a statement or transaction aborted by the
	// configured statement timeout.
	ErrTimeout = errors.New("database operation timed out")

	// ErrUnknownName reports a login attempt with a name that does not
	// match any employee.
	ErrUnknownName = errors.New("unknown employee name")

	// ErrWrongPassword reports a login attempt with a bad password.
	ErrWrongPassword = errors.New("wrong password")
)

// QueryError reports a single failed statement, identified by operation name.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// TxError reports a multi-step workflow that has been rolled back. By the
// time a caller sees a TxError none of the workflow's changes remain.
type TxError struct {
	Workflow string
	Err      error
}

func (e *TxError) Error() string {
	return fmt.Sprintf("workflow %q rolled back: %v", e.Workflow, e.Err)
}

func (e *TxError) Unwrap() error {
	return e.Err
}

// ResolutionError reports a bulk-import identity recovery miss: an input rut
// that could not be mapped back to exactly one freshly inserted user row.
type ResolutionError struct {
	Rut string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve inserted user for rut %q", e.Rut)
}
