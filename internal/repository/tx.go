package repository

import (
	"context"
	"database/sql"
)

// TxRunner scopes a function to a single database transaction.  The rental
// and return flows are the only operations that require true atomicity (two
// rows must change together or not at all); they depend on this interface
// rather than on *sql.DB directly so the transaction managers can be tested
// against in-memory stores.
type TxRunner interface {
	// WithinTx begins a transaction, runs fn, and commits when fn returns
	// nil.  Any error from fn (or from commit) rolls the transaction back
	// and is returned to the caller, so a failed transaction is never
	// partially applied.
	WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// SQLTxRunner is the production TxRunner backed by a *sql.DB.
type SQLTxRunner struct{ DB *sql.DB }

// NewSQLTxRunner returns a TxRunner bound to the given database.
func NewSQLTxRunner(db *sql.DB) *SQLTxRunner { return &SQLTxRunner{DB: db} }

// WithinTx implements TxRunner with the begin / defer-rollback / commit
// pattern.  The rollback in the deferred func is a no-op once the
// transaction has committed.
func (r *SQLTxRunner) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
