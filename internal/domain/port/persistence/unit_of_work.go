package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating the balance mutation and
// the ledger append as one database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTableRepository returns a table repository bound to the current transaction
	GetTableRepository(ctx context.Context) TableRepository

	// GetLedgerRepository returns a ledger repository bound to the current transaction
	GetLedgerRepository(ctx context.Context) LedgerRepository
}
