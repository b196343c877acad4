package persistence

import (
	"context"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

// TableRepository defines essential methods to interact with table records
type TableRepository interface {
	// Create persists a new table
	//
	// Possible errors:
	// - ErrDuplicateTable: If a table with the same number or QR token exists (active or not)
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, table *entity.Table) error

	// GetByID retrieves a table by ID, including inactive ones.
	// Callers that must not see inactive tables check Active themselves.
	//
	// Possible errors:
	// - ErrTableNotFound: If no table with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Table, error)

	// GetByToken retrieves an active table by its normalized QR token
	//
	// Possible errors:
	// - ErrTableNotFound: If no active table matches the token
	// - ErrDatabaseConnection: If database connection fails
	GetByToken(ctx context.Context, token string) (*entity.Table, error)

	// Update persists metadata changes (name, active flag). Balance is never
	// written through Update; ApplyDelta is the only balance mutation path.
	//
	// Possible errors:
	// - ErrTableNotFound: If the table doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, table *entity.Table) error

	// ApplyDelta atomically adds delta to the table's balance under an exclusive
	// row lock and returns the updated table plus the pre-update balance.
	// Must run inside a unit of work so the ledger append shares the same
	// database transaction. Inactive tables are accepted; callers that must
	// not touch them enforce the active flag before applying.
	//
	// Possible errors:
	// - ErrTableNotFound: If the table doesn't exist
	// - ErrInsufficientPoints: If the resulting balance would be negative
	// - ErrTableLocked: If the row lock cannot be acquired
	// - ErrDatabaseConnection: If database connection fails
	ApplyDelta(ctx context.Context, tableID uint64, delta int64) (*entity.Table, int64, error)

	// List returns all tables ordered by number ascending. Inactive tables
	// are included only when includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]*entity.Table, error)

	// Leaderboard returns up to limit active tables ordered by balance
	// descending, LastBalanceChangeAt ascending
	Leaderboard(ctx context.Context, limit int) ([]*entity.Table, error)

	// RankOf returns the 1-based leaderboard position of the given table
	RankOf(ctx context.Context, table *entity.Table) (int, error)
}
