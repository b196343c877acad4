package persistence

import (
	"context"
	"time"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

// LedgerRepository defines methods to interact with the append-only ledger.
// Entries are created exactly once and never updated or deleted.
type LedgerRepository interface {
	// Append saves a new ledger entry. The entry's balance snapshots must
	// already reflect the atomic apply it belongs to.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Append(ctx context.Context, entry *entity.LedgerEntry) error

	// HistoryForTable returns up to limit entries for the table, newest first.
	// Works for inactive tables too; history outlives deactivation.
	HistoryForTable(ctx context.Context, tableID uint64, limit int) ([]*entity.LedgerEntry, error)

	// ActivityForActor returns up to limit entries created by the actor, newest first
	ActivityForActor(ctx context.Context, actorID uint64, limit int) ([]*entity.LedgerEntry, error)

	// List returns up to limit entries across all tables, newest first
	List(ctx context.Context, limit int) ([]*entity.LedgerEntry, error)

	// AggregateByKind sums deltas and counts entries per kind in [from, to)
	AggregateByKind(ctx context.Context, from, to time.Time) (map[entity.EntryKind]entity.KindStats, error)
}
