package usecase

import (
	"context"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

// AwardRequest represents an incoming point award or redemption.
// The table is identified by QR token or by internal ID; QRToken wins when both are set.
type AwardRequest struct {
	QRToken string
	TableID uint64
	ActorID uint64
	Points  int64
	Kind    entity.EntryKind
	Note    string
}

// AwardResult carries the updated table and the ledger entry created for it
type AwardResult struct {
	Table *entity.Table
	Entry *entity.LedgerEntry
}

// PointsUseCase defines methods for the point-award protocol and ledger queries
type PointsUseCase interface {
	// Award resolves the table, validates the request against the configured
	// bounds and applies balance mutation plus ledger append as one atomic unit
	Award(ctx context.Context, req AwardRequest) (*AwardResult, error)

	// Reset brings a table's balance to zero with a single ADJUSTMENT entry
	Reset(ctx context.Context, tableID, actorID uint64, reason string) (*AwardResult, error)

	// HistoryForTable returns the table's ledger entries, newest first
	HistoryForTable(ctx context.Context, tableID uint64, limit int) ([]*entity.LedgerEntry, error)

	// Transactions returns the most recent entries across all tables, newest first
	Transactions(ctx context.Context, limit int) ([]*entity.LedgerEntry, error)

	// ActivityForActor returns the entries created by an actor, newest first
	ActivityForActor(ctx context.Context, actorID uint64, limit int) ([]*entity.LedgerEntry, error)

	// DailyStats aggregates entries per kind for one calendar day (configured timezone)
	DailyStats(ctx context.Context, date string) (*entity.DailyStats, error)
}
