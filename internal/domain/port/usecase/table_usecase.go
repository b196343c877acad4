package usecase

import (
	"context"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

// TableUseCase defines methods for table registry operations
type TableUseCase interface {
	// CreateTable registers a new table with a derived QR token and zero balance.
	// Fails with ErrDuplicateTable if the number or token is taken, active or not.
	CreateTable(ctx context.Context, number uint, name string) (*entity.Table, error)

	// ResolveByToken finds an active table by its QR token (case-insensitive)
	ResolveByToken(ctx context.Context, token string) (*entity.Table, error)

	// ResolveByID finds a table by ID. Inactive tables are only returned when
	// includeInactive is set (admin history views).
	ResolveByID(ctx context.Context, id uint64, includeInactive bool) (*entity.Table, error)

	// ListTables returns all tables in number order. Inactive tables are
	// included only when includeInactive is set.
	ListTables(ctx context.Context, includeInactive bool) ([]*entity.Table, error)

	// Rename updates the display name without touching balance or ledger
	Rename(ctx context.Context, id uint64, newName string) (*entity.Table, error)

	// Deactivate soft-deletes the table; balance and history are preserved
	Deactivate(ctx context.Context, id uint64) error

	// Leaderboard returns ranked active tables, balance descending with the
	// earlier LastBalanceChangeAt winning ties
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)

	// PositionOf computes the 1-based leaderboard position of a table
	PositionOf(ctx context.Context, table *entity.Table) (int, error)
}
