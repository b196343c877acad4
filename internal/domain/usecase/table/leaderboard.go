package table

import (
	"context"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 20
	MaxLeaderboardLimit     = 100
)

// Leaderboard returns the ranked view of active tables: balance descending,
// ties broken by LastBalanceChangeAt ascending so the earlier reacher of a
// tied score ranks higher. Positions are 1-based indexes into this ordering.
func (u *TableUseCase) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	tables, err := u.tableRepo.Leaderboard(ctx, limit)
	if err != nil {
		u.logger.Error("Failed to query leaderboard", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}

	return entity.RankTables(tables), nil
}

// PositionOf computes the 1-based leaderboard position of a single table
// without materializing the whole ranking.
func (u *TableUseCase) PositionOf(ctx context.Context, table *entity.Table) (int, error) {
	return u.tableRepo.RankOf(ctx, table)
}
