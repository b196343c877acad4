package entity

import (
	"testing"
	"time"

	coremocks "github.com/qr-tavoli/loyalty-core/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankTables(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	newTable := func(number uint, balance int64) *Table {
		table, err := NewTable(number, "", mockTime)
		require.NoError(t, err)
		table.ID = uint64(number)
		if balance > 0 {
			require.NoError(t, table.ApplyDelta(balance, mockTime))
		}
		return table
	}

	t.Run("Assigns 1-based positions in input order", func(t *testing.T) {
		// Already ordered by balance descending, as the repository returns them
		tables := []*Table{
			newTable(2, 75),
			newTable(1, 50),
			newTable(3, 25),
		}

		entries := RankTables(tables)

		require.Len(t, entries, 3)
		assert.Equal(t, 1, entries[0].Position)
		assert.Equal(t, uint(2), entries[0].Number)
		assert.Equal(t, int64(75), entries[0].Balance)

		assert.Equal(t, 2, entries[1].Position)
		assert.Equal(t, uint(1), entries[1].Number)

		assert.Equal(t, 3, entries[2].Position)
		assert.Equal(t, uint(3), entries[2].Number)
	})

	t.Run("Empty input gives empty leaderboard", func(t *testing.T) {
		entries := RankTables(nil)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestBuildDailyStats(t *testing.T) {
	t.Run("Full day", func(t *testing.T) {
		byKind := map[EntryKind]KindStats{
			KindEarned:     {TotalPoints: 120, Count: 6},
			KindRedeemed:   {TotalPoints: -45, Count: 3},
			KindAdjustment: {TotalPoints: -10, Count: 1},
		}

		stats := BuildDailyStats("2025-03-01", byKind)

		assert.Equal(t, "2025-03-01", stats.Date)
		assert.Equal(t, int64(120), stats.Earned)
		// Redeemed totals are stored negative, reported positive
		assert.Equal(t, int64(45), stats.Redeemed)
		assert.Equal(t, int64(10), stats.Total)
		assert.Equal(t, byKind, stats.ByKind)
	})

	t.Run("Empty day", func(t *testing.T) {
		stats := BuildDailyStats("2025-03-02", map[EntryKind]KindStats{})

		assert.Equal(t, int64(0), stats.Earned)
		assert.Equal(t, int64(0), stats.Redeemed)
		assert.Equal(t, int64(0), stats.Total)
	})
}
