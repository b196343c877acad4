package entity

import "time"

// LeaderboardEntry is one ranked row of the leaderboard view.
// Position is computed from the ordering, never stored on the table.
type LeaderboardEntry struct {
	Position            int       `json:"position"`
	TableID             uint64    `json:"tableId"`
	Number              uint      `json:"tableNumber"`
	Name                string    `json:"name"`
	Balance             int64     `json:"points"`
	LastBalanceChangeAt time.Time `json:"lastPointsUpdate"`
}

// RankTables assigns 1-based positions to tables already ordered by
// balance descending, LastBalanceChangeAt ascending.
func RankTables(tables []*Table) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(tables))
	for i, t := range tables {
		entries = append(entries, LeaderboardEntry{
			Position:            i + 1,
			TableID:             t.ID,
			Number:              t.Number,
			Name:                t.Name,
			Balance:             t.Balance(),
			LastBalanceChangeAt: t.LastBalanceChangeAt,
		})
	}
	return entries
}

// KindStats aggregates ledger entries of one kind
type KindStats struct {
	TotalPoints int64 `json:"totalPoints"`
	Count       int64 `json:"transactionCount"`
}

// DailyStats is the per-kind aggregate for one calendar day
type DailyStats struct {
	Date     string                  `json:"date"`
	ByKind   map[EntryKind]KindStats `json:"byKind"`
	Earned   int64                   `json:"pointsEarned"`
	Redeemed int64                   `json:"pointsRedeemed"`
	Total    int64                   `json:"totalTransactions"`
}

// BuildDailyStats derives the summary fields from a per-kind aggregate.
// Redeemed deltas are negative in the ledger; the summary reports them as positive.
func BuildDailyStats(date string, byKind map[EntryKind]KindStats) DailyStats {
	stats := DailyStats{Date: date, ByKind: byKind}
	for kind, ks := range byKind {
		stats.Total += ks.Count
		switch kind {
		case KindEarned:
			stats.Earned = ks.TotalPoints
		case KindRedeemed:
			stats.Redeemed = -ks.TotalPoints
		}
	}
	return stats
}
