package model

import (
	"time"
)

// LedgerEntry represents the database model for ledger entries.
// TableID is a plain column, not a foreign key: entries must survive the
// deactivation of their table.
type LedgerEntry struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TableID       uint64    `gorm:"not null;index"`
	ActorID       uint64    `gorm:"not null;index"`
	Delta         int64     `gorm:"not null"`
	Kind          string    `gorm:"not null;size:20"`
	Note          string    `gorm:"size:200"`
	BalanceBefore int64     `gorm:"not null"`
	BalanceAfter  int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
