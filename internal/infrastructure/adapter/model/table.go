package model

import (
	"time"
)

// Table represents the database model for restaurant tables
type Table struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement"`
	Number              uint      `gorm:"uniqueIndex;not null"`
	Name                string    `gorm:"not null;size:50"`
	QRToken             string    `gorm:"uniqueIndex;not null;size:50"`
	Balance             int64     `gorm:"not null;default:0"` // Point balance, never negative
	Active              bool      `gorm:"not null;default:true;index"`
	LastBalanceChangeAt time.Time `gorm:"not null"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the table name for Table
func (Table) TableName() string {
	return "tables"
}
