package dto

import (
	"time"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

// CreateTableRequest represents the API request for registering a table
type CreateTableRequest struct {
	Number uint   `json:"number" binding:"required,min=1"`
	Name   string `json:"name"`
}

// RenameTableRequest represents the API request for renaming a table
type RenameTableRequest struct {
	Name string `json:"name" binding:"required"`
}

// TableResponse represents a table in API responses
type TableResponse struct {
	ID               uint64    `json:"id"`
	Number           uint      `json:"number"`
	Name             string    `json:"name"`
	QRToken          string    `json:"qrToken"`
	Points           int64     `json:"points"`
	Active           bool      `json:"active"`
	LastPointsUpdate time.Time `json:"lastPointsUpdate"`
	CreatedAt        time.Time `json:"createdAt"`
}

// QRResolveResponse is the table view returned for a QR scan,
// including the current leaderboard position
type QRResolveResponse struct {
	TableResponse
	Position int `json:"position"`
}

// NewTableResponse maps a table entity to its API representation
func NewTableResponse(table *entity.Table) TableResponse {
	return TableResponse{
		ID:               table.ID,
		Number:           table.Number,
		Name:             table.Name,
		QRToken:          table.QRToken,
		Points:           table.Balance(),
		Active:           table.Active,
		LastPointsUpdate: table.LastBalanceChangeAt,
		CreatedAt:        table.CreatedAt,
	}
}
