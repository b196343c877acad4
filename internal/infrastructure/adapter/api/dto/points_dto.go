package dto

import (
	"time"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

// AwardPointsRequest represents the API request for awarding points.
// The table is identified by qrCode or by tableId; qrCode wins when both are set.
type AwardPointsRequest struct {
	QRCode  string `json:"qrCode"`
	TableID uint64 `json:"tableId"`
	Points  int64  `json:"points" binding:"required"`
	Kind    string `json:"kind"`
	Note    string `json:"note"`
}

// RedeemPointsRequest represents the API request for redeeming points
type RedeemPointsRequest struct {
	QRCode  string `json:"qrCode"`
	TableID uint64 `json:"tableId"`
	Points  int64  `json:"points" binding:"required,min=1"`
	Note    string `json:"note"`
}

// ResetPointsRequest represents the optional body of a reset
type ResetPointsRequest struct {
	Reason string `json:"reason"`
}

// LedgerEntryResponse represents one ledger entry in API responses
type LedgerEntryResponse struct {
	ID            uint64    `json:"id"`
	TableID       uint64    `json:"tableId"`
	ActorID       uint64    `json:"actorId"`
	Delta         int64     `json:"delta"`
	Kind          string    `json:"kind"`
	Note          string    `json:"note,omitempty"`
	BalanceBefore int64     `json:"balanceBefore"`
	BalanceAfter  int64     `json:"balanceAfter"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AwardResponse carries the updated table alongside the ledger entry recorded for it
type AwardResponse struct {
	Table TableResponse        `json:"table"`
	Entry *LedgerEntryResponse `json:"entry,omitempty"`
}

// NewLedgerEntryResponse maps a ledger entry entity to its API representation
func NewLedgerEntryResponse(entry *entity.LedgerEntry) *LedgerEntryResponse {
	if entry == nil {
		return nil
	}
	return &LedgerEntryResponse{
		ID:            entry.ID,
		TableID:       entry.TableID,
		ActorID:       entry.ActorID,
		Delta:         entry.Delta,
		Kind:          string(entry.Kind),
		Note:          entry.Note,
		BalanceBefore: entry.BalanceBefore,
		BalanceAfter:  entry.BalanceAfter,
		CreatedAt:     entry.CreatedAt,
	}
}

// NewLedgerEntryResponses maps a slice of entries, preserving order
func NewLedgerEntryResponses(entries []*entity.LedgerEntry) []*LedgerEntryResponse {
	out := make([]*LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NewLedgerEntryResponse(entry))
	}
	return out
}
