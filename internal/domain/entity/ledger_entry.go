package entity

import (
	"fmt"
	"time"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
)

// EntryKind classifies a ledger entry
type EntryKind string

// Entry kinds
const (
	KindEarned     EntryKind = "EARNED"
	KindRedeemed   EntryKind = "REDEEMED"
	KindAdjustment EntryKind = "ADJUSTMENT"
)

// IsValidKind reports whether the given string is an allowed entry kind
func IsValidKind(kind string) bool {
	switch EntryKind(kind) {
	case KindEarned, KindRedeemed, KindAdjustment:
		return true
	}
	return false
}

// SignedDelta computes the balance delta for a kind and a point amount.
// EARNED adds, REDEEMED subtracts; ADJUSTMENT carries its own sign.
func SignedDelta(kind EntryKind, points int64) (int64, error) {
	switch kind {
	case KindEarned:
		if points <= 0 {
			return 0, errs.ErrInvalidPoints
		}
		return points, nil
	case KindRedeemed:
		if points <= 0 {
			return 0, errs.ErrInvalidPoints
		}
		return -points, nil
	case KindAdjustment:
		if points == 0 {
			return 0, errs.ErrInvalidPoints
		}
		return points, nil
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidKind, kind)
	}
}

// LedgerEntry is one immutable record of a balance change.
// Entries reference tables by ID only; deactivating a table never touches its history.
type LedgerEntry struct {
	ID            uint64    // Unique identifier for the entry
	TableID       uint64    // Weak reference to the table whose balance changed
	ActorID       uint64    // Authenticated user who caused the change
	Delta         int64     // Signed balance change
	Kind          EntryKind // EARNED, REDEEMED or ADJUSTMENT
	Note          string    // Optional free text
	BalanceBefore int64     // Balance snapshot immediately before this entry was applied
	BalanceAfter  int64     // Balance snapshot immediately after
	CreatedAt     time.Time
}

// NewLedgerEntry creates a new ledger entry with basic validation.
// The balance snapshots are filled in by Snapshot once the atomic apply has run.
func NewLedgerEntry(
	tableID uint64,
	actorID uint64,
	delta int64,
	kind EntryKind,
	note string,
	timeProvider coreport.TimeProvider,
) (*LedgerEntry, error) {
	if tableID == 0 {
		return nil, errs.ErrTableNotFound
	}
	if actorID == 0 {
		return nil, errs.ErrInvalidActorID
	}
	if !IsValidKind(string(kind)) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidKind, kind)
	}
	if delta == 0 {
		return nil, errs.ErrInvalidPoints
	}

	return &LedgerEntry{
		TableID:   tableID,
		ActorID:   actorID,
		Delta:     delta,
		Kind:      kind,
		Note:      note,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Snapshot records the exact pre/post balance of the update this entry belongs to.
// Must be called inside the same atomic unit as the balance mutation.
func (e *LedgerEntry) Snapshot(before, after int64) {
	e.BalanceBefore = before
	e.BalanceAfter = after
}

// IsCredit returns true if this entry increased the table's balance
func (e *LedgerEntry) IsCredit() bool {
	return e.Delta > 0
}

// IsDebit returns true if this entry decreased the table's balance
func (e *LedgerEntry) IsDebit() bool {
	return e.Delta < 0
}
