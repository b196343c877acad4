package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
)

// QRTokenPrefix is the fixed prefix of every table QR token
const QRTokenPrefix = "TABLE_"

// DeriveQRToken derives the immutable QR token for a table number.
// The token is the scan identifier printed on the physical table.
func DeriveQRToken(number uint) string {
	return fmt.Sprintf("%s%d", QRTokenPrefix, number)
}

// NormalizeQRToken normalizes a scanned token for lookup.
// Tokens are stored uppercase, so lookups are case-insensitive.
func NormalizeQRToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}

// Table represents one physical restaurant table and its authoritative point balance
type Table struct {
	ID                  uint64    // Unique identifier assigned by the registry
	Number              uint      // Positive table number, unique across active and inactive tables
	Name                string    // Short display name, editable by table occupants
	QRToken             string    // Derived from Number, immutable once assigned
	balance             int64     // Current point total (private, never negative)
	Active              bool      // Soft-delete flag; inactive tables are excluded from lookup and leaderboard
	LastBalanceChangeAt time.Time // Timestamp of the most recent balance mutation, leaderboard tie-break
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewTable creates a new table with the given number and name.
// Balance starts at zero and the QR token is derived from the number.
func NewTable(number uint, name string, timeProvider coreport.TimeProvider) (*Table, error) {
	if number == 0 {
		return nil, errs.ErrInvalidTableNumber
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Tavolo %d", number)
	}

	now := timeProvider.Now()
	return &Table{
		Number:              number,
		Name:                name,
		QRToken:             DeriveQRToken(number),
		balance:             0,
		Active:              true,
		LastBalanceChangeAt: now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// Balance returns the current point balance
func (t *Table) Balance() int64 {
	return t.balance
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (t *Table) SetBalance(balance int64, timeProvider coreport.TimeProvider) {
	t.balance = balance
	t.UpdatedAt = timeProvider.Now()
}

// CanApply checks whether applying the delta keeps the balance at or above the floor
func (t *Table) CanApply(delta int64) bool {
	return t.balance+delta >= 0
}

// ApplyDelta adds delta to the balance and stamps LastBalanceChangeAt.
// Returns ErrInsufficientPoints if the resulting balance would be negative.
func (t *Table) ApplyDelta(delta int64, timeProvider coreport.TimeProvider) error {
	if t.balance+delta < 0 {
		return errs.NewInsufficientPointsError(t.ID, -delta, t.balance)
	}

	now := timeProvider.Now()
	t.balance += delta
	t.LastBalanceChangeAt = now
	t.UpdatedAt = now
	return nil
}

// Rename updates the display name. The length bound is enforced by the caller
// against the configured rules; the entity only rejects empty names.
func (t *Table) Rename(newName string, timeProvider coreport.TimeProvider) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errs.ErrEmptyName
	}

	t.Name = newName
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// Deactivate soft-deletes the table. Balance and history are left untouched,
// and the number/token stay reserved in the global uniqueness space.
func (t *Table) Deactivate(timeProvider coreport.TimeProvider) {
	t.Active = false
	t.UpdatedAt = timeProvider.Now()
}
