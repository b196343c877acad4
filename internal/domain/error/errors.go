package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidPoints      = 4001
	CodeInvalidTableNumber = 4002
	CodeInvalidKind        = 4003
	CodeNameTooLong        = 4004
	CodeNoteTooLong        = 4005
	CodeInvalidRequest     = 4006
	CodeTableNotFound      = 4040
	CodeDuplicateTable     = 4090
	CodeInsufficientPoints = 4220
	CodeTableLocked        = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidPoints is returned when the requested points are outside the configured bounds
	ErrInvalidPoints = errors.New("points outside allowed range")

	// ErrInvalidTableNumber is returned when the table number is not a positive integer
	ErrInvalidTableNumber = errors.New("table number must be positive")

	// ErrInvalidKind is returned when the entry kind is not one of the allowed values
	ErrInvalidKind = errors.New("invalid entry kind")

	// ErrNameTooLong is returned when a table name exceeds the configured maximum length
	ErrNameTooLong = errors.New("table name too long")

	// ErrEmptyName is returned when a table name is empty after trimming
	ErrEmptyName = errors.New("table name cannot be empty")

	// ErrNoteTooLong is returned when a ledger note exceeds the configured maximum length
	ErrNoteTooLong = errors.New("note too long")

	// ErrInvalidRequest is returned when the request is malformed or misses required fields
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidActorID is returned when the acting user identity is missing or zero
	ErrInvalidActorID = errors.New("actor ID must be positive")

	// ErrTableNotFound is returned when no table matches the given ID or QR token
	ErrTableNotFound = errors.New("table not found")

	// ErrEntryNotFound is returned when the requested ledger entry doesn't exist
	ErrEntryNotFound = errors.New("ledger entry not found")

	// ErrDuplicateTable is returned when a table with the same number or QR token already exists
	ErrDuplicateTable = errors.New("table with this number or QR token already exists")

	// ErrInsufficientPoints is returned when an operation would drive a table's balance below zero
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrTableLocked is returned when a table row is locked by another operation
	ErrTableLocked = errors.New("table is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPoints):
		return CodeInvalidPoints
	case errors.Is(err, ErrInvalidTableNumber):
		return CodeInvalidTableNumber
	case errors.Is(err, ErrInvalidKind):
		return CodeInvalidKind
	case errors.Is(err, ErrNameTooLong), errors.Is(err, ErrEmptyName):
		return CodeNameTooLong
	case errors.Is(err, ErrNoteTooLong):
		return CodeNoteTooLong
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidActorID):
		return CodeInvalidRequest
	case errors.Is(err, ErrInsufficientPoints):
		return CodeInsufficientPoints
	case errors.Is(err, ErrTableNotFound), errors.Is(err, ErrEntryNotFound):
		return CodeTableNotFound
	case errors.Is(err, ErrDuplicateTable):
		return CodeDuplicateTable
	case errors.Is(err, ErrTableLocked):
		return CodeTableLocked
	default:
		return CodeInternalServer
	}
}

// InsufficientPointsError provides detailed error information for overdraw attempts
type InsufficientPointsError struct {
	TableID   uint64
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points for table %d: required %d, available %d",
		e.TableID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientPoints
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientPointsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_points",
		"table_id":   e.TableID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientPoints,
	}
}

// NewInsufficientPointsError creates a new detailed insufficient points error
func NewInsufficientPointsError(tableID uint64, requested, available int64) error {
	return &InsufficientPointsError{
		TableID:   tableID,
		Requested: requested,
		Available: available,
	}
}

// DuplicateTableError provides detailed information about table creation conflicts
type DuplicateTableError struct {
	Number  uint
	QRToken string
}

// Error implements the error interface
func (e *DuplicateTableError) Error() string {
	return fmt.Sprintf("duplicate table: number=%d token=%s already exists", e.Number, e.QRToken)
}

// Is checks if the target error is an ErrDuplicateTable
func (e *DuplicateTableError) Is(target error) bool {
	return target == ErrDuplicateTable
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTableError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_table",
		"number":     e.Number,
		"qr_token":   e.QRToken,
		"error_code": CodeDuplicateTable,
	}
}

// NewDuplicateTableError creates a new detailed duplicate table error
func NewDuplicateTableError(number uint, qrToken string) error {
	return &DuplicateTableError{Number: number, QRToken: qrToken}
}

// AwardError represents an error raised while applying a point award to a table
type AwardError struct {
	TableID uint64
	ActorID uint64
	Kind    string
	Points  int64
	Reason  string
	Err     error
}

// Error implements the error interface for AwardError
func (e *AwardError) Error() string {
	return fmt.Sprintf("award error for table %d (actor: %d, kind: %s, points: %d): %s - %v",
		e.TableID, e.ActorID, e.Kind, e.Points, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *AwardError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AwardError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "award_error",
		"table_id":   e.TableID,
		"actor_id":   e.ActorID,
		"kind":       e.Kind,
		"points":     e.Points,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAwardError creates a detailed award error
func NewAwardError(tableID, actorID uint64, kind string, points int64, reason string, err error) error {
	return &AwardError{
		TableID: tableID,
		ActorID: actorID,
		Kind:    kind,
		Points:  points,
		Reason:  reason,
		Err:     err,
	}
}

// IsValidationError checks if the error belongs to the validation family
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPoints) ||
		errors.Is(err, ErrInvalidTableNumber) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrNameTooLong) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrNoteTooLong) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidActorID)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTableNotFound) || errors.Is(err, ErrEntryNotFound)
}

// IsConflictError checks if the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateTable)
}

// IsInsufficientPointsError checks if the error is related to the balance floor
func IsInsufficientPointsError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints)
}

// IsTableLockedError checks if the error is related to a locked table row
func IsTableLockedError(err error) bool {
	return errors.Is(err, ErrTableLocked)
}
