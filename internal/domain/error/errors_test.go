package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid points", ErrInvalidPoints, CodeInvalidPoints},
		{"invalid table number", ErrInvalidTableNumber, CodeInvalidTableNumber},
		{"invalid kind", ErrInvalidKind, CodeInvalidKind},
		{"name too long", ErrNameTooLong, CodeNameTooLong},
		{"empty name", ErrEmptyName, CodeNameTooLong},
		{"note too long", ErrNoteTooLong, CodeNoteTooLong},
		{"invalid request", ErrInvalidRequest, CodeInvalidRequest},
		{"invalid actor", ErrInvalidActorID, CodeInvalidRequest},
		{"table not found", ErrTableNotFound, CodeTableNotFound},
		{"entry not found", ErrEntryNotFound, CodeTableNotFound},
		{"duplicate table", ErrDuplicateTable, CodeDuplicateTable},
		{"insufficient points", ErrInsufficientPoints, CodeInsufficientPoints},
		{"table locked", ErrTableLocked, CodeTableLocked},
		{"database connection", ErrDatabaseConnection, CodeInternalServer},
		{"unknown error", errors.New("boom"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, ErrorCode(tc.err))
		})
	}

	t.Run("Wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: must be between 1 and 1000", ErrInvalidPoints)
		assert.Equal(t, CodeInvalidPoints, ErrorCode(wrapped))
	})
}

func TestInsufficientPointsError(t *testing.T) {
	err := NewInsufficientPointsError(7, 50, 30)

	assert.True(t, errors.Is(err, ErrInsufficientPoints))
	assert.True(t, IsInsufficientPointsError(err))
	assert.Equal(t, CodeInsufficientPoints, ErrorCode(err))
	assert.Contains(t, err.Error(), "table 7")
	assert.Contains(t, err.Error(), "required 50")
	assert.Contains(t, err.Error(), "available 30")

	var ipErr *InsufficientPointsError
	require.ErrorAs(t, err, &ipErr)
	assert.Equal(t, uint64(7), ipErr.TableID)

	fields := ipErr.LogFields()
	assert.Equal(t, "insufficient_points", fields["error_type"])
	assert.Equal(t, int64(50), fields["requested"])
	assert.Equal(t, int64(30), fields["available"])
}

func TestDuplicateTableError(t *testing.T) {
	err := NewDuplicateTableError(3, "TABLE_3")

	assert.True(t, errors.Is(err, ErrDuplicateTable))
	assert.True(t, IsConflictError(err))
	assert.Equal(t, CodeDuplicateTable, ErrorCode(err))

	var dupErr *DuplicateTableError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, uint(3), dupErr.Number)
	assert.Equal(t, "TABLE_3", dupErr.QRToken)
	assert.Equal(t, "duplicate_table", dupErr.LogFields()["error_type"])
}

func TestAwardError(t *testing.T) {
	cause := ErrTableLocked
	err := NewAwardError(7, 2, "EARNED", 10, "balance mutation failed", cause)

	// Unwrap preserves the underlying classification
	assert.True(t, errors.Is(err, ErrTableLocked))
	assert.Equal(t, CodeTableLocked, ErrorCode(err))

	var awardErr *AwardError
	require.ErrorAs(t, err, &awardErr)
	assert.Equal(t, uint64(7), awardErr.TableID)
	assert.Equal(t, uint64(2), awardErr.ActorID)
	assert.Equal(t, "EARNED", awardErr.Kind)

	fields := awardErr.LogFields()
	assert.Equal(t, "award_error", fields["error_type"])
	assert.Equal(t, CodeTableLocked, fields["error_code"])
}

func TestErrorFamilies(t *testing.T) {
	assert.True(t, IsValidationError(ErrInvalidPoints))
	assert.True(t, IsValidationError(ErrNameTooLong))
	assert.True(t, IsValidationError(ErrInvalidActorID))
	assert.False(t, IsValidationError(ErrTableNotFound))

	assert.True(t, IsNotFoundError(ErrTableNotFound))
	assert.True(t, IsNotFoundError(ErrEntryNotFound))
	assert.False(t, IsNotFoundError(ErrDuplicateTable))

	assert.True(t, IsTableLockedError(ErrTableLocked))
	assert.False(t, IsTableLockedError(ErrInternalServer))
}
