package entity

import (
	"testing"
	"time"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coremocks "github.com/qr-tavoli/loyalty-core/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveQRToken(t *testing.T) {
	assert.Equal(t, "TABLE_1", DeriveQRToken(1))
	assert.Equal(t, "TABLE_42", DeriveQRToken(42))
	assert.Equal(t, "TABLE_120", DeriveQRToken(120))
}

func TestNormalizeQRToken(t *testing.T) {
	testCases := map[string]string{
		"TABLE_7":    "TABLE_7",
		"table_7":    "TABLE_7",
		" Table_7 ":  "TABLE_7",
		"\ttable_7 ": "TABLE_7",
		"":           "",
	}

	for input, want := range testCases {
		assert.Equal(t, want, NormalizeQRToken(input))
	}
}

func TestNewTable(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid table creation", func(t *testing.T) {
		table, err := NewTable(7, "Finestra", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint(7), table.Number)
		assert.Equal(t, "Finestra", table.Name)
		assert.Equal(t, "TABLE_7", table.QRToken)
		assert.Equal(t, int64(0), table.Balance())
		assert.True(t, table.Active)
		assert.Equal(t, fixedTime, table.CreatedAt)
		assert.Equal(t, fixedTime, table.UpdatedAt)
		assert.Equal(t, fixedTime, table.LastBalanceChangeAt)
	})

	t.Run("Default name when empty", func(t *testing.T) {
		table, err := NewTable(12, "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Tavolo 12", table.Name)
	})

	t.Run("Whitespace-only name gets default", func(t *testing.T) {
		table, err := NewTable(3, "   ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Tavolo 3", table.Name)
	})

	t.Run("Zero number should return error", func(t *testing.T) {
		table, err := NewTable(0, "Qualsiasi", mockTime)

		assert.Equal(t, errs.ErrInvalidTableNumber, err)
		assert.Nil(t, table)
	})
}

func TestTableApplyDelta(t *testing.T) {
	initialTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	updateTime := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(initialTime).Once()

	table, _ := NewTable(1, "", mockTime)

	t.Run("Credit increases balance and stamps change time", func(t *testing.T) {
		mockTime.EXPECT().Now().Return(updateTime).Once()

		err := table.ApplyDelta(50, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(50), table.Balance())
		assert.Equal(t, updateTime, table.LastBalanceChangeAt)
		assert.Equal(t, updateTime, table.UpdatedAt)
	})

	t.Run("Debit down to exactly zero", func(t *testing.T) {
		mockTime.EXPECT().Now().Return(updateTime).Once()

		err := table.ApplyDelta(-50, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), table.Balance())
	})

	t.Run("Overdraw is rejected and balance untouched", func(t *testing.T) {
		err := table.ApplyDelta(-1, mockTime)

		require.Error(t, err)
		assert.True(t, errs.IsInsufficientPointsError(err))
		assert.Equal(t, int64(0), table.Balance())

		var ipErr *errs.InsufficientPointsError
		require.ErrorAs(t, err, &ipErr)
		assert.Equal(t, int64(1), ipErr.Requested)
		assert.Equal(t, int64(0), ipErr.Available)
	})
}

func TestTableCanApply(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	table, _ := NewTable(1, "", mockTime)
	require.NoError(t, table.ApplyDelta(100, mockTime))

	assert.True(t, table.CanApply(-100))
	assert.True(t, table.CanApply(-50))
	assert.True(t, table.CanApply(500))
	assert.False(t, table.CanApply(-101))
}

func TestTableRename(t *testing.T) {
	initialTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	renameTime := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(initialTime).Once()

	table, _ := NewTable(5, "", mockTime)

	t.Run("Valid rename", func(t *testing.T) {
		mockTime.EXPECT().Now().Return(renameTime).Once()

		err := table.Rename("  I Campioni  ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "I Campioni", table.Name)
		assert.Equal(t, renameTime, table.UpdatedAt)
	})

	t.Run("Empty name is rejected", func(t *testing.T) {
		err := table.Rename("   ", mockTime)

		assert.Equal(t, errs.ErrEmptyName, err)
		assert.Equal(t, "I Campioni", table.Name)
	})
}

func TestTableDeactivate(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	table, _ := NewTable(9, "", mockTime)
	require.NoError(t, table.ApplyDelta(30, mockTime))

	table.Deactivate(mockTime)

	assert.False(t, table.Active)
	// Deactivation keeps the balance and token reservation
	assert.Equal(t, int64(30), table.Balance())
	assert.Equal(t, "TABLE_9", table.QRToken)
}
