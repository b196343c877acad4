package entity

import (
	"testing"
	"time"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coremocks "github.com/qr-tavoli/loyalty-core/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidKind(t *testing.T) {
	assert.True(t, IsValidKind("EARNED"))
	assert.True(t, IsValidKind("REDEEMED"))
	assert.True(t, IsValidKind("ADJUSTMENT"))

	assert.False(t, IsValidKind("earned"))
	assert.False(t, IsValidKind("BONUS"))
	assert.False(t, IsValidKind(""))
}

func TestSignedDelta(t *testing.T) {
	t.Run("Earned adds", func(t *testing.T) {
		delta, err := SignedDelta(KindEarned, 25)
		require.NoError(t, err)
		assert.Equal(t, int64(25), delta)
	})

	t.Run("Redeemed subtracts", func(t *testing.T) {
		delta, err := SignedDelta(KindRedeemed, 25)
		require.NoError(t, err)
		assert.Equal(t, int64(-25), delta)
	})

	t.Run("Adjustment keeps its sign", func(t *testing.T) {
		delta, err := SignedDelta(KindAdjustment, -40)
		require.NoError(t, err)
		assert.Equal(t, int64(-40), delta)

		delta, err = SignedDelta(KindAdjustment, 15)
		require.NoError(t, err)
		assert.Equal(t, int64(15), delta)
	})

	t.Run("Non-positive amounts rejected for earned and redeemed", func(t *testing.T) {
		for _, kind := range []EntryKind{KindEarned, KindRedeemed} {
			_, err := SignedDelta(kind, 0)
			assert.ErrorIs(t, err, errs.ErrInvalidPoints)

			_, err = SignedDelta(kind, -10)
			assert.ErrorIs(t, err, errs.ErrInvalidPoints)
		}
	})

	t.Run("Zero adjustment rejected", func(t *testing.T) {
		_, err := SignedDelta(KindAdjustment, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidPoints)
	})

	t.Run("Unknown kind rejected", func(t *testing.T) {
		_, err := SignedDelta(EntryKind("BONUS"), 10)
		assert.ErrorIs(t, err, errs.ErrInvalidKind)
	})
}

func TestNewLedgerEntry(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid entry creation", func(t *testing.T) {
		entry, err := NewLedgerEntry(1, 2, 10, KindEarned, "pranzo", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), entry.TableID)
		assert.Equal(t, uint64(2), entry.ActorID)
		assert.Equal(t, int64(10), entry.Delta)
		assert.Equal(t, KindEarned, entry.Kind)
		assert.Equal(t, "pranzo", entry.Note)
		assert.Equal(t, fixedTime, entry.CreatedAt)
	})

	t.Run("Zero table ID should return error", func(t *testing.T) {
		entry, err := NewLedgerEntry(0, 2, 10, KindEarned, "", mockTime)

		assert.Equal(t, errs.ErrTableNotFound, err)
		assert.Nil(t, entry)
	})

	t.Run("Zero actor ID should return error", func(t *testing.T) {
		entry, err := NewLedgerEntry(1, 0, 10, KindEarned, "", mockTime)

		assert.Equal(t, errs.ErrInvalidActorID, err)
		assert.Nil(t, entry)
	})

	t.Run("Invalid kind should return error", func(t *testing.T) {
		entry, err := NewLedgerEntry(1, 2, 10, EntryKind("BONUS"), "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidKind)
		assert.Nil(t, entry)
	})

	t.Run("Zero delta should return error", func(t *testing.T) {
		entry, err := NewLedgerEntry(1, 2, 0, KindAdjustment, "", mockTime)

		assert.Equal(t, errs.ErrInvalidPoints, err)
		assert.Nil(t, entry)
	})
}

func TestLedgerEntrySnapshot(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	entry, err := NewLedgerEntry(1, 2, -30, KindRedeemed, "", mockTime)
	require.NoError(t, err)

	entry.Snapshot(100, 70)

	assert.Equal(t, int64(100), entry.BalanceBefore)
	assert.Equal(t, int64(70), entry.BalanceAfter)
	assert.Equal(t, entry.BalanceBefore+entry.Delta, entry.BalanceAfter)
}

func TestLedgerEntryCreditDebit(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	credit, _ := NewLedgerEntry(1, 2, 10, KindEarned, "", mockTime)
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())

	debit, _ := NewLedgerEntry(1, 2, -10, KindRedeemed, "", mockTime)
	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())
}
