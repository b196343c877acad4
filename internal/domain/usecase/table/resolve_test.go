package table

import (
	"context"
	"testing"
	"time"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	coremocks "github.com/qr-tavoli/loyalty-core/mocks/port/core"
)

func fixtureTable(t *testing.T, number uint, active bool) *entity.Table {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	table, err := entity.NewTable(number, "", mockTime)
	require.NoError(t, err)
	table.ID = uint64(number)
	if !active {
		table.Deactivate(mockTime)
	}
	return table
}

func TestResolveByToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Lowercase scan resolves via normalized token", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		want := fixtureTable(t, 7, true)

		mockRepo.EXPECT().GetByToken(ctx, "TABLE_7").Return(want, nil).Once()

		table, err := uc.ResolveByToken(ctx, "  table_7 ")

		require.NoError(t, err)
		assert.Equal(t, want, table)
	})

	t.Run("Empty token is not found", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		table, err := uc.ResolveByToken(ctx, "   ")

		assert.Equal(t, errs.ErrTableNotFound, err)
		assert.Nil(t, table)
	})

	t.Run("Unknown token surfaces repo error", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)

		mockRepo.EXPECT().GetByToken(ctx, "TABLE_99").Return(nil, errs.ErrTableNotFound).Once()

		table, err := uc.ResolveByToken(ctx, "TABLE_99")

		assert.Equal(t, errs.ErrTableNotFound, err)
		assert.Nil(t, table)
	})
}

func TestListTables(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns tables in repo order", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		want := []*entity.Table{fixtureTable(t, 1, true), fixtureTable(t, 2, true)}

		mockRepo.EXPECT().List(ctx, false).Return(want, nil).Once()

		tables, err := uc.ListTables(ctx, false)

		require.NoError(t, err)
		assert.Equal(t, want, tables)
	})

	t.Run("Forwards the includeInactive flag", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		want := []*entity.Table{fixtureTable(t, 1, true), fixtureTable(t, 3, false)}

		mockRepo.EXPECT().List(ctx, true).Return(want, nil).Once()

		tables, err := uc.ListTables(ctx, true)

		require.NoError(t, err)
		assert.Len(t, tables, 2)
		assert.False(t, tables[1].Active)
	})

	t.Run("Surfaces repo error", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)

		mockRepo.EXPECT().List(ctx, false).Return(nil, errs.ErrDatabaseConnection).Once()

		tables, err := uc.ListTables(ctx, false)

		assert.Equal(t, errs.ErrDatabaseConnection, err)
		assert.Nil(t, tables)
	})
}

func TestResolveByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Active table found", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		want := fixtureTable(t, 7, true)

		mockRepo.EXPECT().GetByID(ctx, uint64(7)).Return(want, nil).Once()

		table, err := uc.ResolveByID(ctx, 7, false)

		require.NoError(t, err)
		assert.Equal(t, want, table)
	})

	t.Run("Inactive table hidden by default", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		inactive := fixtureTable(t, 8, false)

		mockRepo.EXPECT().GetByID(ctx, uint64(8)).Return(inactive, nil).Once()

		table, err := uc.ResolveByID(ctx, 8, false)

		assert.Equal(t, errs.ErrTableNotFound, err)
		assert.Nil(t, table)
	})

	t.Run("Inactive table visible with includeInactive", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		inactive := fixtureTable(t, 8, false)

		mockRepo.EXPECT().GetByID(ctx, uint64(8)).Return(inactive, nil).Once()

		table, err := uc.ResolveByID(ctx, 8, true)

		require.NoError(t, err)
		assert.False(t, table.Active)
	})
}
