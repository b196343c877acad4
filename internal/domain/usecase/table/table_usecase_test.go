package table

import (
	"context"
	"strings"
	"testing"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

func TestRename(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful rename", func(t *testing.T) {
		uc, mockRepo, mockTime := newTestUseCase(t)
		table := fixtureTable(t, 7, true)

		mockTime.EXPECT().Now().Return(table.CreatedAt).Maybe()
		mockRepo.EXPECT().GetByID(ctx, uint64(7)).Return(table, nil).Once()
		mockRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Table")).
			Run(func(ctx context.Context, updated *entity.Table) {
				assert.Equal(t, "I Campioni", updated.Name)
			}).Return(nil).Once()

		updated, err := uc.Rename(ctx, 7, "I Campioni")

		require.NoError(t, err)
		assert.Equal(t, "I Campioni", updated.Name)
	})

	t.Run("Name above limit rejected without lookup", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		updated, err := uc.Rename(ctx, 7, strings.Repeat("x", 51))

		assert.Equal(t, errs.ErrNameTooLong, err)
		assert.Nil(t, updated)
	})

	t.Run("Inactive table cannot be renamed", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		inactive := fixtureTable(t, 8, false)

		mockRepo.EXPECT().GetByID(ctx, uint64(8)).Return(inactive, nil).Once()

		updated, err := uc.Rename(ctx, 8, "Nuovo Nome")

		assert.Equal(t, errs.ErrTableNotFound, err)
		assert.Nil(t, updated)
	})
}

func TestDeactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful deactivation", func(t *testing.T) {
		uc, mockRepo, mockTime := newTestUseCase(t)
		table := fixtureTable(t, 7, true)

		mockTime.EXPECT().Now().Return(table.CreatedAt).Maybe()
		mockRepo.EXPECT().GetByID(ctx, uint64(7)).Return(table, nil).Once()
		mockRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Table")).
			Run(func(ctx context.Context, updated *entity.Table) {
				assert.False(t, updated.Active)
			}).Return(nil).Once()

		err := uc.Deactivate(ctx, 7)

		require.NoError(t, err)
	})

	t.Run("Deactivating twice is a no-op", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		inactive := fixtureTable(t, 8, false)

		mockRepo.EXPECT().GetByID(ctx, uint64(8)).Return(inactive, nil).Once()

		err := uc.Deactivate(ctx, 8)

		require.NoError(t, err)
	})

	t.Run("Unknown table", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)

		mockRepo.EXPECT().GetByID(ctx, uint64(99)).Return(nil, errs.ErrTableNotFound).Once()

		err := uc.Deactivate(ctx, 99)

		assert.Equal(t, errs.ErrTableNotFound, err)
	})
}
