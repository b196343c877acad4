package table

import (
	"context"
	"strings"
	"testing"
	"time"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coremocks "github.com/qr-tavoli/loyalty-core/mocks/port/core"
	persistencemocks "github.com/qr-tavoli/loyalty-core/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

func newTestUseCase(t *testing.T) (*TableUseCase, *persistencemocks.MockTableRepository, *coremocks.MockTimeProvider) {
	mockRepo := persistencemocks.NewMockTableRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

	uc := NewTableUseCase(mockRepo, mockTime, mockLogger, DefaultNameMaxLength)
	return uc, mockRepo, mockTime
}

func TestCreateTable(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("Successful creation", func(t *testing.T) {
		uc, mockRepo, mockTime := newTestUseCase(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		mockRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Table")).
			Run(func(ctx context.Context, table *entity.Table) {
				table.ID = 1
			}).Return(nil).Once()

		table, err := uc.CreateTable(ctx, 7, "Finestra")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), table.ID)
		assert.Equal(t, uint(7), table.Number)
		assert.Equal(t, "TABLE_7", table.QRToken)
		assert.Equal(t, int64(0), table.Balance())
		assert.True(t, table.Active)
	})

	t.Run("Default name from number", func(t *testing.T) {
		uc, mockRepo, mockTime := newTestUseCase(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		mockRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Table")).Return(nil).Once()

		table, err := uc.CreateTable(ctx, 12, "")

		require.NoError(t, err)
		assert.Equal(t, "Tavolo 12", table.Name)
	})

	t.Run("Zero number is rejected", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		table, err := uc.CreateTable(ctx, 0, "Qualsiasi")

		assert.Equal(t, errs.ErrInvalidTableNumber, err)
		assert.Nil(t, table)
	})

	t.Run("Name above the limit is rejected before any repo call", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		table, err := uc.CreateTable(ctx, 7, strings.Repeat("a", 51))

		assert.Equal(t, errs.ErrNameTooLong, err)
		assert.Nil(t, table)
	})

	t.Run("Duplicate number surfaces the conflict", func(t *testing.T) {
		uc, mockRepo, mockTime := newTestUseCase(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		dupErr := errs.NewDuplicateTableError(7, "TABLE_7")
		mockRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Table")).Return(dupErr).Once()

		table, err := uc.CreateTable(ctx, 7, "")

		assert.True(t, errs.IsConflictError(err))
		assert.Nil(t, table)
	})
}
