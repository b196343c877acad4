package points

import (
	"context"
	"sync"
	"testing"
	"time"

	coremocks "github.com/qr-tavoli/loyalty-core/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
)

func newManagerLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestAwardManagerSerializesPerTable(t *testing.T) {
	// Unsynchronized counter: safe only if the manager really serializes
	// all jobs for the same table.
	var balance int64

	processor := func(ctx context.Context, job AwardJob) (*usecase.AwardResult, error) {
		current := balance
		time.Sleep(time.Millisecond)
		balance = current + job.Req.Points
		return &usecase.AwardResult{}, nil
	}

	manager := NewAwardManager(newManagerLogger(t), processor)
	defer manager.Shutdown()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := manager.Enqueue(context.Background(), AwardJob{
				Req: usecase.AwardRequest{TableID: 1, ActorID: 2, Points: 1, Kind: entity.KindEarned},
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
	// Lost updates would leave the counter below the number of awards
	assert.Equal(t, int64(workers), balance)
}

func TestAwardManagerParallelTables(t *testing.T) {
	const tables = 8
	const awardsPerTable = 20

	// One slot per table; workers for different tables write distinct slots
	balances := make([]int64, tables+1)

	processor := func(ctx context.Context, job AwardJob) (*usecase.AwardResult, error) {
		balances[job.Req.TableID] += job.Req.Points
		return &usecase.AwardResult{}, nil
	}

	manager := NewAwardManager(newManagerLogger(t), processor)
	defer manager.Shutdown()

	var wg sync.WaitGroup
	for tableID := uint64(1); tableID <= tables; tableID++ {
		for i := 0; i < awardsPerTable; i++ {
			wg.Add(1)
			go func(id uint64) {
				defer wg.Done()
				_, err := manager.Enqueue(context.Background(), AwardJob{
					Req: usecase.AwardRequest{TableID: id, ActorID: 2, Points: 1, Kind: entity.KindEarned},
				})
				assert.NoError(t, err)
			}(tableID)
		}
	}

	wg.Wait()
	for tableID := uint64(1); tableID <= tables; tableID++ {
		assert.Equal(t, int64(awardsPerTable), balances[tableID])
	}
}

func TestAwardManagerPropagatesResults(t *testing.T) {
	processor := func(ctx context.Context, job AwardJob) (*usecase.AwardResult, error) {
		if job.Req.Points < 0 {
			return nil, assert.AnError
		}
		return &usecase.AwardResult{}, nil
	}

	manager := NewAwardManager(newManagerLogger(t), processor)
	defer manager.Shutdown()

	result, err := manager.Enqueue(context.Background(), AwardJob{
		Req: usecase.AwardRequest{TableID: 1, ActorID: 2, Points: 10},
	})
	require.NoError(t, err)
	assert.NotNil(t, result)

	result, err = manager.Enqueue(context.Background(), AwardJob{
		Req: usecase.AwardRequest{TableID: 1, ActorID: 2, Points: -10},
	})
	assert.Equal(t, assert.AnError, err)
	assert.Nil(t, result)
}

func TestAwardManagerContextCanceled(t *testing.T) {
	processor := func(ctx context.Context, job AwardJob) (*usecase.AwardResult, error) {
		time.Sleep(50 * time.Millisecond)
		return &usecase.AwardResult{}, nil
	}

	manager := NewAwardManager(newManagerLogger(t), processor)
	defer manager.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := manager.Enqueue(ctx, AwardJob{
		Req: usecase.AwardRequest{TableID: 1, ActorID: 2, Points: 1},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewAwardManagerNilProcessor(t *testing.T) {
	assert.Panics(t, func() {
		NewAwardManager(newManagerLogger(t), nil)
	})
}
