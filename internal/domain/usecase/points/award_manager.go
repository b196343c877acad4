package points

import (
	"context"
	"sync"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
)

// AwardManager provides sequential processing of awards per table.
// Awards on different tables run fully in parallel; awards on the same table
// are serialized through that table's queue, so the read-modify-write in the
// processor never interleaves with another award for the same table.
type AwardManager struct {
	logger coreport.Logger

	// Table-based award queues for strict per-table ordering
	tableQueues    sync.Map // map[uint64]chan *awardJob
	queueWaitGroup sync.WaitGroup

	// Function that performs the atomic apply for one queued award
	processor AwardApplyFunc
}

// AwardApplyFunc is the function signature for applying a queued award
type AwardApplyFunc func(ctx context.Context, job AwardJob) (*usecase.AwardResult, error)

// AwardJob is one queued award for a specific table
type AwardJob struct {
	Req     usecase.AwardRequest
	ZeroOut bool // true for admin resets: the delta is computed from the live balance
}

// awardJob wraps an AwardJob with its completion channel
type awardJob struct {
	ctx        context.Context
	job        AwardJob
	resultChan chan *awardOutcome
}

// awardOutcome represents the result of a processed award
type awardOutcome struct {
	result *usecase.AwardResult
	err    error
}

// NewAwardManager creates a new award manager
func NewAwardManager(logger coreport.Logger, processor AwardApplyFunc) *AwardManager {
	if processor == nil {
		panic("award processor function cannot be nil")
	}

	return &AwardManager{
		logger:    logger,
		processor: processor,
	}
}

// Enqueue adds an award to the table's queue and waits for its result
func (m *AwardManager) Enqueue(ctx context.Context, job AwardJob) (*usecase.AwardResult, error) {
	tableID := job.Req.TableID

	m.logger.Debug("Enqueuing award for sequential processing", map[string]any{
		"table_id": tableID,
		"kind":     job.Req.Kind,
	})

	resultChan := make(chan *awardOutcome, 1)

	// Get or create queue for this table
	var queue chan *awardJob
	queueIface, loaded := m.tableQueues.LoadOrStore(tableID, make(chan *awardJob, 100))
	if queueCh, ok := queueIface.(chan *awardJob); ok {
		queue = queueCh
	} else {
		m.logger.Error("Failed to type assert queue channel", nil)
		return nil, errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		m.queueWaitGroup.Add(1)
		go m.processTableAwards(tableID, queue)
	}

	queued := &awardJob{
		ctx:        ctx,
		job:        job,
		resultChan: resultChan,
	}

	select {
	case queue <- queued:
	case <-ctx.Done():
		m.logger.Warn("Context canceled while enqueueing award", map[string]any{
			"table_id": tableID,
			"error":    ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case outcome := <-resultChan:
		return outcome.result, outcome.err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for award result", map[string]any{
			"table_id": tableID,
			"error":    ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// processTableAwards is the worker goroutine for one table's queue
func (m *AwardManager) processTableAwards(tableID uint64, queue chan *awardJob) {
	defer m.queueWaitGroup.Done()

	m.logger.Debug("Award queue worker started", map[string]any{
		"table_id": tableID,
	})

	for queued := range queue {
		result, err := m.processor(queued.ctx, queued.job)

		queued.resultChan <- &awardOutcome{
			result: result,
			err:    err,
		}
		close(queued.resultChan)
	}

	m.logger.Debug("Award queue worker stopped", map[string]any{
		"table_id": tableID,
	})
}

// Shutdown stops all worker goroutines cleanly
func (m *AwardManager) Shutdown() {
	m.logger.Info("Shutting down award manager", nil)

	m.tableQueues.Range(func(tableID, queueIface interface{}) bool {
		if queue, ok := queueIface.(chan *awardJob); ok {
			close(queue)
		}
		return true
	})

	m.queueWaitGroup.Wait()
	m.logger.Info("Award manager shut down successfully", nil)
}
