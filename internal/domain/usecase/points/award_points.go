package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/persistence"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
)

// AwardProcessor performs the atomic part of the award protocol: the balance
// mutation and the ledger append share one database transaction, so the
// entry's snapshots always match the exact update they belong to.
type AwardProcessor struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAwardProcessor creates a new AwardProcessor
func NewAwardProcessor(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AwardProcessor {
	return &AwardProcessor{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Apply adds delta to the table's balance and appends the matching ledger
// entry, all-or-nothing. On any error the transaction is rolled back and
// neither the balance nor the ledger shows a trace of the attempt.
func (p *AwardProcessor) Apply(
	ctx context.Context,
	tableID uint64,
	actorID uint64,
	delta int64,
	kind entity.EntryKind,
	note string,
) (*usecase.AwardResult, error) {
	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin award transaction: %w", err)
	}

	result, err := p.applyInTx(txCtx, tableID, actorID, delta, kind, note)
	if err != nil {
		if rbErr := p.uow.Rollback(txCtx); rbErr != nil {
			p.logger.Error("Failed to roll back award transaction", map[string]any{
				"table_id": tableID,
				"error":    rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := p.uow.Commit(txCtx); err != nil {
		p.logger.Error("Failed to commit award transaction", map[string]any{
			"table_id": tableID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("failed to commit award transaction: %w", err)
	}

	p.logger.Info("Points applied", map[string]any{
		"table_id":       tableID,
		"actor_id":       actorID,
		"kind":           kind,
		"delta":          delta,
		"balance_before": result.Entry.BalanceBefore,
		"balance_after":  result.Entry.BalanceAfter,
	})

	return result, nil
}

// ApplyZero brings the table's balance to zero with a single ADJUSTMENT entry.
// The compensating delta is computed under the same row lock as the update,
// so a concurrent award cannot slip between read and write.
func (p *AwardProcessor) ApplyZero(
	ctx context.Context,
	tableID uint64,
	actorID uint64,
	note string,
) (*usecase.AwardResult, error) {
	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin reset transaction: %w", err)
	}

	tables := p.uow.GetTableRepository(txCtx)
	current, err := tables.GetByID(txCtx, tableID)
	if err != nil {
		_ = p.uow.Rollback(txCtx)
		return nil, err
	}

	if current.Balance() == 0 {
		// Nothing to compensate; no entry is written for a no-op reset
		_ = p.uow.Rollback(txCtx)
		return &usecase.AwardResult{Table: current}, nil
	}

	result, err := p.applyInTx(txCtx, tableID, actorID, -current.Balance(), entity.KindAdjustment, note)
	if err != nil {
		if rbErr := p.uow.Rollback(txCtx); rbErr != nil {
			p.logger.Error("Failed to roll back reset transaction", map[string]any{
				"table_id": tableID,
				"error":    rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := p.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit reset transaction: %w", err)
	}

	p.logger.Info("Table points reset", map[string]any{
		"table_id":        tableID,
		"actor_id":        actorID,
		"previous_points": result.Entry.BalanceBefore,
	})

	return result, nil
}

// applyInTx runs the balance mutation and the ledger append against the
// repositories bound to the open transaction.
func (p *AwardProcessor) applyInTx(
	txCtx context.Context,
	tableID uint64,
	actorID uint64,
	delta int64,
	kind entity.EntryKind,
	note string,
) (*usecase.AwardResult, error) {
	tables := p.uow.GetTableRepository(txCtx)
	ledger := p.uow.GetLedgerRepository(txCtx)

	updated, balanceBefore, err := tables.ApplyDelta(txCtx, tableID, delta)
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientPoints) || errors.Is(err, errs.ErrTableNotFound) {
			return nil, err
		}
		return nil, errs.NewAwardError(tableID, actorID, string(kind), delta, "balance mutation failed", err)
	}

	entry, err := entity.NewLedgerEntry(tableID, actorID, delta, kind, note, p.timeProvider)
	if err != nil {
		return nil, err
	}
	entry.Snapshot(balanceBefore, updated.Balance())

	if err := ledger.Append(txCtx, entry); err != nil {
		return nil, errs.NewAwardError(tableID, actorID, string(kind), delta, "ledger append failed", err)
	}

	return &usecase.AwardResult{Table: updated, Entry: entry}, nil
}
