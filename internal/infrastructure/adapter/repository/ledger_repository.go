package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/model"
)

// LedgerRepository implements the ledger repository port using GORM.
// The ledger is append-only: no update or delete methods exist.
type LedgerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a ledger entry model to a domain entity
func (r *LedgerRepository) modelToEntity(entryModel *model.LedgerEntry) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:            entryModel.ID,
		TableID:       entryModel.TableID,
		ActorID:       entryModel.ActorID,
		Delta:         entryModel.Delta,
		Kind:          entity.EntryKind(entryModel.Kind),
		Note:          entryModel.Note,
		BalanceBefore: entryModel.BalanceBefore,
		BalanceAfter:  entryModel.BalanceAfter,
		CreatedAt:     entryModel.CreatedAt,
	}
}

// wrapError standardizes database error handling for ledger operations
func (r *LedgerRepository) wrapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Append saves a new ledger entry and fills in its generated ID
func (r *LedgerRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntry{
		TableID:       entry.TableID,
		ActorID:       entry.ActorID,
		Delta:         entry.Delta,
		Kind:          string(entry.Kind),
		Note:          entry.Note,
		BalanceBefore: entry.BalanceBefore,
		BalanceAfter:  entry.BalanceAfter,
		CreatedAt:     entry.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&entryModel)
	if result.Error != nil {
		return r.wrapError("appending ledger entry", result.Error)
	}

	entry.ID = entryModel.ID

	r.logger.Debug("Ledger entry appended", map[string]any{
		"entry_id": entry.ID,
		"table_id": entry.TableID,
		"kind":     entry.Kind,
		"delta":    entry.Delta,
	})
	return nil
}

// HistoryForTable returns up to limit entries for the table, newest first
func (r *LedgerRepository) HistoryForTable(ctx context.Context, tableID uint64, limit int) ([]*entity.LedgerEntry, error) {
	return r.query(ctx, "loading table history", func(db *gorm.DB) *gorm.DB {
		return db.Where("table_id = ?", tableID).Limit(limit)
	})
}

// ActivityForActor returns up to limit entries created by the actor, newest first
func (r *LedgerRepository) ActivityForActor(ctx context.Context, actorID uint64, limit int) ([]*entity.LedgerEntry, error) {
	return r.query(ctx, "loading actor activity", func(db *gorm.DB) *gorm.DB {
		return db.Where("actor_id = ?", actorID).Limit(limit)
	})
}

// List returns up to limit entries across all tables, newest first
func (r *LedgerRepository) List(ctx context.Context, limit int) ([]*entity.LedgerEntry, error) {
	return r.query(ctx, "listing ledger entries", func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit)
	})
}

// query runs a filtered ledger read with the shared newest-first ordering.
// The secondary id sort makes the order stable for entries in the same instant.
func (r *LedgerRepository) query(ctx context.Context, operation string, scope func(*gorm.DB) *gorm.DB) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntry
	result := scope(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, r.wrapError(operation, result.Error)
	}

	entries := make([]*entity.LedgerEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, r.modelToEntity(&entryModels[i]))
	}
	return entries, nil
}

// kindAggregate is the scan target for the per-kind rollup
type kindAggregate struct {
	Kind        string
	TotalPoints int64
	Count       int64
}

// AggregateByKind sums deltas and counts entries per kind in [from, to)
func (r *LedgerRepository) AggregateByKind(ctx context.Context, from, to time.Time) (map[entity.EntryKind]entity.KindStats, error) {
	var rows []kindAggregate
	result := r.db.WithContext(ctx).Model(&model.LedgerEntry{}).
		Select("kind, COALESCE(SUM(delta), 0) AS total_points, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("kind").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.wrapError("aggregating ledger entries", result.Error)
	}

	byKind := make(map[entity.EntryKind]entity.KindStats, len(rows))
	for _, row := range rows {
		byKind[entity.EntryKind(row.Kind)] = entity.KindStats{
			TotalPoints: row.TotalPoints,
			Count:       row.Count,
		}
	}
	return byKind, nil
}
