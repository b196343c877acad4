package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/model"
)

// TableRepository implements the table repository port using GORM
type TableRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTableRepository creates a new TableRepository instance
func NewTableRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TableRepository {
	return &TableRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a table model to a domain entity
func (r *TableRepository) modelToEntity(tableModel *model.Table) (*entity.Table, error) {
	table, err := entity.NewTable(tableModel.Number, tableModel.Name, r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create table entity", map[string]any{
			"table_id": tableModel.ID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create table entity: %s", errs.ErrInternalServer, err.Error())
	}

	table.ID = tableModel.ID
	table.QRToken = tableModel.QRToken
	table.Active = tableModel.Active
	table.SetBalance(tableModel.Balance, r.timeProvider)
	table.LastBalanceChangeAt = tableModel.LastBalanceChangeAt
	table.CreatedAt = tableModel.CreatedAt
	table.UpdatedAt = tableModel.UpdatedAt

	return table, nil
}

// handleDatabaseError standardizes database error handling
func (r *TableRepository) handleDatabaseError(operation string, err error, tableID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Table not found", map[string]any{
			"table_id": tableID,
		})
		return errs.ErrTableNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"table_id": tableID,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateTable
	}

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrTableLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new table. The number and QR token carry unique indexes,
// so duplicates come back as a conflict regardless of the active flag.
func (r *TableRepository) Create(ctx context.Context, table *entity.Table) error {
	tableModel := model.Table{
		Number:              table.Number,
		Name:                table.Name,
		QRToken:             table.QRToken,
		Balance:             table.Balance(),
		Active:              table.Active,
		LastBalanceChangeAt: table.LastBalanceChangeAt,
		CreatedAt:           table.CreatedAt,
		UpdatedAt:           table.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&tableModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Table number or token already taken", map[string]any{
				"number":   table.Number,
				"qr_token": table.QRToken,
			})
			return errs.NewDuplicateTableError(table.Number, table.QRToken)
		}
		return r.handleDatabaseError("creating table", result.Error, 0)
	}

	table.ID = tableModel.ID

	r.logger.Info("Table persisted", map[string]any{
		"table_id": table.ID,
		"number":   table.Number,
		"qr_token": table.QRToken,
	})
	return nil
}

// GetByID retrieves a table by ID, active or not
func (r *TableRepository) GetByID(ctx context.Context, id uint64) (*entity.Table, error) {
	var tableModel model.Table
	result := r.db.WithContext(ctx).First(&tableModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting table", result.Error, id)
	}

	return r.modelToEntity(&tableModel)
}

// GetByToken retrieves an active table by its normalized QR token
func (r *TableRepository) GetByToken(ctx context.Context, token string) (*entity.Table, error) {
	var tableModel model.Table
	result := r.db.WithContext(ctx).
		Where("qr_token = ? AND active = ?", token, true).
		First(&tableModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting table by token", result.Error, 0)
	}

	return r.modelToEntity(&tableModel)
}

// Update persists metadata changes. Balance is deliberately absent from the
// column list: ApplyDelta is the only write path for it.
func (r *TableRepository) Update(ctx context.Context, table *entity.Table) error {
	result := r.db.WithContext(ctx).Model(&model.Table{}).
		Where("id = ?", table.ID).
		Updates(map[string]interface{}{
			"name":       table.Name,
			"active":     table.Active,
			"updated_at": table.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating table", result.Error, table.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Table not found during update", map[string]any{
			"table_id": table.ID,
		})
		return errs.ErrTableNotFound
	}

	return nil
}

// ApplyDelta atomically adds delta to the table's balance. The row is taken
// with FOR UPDATE so concurrent awards from other processes queue behind the
// lock; callers run this inside a unit of work so the ledger append commits
// or rolls back together with the balance write. The active flag is not
// checked here: awards reject inactive tables at resolution, and the reset
// path must still be able to zero out a deactivated table.
func (r *TableRepository) ApplyDelta(ctx context.Context, tableID uint64, delta int64) (*entity.Table, int64, error) {
	var tableModel model.Table
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&tableModel, tableID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, 0, errs.ErrTableNotFound
		}
		if r.errorClassifier.IsLockError(result.Error) {
			r.logger.Warn("Table row locked by another operation", map[string]any{
				"table_id": tableID,
				"error":    result.Error.Error(),
			})
			return nil, 0, errs.ErrTableLocked
		}
		return nil, 0, r.handleDatabaseError("locking table", result.Error, tableID)
	}

	balanceBefore := tableModel.Balance
	newBalance := balanceBefore + delta
	if newBalance < 0 {
		r.logger.Warn("Insufficient points for operation", map[string]any{
			"table_id":  tableID,
			"requested": -delta,
			"available": balanceBefore,
		})
		return nil, 0, errs.NewInsufficientPointsError(tableID, -delta, balanceBefore)
	}

	now := r.timeProvider.Now()
	tableModel.Balance = newBalance
	tableModel.LastBalanceChangeAt = now
	tableModel.UpdatedAt = now

	result = r.db.WithContext(ctx).Model(&tableModel).Updates(map[string]interface{}{
		"balance":                newBalance,
		"last_balance_change_at": now,
		"updated_at":             now,
	})
	if result.Error != nil {
		return nil, 0, r.handleDatabaseError("applying balance delta", result.Error, tableID)
	}

	table, err := r.modelToEntity(&tableModel)
	if err != nil {
		return nil, 0, err
	}

	return table, balanceBefore, nil
}

// List returns all tables in number order, the view cashiers work from
func (r *TableRepository) List(ctx context.Context, includeInactive bool) ([]*entity.Table, error) {
	query := r.db.WithContext(ctx).Order("number ASC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var tableModels []model.Table
	result := query.Find(&tableModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing tables", result.Error, 0)
	}

	tables := make([]*entity.Table, 0, len(tableModels))
	for i := range tableModels {
		table, err := r.modelToEntity(&tableModels[i])
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, nil
}

// Leaderboard returns up to limit active tables, best first. Ties on balance
// go to the table that reached the score earlier.
func (r *TableRepository) Leaderboard(ctx context.Context, limit int) ([]*entity.Table, error) {
	var tableModels []model.Table
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("balance DESC, last_balance_change_at ASC").
		Limit(limit).
		Find(&tableModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("querying leaderboard", result.Error, 0)
	}

	tables := make([]*entity.Table, 0, len(tableModels))
	for i := range tableModels {
		table, err := r.modelToEntity(&tableModels[i])
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, nil
}

// RankOf computes the 1-based position of the table by counting the active
// tables that rank strictly better under the leaderboard ordering.
func (r *TableRepository) RankOf(ctx context.Context, table *entity.Table) (int, error) {
	var better int64
	result := r.db.WithContext(ctx).Model(&model.Table{}).
		Where("active = ?", true).
		Where("balance > ? OR (balance = ? AND last_balance_change_at < ?)",
			table.Balance(), table.Balance(), table.LastBalanceChangeAt).
		Count(&better)
	if result.Error != nil {
		return 0, r.handleDatabaseError("computing rank", result.Error, table.ID)
	}

	return int(better) + 1, nil
}
