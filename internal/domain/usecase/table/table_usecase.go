package table

import (
	"context"
	"unicode/utf8"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/persistence"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
)

// DefaultNameMaxLength bounds table names when no rule is configured
const DefaultNameMaxLength = 50

// ensure TableUseCase satisfies the port at compile time
var _ usecase.TableUseCase = (*TableUseCase)(nil)

// TableUseCase handles table registry business logic
type TableUseCase struct {
	tableRepo     persistence.TableRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	nameMaxLength int
}

// NewTableUseCase creates a new TableUseCase
func NewTableUseCase(
	tableRepo persistence.TableRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	nameMaxLength int,
) *TableUseCase {
	if nameMaxLength <= 0 {
		nameMaxLength = DefaultNameMaxLength
	}
	return &TableUseCase{
		tableRepo:     tableRepo,
		timeProvider:  timeProvider,
		logger:        logger,
		nameMaxLength: nameMaxLength,
	}
}

// validateName checks a display name against the configured length rule
func (u *TableUseCase) validateName(name string) error {
	if utf8.RuneCountInString(name) > u.nameMaxLength {
		return errs.ErrNameTooLong
	}
	return nil
}

// Rename updates a table's display name. Pure metadata update, no ledger interaction.
func (u *TableUseCase) Rename(ctx context.Context, id uint64, newName string) (*entity.Table, error) {
	if err := u.validateName(newName); err != nil {
		return nil, err
	}

	table, err := u.ResolveByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := table.Rename(newName, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.tableRepo.Update(ctx, table); err != nil {
		u.logger.Error("Failed to rename table", map[string]any{
			"table_id": id,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Table renamed", map[string]any{
		"table_id": id,
		"name":     table.Name,
	})
	return table, nil
}

// Deactivate soft-deletes a table. Its balance, history and the uniqueness of
// its number/token are all preserved.
func (u *TableUseCase) Deactivate(ctx context.Context, id uint64) error {
	table, err := u.tableRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !table.Active {
		// Already deactivated, nothing to do
		return nil
	}

	table.Deactivate(u.timeProvider)
	if err := u.tableRepo.Update(ctx, table); err != nil {
		u.logger.Error("Failed to deactivate table", map[string]any{
			"table_id": id,
			"error":    err.Error(),
		})
		return err
	}

	u.logger.Info("Table deactivated", map[string]any{
		"table_id": id,
		"number":   table.Number,
		"balance":  table.Balance(),
	})
	return nil
}
