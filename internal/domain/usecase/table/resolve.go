package table

import (
	"context"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
)

// ResolveByToken finds an active table by its scanned QR token.
// The token is normalized before lookup, so scans are case-insensitive.
func (u *TableUseCase) ResolveByToken(ctx context.Context, token string) (*entity.Table, error) {
	normalized := entity.NormalizeQRToken(token)
	if normalized == "" {
		return nil, errs.ErrTableNotFound
	}

	table, err := u.tableRepo.GetByToken(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// ListTables returns every table in number order, the view the cashier screen
// renders. Inactive tables are hidden unless includeInactive is set.
func (u *TableUseCase) ListTables(ctx context.Context, includeInactive bool) ([]*entity.Table, error) {
	tables, err := u.tableRepo.List(ctx, includeInactive)
	if err != nil {
		u.logger.Error("Failed to list tables", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return tables, nil
}

// ResolveByID finds a table by internal ID. Inactive tables are hidden unless
// includeInactive is set; admin history views pass true.
func (u *TableUseCase) ResolveByID(ctx context.Context, id uint64, includeInactive bool) (*entity.Table, error) {
	table, err := u.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !table.Active && !includeInactive {
		return nil, errs.ErrTableNotFound
	}
	return table, nil
}
