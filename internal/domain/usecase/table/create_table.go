package table

import (
	"context"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
)

// CreateTable registers a new table. The QR token is derived from the number
// inside the entity constructor, never passed in. The number/token uniqueness
// space is global: a deactivated table still reserves its number.
func (u *TableUseCase) CreateTable(ctx context.Context, number uint, name string) (*entity.Table, error) {
	if err := u.validateName(name); err != nil {
		return nil, err
	}

	table, err := entity.NewTable(number, name, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.tableRepo.Create(ctx, table); err != nil {
		u.logger.Warn("Failed to create table", map[string]any{
			"number":   number,
			"qr_token": table.QRToken,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Table created", map[string]any{
		"table_id": table.ID,
		"number":   table.Number,
		"qr_token": table.QRToken,
	})
	return table, nil
}
