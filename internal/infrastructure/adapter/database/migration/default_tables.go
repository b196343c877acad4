package migration

import (
	"context"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	usecaseport "github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
)

// SeedDefaultTables registers an initial batch of tables for development
// environments. Numbers already registered are skipped, so reruns are safe.
func SeedDefaultTables(
	ctx context.Context,
	tableUseCase usecaseport.TableUseCase,
	count uint,
	logger coreport.Logger,
) error {
	logger.Info("Seeding default tables", map[string]any{"count": count})

	var created, skipped int
	for number := uint(1); number <= count; number++ {
		_, err := tableUseCase.CreateTable(ctx, number, "")
		if err != nil {
			if errs.IsConflictError(err) {
				skipped++
				continue
			}
			logger.Error("Failed to seed table", map[string]any{
				"number": number,
				"error":  err.Error(),
			})
			return err
		}
		created++
	}

	logger.Info("Default tables seeded", map[string]any{
		"created": created,
		"skipped": skipped,
	})
	return nil
}
