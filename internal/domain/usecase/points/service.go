package points

import (
	"context"
	"fmt"
	"time"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/persistence"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
)

// History limits, matching the defaults of the public API
const (
	DefaultHistoryLimit  = 10
	DefaultActivityLimit = 20
	MaxQueryLimit        = 100
)

// Service ties together validation, per-table serialization and the atomic
// apply for the whole point-award protocol, plus the ledger read side.
type Service struct {
	manager    *AwardManager
	processor  *AwardProcessor
	validator  *AwardValidator
	tableRepo  persistence.TableRepository
	ledgerRepo persistence.LedgerRepository

	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	statsZone    *time.Location
}

// NewPointsService creates a new points service.
// statsTimezone names the IANA zone whose calendar days bound the daily
// aggregate; an empty or unknown zone falls back to UTC.
func NewPointsService(
	uow persistence.UnitOfWork,
	tableRepo persistence.TableRepository,
	ledgerRepo persistence.LedgerRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	bounds Bounds,
	statsTimezone string,
) *Service {
	processor := NewAwardProcessor(uow, timeProvider, logger)
	validator := NewAwardValidator(bounds)

	zone, err := time.LoadLocation(statsTimezone)
	if err != nil || statsTimezone == "" {
		zone = time.UTC
	}

	s := &Service{
		processor:    processor,
		validator:    validator,
		tableRepo:    tableRepo,
		ledgerRepo:   ledgerRepo,
		timeProvider: timeProvider,
		logger:       logger,
		statsZone:    zone,
	}
	s.manager = NewAwardManager(logger, s.applyJob)
	return s
}

// applyJob runs one queued award inside the table's worker goroutine
func (s *Service) applyJob(ctx context.Context, job AwardJob) (*usecase.AwardResult, error) {
	if job.ZeroOut {
		return s.processor.ApplyZero(ctx, job.Req.TableID, job.Req.ActorID, job.Req.Note)
	}

	delta, err := entity.SignedDelta(job.Req.Kind, job.Req.Points)
	if err != nil {
		return nil, err
	}
	return s.processor.Apply(ctx, job.Req.TableID, job.Req.ActorID, delta, job.Req.Kind, job.Req.Note)
}

// Award implements the point-award protocol:
// resolution, bounds check, atomic apply, in that order. Resolution and
// validation fail fast before any persisted state is touched.
func (s *Service) Award(ctx context.Context, req usecase.AwardRequest) (*usecase.AwardResult, error) {
	if err := s.validator.ValidateAward(req); err != nil {
		return nil, err
	}

	table, err := s.resolveTarget(ctx, req)
	if err != nil {
		return nil, err
	}
	req.TableID = table.ID

	result, err := s.manager.Enqueue(ctx, AwardJob{Req: req})
	if err != nil {
		if errs.IsInsufficientPointsError(err) || errs.IsNotFoundError(err) {
			// Already carries the caller-facing detail
			return nil, err
		}
		s.logger.Error("Award processing failed", map[string]any{
			"table_id": req.TableID,
			"actor_id": req.ActorID,
			"kind":     req.Kind,
			"points":   req.Points,
			"error":    err.Error(),
		})
		return nil, err
	}

	return result, nil
}

// Reset brings a table's balance to zero with one compensating ADJUSTMENT
// entry. Works on inactive tables too: an admin clearing out a retired table
// is still an auditable event.
func (s *Service) Reset(ctx context.Context, tableID, actorID uint64, reason string) (*usecase.AwardResult, error) {
	if actorID == 0 {
		return nil, errs.ErrInvalidActorID
	}
	if _, err := s.tableRepo.GetByID(ctx, tableID); err != nil {
		return nil, err
	}

	note := reason
	if note == "" {
		note = "points reset"
	}

	return s.manager.Enqueue(ctx, AwardJob{
		Req: usecase.AwardRequest{
			TableID: tableID,
			ActorID: actorID,
			Kind:    entity.KindAdjustment,
			Note:    note,
		},
		ZeroOut: true,
	})
}

// resolveTarget identifies the table by QR token or internal ID.
// Both paths require an active table; awards on deactivated tables are
// indistinguishable from unknown tables to the caller.
func (s *Service) resolveTarget(ctx context.Context, req usecase.AwardRequest) (*entity.Table, error) {
	if req.QRToken != "" {
		return s.tableRepo.GetByToken(ctx, entity.NormalizeQRToken(req.QRToken))
	}

	table, err := s.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		return nil, err
	}
	if !table.Active {
		return nil, errs.ErrTableNotFound
	}
	return table, nil
}

// HistoryForTable returns the table's ledger entries, newest first
func (s *Service) HistoryForTable(ctx context.Context, tableID uint64, limit int) ([]*entity.LedgerEntry, error) {
	if tableID == 0 {
		return nil, errs.ErrTableNotFound
	}
	return s.ledgerRepo.HistoryForTable(ctx, tableID, clampLimit(limit, DefaultHistoryLimit))
}

// Transactions returns the most recent entries across all tables, newest first
func (s *Service) Transactions(ctx context.Context, limit int) ([]*entity.LedgerEntry, error) {
	return s.ledgerRepo.List(ctx, clampLimit(limit, DefaultActivityLimit))
}

// ActivityForActor returns the entries an actor created, newest first
func (s *Service) ActivityForActor(ctx context.Context, actorID uint64, limit int) ([]*entity.LedgerEntry, error) {
	if actorID == 0 {
		return nil, errs.ErrInvalidActorID
	}
	return s.ledgerRepo.ActivityForActor(ctx, actorID, clampLimit(limit, DefaultActivityLimit))
}

// DailyStats aggregates entries per kind for one calendar day in the
// configured timezone. An empty date means today.
func (s *Service) DailyStats(ctx context.Context, date string) (*entity.DailyStats, error) {
	var day time.Time
	if date == "" {
		day = s.timeProvider.Now().In(s.statsZone)
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", date, s.statsZone)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", errs.ErrInvalidRequest)
		}
		day = parsed
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.statsZone)
	to := from.AddDate(0, 0, 1)

	byKind, err := s.ledgerRepo.AggregateByKind(ctx, from, to)
	if err != nil {
		s.logger.Error("Failed to aggregate daily stats", map[string]any{
			"date":  from.Format("2006-01-02"),
			"error": err.Error(),
		})
		return nil, err
	}

	stats := entity.BuildDailyStats(from.Format("2006-01-02"), byKind)
	return &stats, nil
}

// GetManager returns the underlying award manager, used for graceful shutdown
func (s *Service) GetManager() *AwardManager {
	return s.manager
}

// Shutdown drains the per-table queues
func (s *Service) Shutdown() {
	s.manager.Shutdown()
}

// clampLimit applies the default and the hard cap to a caller-supplied limit
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}

// ensure Service satisfies the port at compile time
var _ usecase.PointsUseCase = (*Service)(nil)
