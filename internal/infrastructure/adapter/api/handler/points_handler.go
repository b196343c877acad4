package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	domainerr "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/dto"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/middleware"
)

// PointsHandler handles point-award and ledger HTTP requests
type PointsHandler struct {
	pointsUseCase usecase.PointsUseCase
	logger        coreport.Logger
}

// NewPointsHandler creates a new points handler instance
func NewPointsHandler(pointsUseCase usecase.PointsUseCase, logger coreport.Logger) *PointsHandler {
	return &PointsHandler{
		pointsUseCase: pointsUseCase,
		logger:        logger,
	}
}

// Award handles POST /api/points/award. The acting user comes from the
// bearer token, never from the request body.
func (h *PointsHandler) Award(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		badRequest(c, domainerr.ErrInvalidActorID, "Missing actor identity")
		return
	}

	var req dto.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	kind := entity.EntryKind(req.Kind)
	if req.Kind == "" {
		kind = entity.KindEarned
	}

	h.apply(c, usecase.AwardRequest{
		QRToken: req.QRCode,
		TableID: req.TableID,
		ActorID: actorID,
		Points:  req.Points,
		Kind:    kind,
		Note:    req.Note,
	})
}

// Redeem handles POST /api/points/redeem, a convenience route that always
// debits the table
func (h *PointsHandler) Redeem(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		badRequest(c, domainerr.ErrInvalidActorID, "Missing actor identity")
		return
	}

	var req dto.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	h.apply(c, usecase.AwardRequest{
		QRToken: req.QRCode,
		TableID: req.TableID,
		ActorID: actorID,
		Points:  req.Points,
		Kind:    entity.KindRedeemed,
		Note:    req.Note,
	})
}

// apply runs the award protocol and writes the shared success response
func (h *PointsHandler) apply(c *gin.Context, req usecase.AwardRequest) {
	result, err := h.pointsUseCase.Award(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AwardResponse{
		Table: dto.NewTableResponse(result.Table),
		Entry: dto.NewLedgerEntryResponse(result.Entry),
	})
}

// Reset handles POST /api/points/reset/:tableId
func (h *PointsHandler) Reset(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		badRequest(c, domainerr.ErrInvalidActorID, "Missing actor identity")
		return
	}

	tableID, ok := tableIDParam(c, "tableId")
	if !ok {
		return
	}

	// Body is optional; a bare reset carries no reason
	var req dto.ResetPointsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
			return
		}
	}

	result, err := h.pointsUseCase.Reset(c.Request.Context(), tableID, actorID, req.Reason)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AwardResponse{
		Table: dto.NewTableResponse(result.Table),
		Entry: dto.NewLedgerEntryResponse(result.Entry),
	})
}

// History handles GET /api/tables/:id/history
func (h *PointsHandler) History(c *gin.Context) {
	tableID, ok := tableIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.pointsUseCase.HistoryForTable(c.Request.Context(), tableID, intQuery(c, "limit"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLedgerEntryResponses(entries))
}

// Transactions handles GET /api/points/transactions, the global ledger feed
func (h *PointsHandler) Transactions(c *gin.Context) {
	entries, err := h.pointsUseCase.Transactions(c.Request.Context(), intQuery(c, "limit"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLedgerEntryResponses(entries))
}

// Activity handles GET /api/points/activity. Without an explicit actorId the
// authenticated actor's own activity is returned.
func (h *PointsHandler) Activity(c *gin.Context) {
	actorID, _ := middleware.ActorID(c)

	if raw := c.Query("actorId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			badRequest(c, domainerr.ErrInvalidActorID, "Invalid actor ID format")
			return
		}
		actorID = parsed
	}

	entries, err := h.pointsUseCase.ActivityForActor(c.Request.Context(), actorID, intQuery(c, "limit"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLedgerEntryResponses(entries))
}

// DailyStats handles GET /api/points/stats/daily
func (h *PointsHandler) DailyStats(c *gin.Context) {
	stats, err := h.pointsUseCase.DailyStats(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
