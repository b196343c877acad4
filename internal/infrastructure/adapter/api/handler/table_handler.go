package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/dto"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/middleware"
)

// TableHandler handles table registry HTTP requests
type TableHandler struct {
	tableUseCase usecase.TableUseCase
	logger       coreport.Logger
}

// NewTableHandler creates a new table handler instance
func NewTableHandler(tableUseCase usecase.TableUseCase, logger coreport.Logger) *TableHandler {
	return &TableHandler{
		tableUseCase: tableUseCase,
		logger:       logger,
	}
}

// Create handles POST /api/tables
func (h *TableHandler) Create(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	table, err := h.tableUseCase.CreateTable(c.Request.Context(), req.Number, req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTableResponse(table))
}

// List handles GET /api/tables, the cashier's table overview. Inactive tables
// are only included when an admin asks for them explicitly.
func (h *TableHandler) List(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true" &&
		c.GetString(middleware.ActorRoleKey) == middleware.RoleAdmin

	tables, err := h.tableUseCase.ListTables(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.TableResponse, 0, len(tables))
	for _, table := range tables {
		responses = append(responses, dto.NewTableResponse(table))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles GET /api/tables/:id. Inactive tables are only visible to
// admins asking for them explicitly.
func (h *TableHandler) GetByID(c *gin.Context) {
	tableID, ok := tableIDParam(c, "id")
	if !ok {
		return
	}

	includeInactive := c.Query("includeInactive") == "true" &&
		c.GetString(middleware.ActorRoleKey) == middleware.RoleAdmin

	table, err := h.tableUseCase.ResolveByID(c.Request.Context(), tableID, includeInactive)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTableResponse(table))
}

// ResolveByQR handles GET /api/tables/qr/:token, the endpoint behind the
// QR code printed on the physical table. Includes the leaderboard position.
func (h *TableHandler) ResolveByQR(c *gin.Context) {
	token := c.Param("token")

	table, err := h.tableUseCase.ResolveByToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	position, err := h.tableUseCase.PositionOf(c.Request.Context(), table)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.QRResolveResponse{
		TableResponse: dto.NewTableResponse(table),
		Position:      position,
	})
}

// Rename handles PATCH /api/tables/:id/name
func (h *TableHandler) Rename(c *gin.Context) {
	tableID, ok := tableIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RenameTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	table, err := h.tableUseCase.Rename(c.Request.Context(), tableID, req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTableResponse(table))
}

// Deactivate handles DELETE /api/tables/:id
func (h *TableHandler) Deactivate(c *gin.Context) {
	tableID, ok := tableIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tableUseCase.Deactivate(c.Request.Context(), tableID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Leaderboard handles GET /api/tables/leaderboard
func (h *TableHandler) Leaderboard(c *gin.Context) {
	limit := intQuery(c, "limit")

	entries, err := h.tableUseCase.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// tableIDParam parses a positive table ID from the given path parameter
func tableIDParam(c *gin.Context, name string) (uint64, bool) {
	raw := c.Param(name)
	tableID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || tableID == 0 {
		badRequest(c, domainerr.ErrInvalidRequest, "Invalid table ID format")
		return 0, false
	}
	return tableID, true
}

// intQuery parses an optional non-negative int query parameter, 0 when absent
func intQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
