package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/handler"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API.
// QR resolution and the leaderboard are public; everything else requires an
// authenticated staff actor. Creating, deactivating and resetting tables
// require the admin role; renames are open to any staff actor on behalf of
// the occupants.
func SetupRoutes(
	router *gin.Engine,
	tableHandler *handler.TableHandler,
	pointsHandler *handler.PointsHandler,
	jwtSecret string,
	logger coreport.Logger,
) {
	api := router.Group("/api")

	// Public routes, reachable from the table-facing client without a token
	api.GET("/tables/qr/:token", tableHandler.ResolveByQR)
	api.GET("/tables/leaderboard", tableHandler.Leaderboard)

	authed := api.Group("")
	authed.Use(middleware.Actor(jwtSecret, logger))
	{
		authed.GET("/tables", tableHandler.List)
		authed.GET("/tables/:id", tableHandler.GetByID)
		authed.GET("/tables/:id/history", pointsHandler.History)
		authed.PATCH("/tables/:id/name", tableHandler.Rename)

		authed.POST("/points/award", pointsHandler.Award)
		authed.POST("/points/redeem", pointsHandler.Redeem)
		authed.GET("/points/activity", pointsHandler.Activity)
		authed.GET("/points/transactions", pointsHandler.Transactions)
		authed.GET("/points/stats/daily", pointsHandler.DailyStats)

		admin := authed.Group("")
		admin.Use(middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.POST("/tables", tableHandler.Create)
			admin.DELETE("/tables/:id", tableHandler.Deactivate)
			admin.POST("/points/reset/:tableId", pointsHandler.Reset)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
