package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	pointsUseCase "github.com/qr-tavoli/loyalty-core/internal/domain/usecase/points"
	tableUseCase "github.com/qr-tavoli/loyalty-core/internal/domain/usecase/table"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/handler"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/routes"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/database"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/database/migration"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/logger"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/repository"
	timeProvider "github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/time"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction())
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	tableRepo := repository.NewTableRepository(dbManager.DB(), tp, appLogger)
	ledgerRepo := repository.NewLedgerRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	tableService := tableUseCase.NewTableUseCase(tableRepo, tp, appLogger, cfg.Rules.NameMaxLength)

	pointsService := pointsUseCase.NewPointsService(
		uow,
		tableRepo,
		ledgerRepo,
		tp,
		appLogger,
		pointsUseCase.Bounds{
			MinPoints:     cfg.Points.Min,
			MaxPoints:     cfg.Points.Max,
			NoteMaxLength: cfg.Rules.NoteMaxLength,
		},
		cfg.Stats.Timezone,
	)

	if cfg.Seed.Enabled && !cfg.IsProduction() {
		if err := migration.SeedDefaultTables(context.Background(), tableService, cfg.Seed.TableCount, appLogger); err != nil {
			appLogger.Error("Failed to seed default tables", map[string]any{"error": err.Error()})
		}
	}

	tableHandler := handler.NewTableHandler(tableService, appLogger)
	pointsHandler := handler.NewPointsHandler(pointsService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tableHandler, pointsHandler, cfg.Auth.JWTSecret, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Drain the per-table award queues before the HTTP listener closes so
	// in-flight awards still commit
	pointsService.Shutdown()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or TL_DB_HOST)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or TL_DB_USERNAME)")
	}
	if cfg.Database.Password == "" {
		missing = append(missing, "database.password (or TL_DB_PASSWORD)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or TL_DB_NAME)")
	}
	if cfg.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret (or TL_AUTH_JWT_SECRET)")
	}
	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
