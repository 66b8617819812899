// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/print-orders/config"
	"github.com/guttosm/print-orders/internal/circuitbreaker"
	"github.com/guttosm/print-orders/internal/repository"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	OrdersRepo     repository.OrderRepositoryInterface
	SettingsRepo   repository.SettingsRepositoryInterface
	LoggingService service.LoggingService

	OrdersCircuitBreaker   *circuitbreaker.CircuitBreaker
	SettingsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB, creates the guarded repositories and
// registers the stored layouts into catalog, which must not be frozen yet.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, catalog *service.LayoutCatalog) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	ordersCB := newCircuitBreaker(cfg, "mongodb-orders")
	settingsCB := newCircuitBreaker(cfg, "mongodb-settings")
	layoutsCB := newCircuitBreaker(cfg, "mongodb-layouts")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	layoutsRepo := repository.NewLayoutRepositoryWithCircuitBreaker(repository.NewLayoutRepository(db), layoutsCB)

	if err := loadStoredLayouts(layoutsRepo, catalog); err != nil {
		log.Warn().Err(err).Msg("Failed to load stored layouts")
	}

	return &DatabaseComponents{
		DB:                     db,
		OrdersRepo:             repository.NewOrderRepositoryWithCircuitBreaker(repository.NewOrderRepository(db), ordersCB),
		SettingsRepo:           repository.NewSettingsRepositoryWithCircuitBreaker(repository.NewSettingsRepository(db), settingsCB),
		LoggingService:         service.NewLoggingService(logsRepo),
		OrdersCircuitBreaker:   ordersCB,
		SettingsCircuitBreaker: settingsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// loadStoredLayouts registers the layouts kept in MongoDB. Layouts whose slug
// is already taken are skipped.
func loadStoredLayouts(repo repository.LayoutRepositoryInterface, catalog *service.LayoutCatalog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	groups, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if added := catalog.RegisterGroups(groups); added > 0 {
		log.Info().Int("layouts", added).Msg("Loaded stored layouts")
	}
	return nil
}
