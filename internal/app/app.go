// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-orders/config"
	"github.com/guttosm/print-orders/internal/http"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/rs/zerolog/log"
)

// Application is the wired router plus the resources to release on shutdown.
type Application struct {
	Router *gin.Engine

	services *ServiceComponents
	db       *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	return InitializeAppWithHooks(cfg, service.Hooks{})
}

// InitializeAppWithHooks is InitializeApp with extension hooks installed.
// Hook layouts and stored layouts are registered before the catalog is frozen.
func InitializeAppWithHooks(cfg config.Config, hooks service.Hooks) *Application {
	InitializeLogger(cfg.Log)

	services := InitializeServices(cfg, hooks)
	db := InitializeDatabase(cfg.Database, services.Catalog)
	services.Catalog.Freeze()

	if _, err := services.Catalog.Resolve(services.Base.LayoutGroup, services.Base.LayoutItem); err != nil {
		log.Warn().Err(err).Msg("Configured default layout does not resolve; print requests must name a layout")
	}

	routerComponents := InitializeRouter(services, db, cfg, hooks)

	return &Application{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: services,
		db:       db,
		router:   routerComponents,
	}
}

// Close flushes pending log entries and releases the database and cache connections.
func (a *Application) Close(ctx context.Context) {
	if a.router != nil && a.router.AsyncLogger != nil {
		a.router.AsyncLogger.Stop()
		enqueued, dropped, written, errs := a.router.AsyncLogger.Stats()
		log.Info().
			Int64("enqueued", enqueued).
			Int64("dropped", dropped).
			Int64("written", written).
			Int64("errors", errs).
			Msg("Async logger stopped")
	}
	if a.services != nil {
		if a.services.BarcodeCache != nil {
			a.services.BarcodeCache.Stop()
		}
		if a.services.Redis != nil {
			if err := a.services.Redis.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close Redis client")
			}
		}
	}
	if a.db != nil && a.db.DB != nil {
		if err := a.db.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}
