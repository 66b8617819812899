// Package app provides router configuration.
package app

import (
	"github.com/guttosm/print-orders/config"
	"github.com/guttosm/print-orders/internal/circuitbreaker"
	"github.com/guttosm/print-orders/internal/http"
	"github.com/guttosm/print-orders/internal/middleware"
	"github.com/guttosm/print-orders/internal/render"
	"github.com/guttosm/print-orders/internal/repository"
	"github.com/guttosm/print-orders/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	AsyncLogger   *middleware.AsyncLogger
}

// InitializeRouter wires the print service, its handlers and the router configuration.
// dbComponents may be nil; printing then degrades every order to a placeholder.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
	hooks service.Hooks,
) *RouterComponents {
	var orders repository.OrderRepositoryInterface
	var settingsRepo repository.SettingsRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		orders = dbComponents.OrdersRepo
		settingsRepo = dbComponents.SettingsRepo
		loggingService = dbComponents.LoggingService
	}

	settings := service.NewCachedSettingsService(
		service.NewSettingsService(settingsRepo,
			service.WithBaseStore(services.Base.Store),
			service.WithSettingsCatalog(services.Catalog),
		),
		cfg.Cache.SettingsTTL,
	)

	opts := []service.PrintOption{
		service.WithBaseConfig(services.Base),
		service.WithCatalog(services.Catalog),
		service.WithBarcodes(services.Barcodes),
		service.WithSettings(settings),
		service.WithHooks(hooks),
	}

	// The async logger is nil without a logging service.
	asyncLogger := middleware.NewAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	if asyncLogger != nil {
		opts = append(opts, service.WithPrintLogger(asyncLogger))
	}

	printer := service.NewPrintService(orders, opts...)

	handler := http.NewHandler(printer,
		http.WithDocumentRenderer(service.FormatHTML, render.NewHTMLDocumentRenderer(render.WithFragmentHooks(hooks))),
	)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		breakers := map[string]*circuitbreaker.CircuitBreaker{
			"mongodb_orders":   dbComponents.OrdersCircuitBreaker,
			"mongodb_settings": dbComponents.SettingsCircuitBreaker,
			"mongodb_logs":     dbComponents.LogsCircuitBreaker,
		}
		for name, cb := range breakers {
			if cb != nil {
				healthHandler.RegisterCircuitBreaker(name, cb)
			}
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Catalog:        services.Catalog,
	}
	if dbComponents != nil {
		routerCfg.Settings = settings
		routerCfg.Logs = loggingService
	}
	if asyncLogger != nil {
		routerCfg.Entries = asyncLogger
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
		AsyncLogger:   asyncLogger,
	}
}
