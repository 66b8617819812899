package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// routeGroups returns the groups the configuration can serve. Settings and
// logs need their services; printing and the layout listing are always on.
func routeGroups(handler *Handler, cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if handler != nil {
		groups = append(groups, &PrintRoutes{handler: handler})
	}
	if cfg.Catalog != nil {
		groups = append(groups, &LayoutRoutes{handler: NewCatalogHandler(cfg.Catalog)})
	}
	if cfg.Settings != nil {
		groups = append(groups, &SettingsRoutes{handler: NewSettingsHandler(cfg.Settings, cfg.Entries)})
	}
	if cfg.Logs != nil {
		groups = append(groups, &LogRoutes{handler: NewLogsHandler(cfg.Logs)})
	}
	return groups
}

// PrintRoutes registers the document endpoints.
type PrintRoutes struct {
	handler *Handler
}

func (r *PrintRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/print", r.handler.Print)
	rg.GET("/print/preview", r.handler.Preview)
}

// LayoutRoutes registers the layout catalog listing.
type LayoutRoutes struct {
	handler *CatalogHandler
}

func (r *LayoutRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/layouts", r.handler.ListLayouts)
}

// SettingsRoutes registers the stored settings endpoints.
type SettingsRoutes struct {
	handler *SettingsHandler
}

func (r *SettingsRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	settings := rg.Group("/settings")
	settings.GET("/store", r.handler.GetStore)
	settings.PUT("/store", r.handler.UpdateStore)
	settings.GET("/options", r.handler.GetOptions)
	settings.PUT("/options", r.handler.UpdateOptions)
}

// LogRoutes registers the print log listing.
type LogRoutes struct {
	handler *LogsHandler
}

func (r *LogRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/logs", r.handler.ListLogs)
}
