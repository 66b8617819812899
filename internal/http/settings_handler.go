package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-orders/internal/circuitbreaker"
	"github.com/guttosm/print-orders/internal/domain/dto"
	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/i18n"
	"github.com/guttosm/print-orders/internal/middleware"
	"github.com/guttosm/print-orders/internal/service"
)

// SettingsHandler serves the stored sender block and print options.
type SettingsHandler struct {
	settings service.SettingsService
	audit    service.PrintLogger
}

// NewSettingsHandler creates a new SettingsHandler. audit may be nil.
func NewSettingsHandler(settings service.SettingsService, audit service.PrintLogger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		audit:    audit,
	}
}

// GetStore handles GET /api/settings/store requests.
//
// @Summary      Get sender block
// @Description  Returns the effective sender block printed on labels and declarations: configured values overridden by stored ones.
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.StoreInfo}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/settings/store [get]
func (h *SettingsHandler) GetStore(c *gin.Context) {
	builder := NewResponseBuilder(c)

	store, err := h.settings.Store(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}

	builder.SuccessOK(store)
}

// UpdateStore handles PUT /api/settings/store requests.
//
// @Summary      Update sender block
// @Description  Replaces the stored sender block. Takes effect on the next print request.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateStoreRequest true "Sender block"
// @Success      200 {object} dto.SuccessResponse{data=model.PrintSettings}
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "No database configured or settings store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/settings/store [put]
func (h *SettingsHandler) UpdateStore(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateStoreRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	store := req.ToModel()
	settings, err := h.settings.UpdateStore(c.Request.Context(), store, req.UpdatedBy)
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionUpdateStore, "Sender block update failed", err, nil)
		h.updateError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionUpdateStore, "Sender block updated", map[string]interface{}{
		"store_name": store.Name,
		"updated_by": req.UpdatedBy,
	})
	builder.SuccessOK(settings)
}

// GetOptions handles GET /api/settings/options requests.
//
// @Summary      Get stored print options
// @Description  Returns the stored print defaults. Unset fields fall back to the service configuration.
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.PrintOptions}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/settings/options [get]
func (h *SettingsHandler) GetOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}

	var opts model.PrintOptions
	if settings != nil {
		opts = settings.Options
	}
	builder.SuccessOK(opts)
}

// UpdateOptions handles PUT /api/settings/options requests.
//
// @Summary      Update stored print options
// @Description  Replaces the stored print defaults. The layout must exist in the catalog and the weight unit must be one of g, kg, lbs, oz.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdatePrintOptionsRequest true "Print options"
// @Success      200 {object} dto.SuccessResponse{data=model.PrintSettings}
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      422 {object} dto.ErrorResponse "Unknown layout or weight unit"
// @Failure      503 {object} dto.ErrorResponse "No database configured or settings store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/settings/options [put]
func (h *SettingsHandler) UpdateOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdatePrintOptionsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	settings, err := h.settings.UpdateOptions(c.Request.Context(), req.PrintOptions, req.UpdatedBy)
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionUpdateOptions, "Print options update failed", err, nil)
		h.updateError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionUpdateOptions, "Print options updated", map[string]interface{}{
		"layout":     req.LayoutGroup + "/" + req.LayoutItem,
		"updated_by": req.UpdatedBy,
	})
	builder.SuccessOK(settings)
}

func (h *SettingsHandler) updateError(builder *ResponseBuilder, err error) {
	var cfgErr *model.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidSettings, configurationDetails(cfgErr), err)
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
