package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-orders/internal/domain/dto"
	"github.com/guttosm/print-orders/internal/i18n"
	"github.com/guttosm/print-orders/internal/service"
)

// LogsHandler lists persisted print log entries.
type LogsHandler struct {
	logs service.LoggingService
}

// NewLogsHandler creates a new LogsHandler.
func NewLogsHandler(logs service.LoggingService) *LogsHandler {
	return &LogsHandler{logs: logs}
}

// ListLogs handles GET /api/logs requests.
//
// @Summary      List print log entries
// @Description  Returns persisted print requests, settings changes and failed requests, newest first.
// @Tags         Logs
// @Produce      json
// @Param        request_id   query string false "Request id"
// @Param        action_type  query string false "Action type" Enums(print_labels, print_invoices, update_store_settings, update_print_options)
// @Param        order_id     query int    false "Only entries that include this order"
// @Param        limit        query int    false "Page size (1-500)" default(50)
// @Param        skip         query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.LogListResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Log store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/logs [get]
func (h *LogsHandler) ListLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query, err := BuildQueryAndValidate[dto.LogQuery](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	opts := query.ToOptions()
	ctx := c.Request.Context()

	entries, err := h.logs.QueryLogs(ctx, opts)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}
	total, err := h.logs.CountLogs(ctx, opts)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}

	builder.SuccessOK(dto.LogListResponse{
		Entries: entries,
		Total:   total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}
