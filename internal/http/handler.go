package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-orders/internal/domain/dto"
	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/i18n"
	"github.com/guttosm/print-orders/internal/metrics"
	"github.com/guttosm/print-orders/internal/middleware"
	"github.com/guttosm/print-orders/internal/render"
	"github.com/guttosm/print-orders/internal/service"
)

// Handler serves the print and preview endpoints.
type Handler struct {
	printer   service.PrintService
	renderers map[string]render.DocumentRenderer
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDocumentRenderer installs r for the given output format, replacing the default.
func WithDocumentRenderer(format string, r render.DocumentRenderer) HandlerOption {
	return func(h *Handler) {
		h.renderers[format] = r
	}
}

// NewHandler creates a new Handler with the built-in HTML and PDF renderers.
func NewHandler(printer service.PrintService, opts ...HandlerOption) *Handler {
	h := &Handler{
		printer: printer,
		renderers: map[string]render.DocumentRenderer{
			service.FormatHTML: render.NewHTMLDocumentRenderer(),
			service.FormatPDF:  render.NewPDFDocumentRenderer(),
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Print handles GET /api/print requests.
//
// @Summary      Print labels or content declarations
// @Description  Builds the label sheets (print_action=order_slip) or content declarations (print_action=invoice) for the given orders and returns the rendered document. Orders that cannot be loaded degrade to a placeholder cell; the request still succeeds.
// @Tags         Print
// @Produce      html
// @Produce      application/pdf
// @Param        oid           query string false "Comma separated order ids" example(1042,1043)
// @Param        print_action  query string false "order_slip or invoice" Enums(order_slip, invoice)
// @Param        format        query string false "html or pdf" Enums(html, pdf)
// @Param        layout_group  query string false "Layout group slug" example(percentage)
// @Param        layout_item   query string false "Layout item slug" example(2x2)
// @Param        offset        query int    false "Cells to leave empty on the first sheet"
// @Success      200 {file} file "Rendered document"
// @Failure      400 {object} dto.ErrorResponse "Invalid parameter"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      422 {object} dto.ErrorResponse "Invalid paper, layout or margin definition"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Rendering failed"
// @Failure      504 {object} dto.ErrorResponse "Request deadline exceeded"
// @Security     ApiKeyAuth
// @Router       /api/print [get]
func (h *Handler) Print(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := h.printRequest(c, builder)
	if !ok {
		return
	}

	res, err := h.printer.Print(c.Request.Context(), req)
	if err != nil {
		h.printError(builder, err)
		return
	}

	renderer, ok := h.renderers[res.Config.Format]
	if !ok {
		err := model.NewConfigurationError("format", res.Config.Format, "no renderer for format")
		h.printError(builder, err)
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	if res.Invoices != nil {
		err = renderer.RenderInvoices(&buf, res.Invoices)
	} else {
		err = renderer.RenderLabels(&buf, res.Labels)
	}
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyRenderFailed, err)
		return
	}
	metrics.RecordRender(res.Config.PrintAction, res.Config.Format, time.Since(start))

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", documentFilename(res.Config)))
	c.Data(http.StatusOK, renderer.ContentType(), buf.Bytes())
}

// Preview handles GET /api/print/preview requests.
//
// @Summary      Preview a print request
// @Description  Returns the computed document of a print request as JSON: resolved layout, pages and slots, declarations, warnings and per-order failures.
// @Tags         Print
// @Produce      json
// @Param        oid           query string false "Comma separated order ids" example(1042,1043)
// @Param        print_action  query string false "order_slip or invoice" Enums(order_slip, invoice)
// @Param        layout_group  query string false "Layout group slug" example(percentage)
// @Param        layout_item   query string false "Layout item slug" example(2x2)
// @Param        offset        query int    false "Cells to leave empty on the first sheet"
// @Success      200 {object} dto.SuccessResponse{data=dto.PreviewResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid parameter"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      422 {object} dto.ErrorResponse "Invalid paper, layout or margin definition"
// @Failure      504 {object} dto.ErrorResponse "Request deadline exceeded"
// @Security     ApiKeyAuth
// @Router       /api/print/preview [get]
func (h *Handler) Preview(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := h.printRequest(c, builder)
	if !ok {
		return
	}

	res, err := h.printer.Print(c.Request.Context(), req)
	if err != nil {
		h.printError(builder, err)
		return
	}

	builder.SuccessOK(newPreviewResponse(res))
}

// printRequest binds and validates the query string. It writes the 400
// response itself and reports false when the query is rejected.
func (h *Handler) printRequest(c *gin.Context, builder *ResponseBuilder) (service.PrintRequest, bool) {
	query, err := BuildQueryAndValidate[dto.PrintQuery](c)
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, validationKey(err), validationDetails(err), err)
		return service.PrintRequest{}, false
	}

	// Validate already parsed the offset.
	offset, _ := query.OffsetValue()
	return service.PrintRequest{
		RequestID:   middleware.GetRequestID(c),
		OrderIDs:    service.ParseOrderIDs(query.OrderIDs),
		PrintAction: query.PrintAction,
		Format:      strings.ToLower(query.Format),
		LayoutGroup: query.LayoutGroup,
		LayoutItem:  query.LayoutItem,
		Offset:      offset,
	}, true
}

// printError maps a fatal print error to its response.
func (h *Handler) printError(builder *ResponseBuilder, err error) {
	var cfgErr *model.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidConfiguration, configurationDetails(cfgErr), err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func validationKey(err error) string {
	switch {
	case errors.Is(err, dto.ErrInvalidOffset):
		return i18n.ErrKeyInvalidOffset
	case errors.Is(err, dto.ErrInvalidPrintAction):
		return i18n.ErrKeyInvalidPrintAction
	case errors.Is(err, dto.ErrInvalidFormat):
		return i18n.ErrKeyInvalidFormat
	default:
		return i18n.ErrKeyInvalidRequest
	}
}

func validationDetails(err error) map[string]string {
	var vErr *dto.ValidationError
	if errors.As(err, &vErr) {
		return map[string]string{"field": vErr.Field}
	}
	return nil
}

func configurationDetails(err *model.ConfigurationError) map[string]string {
	details := map[string]string{"field": err.Field, "reason": err.Reason}
	if err.Value != "" {
		details["value"] = err.Value
	}
	return details
}

func newPreviewResponse(res *service.PrintResult) dto.PreviewResponse {
	cfg := res.Config
	resp := dto.PreviewResponse{
		PrintAction: cfg.PrintAction,
		Format:      cfg.Format,
		Layout:      cfg.LayoutGroup + "/" + cfg.LayoutItem,
		Labels:      res.Labels,
		Invoices:    res.Invoices,
	}
	if res.Labels != nil {
		resp.Offset = res.Labels.Offset
		resp.Failures = dto.NewFailureResponses(res.Labels.Failures)
	}
	if res.Invoices != nil {
		resp.Failures = dto.NewFailureResponses(res.Invoices.Failures)
	}
	return resp
}

// documentFilename names the inline attachment after the print action.
func documentFilename(cfg service.RenderConfig) string {
	name := "etiquetas"
	if cfg.PrintAction == model.PrintActionInvoices {
		name = "declaracoes-de-conteudo"
	}
	return name + "." + cfg.Format
}
