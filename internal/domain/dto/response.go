package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInvalidConfiguration indicates a malformed paper, layout or margin definition.
	ErrCodeInvalidConfiguration = "invalid_configuration"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates a missing or invalid API key.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeUnavailable indicates a dependency (database) is not available.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeTimeout indicates the request deadline passed before the document was built.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-03-14T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_configuration"`
	Message string `json:"message,omitempty" example:"Configuração de impressão inválida"`
	// Details contains additional error details, e.g. the offending field
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-03-14T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnprocessableEntity:
		return ErrCodeInvalidConfiguration
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// FailureResponse describes one order that degraded to a placeholder or was skipped.
type FailureResponse struct {
	OrderID int64  `json:"order_id" example:"1042"`
	Reason  string `json:"reason" example:"order_not_found"`
	Error   string `json:"error,omitempty"`
} // @name FailureResponse

// NewFailureResponses converts lookup failures for JSON output.
func NewFailureResponses(failures []model.UpstreamLookupFailure) []FailureResponse {
	if len(failures) == 0 {
		return nil
	}
	out := make([]FailureResponse, len(failures))
	for i, f := range failures {
		out[i] = FailureResponse{OrderID: f.OrderID, Reason: f.Reason}
		if f.Err != nil {
			out[i].Error = f.Err.Error()
		}
	}
	return out
}

// PreviewResponse is the computed document of a print request, before rendering.
// @Description Computed label sheets or content declarations
type PreviewResponse struct {
	PrintAction string                 `json:"print_action" example:"order_slip"`
	Format      string                 `json:"format" example:"html"`
	Layout      string                 `json:"layout" example:"percentage/2x2"`
	Offset      int                    `json:"offset" example:"0"`
	Labels      *model.LabelDocument   `json:"labels,omitempty"`
	Invoices    *model.InvoiceDocument `json:"invoices,omitempty"`
	Failures    []FailureResponse      `json:"failures,omitempty"`
} // @name PreviewResponse

// LayoutItemResponse is one layout with its geometry resolved against its paper.
type LayoutItemResponse struct {
	Slug       string                 `json:"slug" example:"2x2"`
	Definition model.LayoutDefinition `json:"definition"`
	Resolved   *model.ResolvedLayout  `json:"resolved,omitempty"`
	Error      string                 `json:"error,omitempty"`
} // @name LayoutItemResponse

// LayoutGroupResponse lists the layouts of one group in registration order.
type LayoutGroupResponse struct {
	Slug  string               `json:"slug" example:"percentage"`
	Name  string               `json:"name" example:"Simples"`
	Items []LayoutItemResponse `json:"items"`
} // @name LayoutGroupResponse

// LogListResponse is a page of print log entries.
type LogListResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"42"`
	Limit   int              `json:"limit" example:"50"`
	Skip    int              `json:"skip" example:"0"`
} // @name LogListResponse
