// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strconv"
	"strings"

	"github.com/guttosm/print-orders/internal/domain/model"
)

// PrintQuery holds the query parameters of the print and preview endpoints.
// Empty parameters keep the configured value.
//
// @Description Print request parameters
type PrintQuery struct {
	// OrderIDs is a comma separated list of order ids. Non-numeric and
	// non-positive entries are dropped, order is kept.
	OrderIDs string `form:"oid" example:"1042,1043,1044"`

	PrintAction string `form:"print_action" example:"order_slip"`
	Format      string `form:"format" example:"html"`
	LayoutGroup string `form:"layout_group" example:"percentage"`
	LayoutItem  string `form:"layout_item" example:"2x2"`
	// Offset is the number of leading cells to leave empty on the first sheet.
	Offset string `form:"offset" example:"2"`
} // @name PrintQuery

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidOffset is returned when offset is not an integer.
	ErrInvalidOffset = &ValidationError{Field: "offset", Message: "must be an integer"}
	// ErrInvalidPrintAction is returned for an unknown print action.
	ErrInvalidPrintAction = &ValidationError{Field: "print_action", Message: "must be order_slip or invoice"}
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = &ValidationError{Field: "format", Message: "must be html or pdf"}
)

// Validate checks the enumerated parameters and the offset.
func (q *PrintQuery) Validate() error {
	switch q.PrintAction {
	case "", model.PrintActionLabels, model.PrintActionInvoices:
	default:
		return ErrInvalidPrintAction
	}
	switch strings.ToLower(q.Format) {
	case "", "html", "pdf":
	default:
		return ErrInvalidFormat
	}
	if _, err := q.OffsetValue(); err != nil {
		return err
	}
	return nil
}

// OffsetValue parses Offset; nil when the parameter is absent.
func (q *PrintQuery) OffsetValue() (*int, error) {
	raw := strings.TrimSpace(q.Offset)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, ErrInvalidOffset
	}
	return &v, nil
}

// UpdateStoreRequest replaces the stored sender block.
//
// @Description Sender block printed on labels and declarations
type UpdateStoreRequest struct {
	Name      string `json:"name" binding:"required" example:"Loja Exemplo"`
	Address   string `json:"address" binding:"required" example:"Rua das Flores, 100"`
	Address2  string `json:"address_2,omitempty" example:"Sala 2"`
	City      string `json:"city" binding:"required" example:"São Paulo"`
	State     string `json:"state" binding:"required,len=2" example:"SP"`
	Country   string `json:"country,omitempty" example:"BR"`
	Postcode  string `json:"postcode" binding:"required" example:"01001-000"`
	TaxID     string `json:"tax_id,omitempty" example:"12.345.678/0001-90"`
	LogoURL   string `json:"logo_url,omitempty" binding:"omitempty,url" example:"https://example.com/logo.png"`
	UpdatedBy string `json:"updated_by,omitempty" example:"admin"`
} // @name UpdateStoreRequest

// ToModel converts the request to the stored sender block.
func (r *UpdateStoreRequest) ToModel() model.StoreInfo {
	return model.StoreInfo{
		Name:     strings.TrimSpace(r.Name),
		Address:  strings.TrimSpace(r.Address),
		Address2: strings.TrimSpace(r.Address2),
		City:     strings.TrimSpace(r.City),
		State:    strings.ToUpper(strings.TrimSpace(r.State)),
		Country:  strings.TrimSpace(r.Country),
		Postcode: strings.TrimSpace(r.Postcode),
		TaxID:    strings.TrimSpace(r.TaxID),
		LogoURL:  strings.TrimSpace(r.LogoURL),
	}
}

// UpdatePrintOptionsRequest replaces the stored print options.
//
// @Description Stored print defaults
type UpdatePrintOptionsRequest struct {
	model.PrintOptions
	UpdatedBy string `json:"updated_by,omitempty" example:"admin"`
} // @name UpdatePrintOptionsRequest

// LogQuery filters the print log listing.
type LogQuery struct {
	RequestID  string `form:"request_id"`
	ActionType string `form:"action_type" binding:"omitempty,oneof=print_labels print_invoices update_store_settings update_print_options"`
	OrderID    int64  `form:"order_id" binding:"omitempty,gt=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Skip       int    `form:"skip" binding:"omitempty,min=0"`
} // @name LogQuery

// DefaultLogLimit is used when LogQuery.Limit is zero.
const DefaultLogLimit = 50

// ToOptions converts the query to repository-agnostic log filters.
func (q *LogQuery) ToOptions() model.LogQueryOptions {
	limit := q.Limit
	if limit == 0 {
		limit = DefaultLogLimit
	}
	return model.LogQueryOptions{
		RequestID:  q.RequestID,
		ActionType: q.ActionType,
		OrderID:    q.OrderID,
		Limit:      limit,
		Skip:       q.Skip,
	}
}
