package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the sentinel matched by every ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrUpstreamLookup is the sentinel matched by every UpstreamLookupFailure.
	ErrUpstreamLookup = errors.New("upstream lookup failed")
)

// Reasons attached to an UpstreamLookupFailure.
const (
	ReasonOrderNotFound    = "order_not_found"
	ReasonOrderStoreFailed = "order_store_unavailable"
	ReasonBarcodeFailed    = "barcode_failed"
)

// ConfigurationError reports a malformed paper, layout or margin definition.
// It is fatal for a render request and is raised before any page is built.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

// NewConfigurationError creates a ConfigurationError for the given field.
func NewConfigurationError(field, value, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("configuration: %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// UpstreamLookupFailure reports that data for a single order could not be
// obtained (missing order, unavailable store, barcode failure).
// The batch continues; the affected slot degrades.
type UpstreamLookupFailure struct {
	OrderID int64
	Reason  string
	Err     error
}

func (e *UpstreamLookupFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order %d: %s: %v", e.OrderID, e.Reason, e.Err)
	}
	return fmt.Sprintf("order %d: %s", e.OrderID, e.Reason)
}

// Is reports whether target is ErrUpstreamLookup.
func (e *UpstreamLookupFailure) Is(target error) bool {
	return target == ErrUpstreamLookup
}

func (e *UpstreamLookupFailure) Unwrap() error {
	return e.Err
}

// MissingDataWarning flags an empty or too-short address field on one order.
// It is data attached to the document, never returned as an error.
type MissingDataWarning struct {
	OrderID int64  `json:"order_id"`
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
}

func (w MissingDataWarning) String() string {
	return fmt.Sprintf("order %d: %s is missing", w.OrderID, w.Field)
}
