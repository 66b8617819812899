package model

import "github.com/shopspring/decimal"

// WeightUnit is the store's configured product weight unit.
type WeightUnit string

const (
	WeightGrams     WeightUnit = "g"
	WeightKilograms WeightUnit = "kg"
	WeightPounds    WeightUnit = "lbs"
	WeightOunces    WeightUnit = "oz"
)

// ParseWeightUnit returns the unit for s, or an error for unknown units.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch u := WeightUnit(s); u {
	case WeightGrams, WeightKilograms, WeightPounds, WeightOunces:
		return u, nil
	default:
		return "", NewConfigurationError("weight_unit", s, "expected one of g, kg, lbs, oz")
	}
}

// FieldSubtotal is the warning and EMPTY marker key of a line subtotal that
// could not be resolved.
const FieldSubtotal = "subtotal"

// OrderItemSummary is one declaration row.
type OrderItemSummary struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitWeight   float64         `json:"unit_weight"`
	LineWeight   float64         `json:"line_weight"`
	LineSubtotal decimal.Decimal `json:"line_subtotal"`
	// SubtotalUnresolved marks a row whose value is unknown.
	SubtotalUnresolved bool `json:"subtotal_unresolved,omitempty"`
}

// InvoiceAggregate holds an order's declaration totals.
//
// @Description Aggregated declaration totals for one order
type InvoiceAggregate struct {
	QuantityTotal int                `json:"quantity_total"`
	WeightTotal   float64            `json:"weight_total"`
	WeightUnit    WeightUnit         `json:"weight_unit"`
	SubtotalTotal decimal.Decimal    `json:"subtotal_total"`
	Items         []OrderItemSummary `json:"items"`
	// SubtotalUnresolved is set when any row's value is unknown, so
	// SubtotalTotal is only a lower bound.
	SubtotalUnresolved bool `json:"subtotal_unresolved,omitempty"`
}
