package service

import (
	"math"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Aggregate computes the declaration totals of an order's line items.
// Line weight is unit weight times quantity; negative quantities count as
// zero. Item order is preserved.
func Aggregate(items []model.LineItem, unit model.WeightUnit) model.InvoiceAggregate {
	rows := make([]model.OrderItemSummary, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty < 0 {
			qty = 0
		}
		rows = append(rows, model.OrderItemSummary{
			Name:               item.Name,
			SKU:                item.SKU,
			Quantity:           qty,
			UnitWeight:         item.UnitWeight,
			LineWeight:         item.UnitWeight * float64(qty),
			LineSubtotal:       item.Subtotal,
			SubtotalUnresolved: item.SubtotalUnresolved,
		})
	}
	return Totals(rows, unit)
}

// Totals sums declaration rows. The weight total is rounded to a whole
// number only when unit is grams, half away from zero (math.Round).
func Totals(rows []model.OrderItemSummary, unit model.WeightUnit) model.InvoiceAggregate {
	agg := model.InvoiceAggregate{
		WeightUnit:    unit,
		SubtotalTotal: decimal.Zero,
		Items:         rows,
	}
	if agg.Items == nil {
		agg.Items = []model.OrderItemSummary{}
	}

	for _, row := range rows {
		agg.QuantityTotal += row.Quantity
		agg.WeightTotal += row.LineWeight
		agg.SubtotalTotal = agg.SubtotalTotal.Add(row.LineSubtotal)
		agg.SubtotalUnresolved = agg.SubtotalUnresolved || row.SubtotalUnresolved
	}

	if unit == model.WeightGrams {
		agg.WeightTotal = math.Round(agg.WeightTotal)
	}
	return agg
}

// DeclaredValue is the value printed on a label: the sum of line subtotals.
func DeclaredValue(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return total
}

// SubtotalWarnings flags every line of order whose subtotal could not be
// resolved. Value carries the line name.
func SubtotalWarnings(order model.Order) []model.MissingDataWarning {
	var warnings []model.MissingDataWarning
	for _, item := range order.Items {
		if item.SubtotalUnresolved {
			warnings = append(warnings, model.MissingDataWarning{OrderID: order.ID, Field: model.FieldSubtotal, Value: item.Name})
		}
	}
	return warnings
}
