package model

import "github.com/shopspring/decimal"

// SlotKind distinguishes filled label positions from empty ones.
type SlotKind string

const (
	SlotEmpty  SlotKind = "empty"
	SlotFilled SlotKind = "filled"
	// SlotPlaceholder keeps an order's position when its data could not be loaded.
	SlotPlaceholder SlotKind = "placeholder"
)

// LabelData is everything a label renderer needs for one order.
type LabelData struct {
	OrderID      int64              `json:"order_id"`
	Address      Address            `json:"address"`
	Shipping     ShippingCategory   `json:"shipping"`
	Barcode      []byte             `json:"-"`
	HasBarcode   bool               `json:"has_barcode"`
	Items        []OrderItemSummary `json:"items"`
	CustomerNote string             `json:"customer_note,omitempty"`
	Declared     decimal.Decimal    `json:"declared_value"`
	// DeclaredUnresolved is set when a line subtotal behind Declared is unknown.
	DeclaredUnresolved bool                 `json:"declared_unresolved,omitempty"`
	Warnings           []MissingDataWarning `json:"warnings,omitempty"`
	// Fragment is set by the label post-filter to replace the rendered label body.
	Fragment string `json:"-"`
}

// Slot is one position on a label sheet.
type Slot struct {
	Kind    SlotKind   `json:"kind"`
	OrderID int64      `json:"order_id,omitempty"`
	Label   *LabelData `json:"label,omitempty"`
}

// EmptySlot returns an unused sheet position.
func EmptySlot() Slot {
	return Slot{Kind: SlotEmpty}
}

// FilledSlot returns a slot holding one order's label.
func FilledSlot(label LabelData) Slot {
	return Slot{Kind: SlotFilled, OrderID: label.OrderID, Label: &label}
}

// PlaceholderSlot returns a slot for an order whose data could not be loaded.
func PlaceholderSlot(orderID int64) Slot {
	return Slot{Kind: SlotPlaceholder, OrderID: orderID}
}

// IsEmpty reports whether the slot carries no label.
func (s Slot) IsEmpty() bool {
	return s.Kind != SlotFilled
}

// Page is one physical sheet of slots.
type Page struct {
	Index int    `json:"index"`
	Slots []Slot `json:"slots"`
}
