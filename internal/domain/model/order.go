package model

import "github.com/shopspring/decimal"

// FieldSet is one billing or shipping address block as stored on an order.
type FieldSet struct {
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Company   string `json:"company" bson:"company"`
	Address1  string `json:"address_1" bson:"address_1"`
	Address2  string `json:"address_2" bson:"address_2"`
	City      string `json:"city" bson:"city"`
	State     string `json:"state" bson:"state"`
	Postcode  string `json:"postcode" bson:"postcode"`
}

// IsEmpty reports whether every field is blank.
func (f FieldSet) IsEmpty() bool {
	return f == FieldSet{}
}

// MetaEntry is one key/value pair of order metadata, in insertion order.
type MetaEntry struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

// LineItem is one product line of an order.
type LineItem struct {
	Name       string          `json:"name"`
	SKU        string          `json:"sku,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitWeight float64         `json:"unit_weight"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	// SubtotalUnresolved is set when the stored subtotal could not be read;
	// Subtotal is then zero.
	SubtotalUnresolved bool `json:"subtotal_unresolved,omitempty"`
}

// ShippingMethod is one shipping line of an order.
type ShippingMethod struct {
	MethodID string `json:"method_id" bson:"method_id"`
	Title    string `json:"title" bson:"title"`
}

// Order is the read-only order record consumed by the print pipeline.
type Order struct {
	ID              int64            `json:"id"`
	Billing         FieldSet         `json:"billing"`
	Shipping        FieldSet         `json:"shipping"`
	Items           []LineItem       `json:"items"`
	CustomerNote    string           `json:"customer_note,omitempty"`
	ShippingMethods []ShippingMethod `json:"shipping_methods"`
	MetaData        []MetaEntry      `json:"meta_data"`
}
