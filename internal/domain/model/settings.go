package model

import "time"

// PrintOptions are the admin-editable print defaults. Nil pointers and empty
// strings leave the configured value in place.
//
// @Description Stored print options
type PrintOptions struct {
	LayoutGroup           string `json:"layout_group,omitempty" bson:"layout_group,omitempty" example:"percentage"`
	LayoutItem            string `json:"layout_item,omitempty" bson:"layout_item,omitempty" example:"2x2"`
	WeightUnit            string `json:"weight_unit,omitempty" bson:"weight_unit,omitempty" example:"kg"`
	InvoiceGroupItems     *bool  `json:"invoice_group_items,omitempty" bson:"invoice_group_items,omitempty"`
	InvoiceGroupName      string `json:"invoice_group_name,omitempty" bson:"invoice_group_name,omitempty"`
	InvoiceGroupEmptyRows *int   `json:"invoice_group_empty_rows,omitempty" bson:"invoice_group_empty_rows,omitempty"`
	ValidateAddresses     *bool  `json:"validate_addresses,omitempty" bson:"validate_addresses,omitempty"`
	BarcodeWidthFactor    int    `json:"barcode_width_factor,omitempty" bson:"barcode_width_factor,omitempty"`
	BarcodeHeight         int    `json:"barcode_height,omitempty" bson:"barcode_height,omitempty"`
}

// PrintSettings is the stored settings document: sender block plus print options.
type PrintSettings struct {
	Store     StoreInfo    `json:"store" bson:"store"`
	Options   PrintOptions `json:"options" bson:"options"`
	UpdatedBy string       `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}
