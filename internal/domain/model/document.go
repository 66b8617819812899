package model

import "time"

// Print actions accepted by the print endpoint.
const (
	PrintActionLabels   = "order_slip"
	PrintActionInvoices = "invoice"
)

// LabelDocument is a fully paginated label sheet run.
//
// @Description Paginated label sheets
type LabelDocument struct {
	Paper    PaperSize               `json:"paper"`
	Layout   ResolvedLayout          `json:"layout"`
	Offset   int                     `json:"offset"`
	Pages    []Page                  `json:"pages"`
	Sender   StoreInfo               `json:"sender"`
	Warnings []MissingDataWarning    `json:"warnings,omitempty"`
	Failures []UpstreamLookupFailure `json:"-"`
}

// Declaration is the content declaration of one order.
type Declaration struct {
	OrderID   int64   `json:"order_id"`
	Recipient Address `json:"recipient"`
	// RecipientTaxID is the recipient CPF or CNPJ taken from order metadata.
	RecipientTaxID string           `json:"recipient_tax_id,omitempty"`
	Aggregate      InvoiceAggregate `json:"aggregate"`
	// Fragment is set by the invoice post-filter to replace the rendered body.
	Fragment string `json:"-"`
}

// InvoiceDocument is a run of content declarations, one per page.
//
// @Description Content declarations
type InvoiceDocument struct {
	Paper        PaperSize               `json:"paper"`
	Declarations []Declaration           `json:"declarations"`
	Sender       StoreInfo               `json:"sender"`
	Date         time.Time               `json:"date"`
	GroupItems   bool                    `json:"group_items"`
	GroupName    string                  `json:"group_name,omitempty"`
	GroupRows    int                     `json:"group_empty_rows,omitempty"`
	Warnings     []MissingDataWarning    `json:"warnings,omitempty"`
	Failures     []UpstreamLookupFailure `json:"-"`
}
