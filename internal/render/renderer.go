// Package render turns prepared label and declaration documents into
// printable HTML or PDF.
package render

import (
	"io"

	"github.com/guttosm/print-orders/internal/domain/model"
)

// LabelRenderer renders the body of one label. Each layout family has its own variant.
type LabelRenderer interface {
	RenderLabel(label model.LabelData, sender model.StoreInfo) (string, error)
}

// InvoiceRenderer renders the body of one content declaration.
type InvoiceRenderer interface {
	RenderDeclaration(d model.Declaration, doc *model.InvoiceDocument) (string, error)
}

// DocumentRenderer writes a whole print run in one output format.
type DocumentRenderer interface {
	ContentType() string
	RenderLabels(w io.Writer, doc *model.LabelDocument) error
	RenderInvoices(w io.Writer, doc *model.InvoiceDocument) error
}
