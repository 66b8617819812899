package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/i18n"
	"github.com/guttosm/print-orders/internal/service"
)

const documentTemplate = `<!doctype html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    @page { size: {{.PageSize}}; margin: 0; }
    * { box-sizing: border-box; }
    body { margin: 0; font-family: Arial, Helvetica, sans-serif; font-size: 9pt; color: #000; }
    .paper { width: {{.PaperWidth}}; height: {{.PaperHeight}}; overflow: hidden; page-break-after: always; display: flex; flex-wrap: wrap; align-content: flex-start; }
    .paper:last-child { page-break-after: auto; }
    .order { overflow: hidden; border: 1px dashed #ccc; padding: 2mm; }
    .order.empty { display: flex; align-items: center; justify-content: center; color: #bbb; }
    .order.placeholder { color: #999; flex-direction: column; }
    .correios-blank { border: 1px solid #000; min-height: 18mm; padding: 1mm; margin-bottom: 1mm; }
    .order-number { font-weight: bold; }
    .customer-note { font-style: italic; margin-top: 1mm; }
    .assinatura-box { margin-bottom: 1mm; }
    .assinatura-row { display: flex; align-items: flex-end; gap: 1mm; margin-bottom: 1mm; }
    .assinatura-row .line { flex: 1; border-bottom: 1px solid #000; height: 3mm; }
    .destinatario { display: flex; border-top: 1px solid #000; padding-top: 1mm; }
    .destinatario .address { flex: 1; }
    .destinatario-label { display: block; font-weight: bold; text-transform: uppercase; }
    .images { width: 40%; text-align: center; }
    .barcode img { max-width: 100%; height: auto; }
    .shipping-method { margin-top: 1mm; font-size: 8pt; }
    .remetente { display: flex; border-top: 1px solid #000; padding-top: 1mm; margin-top: 1mm; font-size: 8pt; }
    .remetente .address { flex: 1; }
    .shop-logo-img { max-width: 30mm; max-height: 15mm; }
    .shop-logo-text { font-weight: bold; }
    .paper.invoice { display: block; padding: 10mm; }
    .invoice-logo { font-size: 14pt; margin: 0 0 3mm; }
    .invoice-page table { width: 100%; border-collapse: collapse; margin-bottom: 3mm; }
    .invoice-page td, .invoice-page th { border: 1px solid #000; padding: 1mm 2mm; text-align: left; }
    .invoice-title { text-align: center !important; }
    .label-right { text-align: right !important; font-weight: bold; }
    .invoice-disclaimer .text { margin-bottom: 2mm; text-align: justify; }
    .signature-date { display: flex; justify-content: space-between; margin-top: 6mm; }
    .signature { border-top: 1px solid #000; padding-top: 1mm; min-width: 70mm; text-align: center; }
  </style>
</head>
<body>
{{- range .Pages}}
<div class="paper paper-{{$.PaperName}}{{if $.Invoice}} invoice{{end}}" style="padding: {{$.PaperPadding}}">
{{- range .Cells}}
{{- if $.Invoice}}
<div class="invoice-inner">{{.Body}}</div>
{{- else if .Filled}}
<div class="order layout-{{$.LayoutName}}" data-order="{{.OrderID}}" style="{{$.CellStyle}}">{{.Body}}</div>
{{- else if .Placeholder}}
<div class="order empty placeholder" data-order="{{.OrderID}}" style="{{$.CellStyle}}"><strong>{{orderNumber .OrderID}}</strong><span>{{t "doc.empty_slot"}}</span></div>
{{- else}}
<div class="order empty" style="{{$.CellStyle}}"><span>{{t "doc.empty_slot"}}</span></div>
{{- end}}
{{- end}}
</div>
{{- end}}
</body>
</html>
`

type cellView struct {
	Filled      bool
	Placeholder bool
	OrderID     int64
	Body        template.HTML
}

type pageView struct {
	Cells []cellView
}

type documentView struct {
	Title        string
	PageSize     template.CSS
	PaperName    string
	PaperWidth   template.CSS
	PaperHeight  template.CSS
	PaperPadding template.CSS
	LayoutName   string
	CellStyle    template.CSS
	Invoice      bool
	Pages        []pageView
}

// HTMLDocumentRenderer writes a self-contained HTML page sized for the paper
// with an @page rule, ready for the browser print dialog.
type HTMLDocumentRenderer struct {
	tpl      *template.Template
	labels   map[string]LabelRenderer
	fallback LabelRenderer
	invoice  InvoiceRenderer
	hooks    service.Hooks
}

// HTMLOption configures an HTMLDocumentRenderer.
type HTMLOption func(*HTMLDocumentRenderer)

// WithLabelRenderer uses r for labels of the named layout.
func WithLabelRenderer(layout string, r LabelRenderer) HTMLOption {
	return func(h *HTMLDocumentRenderer) {
		h.labels[layout] = r
	}
}

// WithInvoiceRenderer replaces the declaration renderer.
func WithInvoiceRenderer(r InvoiceRenderer) HTMLOption {
	return func(h *HTMLDocumentRenderer) {
		h.invoice = r
	}
}

// WithFragmentHooks applies the Label and Invoice post-filters to every fragment.
func WithFragmentHooks(hooks service.Hooks) HTMLOption {
	return func(h *HTMLDocumentRenderer) {
		h.hooks = hooks
	}
}

// NewHTMLDocumentRenderer creates an HTML renderer. Layouts without a
// registered variant use Grid2x2.
func NewHTMLDocumentRenderer(opts ...HTMLOption) *HTMLDocumentRenderer {
	h := &HTMLDocumentRenderer{
		tpl:      template.Must(template.New("document").Funcs(funcs()).Parse(documentTemplate)),
		labels:   make(map[string]LabelRenderer),
		fallback: NewGrid2x2(),
		invoice:  NewDeclarationRenderer(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HTMLDocumentRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (h *HTMLDocumentRenderer) labelRenderer(layout string) LabelRenderer {
	if r, ok := h.labels[layout]; ok {
		return r
	}
	return h.fallback
}

func (h *HTMLDocumentRenderer) RenderLabels(w io.Writer, doc *model.LabelDocument) error {
	renderer := h.labelRenderer(doc.Layout.Definition.Name)

	view := paperView(doc.Paper)
	view.Title = i18n.T(i18n.DocLabelsTitle)
	view.PaperPadding = template.CSS(doc.Layout.PageMargins.String())
	view.LayoutName = doc.Layout.Definition.Name
	view.CellStyle = cellStyle(doc.Layout)

	for _, page := range doc.Pages {
		pv := pageView{Cells: make([]cellView, 0, len(page.Slots))}
		for _, slot := range page.Slots {
			cell := cellView{OrderID: slot.OrderID, Placeholder: slot.Kind == model.SlotPlaceholder}
			if slot.Kind == model.SlotFilled && slot.Label != nil {
				body, err := h.label(renderer, *slot.Label, doc.Sender)
				if err != nil {
					return err
				}
				cell.Filled = true
				cell.Body = body
			}
			pv.Cells = append(pv.Cells, cell)
		}
		view.Pages = append(view.Pages, pv)
	}

	return h.execute(w, view)
}

// label renders one label. A Fragment already set on the label replaces the
// rendered body, and the Label hook sees the result either way.
func (h *HTMLDocumentRenderer) label(r LabelRenderer, label model.LabelData, sender model.StoreInfo) (template.HTML, error) {
	fragment := label.Fragment
	if fragment == "" {
		var err error
		fragment, err = r.RenderLabel(label, sender)
		if err != nil {
			return "", err
		}
	}
	return template.HTML(h.hooks.LabelFragment(fragment, label)), nil
}

func (h *HTMLDocumentRenderer) RenderInvoices(w io.Writer, doc *model.InvoiceDocument) error {
	view := paperView(doc.Paper)
	view.Title = i18n.T(i18n.DocDeclarationTitle)
	view.PaperPadding = "10mm"
	view.Invoice = true

	for _, d := range doc.Declarations {
		fragment := d.Fragment
		if fragment == "" {
			var err error
			fragment, err = h.invoice.RenderDeclaration(d, doc)
			if err != nil {
				return err
			}
		}
		body := template.HTML(h.hooks.InvoiceFragment(fragment, d))
		view.Pages = append(view.Pages, pageView{Cells: []cellView{{Filled: true, OrderID: d.OrderID, Body: body}}})
	}

	return h.execute(w, view)
}

func (h *HTMLDocumentRenderer) execute(w io.Writer, view documentView) error {
	if err := h.tpl.Execute(w, view); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

func paperView(p model.PaperSize) documentView {
	width, height := mm(p.WidthMM), mm(p.HeightMM)
	return documentView{
		PageSize:    template.CSS(width + " " + height),
		PaperName:   p.Name,
		PaperWidth:  template.CSS(width),
		PaperHeight: template.CSS(height),
	}
}

// cellStyle sizes one label cell. Widths keep their declared unit so percentages
// stay relative to the printable area.
func cellStyle(l model.ResolvedLayout) template.CSS {
	return template.CSS(fmt.Sprintf("width: %s; height: %s; margin: %s;", l.CellWidth, l.CellHeight, cssMargin(l.CellMargin)))
}

// cssMargin returns a margin shorthand, treating an empty value as zero.
func cssMargin(s string) string {
	if s == "" {
		return "0"
	}
	if m, err := service.ParseMargins(s); err == nil {
		return m.String()
	}
	return "0"
}

func mm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
}
