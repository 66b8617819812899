//go:build !integration

package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sender = model.StoreInfo{
	Name:     "Papelaria Central",
	Address:  "Av. Afonso Pena 100",
	Address2: "loja 2",
	City:     "Belo Horizonte",
	State:    "MG",
	Postcode: "30130-001",
	TaxID:    "12.345.678/0001-90",
}

func sampleLabel(t *testing.T, id int64) model.LabelData {
	t.Helper()
	png, err := service.NewBarcodeGenerator().Generate("30110-012")
	require.NoError(t, err)

	return model.LabelData{
		OrderID: id,
		Address: model.Address{
			RecipientName:   "Maria Silva",
			Company:         "ACME",
			StreetAndNumber: "Rua das Acácias 120",
			Complement:      "apto 301",
			Neighborhood:    "Funcionários",
			City:            "Belo Horizonte",
			State:           "MG",
			PostalCode:      "30110-012",
		},
		Shipping:   model.ShippingSedex,
		Barcode:    png,
		HasBarcode: true,
		Items: []model.OrderItemSummary{
			{Name: "Caderno", SKU: "CAD-01", Quantity: 2},
			{Name: "Caneta", Quantity: 3},
		},
		CustomerNote: "Deixar na portaria",
		Declared:     decimal.RequireFromString("1234.5"),
	}
}

func labelDocument(t *testing.T) *model.LabelDocument {
	t.Helper()
	layout, err := service.NewLayoutCatalog().Resolve(service.DefaultLayoutGroup, service.DefaultLayoutItem)
	require.NoError(t, err)

	slots := []model.Slot{model.FilledSlot(sampleLabel(t, 7)), model.PlaceholderSlot(8)}
	return &model.LabelDocument{
		Paper:  layout.Paper,
		Layout: layout,
		Offset: 1,
		Pages:  service.Paginate(slots, layout.SlotsPerPage, 1),
		Sender: sender,
	}
}

func invoiceDocument() *model.InvoiceDocument {
	rows := []model.OrderItemSummary{
		{Name: "Caderno", Quantity: 2, LineWeight: 0.6, LineSubtotal: decimal.RequireFromString("25")},
		{Name: "Caneta", Quantity: 3, LineWeight: 0.03, LineSubtotal: decimal.RequireFromString("7.5")},
	}
	return &model.InvoiceDocument{
		Paper: model.PaperA4,
		Declarations: []model.Declaration{{
			OrderID:        7,
			Recipient:      model.Address{RecipientName: "Maria Silva", StreetAndNumber: "Rua das Acácias 120", Neighborhood: "Funcionários", City: "Belo Horizonte", State: "MG", PostalCode: "30110-012"},
			RecipientTaxID: "123.456.789-00",
			Aggregate:      service.Totals(rows, model.WeightKilograms),
		}},
		Sender:    sender,
		Date:      time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC),
		GroupName: "Produtos diversos",
		GroupRows: 3,
	}
}

func TestGrid2x2_RenderLabel(t *testing.T) {
	out, err := NewGrid2x2().RenderLabel(sampleLabel(t, 7), sender)
	require.NoError(t, err)

	for _, want := range []string{
		"Valor declarado: R$ 1.234,50",
		"PEDIDO #7",
		"<strong>(2)</strong> - [CAD-01]Caderno",
		"<strong>(3)</strong> - Caneta",
		"Deixar na portaria",
		"Rua das Acácias 120, apto 301",
		"- ACME",
		"30110-012 MG",
		`src="data:image/png;base64,`,
		"shipping-sedex",
		"Papelaria Central",
		"Av. Afonso Pena 100, loja 2",
		"Belo Horizonte / MG",
		"shop-logo-text",
	} {
		assert.Contains(t, out, want)
	}
}

func TestGrid2x2_MarksUnresolvedDeclaredValue(t *testing.T) {
	label := sampleLabel(t, 7)
	label.DeclaredUnresolved = true

	out, err := NewGrid2x2().RenderLabel(label, sender)
	require.NoError(t, err)

	assert.Contains(t, out, "Valor declarado: [subtotal VAZIO]R$ 1.234,50")
}

func TestDeclarationRenderer_MarksUnresolvedSubtotal(t *testing.T) {
	doc := invoiceDocument()
	rows := doc.Declarations[0].Aggregate.Items
	rows[1].LineSubtotal = decimal.Zero
	rows[1].SubtotalUnresolved = true
	doc.Declarations[0].Aggregate = service.Totals(rows, model.WeightKilograms)

	out, err := NewDeclarationRenderer().RenderDeclaration(doc.Declarations[0], doc)
	require.NoError(t, err)

	assert.Contains(t, out, `<td class="item-value item-price">R$ 25,00</td>`)
	assert.Contains(t, out, `<td class="item-value item-price">[subtotal VAZIO]R$ 0,00</td>`)
	assert.Contains(t, out, `<td class="order-total">[subtotal VAZIO]R$ 25,00</td>`)
}

func TestGrid2x2_EscapesOrderData(t *testing.T) {
	label := sampleLabel(t, 1)
	label.CustomerNote = "<script>alert(1)</script>"
	label.HasBarcode = false

	out, err := NewGrid2x2().RenderLabel(label, model.StoreInfo{Name: "Loja", LogoURL: "https://example.com/logo.png"})
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "data:image/png")
	assert.Contains(t, out, `src="https://example.com/logo.png"`)
}

func TestHTMLDocumentRenderer_RenderLabels(t *testing.T) {
	hooks := service.Hooks{
		Label: func(fragment string, label model.LabelData) string {
			return fragment + "<!-- hooked -->"
		},
	}
	r := NewHTMLDocumentRenderer(WithFragmentHooks(hooks))

	var buf bytes.Buffer
	require.NoError(t, r.RenderLabels(&buf, labelDocument(t)))
	out := buf.String()

	assert.Contains(t, out, "@page { size: 210mm 297mm; margin: 0; }")
	assert.Contains(t, out, "padding: 10mm 10mm 10mm 10mm")
	assert.Contains(t, out, "width: 50%; height: 138.5mm;")
	assert.Equal(t, 1, strings.Count(out, `class="paper paper-A4"`))
	assert.Equal(t, 1, strings.Count(out, `class="order layout-2x2"`))
	assert.Equal(t, 1, strings.Count(out, "<!-- hooked -->"))
	assert.Contains(t, out, `data-order="8"`)
	assert.Equal(t, 3, strings.Count(out, "<span>vazio</span>"), "offset, placeholder and trailing slot")
	assert.Equal(t, "text/html; charset=utf-8", r.ContentType())
}

type stubLabel struct{}

func (stubLabel) RenderLabel(label model.LabelData, _ model.StoreInfo) (string, error) {
	return "<b>stub</b>", nil
}

func TestHTMLDocumentRenderer_LabelVariantAndFragment(t *testing.T) {
	doc := labelDocument(t)

	var buf bytes.Buffer
	require.NoError(t, NewHTMLDocumentRenderer(WithLabelRenderer("2x2", stubLabel{})).RenderLabels(&buf, doc))
	assert.Contains(t, buf.String(), "<b>stub</b>")

	doc.Pages[0].Slots[1].Label.Fragment = "<i>pre-rendered</i>"
	buf.Reset()
	require.NoError(t, NewHTMLDocumentRenderer().RenderLabels(&buf, doc))
	assert.Contains(t, buf.String(), "<i>pre-rendered</i>")
	assert.NotContains(t, buf.String(), "Valor declarado")
}

func TestHTMLDocumentRenderer_RenderInvoices(t *testing.T) {
	tests := []struct {
		name    string
		group   bool
		want    []string
		notWant []string
	}{
		{
			name: "itemized",
			want: []string{
				"Declaração de Conteúdo",
				"12.345.678/0001-90",
				"123.456.789-00",
				`Rua das Acácias 120</span>, <span class="value">Funcionários`,
				"Caderno",
				"R$ 25,00",
				"R$ 32,50",
				"TOTAIS",
				"0,63 kg",
				"Belo Horizonte</span>, 14 de março de 2026",
				"Assinatura do Declarante/Remetente",
			},
			notWant: []string{"Produtos diversos"},
		},
		{
			name:    "grouped",
			group:   true,
			want:    []string{"Produtos diversos", "group-quantity\">5<", "R$ 32,50"},
			notWant: []string{"item-name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := invoiceDocument()
			doc.GroupItems = tt.group

			var buf bytes.Buffer
			require.NoError(t, NewHTMLDocumentRenderer().RenderInvoices(&buf, doc))
			out := buf.String()

			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
			if tt.group {
				assert.Equal(t, 3, strings.Count(out, `<tr><td class="item-value empty">`))
			}
		})
	}
}

func TestHTMLDocumentRenderer_InvoiceHook(t *testing.T) {
	hooks := service.Hooks{
		Invoice: func(fragment string, d model.Declaration) string {
			return "<p>custom declaration</p>"
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewHTMLDocumentRenderer(WithFragmentHooks(hooks)).RenderInvoices(&buf, invoiceDocument()))
	assert.Contains(t, buf.String(), "<p>custom declaration</p>")
	assert.NotContains(t, buf.String(), "TOTAIS")
}

func TestPDFDocumentRenderer(t *testing.T) {
	r := NewPDFDocumentRenderer()
	assert.Equal(t, "application/pdf", r.ContentType())

	t.Run("labels", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderLabels(&buf, labelDocument(t)))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})

	t.Run("invoices", func(t *testing.T) {
		doc := invoiceDocument()
		doc.GroupItems = true

		var buf bytes.Buffer
		require.NoError(t, r.RenderInvoices(&buf, doc))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})

	t.Run("no declarations still yields a page", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderInvoices(&buf, &model.InvoiceDocument{Paper: model.PaperLetter}))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})
}

func TestDimensionMM(t *testing.T) {
	assert.InDelta(t, 26.458, dimensionMM(model.Dimension{Value: 100, Unit: model.UnitPX}), 0.001)
	assert.Equal(t, 40.0, dimensionMM(model.MM(40)))
}
