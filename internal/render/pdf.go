package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/i18n"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 3.2
	pdfCellPad    = 2.0
	pxToMM        = 25.4 / 96
)

// PDFDocumentRenderer draws the same pages as the HTML renderer with gofpdf.
// Fragment hooks do not apply; PDF output is drawn from the document data.
type PDFDocumentRenderer struct{}

// NewPDFDocumentRenderer creates a PDF renderer.
func NewPDFDocumentRenderer() *PDFDocumentRenderer {
	return &PDFDocumentRenderer{}
}

func (r *PDFDocumentRenderer) ContentType() string {
	return "application/pdf"
}

// pdfDoc couples a gofpdf document with its cp1252 translator so accented
// text survives the core fonts.
type pdfDoc struct {
	*gofpdf.Fpdf
	tr func(string) string
}

func newPDFDoc(paper model.PaperSize, title string) *pdfDoc {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: paper.WidthMM, Ht: paper.HeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("print-orders", true)
	return &pdfDoc{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (d *pdfDoc) output(w io.Writer) error {
	if err := d.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := d.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// text writes s at (x, y) clipped to width w and returns the y of the next line.
func (d *pdfDoc) text(x, y, w float64, s string, style string, size float64) float64 {
	d.SetFont(pdfFont, style, size)
	d.SetXY(x, y)
	d.CellFormat(w, pdfLineHeight, d.fit(s, w), "", 0, "L", false, 0, "")
	return y + pdfLineHeight
}

// fit translates s and trims it until it fits in w millimeters.
func (d *pdfDoc) fit(s string, w float64) string {
	out := d.tr(s)
	if w <= 0 {
		return out
	}
	for len(out) > 0 && d.GetStringWidth(out) > w {
		out = out[:len(out)-1]
	}
	return out
}

func (r *PDFDocumentRenderer) RenderLabels(w io.Writer, doc *model.LabelDocument) error {
	pdf := newPDFDoc(doc.Paper, i18n.T(i18n.DocLabelsTitle))

	l := doc.Layout
	cols := l.Columns()
	cellW := l.CellWidthMM
	if cellW <= 0 {
		cellW = (doc.Paper.WidthMM - l.PageMargins.Left - l.PageMargins.Right) / float64(cols)
	}
	cellH := dimensionMM(l.CellHeight)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for i, slot := range page.Slots {
			x := l.PageMargins.Left + float64(i%cols)*cellW
			y := l.PageMargins.Top + float64(i/cols)*cellH

			pdf.SetDrawColor(200, 200, 200)
			pdf.SetDashPattern([]float64{1, 1}, 0)
			pdf.Rect(x, y, cellW, cellH, "D")
			pdf.SetDashPattern([]float64{}, 0)
			pdf.SetDrawColor(0, 0, 0)

			switch {
			case slot.Kind == model.SlotFilled && slot.Label != nil:
				drawLabel(pdf, x+pdfCellPad, y+pdfCellPad, cellW-2*pdfCellPad, cellH-2*pdfCellPad, *slot.Label, doc.Sender)
			case slot.Kind == model.SlotPlaceholder:
				pdf.SetTextColor(150, 150, 150)
				pdf.text(x+pdfCellPad, y+cellH/2-pdfLineHeight, cellW-2*pdfCellPad, fmt.Sprintf(i18n.T(i18n.DocOrderNumber), slot.OrderID), "B", 8)
				pdf.text(x+pdfCellPad, y+cellH/2, cellW-2*pdfCellPad, i18n.T(i18n.DocEmptySlot), "", 8)
				pdf.SetTextColor(0, 0, 0)
			default:
				pdf.SetTextColor(190, 190, 190)
				pdf.text(x+cellW/2-5, y+cellH/2-pdfLineHeight/2, 10, i18n.T(i18n.DocEmptySlot), "", 8)
				pdf.SetTextColor(0, 0, 0)
			}
		}
	}

	return pdf.output(w)
}

func drawLabel(pdf *pdfDoc, x, y, w, h float64, label model.LabelData, sender model.StoreInfo) {
	bottom := y + h

	// Declared value and order items.
	boxTop := y
	y = pdf.text(x+1, y+1, w-2, i18n.T(i18n.DocDeclaredValue)+" "+FormatMoney(label.Declared, label.DeclaredUnresolved), "", 7)
	y = pdf.text(x+1, y, w-2, fmt.Sprintf(i18n.T(i18n.DocOrderNumber), label.OrderID), "B", 7)
	for _, item := range label.Items {
		if y > boxTop+h*0.3 {
			break
		}
		line := "(" + strconv.Itoa(item.Quantity) + ") - "
		if item.SKU != "" {
			line += "[" + item.SKU + "]"
		}
		y = pdf.text(x+1, y, w-2, line+item.Name, "", 6.5)
	}
	if label.CustomerNote != "" {
		y = pdf.text(x+1, y, w-2, label.CustomerNote, "I", 6.5)
	}
	y += 1
	pdf.Rect(x, boxTop, w, y-boxTop, "D")

	// Signature lines.
	y += 1
	pdf.text(x, y, 16, i18n.T(i18n.DocReceiver), "", 6.5)
	pdf.Line(x+16, y+pdfLineHeight, x+w, y+pdfLineHeight)
	y += pdfLineHeight + 1
	half := w / 2
	pdf.text(x, y, 14, i18n.T(i18n.DocSignature), "", 6.5)
	pdf.Line(x+14, y+pdfLineHeight, x+half-1, y+pdfLineHeight)
	pdf.text(x+half, y, 15, i18n.T(i18n.DocDocument), "", 6.5)
	pdf.Line(x+half+15, y+pdfLineHeight, x+w, y+pdfLineHeight)
	y += pdfLineHeight + 2

	// Recipient block with barcode and shipping mark on the right.
	pdf.Line(x, y, x+w, y)
	y += 1
	addrW := w * 0.6
	imgX := x + addrW + 1
	imgW := w - addrW - 1
	recipientTop := y

	a := label.Address
	y = pdf.text(x, y, addrW, strings.ToUpper(i18n.T(i18n.DocRecipient)), "B", 7)
	y = pdf.text(x, y, addrW, recipientLine(a), "B", 8)
	y = pdf.text(x, y, addrW, addressLine(a), "", 7.5)
	y = pdf.text(x, y, addrW, a.Neighborhood, "", 7.5)
	y = pdf.text(x, y, addrW, a.PostalCode+" "+cityState(a.City, a.State), "B", 7.5)

	iy := pdf.text(imgX, recipientTop, imgW, strings.TrimSpace(a.PostalCode+" "+a.State), "", 6.5)
	if label.HasBarcode {
		name := fmt.Sprintf("barcode-%d", label.OrderID)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(label.Barcode))
		pdf.ImageOptions(name, imgX, iy, imgW, 10, false, opts, 0, "")
		iy += 11
	}
	for _, line := range shippingLines(label.Shipping) {
		iy = pdf.text(imgX, iy, imgW, line, "B", 6.5)
	}
	if iy > y {
		y = iy
	}

	// Sender.
	y += 1
	if y+4*pdfLineHeight > bottom {
		return
	}
	pdf.Line(x, y, x+w, y)
	y += 1
	y = pdf.text(x, y, w, i18n.T(i18n.DocSender), "B", 6.5)
	y = pdf.text(x, y, w, sender.Name, "", 6.5)
	if sender.TaxID != "" {
		y = pdf.text(x, y, w, sender.TaxID, "", 6.5)
	}
	y = pdf.text(x, y, w, senderAddress(sender), "", 6.5)
	pdf.text(x, y, w, sender.Postcode+" "+cityState(sender.City, sender.State), "", 6.5)
}

// shippingLines is the text form of the shipping mark.
func shippingLines(c model.ShippingCategory) []string {
	switch c {
	case model.ShippingSedex:
		return []string{"SEDEX", i18n.T(i18n.DocCorreios)}
	case model.ShippingPac:
		return []string{"PAC", i18n.T(i18n.DocCorreios)}
	case model.ShippingLocalPickup:
		return []string{i18n.T(i18n.DocLocalPickup)}
	case model.ShippingImpressoNormal, model.ShippingImpressoUrgente:
		return []string{i18n.T(i18n.DocImpressoFechado), i18n.T(i18n.DocImpressoAberto), i18n.T(i18n.DocCorreios)}
	case model.ShippingCarta:
		return []string{i18n.T(i18n.DocCarta), i18n.T(i18n.DocCorreios)}
	default:
		return nil
	}
}

// dimensionMM converts a resolved cell dimension to millimeters. Percentages
// never reach here; the resolver converts them.
func dimensionMM(d model.Dimension) float64 {
	if d.Unit == model.UnitPX {
		return d.Value * pxToMM
	}
	return d.Value
}

func (r *PDFDocumentRenderer) RenderInvoices(w io.Writer, doc *model.InvoiceDocument) error {
	pdf := newPDFDoc(doc.Paper, i18n.T(i18n.DocDeclarationTitle))
	if len(doc.Declarations) == 0 {
		pdf.AddPage()
	}
	for _, d := range doc.Declarations {
		pdf.AddPage()
		drawDeclaration(pdf, doc, d)
	}
	return pdf.output(w)
}

func drawDeclaration(pdf *pdfDoc, doc *model.InvoiceDocument, d model.Declaration) {
	const margin = 10.0
	width := doc.Paper.WidthMM - 2*margin
	half := width / 2
	row := 6.0

	cell := func(w float64, s, border, align, style string, ln int) {
		pdf.SetFont(pdfFont, style, 8)
		pdf.CellFormat(w, row, pdf.fit(s, w-1), border, ln, align, false, 0, "")
	}
	labeled := func(w float64, label, value string, ln int) {
		cell(w, label+" "+value, "1", "L", "", ln)
	}

	pdf.SetLeftMargin(margin)
	pdf.SetXY(margin, margin)
	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(width, 10, pdf.tr(i18n.T(i18n.DocDeclarationTitle)), "", 1, "L", false, 0, "")

	s := doc.Sender
	labeled(half, i18n.T(i18n.DocSenderHeading), s.Name, 0)
	labeled(half, i18n.T(i18n.DocTaxID), s.TaxID, 1)
	labeled(width, i18n.T(i18n.DocAddress), senderAddress(s), 1)
	labeled(half, i18n.T(i18n.DocCityState), cityState(s.City, s.State), 0)
	labeled(half, i18n.T(i18n.DocPostcode), s.Postcode, 1)
	pdf.Ln(3)

	a := d.Recipient
	labeled(half, i18n.T(i18n.DocRecipientHeading), recipientLine(a), 0)
	labeled(half, i18n.T(i18n.DocTaxID), d.RecipientTaxID, 1)
	labeled(width, i18n.T(i18n.DocAddress), addressLine(a)+", "+a.Neighborhood, 1)
	labeled(half, i18n.T(i18n.DocCityState), cityState(a.City, a.State), 0)
	labeled(half, i18n.T(i18n.DocPostcode), a.PostalCode, 1)
	pdf.Ln(3)

	colItem, colQty, colValue := 15.0, 20.0, 35.0
	colDesc := width - colItem - colQty - colValue

	cell(width, i18n.T(i18n.DocGoods), "1", "C", "B", 1)
	cell(colItem, i18n.T(i18n.DocItem), "1", "C", "B", 0)
	cell(colDesc, i18n.T(i18n.DocDescription), "1", "L", "B", 0)
	cell(colQty, i18n.T(i18n.DocQuantity), "1", "C", "B", 0)
	cell(colValue, i18n.T(i18n.DocValue), "1", "R", "B", 1)

	agg := d.Aggregate
	if doc.GroupItems {
		cell(colItem, "", "1", "C", "", 0)
		cell(colDesc, doc.GroupName, "1", "L", "", 0)
		cell(colQty, FormatQuantity(agg.QuantityTotal), "1", "C", "", 0)
		cell(colValue, FormatWeight(agg.WeightTotal, agg.WeightUnit), "1", "R", "", 1)
		for i := 0; i < doc.GroupRows; i++ {
			cell(colItem, "", "1", "C", "", 0)
			cell(colDesc, "", "1", "L", "", 0)
			cell(colQty, "", "1", "C", "", 0)
			cell(colValue, "", "1", "R", "", 1)
		}
	} else {
		for i, item := range agg.Items {
			cell(colItem, strconv.Itoa(i+1), "1", "C", "", 0)
			cell(colDesc, item.Name, "1", "L", "", 0)
			cell(colQty, FormatQuantity(item.Quantity), "1", "C", "", 0)
			cell(colValue, FormatMoney(item.LineSubtotal, item.SubtotalUnresolved), "1", "R", "", 1)
		}
	}
	cell(colItem+colDesc, i18n.T(i18n.DocTotals), "1", "R", "B", 0)
	cell(colQty, FormatQuantity(agg.QuantityTotal), "1", "C", "", 0)
	cell(colValue, FormatMoney(agg.SubtotalTotal, agg.SubtotalUnresolved), "1", "R", "", 1)
	cell(colItem+colDesc, i18n.T(i18n.DocTotalWeight), "1", "R", "B", 0)
	cell(colQty+colValue, FormatWeight(agg.WeightTotal, agg.WeightUnit), "1", "C", "", 1)
	pdf.Ln(3)

	cell(width, i18n.T(i18n.DocDeclaration), "1", "C", "B", 1)
	pdf.SetFont(pdfFont, "", 7.5)
	pdf.MultiCell(width, 4, pdf.tr(i18n.T(i18n.DocDeclarationText1)), "LR", "J", false)
	pdf.MultiCell(width, 4, pdf.tr(i18n.T(i18n.DocDeclarationText2)), "LR", "J", false)

	date := i18n.LongDate(doc.Date)
	if s.City != "" {
		date = s.City + ", " + date
	}
	pdf.SetFont(pdfFont, "", 8)
	pdf.CellFormat(width, 10, pdf.tr(date), "LR", 1, "L", false, 0, "")
	pdf.CellFormat(half, row, "", "LB", 0, "L", false, 0, "")
	pdf.CellFormat(half, row, pdf.tr(i18n.T(i18n.DocDeclarantSignature)), "TRB", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont(pdfFont, "", 7)
	pdf.MultiCell(width, 3.5, pdf.tr(i18n.T(i18n.DocAttention)), "1", "L", false)
	pdf.MultiCell(width, 3.5, pdf.tr(i18n.T(i18n.DocNotes)+"\n1. "+i18n.T(i18n.DocNote1)+"\n2. "+i18n.T(i18n.DocNote2)), "1", "J", false)
}
