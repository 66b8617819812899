package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
)

const declarationTemplate = `<div class="invoice-page">
  <h1 class="invoice-logo">{{t "doc.declaration.title"}}</h1>
  <table class="invoice-sender" cellpadding="0" cellspacing="0">
    <tr>
      <td class="sender"><strong class="label">{{t "doc.declaration.sender"}}</strong> <span class="value">{{.Sender.Name}}</span></td>
      <td class="document"><strong class="label">{{t "doc.declaration.tax_id"}}</strong> <span class="value">{{.Sender.TaxID}}</span></td>
    </tr>
    <tr>
      <td colspan="2" class="address"><strong class="label">{{t "doc.declaration.address"}}</strong> <span class="value">{{senderAddress .Sender}}</span></td>
    </tr>
    <tr>
      <td class="city-state"><strong class="label">{{t "doc.declaration.city_state"}}</strong> <span class="value">{{cityState .Sender.City .Sender.State}}</span></td>
      <td class="zip-code"><strong class="label">{{t "doc.declaration.postcode"}}</strong> <span class="value">{{.Sender.Postcode}}</span></td>
    </tr>
  </table>
  <table class="invoice-client" cellpadding="0" cellspacing="0">
    <tr>
      <td class="receiver"><strong class="label">{{t "doc.declaration.recipient"}}</strong> <span class="value">{{recipient .D.Recipient}}</span></td>
      <td class="document"><strong class="label">{{t "doc.declaration.tax_id"}}</strong> <span class="value">{{.D.RecipientTaxID}}</span></td>
    </tr>
    <tr>
      <td colspan="2" class="address"><strong class="label">{{t "doc.declaration.address"}}</strong> <span class="value">{{street .D.Recipient}}</span>, <span class="value">{{.D.Recipient.Neighborhood}}</span></td>
    </tr>
    <tr>
      <td class="city-state"><strong class="label">{{t "doc.declaration.city_state"}}</strong> <span class="value">{{.D.Recipient.City}}</span> / <span class="value">{{.D.Recipient.State}}</span></td>
      <td class="zip-code"><strong class="label">{{t "doc.declaration.postcode"}}</strong> <span class="value">{{.D.Recipient.PostalCode}}</span></td>
    </tr>
  </table>
  <table class="invoice-order-items" cellpadding="0" cellspacing="0">
    <tr><th colspan="4" class="invoice-title">{{t "doc.declaration.goods"}}</th></tr>
    <tr>
      <th class="label">{{t "doc.declaration.item"}}</th>
      <th class="label">{{t "doc.declaration.description"}}</th>
      <th class="label">{{t "doc.declaration.quantity"}}</th>
      <th class="label">{{t "doc.declaration.value"}}</th>
    </tr>{{if .GroupItems}}
    <tr>
      <td class="item-value group-item"></td>
      <td class="item-value group-title">{{.GroupName}}</td>
      <td class="item-value group-quantity">{{.D.Aggregate.QuantityTotal}}</td>
      <td class="item-value group-weight">{{weight .D.Aggregate.WeightTotal .D.Aggregate.WeightUnit}}</td>
    </tr>{{range emptyRows .GroupRows}}
    <tr><td class="item-value empty">&nbsp;</td><td class="item-value empty">&nbsp;</td><td class="item-value empty">&nbsp;</td><td class="item-value empty">&nbsp;</td></tr>{{end}}{{else}}{{range $i, $item := .D.Aggregate.Items}}
    <tr class="order-items">
      <td class="item-value group-item">{{inc $i}}</td>
      <td class="item-value item-name">{{$item.Name}}</td>
      <td class="item-value item-quantity">{{$item.Quantity}}</td>
      <td class="item-value item-price">{{money $item.LineSubtotal $item.SubtotalUnresolved}}</td>
    </tr>{{end}}{{end}}
    <tr class="total">
      <td colspan="2" class="label-right">{{t "doc.declaration.totals"}}</td>
      <td>{{.D.Aggregate.QuantityTotal}}</td>
      <td class="order-total">{{money .D.Aggregate.SubtotalTotal .D.Aggregate.SubtotalUnresolved}}</td>
    </tr>
    <tr class="total">
      <td colspan="2" class="label-right">{{t "doc.declaration.total_weight"}}</td>
      <td colspan="2">{{weight .D.Aggregate.WeightTotal .D.Aggregate.WeightUnit}}</td>
    </tr>
  </table>
  <table class="invoice-disclaimer" cellpadding="0" cellspacing="0">
    <tr><th class="invoice-title">{{t "doc.declaration.heading"}}</th></tr>
    <tr>
      <td>
        <div class="text">{{t "doc.declaration.text_1"}}</div>
        <div class="text">{{t "doc.declaration.text_2"}}</div>
        <div class="signature-date">
          <div class="date">{{if .Sender.City}}<span class="underline">{{.Sender.City}}</span>, {{end}}{{longDate .Date}}</div>
          <div class="signature">{{t "doc.declaration.signature"}}</div>
        </div>
      </td>
    </tr>
  </table>
  <table class="invoice-obs" cellpadding="0" cellspacing="0">
    <tr><td>{{t "doc.declaration.attention"}}</td></tr>
    <tr>
      <td>
        <strong>{{t "doc.declaration.notes"}}</strong>
        <ol>
          <li>{{t "doc.declaration.note_1"}}</li>
          <li>{{t "doc.declaration.note_2"}}</li>
        </ol>
      </td>
    </tr>
  </table>
</div>`

type declarationView struct {
	D          model.Declaration
	Sender     model.StoreInfo
	Date       time.Time
	GroupItems bool
	GroupName  string
	GroupRows  int
}

// DeclarationRenderer renders the Correios content declaration of one order.
type DeclarationRenderer struct {
	tpl *template.Template
}

// NewDeclarationRenderer creates the declaration renderer.
func NewDeclarationRenderer() *DeclarationRenderer {
	return &DeclarationRenderer{tpl: template.Must(template.New("declaration").Funcs(funcs()).Parse(declarationTemplate))}
}

func (r *DeclarationRenderer) RenderDeclaration(d model.Declaration, doc *model.InvoiceDocument) (string, error) {
	view := declarationView{
		D:          d,
		Sender:     doc.Sender,
		Date:       doc.Date,
		GroupItems: doc.GroupItems,
		GroupName:  doc.GroupName,
		GroupRows:  doc.GroupRows,
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render declaration %d: %w", d.OrderID, err)
	}
	return buf.String(), nil
}
