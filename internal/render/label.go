package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/i18n"
)

const grid2x2Template = `<div class="order-inner">
  <div class="correios-blank">
    <div class="inner">
      <div class="declarado">{{t "doc.declared_value"}} {{money .Label.Declared .Label.DeclaredUnresolved}}</div>
      <div class="order-number">{{orderNumber .Label.OrderID}}</div>
      <div class="order-items">{{range .Label.Items}}
        <div><strong>({{.Quantity}})</strong> - {{if .SKU}}[{{.SKU}}]{{end}}{{.Name}}</div>{{end}}
      </div>{{if .Label.CustomerNote}}
      <div class="customer-note">{{.Label.CustomerNote}}</div>{{end}}
    </div>
  </div>
  <div class="assinatura-box">
    <div class="assinatura-row"><div>{{t "doc.receiver"}}</div><span class="line"></span></div>
    <div class="assinatura-row">
      <div class="assinatura">{{t "doc.signature"}}</div><span class="line"></span>
      <div class="documento">{{t "doc.document"}}</div><span class="line"></span>
    </div>
  </div>
  <div class="destinatario">
    <div class="address">
      <span class="destinatario-label">{{t "doc.recipient"}}</span>
      <span class="name">{{.Label.Address.RecipientName}}</span>{{if .Label.Address.Company}} <span class="company">- {{.Label.Address.Company}}</span>{{end}}<br />
      <span class="street">{{street .Label.Address}}</span><br />
      <span class="neighbor">{{.Label.Address.Neighborhood}}</span><br />
      <strong class="cep">{{.Label.Address.PostalCode}}</strong> <span class="city">{{.Label.Address.City}}</span> / <span class="state">{{.Label.Address.State}}</span>
    </div>
    <div class="images">
      <div class="barcode">
        {{.Label.Address.PostalCode}} {{.Label.Address.State}}<br />{{if .Barcode}}
        <img src="{{.Barcode}}" alt="" />{{end}}
      </div>
      {{shipping .Label.Shipping}}
    </div>
  </div>
  <div class="remetente">
    <div class="address">
      <strong>{{t "doc.sender"}}<br /></strong>
      <span class="name">{{.Sender.Name}}<br /></span>{{if .Sender.TaxID}}
      <span class="cpf-cnpj">{{.Sender.TaxID}}<br /></span>{{end}}
      <span class="full-address">{{senderAddress .Sender}}<br /></span>
      <span class="zip">{{.Sender.Postcode}}</span> <span class="city-state">{{cityState .Sender.City .Sender.State}}</span>
    </div>
    <div class="shop-logo">{{if .Sender.LogoURL}}
      <img class="shop-logo-img" src="{{.Sender.LogoURL}}" alt="" />{{else}}
      <div class="shop-logo-text">{{.Sender.Name}}</div>{{end}}
    </div>
  </div>
</div>`

type labelView struct {
	Label   model.LabelData
	Sender  model.StoreInfo
	Barcode template.URL
}

// Grid2x2 is the label variant used by the built-in 2x2 sheet: a declared-value
// box, a signature block, the recipient with barcode and shipping mark, and the sender.
type Grid2x2 struct {
	tpl *template.Template
}

// NewGrid2x2 creates the 2x2 label renderer.
func NewGrid2x2() *Grid2x2 {
	return &Grid2x2{tpl: template.Must(template.New("grid2x2").Funcs(funcs()).Parse(grid2x2Template))}
}

func (g *Grid2x2) RenderLabel(label model.LabelData, sender model.StoreInfo) (string, error) {
	view := labelView{Label: label, Sender: sender}
	if label.HasBarcode {
		view.Barcode = barcodeURL(label.Barcode)
	}

	var buf bytes.Buffer
	if err := g.tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render label %d: %w", label.OrderID, err)
	}
	return buf.String(), nil
}

func barcodeURL(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}

// shippingMark is the shipping-method block printed beside the barcode.
func shippingMark(c model.ShippingCategory) template.HTML {
	esc := template.HTMLEscapeString
	switch c {
	case model.ShippingSedex:
		return template.HTML(`<div class="shipping-method shipping-sedex"><strong>SEDEX</strong><div>` + esc(i18n.T(i18n.DocCorreios)) + `</div></div>`)
	case model.ShippingPac:
		return template.HTML(`<div class="shipping-method shipping-pac"><strong>PAC</strong><div>` + esc(i18n.T(i18n.DocCorreios)) + `</div></div>`)
	case model.ShippingLocalPickup:
		return template.HTML(`<div class="shipping-method shipping-local-pickup"><div>` + esc(i18n.T(i18n.DocLocalPickup)) + `</div></div>`)
	case model.ShippingImpressoNormal, model.ShippingImpressoUrgente:
		return template.HTML(`<div class="shipping-method shipping-` + esc(string(c)) + `"><div><strong>` +
			esc(i18n.T(i18n.DocImpressoFechado)) + `</strong></div><div>` + esc(i18n.T(i18n.DocImpressoAberto)) +
			`</div><div>` + esc(i18n.T(i18n.DocCorreios)) + `</div></div>`)
	case model.ShippingCarta:
		return template.HTML(`<div class="shipping-method shipping-carta"><strong>` + esc(i18n.T(i18n.DocCarta)) + `</strong><div>` + esc(i18n.T(i18n.DocCorreios)) + `</div></div>`)
	default:
		return template.HTML(`<div class="shipping-method shipping-empty">&nbsp;</div>`)
	}
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"t":             i18n.T,
		"money":         FormatMoney,
		"weight":        FormatWeight,
		"street":        addressLine,
		"recipient":     recipientLine,
		"senderAddress": senderAddress,
		"cityState":     cityState,
		"shipping":      shippingMark,
		"longDate":      i18n.LongDate,
		"inc":           func(i int) int { return i + 1 },
		"orderNumber": func(id int64) string {
			return fmt.Sprintf(i18n.T(i18n.DocOrderNumber), id)
		},
		"emptyRows": func(n int) []struct{} {
			if n < 0 {
				n = 0
			}
			return make([]struct{}, n)
		},
	}
}
