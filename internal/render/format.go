package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/shopspring/decimal"
)

// FormatBRL formats an amount as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + "R$ " + groupThousands(intPart) + "," + frac
}

// FormatMoney is FormatBRL with the subtotal EMPTY marker in front when the
// amount rests on an unresolved line subtotal.
func FormatMoney(d decimal.Decimal, unresolved bool) string {
	if unresolved {
		return service.EmptyMarker(model.FieldSubtotal) + FormatBRL(d)
	}
	return FormatBRL(d)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatWeight formats a weight with a decimal comma and its unit, e.g.
// "0,68 kg" or "350 g". At most three decimals are kept.
func FormatWeight(v float64, unit model.WeightUnit) string {
	v = math.Round(v*1000) / 1000
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1) + " " + string(unit)
}

// FormatQuantity prints a declaration quantity.
func FormatQuantity(q int) string {
	return strconv.Itoa(q)
}

// addressLine joins the street line with its complement as printed on
// labels: "Rua X 10, apto 2".
func addressLine(a model.Address) string {
	if a.Complement == "" {
		return a.StreetAndNumber
	}
	return a.StreetAndNumber + ", " + a.Complement
}

// recipientLine is the recipient name followed by " - Company" when set.
func recipientLine(a model.Address) string {
	if a.Company == "" {
		return a.RecipientName
	}
	return a.RecipientName + " - " + a.Company
}

// senderAddress joins the store address lines.
func senderAddress(s model.StoreInfo) string {
	if s.Address2 == "" {
		return s.Address
	}
	return s.Address + ", " + s.Address2
}

// cityState prints "City / UF", leaving out the separator when either side is empty.
func cityState(city, state string) string {
	switch {
	case city == "":
		return state
	case state == "":
		return city
	default:
		return city + " / " + state
	}
}
