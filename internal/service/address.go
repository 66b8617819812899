package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guttosm/print-orders/internal/domain/model"
)

// MinStreetLength is the shortest street line accepted without an EMPTY marker.
const MinStreetLength = 4

// MetaIndex is an exact-key view over order metadata. When a key repeats,
// the first occurrence wins.
type MetaIndex map[string]string

// NewMetaIndex indexes entries once, keeping the first value of each key.
func NewMetaIndex(entries []model.MetaEntry) MetaIndex {
	idx := make(MetaIndex, len(entries))
	for _, e := range entries {
		if _, seen := idx[e.Key]; !seen {
			idx[e.Key] = e.Value
		}
	}
	return idx
}

// Get returns the value for key, or "" when absent.
func (m MetaIndex) Get(key string) string {
	return m[key]
}

// ResolveAddress builds the recipient address for an order. Shipping fields
// are used when any of them is set, billing fields otherwise; the two are never
// mixed. Street number and neighborhood come from the _{source}_number and
// _{source}_neighborhood metadata keys. Missing values resolve to "".
func ResolveAddress(order model.Order) model.Address {
	return resolveAddress(order.Billing, order.Shipping, NewMetaIndex(order.MetaData))
}

func resolveAddress(billing, shipping model.FieldSet, meta MetaIndex) model.Address {
	fields, source := billing, model.SourceBilling
	if !shipping.IsEmpty() {
		fields, source = shipping, model.SourceShipping
	}

	number := meta.Get(fmt.Sprintf("_%s_number", source))
	neighborhood := meta.Get(fmt.Sprintf("_%s_neighborhood", source))

	return model.Address{
		RecipientName:   strings.TrimSpace(fields.FirstName + " " + fields.LastName),
		Company:         fields.Company,
		StreetAndNumber: strings.TrimSpace(fields.Address1 + " " + number),
		Complement:      fields.Address2,
		Neighborhood:    neighborhood,
		City:            fields.City,
		State:           fields.State,
		PostalCode:      fields.Postcode,
		Source:          source,
	}
}

// EmptyMarker returns the inline marker printed in place of a missing field.
func EmptyMarker(field string) string {
	return "[" + field + " VAZIO]"
}

// ValidateAddress returns a copy of addr where every empty required field, and
// a street line shorter than MinStreetLength, is prefixed with its EMPTY marker.
// Company and complement are optional and never marked. The returned warnings
// list the marked fields in label order.
func ValidateAddress(orderID int64, addr model.Address) (model.Address, []model.MissingDataWarning) {
	var warnings []model.MissingDataWarning

	mark := func(field string, value *string, minLen int) {
		trimmed := strings.TrimSpace(*value)
		if trimmed == "" || utf8.RuneCountInString(trimmed) < minLen {
			warnings = append(warnings, model.MissingDataWarning{OrderID: orderID, Field: field, Value: *value})
			*value = EmptyMarker(field) + *value
		}
	}

	mark(model.FieldRecipientName, &addr.RecipientName, 1)
	mark(model.FieldStreet, &addr.StreetAndNumber, MinStreetLength)
	mark(model.FieldNeighborhood, &addr.Neighborhood, 1)
	mark(model.FieldCity, &addr.City, 1)
	mark(model.FieldState, &addr.State, 1)
	mark(model.FieldPostalCode, &addr.PostalCode, 1)

	return addr, warnings
}
