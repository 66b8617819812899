package model

// AddressSource names the field set an Address was built from.
type AddressSource string

const (
	SourceShipping AddressSource = "shipping"
	SourceBilling  AddressSource = "billing"
)

// Address is a normalized recipient address. Optional parts carry no
// separators; renderers add them.
//
// @Description Normalized recipient address
type Address struct {
	RecipientName   string        `json:"recipient_name"`
	Company         string        `json:"company,omitempty"`
	StreetAndNumber string        `json:"street_and_number"`
	Complement      string        `json:"complement,omitempty"`
	Neighborhood    string        `json:"neighborhood,omitempty"`
	City            string        `json:"city"`
	State           string        `json:"state"`
	PostalCode      string        `json:"postal_code"`
	Source          AddressSource `json:"source"`
}

// Address field keys, used in warnings and EMPTY markers.
const (
	FieldRecipientName = "nome"
	FieldStreet        = "logradouro"
	FieldNeighborhood  = "bairro"
	FieldCity          = "cidade"
	FieldState         = "uf"
	FieldPostalCode    = "cep"
)
