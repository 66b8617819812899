package model

import "time"

// StoreInfo is the sender block printed on labels and declarations.
//
// @Description Store (sender) information
type StoreInfo struct {
	Name      string    `json:"name" bson:"name" example:"Loja Exemplo"`
	Address   string    `json:"address" bson:"address" example:"Rua das Flores, 100"`
	Address2  string    `json:"address_2,omitempty" bson:"address_2,omitempty"`
	City      string    `json:"city" bson:"city" example:"São Paulo"`
	State     string    `json:"state" bson:"state" example:"SP"`
	Country   string    `json:"country,omitempty" bson:"country,omitempty" example:"BR"`
	Postcode  string    `json:"postcode" bson:"postcode" example:"01001-000"`
	TaxID     string    `json:"tax_id,omitempty" bson:"tax_id,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Merge returns s with every non-empty field of override applied.
func (s StoreInfo) Merge(override StoreInfo) StoreInfo {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	s.Name = pick(s.Name, override.Name)
	s.Address = pick(s.Address, override.Address)
	s.Address2 = pick(s.Address2, override.Address2)
	s.City = pick(s.City, override.City)
	s.State = pick(s.State, override.State)
	s.Country = pick(s.Country, override.Country)
	s.Postcode = pick(s.Postcode, override.Postcode)
	s.TaxID = pick(s.TaxID, override.TaxID)
	s.LogoURL = pick(s.LogoURL, override.LogoURL)
	if !override.UpdatedAt.IsZero() {
		s.UpdatedAt = override.UpdatedAt
	}
	return s
}
