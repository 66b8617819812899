package model

// ShippingCategory is the symbolic shipping-method classification printed on labels.
type ShippingCategory string

const (
	ShippingSedex           ShippingCategory = "sedex"
	ShippingPac             ShippingCategory = "pac"
	ShippingLocalPickup     ShippingCategory = "local_pickup"
	ShippingImpressoNormal  ShippingCategory = "impresso_normal"
	ShippingImpressoUrgente ShippingCategory = "impresso_urgente"
	ShippingCarta           ShippingCategory = "carta"
	ShippingUnclassified    ShippingCategory = "unclassified"
)
