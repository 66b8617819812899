package service

import (
	"strings"

	"github.com/guttosm/print-orders/internal/domain/model"
)

type shippingPattern struct {
	category model.ShippingCategory
	needles  []string
}

// shippingPatterns is ordered by priority; the first matching category wins.
var shippingPatterns = []shippingPattern{
	{category: model.ShippingSedex, needles: []string{"correios-sedex", "sedex"}},
	{category: model.ShippingPac, needles: []string{"correios-pac", "free", "pac"}},
	{category: model.ShippingLocalPickup, needles: []string{"local_pickup"}},
	{category: model.ShippingImpressoNormal, needles: []string{"correios-impresso-normal"}},
	{category: model.ShippingImpressoUrgente, needles: []string{"correios-impresso-urgente"}},
	{category: model.ShippingCarta, needles: []string{"correios-carta"}},
}

// ClassifyShipping maps an order's shipping methods to a single category.
// Each pattern is tested against every method's identifier and then its
// lower-cased title, as case-insensitive substrings.
func ClassifyShipping(methods []model.ShippingMethod) model.ShippingCategory {
	if len(methods) == 0 {
		return model.ShippingUnclassified
	}

	normalized := make([][2]string, len(methods))
	for i, m := range methods {
		normalized[i] = [2]string{strings.ToLower(m.MethodID), strings.ToLower(m.Title)}
	}

	for _, p := range shippingPatterns {
		for _, needle := range p.needles {
			for _, m := range normalized {
				if strings.Contains(m[0], needle) || strings.Contains(m[1], needle) {
					return p.category
				}
			}
		}
	}
	return model.ShippingUnclassified
}
