package catalog

import (
	"math"

	"catalog-service/models"
)

// Badge tiers, checked in descending order. A drop below 10% gets no
// badge at all.
const (
	BadgeDrop40 = "drop--40"
	BadgeDrop30 = "drop--30"
	BadgeDrop10 = "drop--10"
)

// EffectivePrice returns the entry's discount price when it is set and
// strictly lower than the list price, else the list price. An invalid
// discount (negative, or >= price) is treated as no discount.
func EffectivePrice(pp models.ProductPrice) float64 {
	if pp.DiscountPrice != nil && *pp.DiscountPrice >= 0 && *pp.DiscountPrice < pp.Price {
		return *pp.DiscountPrice
	}
	return pp.Price
}

// BestPrice resolves the price entry a product is displayed with: the
// lowest effective price among in-stock entries, falling back to the
// full set when nothing is in stock. Ties keep the first occurrence.
// Returns nil iff the product has no price entries.
func BestPrice(p models.Product) *models.ProductPrice {
	if len(p.Prices) == 0 {
		return nil
	}

	candidates := p.Prices
	inStock := make([]models.ProductPrice, 0, len(p.Prices))
	for _, pp := range p.Prices {
		if pp.InStock {
			inStock = append(inStock, pp)
		}
	}
	if len(inStock) > 0 {
		candidates = inStock
	}

	best := candidates[0]
	for _, pp := range candidates[1:] {
		if EffectivePrice(pp) < EffectivePrice(best) {
			best = pp
		}
	}
	return &best
}

// DisplayPrice is the effective price of the resolved entry, or -1 when
// the product has no prices at all.
func DisplayPrice(p models.Product) float64 {
	best := BestPrice(p)
	if best == nil {
		return -1
	}
	return EffectivePrice(*best)
}

// DropPercent computes the rounded discount percentage for a price
// entry, or 0 when there is no valid discount. A zero list price
// short-circuits to 0 rather than dividing.
func DropPercent(pp models.ProductPrice) int {
	if pp.Price <= 0 || pp.DiscountPrice == nil {
		return 0
	}
	d := *pp.DiscountPrice
	if d < 0 || d >= pp.Price {
		return 0
	}
	return int(math.Round((pp.Price - d) / pp.Price * 100))
}

// DiscountBadge returns the badge tier for a price entry, or "" when the
// drop is under 10%.
func DiscountBadge(pp models.ProductPrice) string {
	drop := DropPercent(pp)
	switch {
	case drop >= 40:
		return BadgeDrop40
	case drop >= 30:
		return BadgeDrop30
	case drop >= 10:
		return BadgeDrop10
	default:
		return ""
	}
}
