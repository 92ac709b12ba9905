package services

import (
	"catalog-service/catalog"
	"catalog-service/models"
)

// ListParams parameterizes a catalog listing: one pipeline run plus
// pagination applied to the filtered result.
type ListParams struct {
	Filters catalog.Filters
	Page    int
	PerPage int
}

// ProductView is a product together with its resolved pricing, returned
// wherever the storefront displays a price or discount badge.
type ProductView struct {
	models.Product
	BestPrice     *models.ProductPrice `json:"best_price,omitempty"`
	DisplayPrice  *float64             `json:"display_price,omitempty"`
	DropPercent   int                  `json:"drop_percent,omitempty"`
	DiscountBadge string               `json:"discount_badge,omitempty"`
}

// NewProductView resolves the display price and badge for one product.
func NewProductView(p models.Product) ProductView {
	view := ProductView{Product: p}
	best := catalog.BestPrice(p)
	if best == nil {
		return view
	}
	view.BestPrice = best
	price := catalog.EffectivePrice(*best)
	view.DisplayPrice = &price
	view.DropPercent = catalog.DropPercent(*best)
	view.DiscountBadge = catalog.DiscountBadge(*best)
	return view
}

// ImportResult summarizes a bulk raw-feed import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ProductCreateRequest is the backed-path create payload.
type ProductCreateRequest struct {
	Title          string                `json:"title" validate:"required"`
	Brand          string                `json:"brand" validate:"required"`
	Model          string                `json:"model"`
	Description    string                `json:"description"`
	Image          string                `json:"image"`
	Images         []string              `json:"images"`
	CategoryIDs    []int64               `json:"category_ids"`
	Rating         float64               `json:"rating" validate:"gte=0,lte=5"`
	Reviews        int                   `json:"reviews" validate:"gte=0"`
	Specifications map[string]string     `json:"specifications"`
	Prices         []models.ProductPrice `json:"prices" validate:"dive"`
}
