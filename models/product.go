package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is the canonical catalog record. Every raw source shape is
// normalized into this type before anything downstream touches it.
type Product struct {
	ID             uuid.UUID         `json:"id" bson:"_id"`
	Title          string            `json:"title" bson:"title"`
	Brand          string            `json:"brand" bson:"brand"`
	Model          string            `json:"model" bson:"model"`
	Description    string            `json:"description" bson:"description"`
	Image          string            `json:"image" bson:"image"`
	Images         []string          `json:"images" bson:"images"`
	CategoryIDs    []int64           `json:"category_ids" bson:"category_ids"`
	Rating         float64           `json:"rating" bson:"rating"`
	Reviews        int               `json:"reviews" bson:"reviews"`
	Specifications map[string]string `json:"specifications" bson:"specifications"`
	Prices         []ProductPrice    `json:"prices" bson:"prices"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" bson:"updated_at"`
}

// ProductPrice is one vendor's listing for a product. VendorID is a weak
// reference: the product does not own the vendor record.
type ProductPrice struct {
	VendorID      int64    `json:"vendor_id" bson:"vendor_id"`
	Price         float64  `json:"price" bson:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty" bson:"discount_price,omitempty"`
	ShippingCost  float64  `json:"shipping_cost" bson:"shipping_cost"`
	InStock       bool     `json:"in_stock" bson:"in_stock"`
}
