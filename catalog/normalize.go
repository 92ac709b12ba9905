// Package catalog holds the pure core of the storefront: raw-record
// normalization, price resolution, the filter/sort pipeline and the
// search lookup. Nothing in this package performs I/O.
package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"catalog-service/models"

	"github.com/google/uuid"
)

// Field aliases recognized by the normalizer, in precedence order. The
// canonical name always wins; the first present alias is used otherwise.
var (
	imageAliases     = []string{"image", "image_url", "imageUrl", "imageURL"}
	imagesAliases    = []string{"images", "image_urls", "imageUrls"}
	titleAliases     = []string{"title", "name", "product_name", "productName"}
	reviewsAliases   = []string{"reviews", "reviewCount", "review_count"}
	specAliases      = []string{"specifications", "specs"}
	categoryAliases  = []string{"categoryIds", "category_ids", "categories"}
	pricesAliases    = []string{"prices", "vendor_prices", "vendorPrices", "offers"}
	vendorIDAliases  = []string{"vendorId", "vendor_id", "vendorID"}
	discountAliases  = []string{"discountPrice", "discount_price"}
	shippingAliases  = []string{"shippingCost", "shipping_cost", "shipping"}
	inStockAliases   = []string{"inStock", "in_stock", "available"}
	ratingAliases    = []string{"rating", "avg_rating", "avgRating"}
	logoAliases      = []string{"logo", "logo_url", "logoUrl"}
	parentIDAliases  = []string{"parentId", "parent_id"}
	addressAliases   = []string{"addresses", "address"}
	paymentAliases   = []string{"paymentMethods", "payment_methods"}
	certAliases      = []string{"certification", "cert_tier", "certTier"}
	productIDAliases = []string{"id", "_id", "productId", "product_id"}
)

// NormalizeProduct converts a raw record of any known source shape into
// the canonical Product. It never fails: missing or malformed optional
// fields degrade to zero values, and a record without a parseable id
// gets a fresh one.
func NormalizeProduct(raw map[string]any) models.Product {
	p := models.Product{
		ID:             rawUUID(raw, productIDAliases),
		Title:          rawString(raw, titleAliases),
		Brand:          rawString(raw, []string{"brand"}),
		Model:          rawString(raw, []string{"model"}),
		Description:    rawString(raw, []string{"description"}),
		Image:          rawString(raw, imageAliases),
		Images:         rawStrings(raw, imagesAliases),
		CategoryIDs:    rawInt64s(raw, categoryAliases),
		Rating:         clampRating(rawFloat(raw, ratingAliases)),
		Reviews:        nonNegative(int(rawFloat(raw, reviewsAliases))),
		Specifications: rawStringMap(raw, specAliases),
	}
	if p.Image == "" && len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	for _, entry := range rawMaps(raw, pricesAliases) {
		p.Prices = append(p.Prices, NormalizePrice(entry))
	}
	return p
}

// NormalizePrice converts one raw per-vendor price entry.
func NormalizePrice(raw map[string]any) models.ProductPrice {
	pp := models.ProductPrice{
		VendorID:     int64(rawFloat(raw, vendorIDAliases)),
		Price:        nonNegativeFloat(rawFloat(raw, []string{"price"})),
		ShippingCost: nonNegativeFloat(rawFloat(raw, shippingAliases)),
		InStock:      rawBool(raw, inStockAliases),
	}
	if v, ok := lookupFloat(raw, discountAliases); ok {
		pp.DiscountPrice = &v
	}
	return pp
}

// NormalizeVendor converts a raw vendor record.
func NormalizeVendor(raw map[string]any) models.Vendor {
	return models.Vendor{
		ID:             int64(rawFloat(raw, productIDAliases)),
		Name:           rawString(raw, []string{"name"}),
		Logo:           rawString(raw, logoAliases),
		Rating:         clampRating(rawFloat(raw, ratingAliases)),
		Certification:  rawString(raw, certAliases),
		Addresses:      rawStrings(raw, addressAliases),
		PaymentMethods: rawStrings(raw, paymentAliases),
	}
}

// NormalizeCategory converts a raw category record. A missing slug is
// derived from the name.
func NormalizeCategory(raw map[string]any) models.Category {
	c := models.Category{
		ID:   int64(rawFloat(raw, productIDAliases)),
		Name: rawString(raw, []string{"name"}),
		Slug: rawString(raw, []string{"slug"}),
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	if v, ok := lookupFloat(raw, parentIDAliases); ok {
		id := int64(v)
		c.ParentID = &id
	}
	return c
}

// Slugify lower-cases the name, strips characters outside [a-z0-9\s-],
// collapses whitespace runs to a single dash and collapses repeated
// dashes.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '-':
			b.WriteByte('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// lookup returns the value for the first key present in the record.
func lookup(raw map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func rawString(raw map[string]any, keys []string) string {
	v, ok := lookup(raw, keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	}
	return ""
}

func lookupFloat(raw map[string]any, keys []string) (float64, bool) {
	v, ok := lookup(raw, keys)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func rawFloat(raw map[string]any, keys []string) float64 {
	f, _ := lookupFloat(raw, keys)
	return f
}

func rawBool(raw map[string]any, keys []string) bool {
	v, ok := lookup(raw, keys)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	case float64:
		return b != 0
	}
	return false
}

func rawStrings(raw map[string]any, keys []string) []string {
	v, ok := lookup(raw, keys)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		// A lone scalar where a list was expected.
		if list == "" {
			return nil
		}
		return []string{list}
	}
	return nil
}

func rawInt64s(raw map[string]any, keys []string) []int64 {
	v, ok := lookup(raw, keys)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(list))
	for _, item := range list {
		switch n := item.(type) {
		case float64:
			out = append(out, int64(n))
		case int:
			out = append(out, int64(n))
		case int64:
			out = append(out, n)
		case json.Number:
			if i, err := n.Int64(); err == nil {
				out = append(out, i)
			}
		case string:
			if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
				out = append(out, i)
			}
		}
	}
	return out
}

func rawStringMap(raw map[string]any, keys []string) map[string]string {
	v, ok := lookup(raw, keys)
	if !ok {
		return map[string]string{}
	}
	out := map[string]string{}
	switch m := v.(type) {
	case map[string]string:
		for k, val := range m {
			out[k] = val
		}
	case map[string]any:
		for k, val := range m {
			if s, ok := val.(string); ok {
				out[k] = s
			}
		}
	}
	return out
}

func rawMaps(raw map[string]any, keys []string) []map[string]any {
	v, ok := lookup(raw, keys)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func rawUUID(raw map[string]any, keys []string) uuid.UUID {
	if s := rawString(raw, keys); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			return id
		}
	}
	return uuid.New()
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func nonNegativeFloat(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
