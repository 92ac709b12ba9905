package catalog

import (
	"math"
	"sort"

	"catalog-service/models"
)

// Supported sort keys. The zero value (or "relevance") leaves the input
// order untouched.
const (
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortRatingDesc  = "rating-desc"
	SortReviewsDesc = "reviews-desc"
	SortRelevance   = "relevance"
)

// Filters parameterizes one pipeline run. Nil price bounds mean
// unbounded; an empty vendor set passes every product.
type Filters struct {
	Vendors     map[int64]bool
	InStockOnly bool
	MinPrice    *float64
	MaxPrice    *float64
	Sort        string
}

// IsSupportedSort reports whether the key is one the pipeline sorts by.
func IsSupportedSort(key string) bool {
	switch key {
	case "", SortPriceAsc, SortPriceDesc, SortRatingDesc, SortReviewsDesc, SortRelevance:
		return true
	default:
		return false
	}
}

// Apply runs the fixed filter chain (vendor, stock, price range) and
// then a stable sort. It is a pure function of its inputs: the same
// (products, filters) pair always yields the same output, and the input
// slice is never mutated.
func Apply(products []models.Product, f Filters) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesVendors(p, f.Vendors) {
			continue
		}
		if f.InStockOnly && !anyInStock(p) {
			continue
		}
		if !inPriceRange(p, f.MinPrice, f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f.Sort)
	return out
}

func matchesVendors(p models.Product, vendors map[int64]bool) bool {
	if len(vendors) == 0 {
		return true
	}
	for _, pp := range p.Prices {
		if vendors[pp.VendorID] {
			return true
		}
	}
	return false
}

func anyInStock(p models.Product) bool {
	for _, pp := range p.Prices {
		if pp.InStock {
			return true
		}
	}
	return false
}

func inPriceRange(p models.Product, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	price := DisplayPrice(p)
	if price < 0 {
		// No resolved price: a bounded range excludes the product.
		return false
	}
	if min != nil && price < *min {
		return false
	}
	if max != nil && price > *max {
		return false
	}
	return true
}

// sortKey maps a product to its price-sort value. Products without any
// price sort after every priced product ascending, which also keeps
// price-desc the exact reverse of price-asc.
func priceSortKey(p models.Product) float64 {
	price := DisplayPrice(p)
	if price < 0 {
		return math.Inf(1)
	}
	return price
}

func sortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return priceSortKey(products[i]) < priceSortKey(products[j])
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return priceSortKey(products[i]) > priceSortKey(products[j])
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Rating != products[j].Rating {
				return products[i].Rating > products[j].Rating
			}
			return products[i].Reviews > products[j].Reviews
		})
	case SortReviewsDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	}
}
