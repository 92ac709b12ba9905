package catalog

import (
	"strings"

	"catalog-service/models"
)

// Search performs a case-insensitive substring match of the trimmed
// query against product title and brand, preserving input order. An
// empty or whitespace-only query matches nothing: returning the full
// catalog for a blank query would wrongly validate it as a real search.
func Search(query string, products []models.Product) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Product{}
	}

	out := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out
}
