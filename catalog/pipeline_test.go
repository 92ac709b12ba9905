package catalog

import (
	"testing"

	"catalog-service/models"

	"github.com/google/uuid"
)

func testCatalogProducts() []models.Product {
	return []models.Product{
		{
			ID: uuid.New(), Title: "Laptop Pro", Brand: "Acme", Rating: 4.5, Reviews: 200,
			Prices: []models.ProductPrice{
				{VendorID: 1, Price: 1200, InStock: true},
				{VendorID: 2, Price: 1150, InStock: false},
			},
		},
		{
			ID: uuid.New(), Title: "Budget Phone", Brand: "Uno", Rating: 4.0, Reviews: 500,
			Prices: []models.ProductPrice{
				{VendorID: 2, Price: 300, DiscountPrice: floatPtr(240), InStock: true},
			},
		},
		{
			ID: uuid.New(), Title: "Headphones", Brand: "Acme", Rating: 4.5, Reviews: 120,
			Prices: []models.ProductPrice{
				{VendorID: 3, Price: 80, InStock: false},
			},
		},
		{
			ID: uuid.New(), Title: "Unlisted Gadget", Brand: "Nova", Rating: 3.0, Reviews: 10,
		},
	}
}

func titles(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func equalTitles(a []models.Product, want []string) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range want {
		if a[i].Title != want[i] {
			return false
		}
	}
	return true
}

func TestApplyIdentityFilter(t *testing.T) {
	products := testCatalogProducts()

	got := Apply(products, Filters{})
	if !equalTitles(got, titles(products)) {
		t.Fatalf("identity filter changed the list: %v", titles(got))
	}
}

func TestApplyVendorFilter(t *testing.T) {
	products := testCatalogProducts()

	got := Apply(products, Filters{Vendors: map[int64]bool{2: true}})
	if !equalTitles(got, []string{"Laptop Pro", "Budget Phone"}) {
		t.Fatalf("unexpected vendor filter result: %v", titles(got))
	}
}

func TestApplyInStockFilter(t *testing.T) {
	products := testCatalogProducts()

	got := Apply(products, Filters{InStockOnly: true})
	if !equalTitles(got, []string{"Laptop Pro", "Budget Phone"}) {
		t.Fatalf("unexpected in-stock filter result: %v", titles(got))
	}
}

func TestApplyPriceRange(t *testing.T) {
	products := testCatalogProducts()

	// Display prices: 1200, 240 (discounted), 80, none.
	got := Apply(products, Filters{MinPrice: floatPtr(80), MaxPrice: floatPtr(240)})
	if !equalTitles(got, []string{"Budget Phone", "Headphones"}) {
		t.Fatalf("unexpected price range result: %v", titles(got))
	}

	// Inclusive bounds.
	got = Apply(products, Filters{MinPrice: floatPtr(1200), MaxPrice: floatPtr(1200)})
	if !equalTitles(got, []string{"Laptop Pro"}) {
		t.Fatalf("expected inclusive bounds to keep the 1200 product, got %v", titles(got))
	}

	// A priceless product is dropped once a bound is set.
	got = Apply(products, Filters{MinPrice: floatPtr(0)})
	for _, p := range got {
		if p.Title == "Unlisted Gadget" {
			t.Fatal("priceless product must not pass a bounded price filter")
		}
	}
}

func TestApplySortPriceAscDescReversal(t *testing.T) {
	products := testCatalogProducts()[:3] // all priced, no ties

	asc := Apply(products, Filters{Sort: SortPriceAsc})
	desc := Apply(products, Filters{Sort: SortPriceDesc})

	if !equalTitles(asc, []string{"Headphones", "Budget Phone", "Laptop Pro"}) {
		t.Fatalf("unexpected ascending order: %v", titles(asc))
	}
	for i := range asc {
		if asc[i].Title != desc[len(desc)-1-i].Title {
			t.Fatalf("desc is not the exact reverse of asc: asc=%v desc=%v", titles(asc), titles(desc))
		}
	}
}

func TestApplySortRatingDesc(t *testing.T) {
	products := testCatalogProducts()

	got := Apply(products, Filters{Sort: SortRatingDesc})
	// Two 4.5 products tie-break on review count.
	if !equalTitles(got, []string{"Laptop Pro", "Headphones", "Budget Phone", "Unlisted Gadget"}) {
		t.Fatalf("unexpected rating sort: %v", titles(got))
	}
}

func TestApplySortReviewsDesc(t *testing.T) {
	products := testCatalogProducts()

	got := Apply(products, Filters{Sort: SortReviewsDesc})
	if !equalTitles(got, []string{"Budget Phone", "Laptop Pro", "Headphones", "Unlisted Gadget"}) {
		t.Fatalf("unexpected reviews sort: %v", titles(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := testCatalogProducts()
	before := titles(products)

	Apply(products, Filters{Sort: SortPriceAsc, InStockOnly: true})

	if !equalTitles(products, before) {
		t.Fatalf("input slice was mutated: %v", titles(products))
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	products := testCatalogProducts()
	f := Filters{Vendors: map[int64]bool{1: true, 2: true}, Sort: SortPriceDesc}

	first := Apply(products, f)
	second := Apply(products, f)
	if !equalTitles(second, titles(first)) {
		t.Fatalf("same inputs produced different outputs: %v vs %v", titles(first), titles(second))
	}
}

func TestIsSupportedSort(t *testing.T) {
	for _, key := range []string{"", SortPriceAsc, SortPriceDesc, SortRatingDesc, SortReviewsDesc, SortRelevance} {
		if !IsSupportedSort(key) {
			t.Fatalf("expected %q to be supported", key)
		}
	}
	if IsSupportedSort("price_asc") {
		t.Fatal("underscore sort keys are not part of the contract")
	}
}
