package repository

import (
	"context"
	"sync"

	"catalog-service/catalog"
	"catalog-service/models"

	"github.com/google/uuid"
)

// MemoryCatalog is the mock/demo catalog source. The seed arrays are run
// through the normalizer once at construction; after that the catalog is
// treated as immutable read-only data, with mutations working on copies
// under a lock so the demo path still supports the CRUD surface.
type MemoryCatalog struct {
	mu         sync.RWMutex
	products   []models.Product
	vendors    []models.Vendor
	categories []models.Category
}

// NewMemoryCatalog normalizes the given raw records into a ready
// catalog. Pass the seed data for the demo path, or any other raw
// arrays in tests.
func NewMemoryCatalog(rawProducts, rawVendors, rawCategories []map[string]any) *MemoryCatalog {
	c := &MemoryCatalog{}
	for _, raw := range rawProducts {
		c.products = append(c.products, catalog.NormalizeProduct(raw))
	}
	for _, raw := range rawVendors {
		c.vendors = append(c.vendors, catalog.NormalizeVendor(raw))
	}
	for _, raw := range rawCategories {
		c.categories = append(c.categories, catalog.NormalizeCategory(raw))
	}
	return c
}

// NewSeededMemoryCatalog builds the demo catalog from the bundled seed.
func NewSeededMemoryCatalog() *MemoryCatalog {
	return NewMemoryCatalog(seedProducts, seedVendors, seedCategories)
}

func (c *MemoryCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (c *MemoryCatalog) FindAll(ctx context.Context) ([]models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *MemoryCatalog) Create(ctx context.Context, product *models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, *product)
	return nil
}

func (c *MemoryCatalog) CreateMany(ctx context.Context, products []models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, products...)
	return nil
}

func (c *MemoryCatalog) Update(ctx context.Context, id uuid.UUID, product *models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			product.ID = id
			c.products[i] = *product
			return nil
		}
	}
	return ErrNotFound
}

func (c *MemoryCatalog) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Vendors returns a read-only vendor repo view of the catalog.
func (c *MemoryCatalog) Vendors() VendorRepo { return memoryVendors{c} }

// Categories returns a read-only category repo view of the catalog.
func (c *MemoryCatalog) Categories() CategoryRepo { return memoryCategories{c} }

type memoryVendors struct{ c *MemoryCatalog }

func (v memoryVendors) FindByID(ctx context.Context, id int64) (*models.Vendor, error) {
	v.c.mu.RLock()
	defer v.c.mu.RUnlock()
	for i := range v.c.vendors {
		if v.c.vendors[i].ID == id {
			vendor := v.c.vendors[i]
			return &vendor, nil
		}
	}
	return nil, ErrNotFound
}

func (v memoryVendors) FindAll(ctx context.Context) ([]models.Vendor, error) {
	v.c.mu.RLock()
	defer v.c.mu.RUnlock()
	out := make([]models.Vendor, len(v.c.vendors))
	copy(out, v.c.vendors)
	return out, nil
}

type memoryCategories struct{ c *MemoryCatalog }

func (m memoryCategories) FindAll(ctx context.Context) ([]models.Category, error) {
	m.c.mu.RLock()
	defer m.c.mu.RUnlock()
	out := make([]models.Category, len(m.c.categories))
	copy(out, m.c.categories)
	return out, nil
}
