package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"catalog-service/catalog"
	"catalog-service/models"
	"catalog-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher emits catalog change events. Publishing is best-effort;
// callers log failures and move on.
type EventPublisher interface {
	PublishProductEvent(ctx context.Context, eventType string, productID uuid.UUID) error
}

// CatalogService owns the catalog read/write surface: listing through
// the filter/sort pipeline, lookups, the backed-path CRUD passthrough
// and raw-feed import.
type CatalogService struct {
	products   repository.ProductRepo
	vendors    repository.VendorRepo
	categories repository.CategoryRepo
	events     EventPublisher
}

func NewCatalogService(products repository.ProductRepo, vendors repository.VendorRepo, categories repository.CategoryRepo, events EventPublisher) *CatalogService {
	return &CatalogService{
		products:   products,
		vendors:    vendors,
		categories: categories,
		events:     events,
	}
}

// ListProducts loads the catalog, runs the pipeline and paginates the
// result. Page numbers are 1-based.
func (s *CatalogService) ListProducts(ctx context.Context, params ListParams) ([]ProductView, int, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load catalog: %w", err)
	}

	filtered := catalog.Apply(products, params.Filters)
	total := len(filtered)

	page := paginate(filtered, params.Page, params.PerPage)
	views := make([]ProductView, 0, len(page))
	for _, p := range page {
		views = append(views, NewProductView(p))
	}
	return views, total, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewProductView(*product)
	return &view, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req ProductCreateRequest) (*ProductView, error) {
	product := models.Product{
		ID:             uuid.New(),
		Title:          req.Title,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Image:          req.Image,
		Images:         req.Images,
		CategoryIDs:    req.CategoryIDs,
		Rating:         req.Rating,
		Reviews:        req.Reviews,
		Specifications: req.Specifications,
		Prices:         req.Prices,
	}
	if product.Image == "" && len(product.Images) > 0 {
		product.Image = product.Images[0]
	}
	if product.Specifications == nil {
		product.Specifications = map[string]string{}
	}

	if err := s.products.Create(ctx, &product); err != nil {
		return nil, err
	}
	s.publish(ctx, "product.created", product.ID)

	view := NewProductView(product)
	return &view, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req ProductCreateRequest) (*ProductView, error) {
	product := models.Product{
		ID:             id,
		Title:          req.Title,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Image:          req.Image,
		Images:         req.Images,
		CategoryIDs:    req.CategoryIDs,
		Rating:         req.Rating,
		Reviews:        req.Reviews,
		Specifications: req.Specifications,
		Prices:         req.Prices,
	}
	if err := s.products.Update(ctx, id, &product); err != nil {
		return nil, err
	}
	s.publish(ctx, "product.updated", id)

	view := NewProductView(product)
	return &view, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "product.deleted", id)
	return nil
}

// ImportRaw normalizes a batch of heterogeneous raw records and stores
// them. Records degrade field-by-field rather than failing the batch; a
// record is skipped only when it has no usable title at all.
func (s *CatalogService) ImportRaw(ctx context.Context, rawRecords []map[string]any) (*ImportResult, error) {
	result := &ImportResult{}
	products := make([]models.Product, 0, len(rawRecords))
	for _, raw := range rawRecords {
		p := catalog.NormalizeProduct(raw)
		if p.Title == "" {
			result.Skipped++
			continue
		}
		products = append(products, p)
	}

	if err := s.products.CreateMany(ctx, products); err != nil {
		return nil, fmt.Errorf("store imported products: %w", err)
	}
	result.Imported = len(products)

	for _, p := range products {
		s.publish(ctx, "product.imported", p.ID)
	}
	return result, nil
}

func (s *CatalogService) GetVendor(ctx context.Context, id int64) (*models.Vendor, error) {
	return s.vendors.FindByID(ctx, id)
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return s.vendors.FindAll(ctx)
}

// ListCategories returns root categories with their sub-categories
// attached, in id order. The tree is single-level deep: a child whose
// parent is missing is promoted to a root rather than dropped.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.CategoryNode, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	roots := map[int64]*models.CategoryNode{}
	var orphans []models.Category
	for _, c := range categories {
		if c.ParentID == nil {
			roots[c.ID] = &models.CategoryNode{Category: c, Children: []models.Category{}}
		}
	}
	for _, c := range categories {
		if c.ParentID == nil {
			continue
		}
		if parent, ok := roots[*c.ParentID]; ok {
			parent.Children = append(parent.Children, c)
		} else {
			orphans = append(orphans, c)
		}
	}
	for _, c := range orphans {
		c.ParentID = nil
		roots[c.ID] = &models.CategoryNode{Category: c, Children: []models.Category{}}
	}

	out := make([]models.CategoryNode, 0, len(roots))
	for _, node := range roots {
		out = append(out, *node)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CatalogService) publish(ctx context.Context, eventType string, id uuid.UUID) {
	if s.events == nil {
		return
	}
	publishCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.events.PublishProductEvent(publishCtx, eventType, id); err != nil {
		zap.L().Warn("failed to publish catalog event",
			zap.String("type", eventType),
			zap.String("product_id", id.String()),
			zap.Error(err),
		)
	}
}

func paginate(products []models.Product, page, perPage int) []models.Product {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return products
	}
	start := (page - 1) * perPage
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
