package controllers

import (
	"context"
	"time"

	"catalog-service/catalog"
	"catalog-service/models"
	"catalog-service/services"

	"github.com/google/uuid"
)

// Default configuration values
const (
	DefaultCacheTTL       = 10 * time.Minute
	DefaultContextTimeout = 30 * time.Second

	// SessionHeader carries the anonymous storefront session the
	// history lists are keyed by.
	SessionHeader = "X-Session-ID"
)

// CatalogServiceAPI defines the catalog operations the controllers use.
type CatalogServiceAPI interface {
	ListProducts(ctx context.Context, params services.ListParams) ([]services.ProductView, int, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*services.ProductView, error)
	CreateProduct(ctx context.Context, req services.ProductCreateRequest) (*services.ProductView, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req services.ProductCreateRequest) (*services.ProductView, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ImportRaw(ctx context.Context, rawRecords []map[string]any) (*services.ImportResult, error)
	GetVendor(ctx context.Context, id int64) (*models.Vendor, error)
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	ListCategories(ctx context.Context) ([]models.CategoryNode, error)
}

// SearchServiceAPI defines the search operations the controllers use.
type SearchServiceAPI interface {
	Search(ctx context.Context, sessionID, query string, filters catalog.Filters) ([]services.ProductView, error)
	Suggest(ctx context.Context, query string, limit int) ([]services.ProductView, error)
	RecentSearches(ctx context.Context, sessionID string) ([]string, error)
	ClearRecentSearches(ctx context.Context, sessionID string) error
}

// HistoryAPI is the slice of the history service the product controller
// needs for the recently-viewed list.
type HistoryAPI interface {
	PushViewedAsync(sessionID string, product models.Product)
	RecentlyViewed(ctx context.Context, sessionID string) ([]models.Product, error)
}

// UploadAPI generates presigned image-upload URLs.
type UploadAPI interface {
	PresignUpload(ctx context.Context, productID uuid.UUID, filename, contentType string, expiresSeconds int64) (string, string, string, error)
}
