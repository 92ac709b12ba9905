package repository

import (
	"context"
	"errors"

	"catalog-service/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// ProductRepo defines the catalog-source operations used by the service
// layer. The interface uses plain Go types so adapters (Mongo, in-memory
// mock) can swap without touching callers.
type ProductRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	CreateMany(ctx context.Context, products []models.Product) error
	Update(ctx context.Context, id uuid.UUID, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VendorRepo provides read access to vendor records. Vendors are weak
// references from price entries, lookup-only on this surface.
type VendorRepo interface {
	FindByID(ctx context.Context, id int64) (*models.Vendor, error)
	FindAll(ctx context.Context) ([]models.Vendor, error)
}

// CategoryRepo provides read access to the single-level category tree.
type CategoryRepo interface {
	FindAll(ctx context.Context) ([]models.Category, error)
}
