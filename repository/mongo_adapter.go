package repository

import (
	"context"
	"fmt"
	"time"

	"catalog-service/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProductRepo is the backed-path catalog source: a straight
// passthrough to the products collection, no client-side caching.
type MongoProductRepo struct {
	collection *mongo.Collection
}

func NewMongoProductRepo(db *mongo.Database) *MongoProductRepo {
	return &MongoProductRepo{collection: db.Collection("products")}
}

func (r *MongoProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &product, nil
}

func (r *MongoProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepo) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *MongoProductRepo) CreateMany(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, len(products))
	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		docs[i] = products[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

func (r *MongoProductRepo) Update(ctx context.Context, id uuid.UUID, product *models.Product) error {
	product.ID = id
	product.UpdatedAt = time.Now().UTC()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, product)
	if err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoVendorRepo reads vendor records.
type MongoVendorRepo struct {
	collection *mongo.Collection
}

func NewMongoVendorRepo(db *mongo.Database) *MongoVendorRepo {
	return &MongoVendorRepo{collection: db.Collection("vendors")}
}

func (r *MongoVendorRepo) FindByID(ctx context.Context, id int64) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vendor)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find vendor %d: %w", id, err)
	}
	return &vendor, nil
}

func (r *MongoVendorRepo) FindAll(ctx context.Context) ([]models.Vendor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find vendors: %w", err)
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("decode vendors: %w", err)
	}
	return vendors, nil
}

// MongoCategoryRepo reads the category tree.
type MongoCategoryRepo struct {
	collection *mongo.Collection
}

func NewMongoCategoryRepo(db *mongo.Database) *MongoCategoryRepo {
	return &MongoCategoryRepo{collection: db.Collection("categories")}
}

func (r *MongoCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}
