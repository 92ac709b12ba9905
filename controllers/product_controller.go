package controllers

import (
	"errors"
	"net/http"

	"catalog-service/repository"
	"catalog-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductController serves the catalog surface: listings through the
// filter/sort pipeline, product detail, the backed-path CRUD and raw
// feed import.
type ProductController struct {
	catalog   CatalogServiceAPI
	history   HistoryAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewProductController(catalogSvc CatalogServiceAPI, history HistoryAPI, cache *CacheManager) *ProductController {
	return &ProductController{
		catalog:   catalogSvc,
		history:   history,
		cache:     cache,
		validator: NewRequestValidator(),
	}
}

// GetProducts lists products after one pipeline run, paginated.
func (pc *ProductController) GetProducts(c *gin.Context) {
	page, perPage, err := pc.validator.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters, err := pc.validator.ParseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if pc.cache != nil {
		if cached, ok := pc.cache.GetProductList(c.Request.Context(), page, perPage, filters); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products, total, err := pc.catalog.ListProducts(c.Request.Context(), services.ListParams{
		Filters: filters,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	response := map[string]interface{}{
		"products": products,
		"meta": gin.H{
			"page":    page,
			"perPage": perPage,
			"total":   total,
		},
	}

	if pc.cache != nil {
		pc.cache.SetProductListAsync(page, perPage, filters, response)
	}

	c.JSON(http.StatusOK, response)
}

// GetProductByID returns one product with resolved pricing. When the
// request carries a session id, the product lands on that session's
// recently-viewed list in the background.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := pc.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err, "Failed to fetch product")
		return
	}

	if sessionID := c.GetHeader(SessionHeader); sessionID != "" && pc.history != nil {
		pc.history.PushViewedAsync(sessionID, product.Product)
	}

	c.JSON(http.StatusOK, product)
}

// GetRecentlyViewed returns the session's recently-viewed snapshots.
func (pc *ProductController) GetRecentlyViewed(c *gin.Context) {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + SessionHeader + " header"})
		return
	}

	viewed, err := pc.history.RecentlyViewed(c.Request.Context(), sessionID)
	if err != nil {
		zap.L().Warn("Failed to load recently viewed", zap.String("session_id", sessionID), zap.Error(err))
		// History is an enhancement: read failures degrade to empty.
		viewed = nil
	}
	if viewed == nil {
		c.JSON(http.StatusOK, gin.H{"products": []interface{}{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": viewed})
}

// CreateProduct stores a canonical product from a validated JSON body.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req services.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if err := pc.validator.ValidateCreateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.catalog.CreateProduct(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
		return
	}

	pc.invalidateCache(c)
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// UpdateProduct replaces the stored record.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req services.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if err := pc.validator.ValidateCreateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.catalog.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondRepoError(c, err, "Failed to update product")
		return
	}

	pc.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// DeleteProduct removes a product.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := pc.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondRepoError(c, err, "Failed to delete product")
		return
	}

	pc.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// ImportProducts accepts a JSON array of raw feed records in any of the
// recognized source shapes and runs them through the normalizer.
func (pc *ProductController) ImportProducts(c *gin.Context) {
	var rawRecords []map[string]any
	if err := c.ShouldBindJSON(&rawRecords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected a JSON array of raw product records"})
		return
	}
	if len(rawRecords) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No records to import"})
		return
	}

	result, err := pc.catalog.ImportRaw(c.Request.Context(), rawRecords)
	if err != nil {
		zap.L().Error("Feed import failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}

	pc.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Import completed", "result": result})
}

func (pc *ProductController) invalidateCache(c *gin.Context) {
	if pc.cache == nil {
		return
	}
	if err := pc.cache.Invalidate(c.Request.Context()); err != nil {
		zap.L().Error("Failed to invalidate product cache", zap.Error(err))
	}
}

func parseProductID(c *gin.Context) (uuid.UUID, bool) {
	id := c.Param("id")
	productID, err := uuid.Parse(id)
	if err != nil {
		zap.L().Warn("Invalid UUID format", zap.String("id", id))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format"})
		return uuid.Nil, false
	}
	return productID, true
}

func respondRepoError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	zap.L().Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
