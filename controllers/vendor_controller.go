package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"catalog-service/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VendorController serves vendor and category lookups.
type VendorController struct {
	catalog CatalogServiceAPI
}

func NewVendorController(catalogSvc CatalogServiceAPI) *VendorController {
	return &VendorController{catalog: catalogSvc}
}

func (vc *VendorController) GetVendors(c *gin.Context) {
	vendors, err := vc.catalog.ListVendors(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list vendors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (vc *VendorController) GetVendorByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID format"})
		return
	}

	vendor, err := vc.catalog.GetVendor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}
		zap.L().Error("Failed to fetch vendor", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendor"})
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// GetCategories returns the single-level category tree: roots with
// their sub-categories attached.
func (vc *VendorController) GetCategories(c *gin.Context) {
	categories, err := vc.catalog.ListCategories(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
