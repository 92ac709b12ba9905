package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"catalog-service/catalog"
	"catalog-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validation constants
const (
	MaxPageSize          = 100
	MaxPageNumber        = 1000000
	MaxSuggestions       = 20
	DefaultSuggestions   = 8
	MaxPresignExpiry     = int64(3600)
	DefaultPresignExpiry = int64(300)
)

var allowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// RequestValidator handles all input validation
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// ParsePagination validates and parses pagination parameters.
func (rv *RequestValidator) ParsePagination(c *gin.Context) (int, int, error) {
	pageStr := c.DefaultQuery("page", "1")
	perPageStr := c.DefaultQuery("perPage", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, 0, errors.New("invalid page number")
	}
	if page > MaxPageNumber {
		page = MaxPageNumber
	}

	perPage, err := strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 {
		return 0, 0, errors.New("invalid page size")
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	return page, perPage, nil
}

// ParseFilters validates and parses the pipeline filter parameters.
func (rv *RequestValidator) ParseFilters(c *gin.Context) (catalog.Filters, error) {
	filters := catalog.Filters{}

	if err := rv.parseVendorIDs(c, &filters); err != nil {
		return filters, err
	}
	if err := rv.parseInStock(c, &filters); err != nil {
		return filters, err
	}
	if err := rv.parsePriceRange(c, &filters); err != nil {
		return filters, err
	}
	if err := rv.parseSortParam(c, &filters); err != nil {
		return filters, err
	}

	return filters, nil
}

// ParseSuggestLimit parses the suggestion cap.
func (rv *RequestValidator) ParseSuggestLimit(c *gin.Context) (int, error) {
	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		return DefaultSuggestions, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return 0, errors.New("invalid limit value")
	}
	if limit > MaxSuggestions {
		limit = MaxSuggestions
	}
	return limit, nil
}

// ValidateCreateRequest runs struct validation on a create/update body.
func (rv *RequestValidator) ValidateCreateRequest(req *services.ProductCreateRequest) error {
	if err := rv.validate.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	for _, pp := range req.Prices {
		if pp.Price < 0 || pp.ShippingCost < 0 {
			return errors.New("price and shipping cost must not be negative")
		}
	}
	return nil
}

// IsAllowedImageContentType checks an upload content type.
func IsAllowedImageContentType(contentType string) bool {
	return allowedImageContentTypes[strings.ToLower(strings.TrimSpace(contentType))]
}

// Private helper methods

func (rv *RequestValidator) parseVendorIDs(c *gin.Context, filters *catalog.Filters) error {
	vendorParam := c.Query("vendorId")
	if vendorParam == "" {
		return nil
	}

	vendors := map[int64]bool{}
	for _, rawID := range strings.Split(vendorParam, ",") {
		trimmed := strings.TrimSpace(rawID)
		if trimmed == "" {
			continue
		}
		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return errors.New("invalid vendor ID format")
		}
		vendors[id] = true
	}
	if len(vendors) == 0 {
		return errors.New("invalid vendor ID format")
	}

	filters.Vendors = vendors
	return nil
}

func (rv *RequestValidator) parseInStock(c *gin.Context, filters *catalog.Filters) error {
	inStockStr := strings.TrimSpace(c.Query("in_stock"))
	if inStockStr == "" {
		return nil
	}
	v, err := strconv.ParseBool(inStockStr)
	if err != nil {
		return errors.New("invalid boolean value for 'in_stock'")
	}
	filters.InStockOnly = v
	return nil
}

func (rv *RequestValidator) parsePriceRange(c *gin.Context, filters *catalog.Filters) error {
	minPriceStr := strings.TrimSpace(c.Query("minPrice"))
	if minPriceStr != "" {
		parsed, err := strconv.ParseFloat(minPriceStr, 64)
		if err != nil {
			return errors.New("invalid minPrice value")
		}
		filters.MinPrice = &parsed
	}

	maxPriceStr := strings.TrimSpace(c.Query("maxPrice"))
	if maxPriceStr != "" {
		parsed, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			return errors.New("invalid maxPrice value")
		}
		filters.MaxPrice = &parsed
	}

	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return errors.New("minPrice must be less than or equal to maxPrice")
	}

	return nil
}

func (rv *RequestValidator) parseSortParam(c *gin.Context, filters *catalog.Filters) error {
	sortParam := strings.ToLower(strings.TrimSpace(c.Query("sort")))
	if !catalog.IsSupportedSort(sortParam) {
		return errors.New("invalid sort value")
	}
	filters.Sort = sortParam
	return nil
}
