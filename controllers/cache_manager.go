package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"catalog-service/catalog"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"
)

// CacheManager caches product-list responses in Redis behind a version
// key: catalog mutations bump the version instead of enumerating stale
// keys.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{
		redis: client,
		ttl:   DefaultCacheTTL,
	}
}

// GetProductList retrieves a cached product list response.
func (cm *CacheManager) GetProductList(ctx context.Context, page, perPage int, filters catalog.Filters) (map[string]interface{}, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cacheKey := cm.listCacheKey(version, page, perPage, filters)
	cachedData, err := cm.redis.Get(ctx, cacheKey).Result()
	if err != nil {
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(cachedData), &response); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}

	return response, true
}

// SetProductListAsync caches a product list response in the background.
func (cm *CacheManager) SetProductListAsync(page, perPage int, filters catalog.Filters, response map[string]interface{}) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		cacheKey := cm.listCacheKey(version, page, perPage, filters)
		jsonBytes, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, cacheKey, jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// Invalidate invalidates every cached list by bumping the version.
func (cm *CacheManager) Invalidate(ctx context.Context) error {
	newVersion, err := cm.redis.Incr(ctx, cacheVersionKey).Result()
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}

	zap.L().Info("Product list cache invalidated", zap.Int64("new_version", newVersion))
	return nil
}

// getCacheVersion retrieves the current cache version with retry logic.
func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		ver, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
		if err == nil && ver > 0 {
			return ver, nil
		}

		if err == redis.Nil {
			if err := cm.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err == nil {
				return 1, nil
			}
		}

		if i < maxRetries-1 {
			time.Sleep(time.Millisecond * 50)
		}
	}

	return 0, fmt.Errorf("failed to get cache version after %d retries", maxRetries)
}

func (cm *CacheManager) listCacheKey(version int64, page, perPage int, filters catalog.Filters) string {
	return fmt.Sprintf(
		"%s%d:p:%d:l:%d:v:%s:st:%t:s:%s:min:%s:max:%s",
		productListCachePrefix,
		version,
		page,
		perPage,
		vendorCacheKey(filters.Vendors),
		filters.InStockOnly,
		filters.Sort,
		formatFloatForCache(filters.MinPrice),
		formatFloatForCache(filters.MaxPrice),
	)
}

func vendorCacheKey(vendors map[int64]bool) string {
	if len(vendors) == 0 {
		return ""
	}
	ids := make([]string, 0, len(vendors))
	for id := range vendors {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func formatFloatForCache(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
