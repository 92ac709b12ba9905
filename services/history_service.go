package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-service/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Caps for the per-session history lists.
const (
	RecentSearchCap   = 5
	RecentlyViewedCap = 10

	searchKeyPrefix = "history:searches:"
	viewedKeyPrefix = "history:viewed:"
)

// HistoryService keeps the per-session recent-search and recently-viewed
// lists: bounded, de-duplicating, most-recent-first, persisted as JSON
// arrays in Redis. Recently-viewed entries are full product snapshots so
// rendering them needs no catalog re-fetch.
type HistoryService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewHistoryService(client *redis.Client, ttl time.Duration) *HistoryService {
	return &HistoryService{redis: client, ttl: ttl}
}

// PushSearch inserts a query at the front of the session's recent
// searches with move-to-front semantics and truncates to the cap.
func (h *HistoryService) PushSearch(ctx context.Context, sessionID, query string) error {
	key := searchKeyPrefix + sessionID

	var terms []string
	h.load(ctx, key, &terms)
	terms = pushFront(terms, query, func(existing string) bool { return existing == query }, RecentSearchCap)

	return h.store(ctx, key, terms)
}

// PushSearchAsync runs PushSearch in the background; failures are
// logged, never surfaced.
func (h *HistoryService) PushSearchAsync(sessionID, query string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.PushSearch(ctx, sessionID, query); err != nil {
			zap.L().Warn("failed to persist recent search",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	}()
}

// RecentSearches returns the session's queries, newest first. A missing
// or corrupt stored value reads as an empty list.
func (h *HistoryService) RecentSearches(ctx context.Context, sessionID string) ([]string, error) {
	var terms []string
	if err := h.load(ctx, searchKeyPrefix+sessionID, &terms); err != nil {
		return nil, err
	}
	if terms == nil {
		terms = []string{}
	}
	return terms, nil
}

func (h *HistoryService) ClearSearches(ctx context.Context, sessionID string) error {
	return h.redis.Del(ctx, searchKeyPrefix+sessionID).Err()
}

// PushViewed inserts a product snapshot at the front of the session's
// recently-viewed list, deduplicating on product id.
func (h *HistoryService) PushViewed(ctx context.Context, sessionID string, product models.Product) error {
	key := viewedKeyPrefix + sessionID

	var viewed []models.Product
	h.load(ctx, key, &viewed)
	viewed = pushFront(viewed, product, func(existing models.Product) bool { return existing.ID == product.ID }, RecentlyViewedCap)

	return h.store(ctx, key, viewed)
}

// PushViewedAsync runs PushViewed in the background; failures are
// logged, never surfaced.
func (h *HistoryService) PushViewedAsync(sessionID string, product models.Product) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.PushViewed(ctx, sessionID, product); err != nil {
			zap.L().Warn("failed to persist recently viewed product",
				zap.String("session_id", sessionID),
				zap.String("product_id", product.ID.String()),
				zap.Error(err),
			)
		}
	}()
}

// RecentlyViewed returns the session's viewed snapshots, newest first.
func (h *HistoryService) RecentlyViewed(ctx context.Context, sessionID string) ([]models.Product, error) {
	var viewed []models.Product
	if err := h.load(ctx, viewedKeyPrefix+sessionID, &viewed); err != nil {
		return nil, err
	}
	if viewed == nil {
		viewed = []models.Product{}
	}
	return viewed, nil
}

// load reads and decodes a stored list. redis.Nil and corrupt JSON both
// leave dest untouched (empty list semantics); only transport errors
// are returned.
func (h *HistoryService) load(ctx context.Context, key string, dest any) error {
	data, err := h.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		// Corrupt stored data is discarded, not propagated. The next
		// store overwrites it.
		zap.L().Warn("discarding corrupt history entry", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (h *HistoryService) store(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := h.redis.Set(ctx, key, data, h.ttl).Err(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// pushFront implements move-to-front insertion: any prior occurrence is
// removed before the item is inserted at the head, then the list is
// truncated to limit.
func pushFront[T any](list []T, item T, matches func(T) bool, limit int) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	for _, existing := range list {
		if matches(existing) {
			continue
		}
		out = append(out, existing)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
