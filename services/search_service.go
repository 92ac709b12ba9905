package services

import (
	"context"
	"fmt"

	"catalog-service/catalog"
	"catalog-service/repository"

	"go.uber.org/zap"
)

// SearchHistory is the slice of the history service the search path
// uses.
type SearchHistory interface {
	PushSearchAsync(sessionID, query string)
	RecentSearches(ctx context.Context, sessionID string) ([]string, error)
	ClearSearches(ctx context.Context, sessionID string) error
}

// SearchService runs catalog searches and drives the recent-search
// history: a query is persisted only after it proves it matches at
// least one product.
type SearchService struct {
	products repository.ProductRepo
	history  SearchHistory
}

func NewSearchService(products repository.ProductRepo, history SearchHistory) *SearchService {
	return &SearchService{products: products, history: history}
}

// Search matches the raw query against the catalog, applies the
// pipeline filters to the hits. When the query matched anything and a
// session is known, the query is recorded as a recent search. History
// writes are best-effort and never fail the search.
func (s *SearchService) Search(ctx context.Context, sessionID, query string, filters catalog.Filters) ([]ProductView, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	hits := catalog.Search(query, products)
	if len(hits) > 0 && sessionID != "" {
		s.history.PushSearchAsync(sessionID, query)
	}

	filtered := catalog.Apply(hits, filters)
	views := make([]ProductView, 0, len(filtered))
	for _, p := range filtered {
		views = append(views, NewProductView(p))
	}
	return views, nil
}

// Suggest returns up to limit live suggestions for the search dropdown.
// No history is written: only a committed search validates a query.
func (s *SearchService) Suggest(ctx context.Context, query string, limit int) ([]ProductView, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	hits := catalog.Search(query, products)
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	views := make([]ProductView, 0, len(hits))
	for _, p := range hits {
		views = append(views, NewProductView(p))
	}
	return views, nil
}

// RecentSearches returns the session's saved queries, newest first.
func (s *SearchService) RecentSearches(ctx context.Context, sessionID string) ([]string, error) {
	terms, err := s.history.RecentSearches(ctx, sessionID)
	if err != nil {
		// Persisted history is an enhancement: a broken store reads as
		// empty rather than breaking the page.
		zap.L().Warn("failed to load recent searches", zap.String("session_id", sessionID), zap.Error(err))
		return []string{}, nil
	}
	return terms, nil
}

func (s *SearchService) ClearRecentSearches(ctx context.Context, sessionID string) error {
	return s.history.ClearSearches(ctx, sessionID)
}
