package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-service/catalog"
	"catalog-service/models"
	"catalog-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeSearchService struct {
	lastSession string
	lastQuery   string
	lastFilters catalog.Filters
	lastLimit   int
	results     []services.ProductView
	recent      []string
	recentErr   error
	cleared     []string
}

func (f *fakeSearchService) Search(ctx context.Context, sessionID, query string, filters catalog.Filters) ([]services.ProductView, error) {
	f.lastSession = sessionID
	f.lastQuery = query
	f.lastFilters = filters
	return f.results, nil
}

func (f *fakeSearchService) Suggest(ctx context.Context, query string, limit int) ([]services.ProductView, error) {
	f.lastQuery = query
	f.lastLimit = limit
	if limit < len(f.results) {
		return f.results[:limit], nil
	}
	return f.results, nil
}

func (f *fakeSearchService) RecentSearches(ctx context.Context, sessionID string) ([]string, error) {
	f.lastSession = sessionID
	return f.recent, f.recentErr
}

func (f *fakeSearchService) ClearRecentSearches(ctx context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	return nil
}

func newSearchRouter(svc *fakeSearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewSearchController(svc)
	router := gin.New()
	router.GET("/search", controller.Search)
	router.GET("/search/suggestions", controller.Suggest)
	router.GET("/search/recent", controller.GetRecentSearches)
	router.DELETE("/search/recent", controller.ClearRecentSearches)
	return router
}

func searchView(title string) services.ProductView {
	return services.NewProductView(models.Product{ID: uuid.New(), Title: title})
}

func TestSearchPassesRawQueryAndSession(t *testing.T) {
	fakeService := &fakeSearchService{results: []services.ProductView{searchView("AeroBook 14")}}
	router := newSearchRouter(fakeService)

	req := httptest.NewRequest(http.MethodGet, "/search?q=%20AeroBook%20&in_stock=true", nil)
	req.Header.Set(SessionHeader, "session-7")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	// Trimming and lowercasing belong to the lookup, not the handler.
	if fakeService.lastQuery != " AeroBook " {
		t.Fatalf("expected the raw query to be forwarded, got %q", fakeService.lastQuery)
	}
	if fakeService.lastSession != "session-7" {
		t.Fatalf("expected session-7, got %q", fakeService.lastSession)
	}
	if !fakeService.lastFilters.InStockOnly {
		t.Fatal("expected the in-stock filter to be forwarded")
	}

	var body struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Total != 1 {
		t.Fatalf("expected total 1, got %d", body.Total)
	}
}

func TestSearchBlankQueryIsValid(t *testing.T) {
	fakeService := &fakeSearchService{results: []services.ProductView{}}
	router := newSearchRouter(fakeService)

	req := httptest.NewRequest(http.MethodGet, "/search?q=", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var body struct {
		Products []services.ProductView `json:"products"`
		Total    int                    `json:"total"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Total != 0 || len(body.Products) != 0 {
		t.Fatalf("expected an empty result set, got %+v", body)
	}
}

func TestSearchRejectsInvalidFilters(t *testing.T) {
	fakeService := &fakeSearchService{}
	router := newSearchRouter(fakeService)

	req := httptest.NewRequest(http.MethodGet, "/search?q=laptop&sort=cheapest", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	if fakeService.lastQuery != "" {
		t.Fatal("expected the search service not to be called")
	}
}

func TestSuggestDefaultsAndCapsLimit(t *testing.T) {
	fakeService := &fakeSearchService{}
	router := newSearchRouter(fakeService)

	req := httptest.NewRequest(http.MethodGet, "/search/suggestions?q=lap", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if fakeService.lastLimit != DefaultSuggestions {
		t.Fatalf("expected default limit %d, got %d", DefaultSuggestions, fakeService.lastLimit)
	}

	req = httptest.NewRequest(http.MethodGet, "/search/suggestions?q=lap&limit=500", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if fakeService.lastLimit != MaxSuggestions {
		t.Fatalf("expected limit to be capped at %d, got %d", MaxSuggestions, fakeService.lastLimit)
	}
}

func TestSuggestRejectsInvalidLimit(t *testing.T) {
	router := newSearchRouter(&fakeSearchService{})

	req := httptest.NewRequest(http.MethodGet, "/search/suggestions?q=lap&limit=zero", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetRecentSearchesRequiresSession(t *testing.T) {
	router := newSearchRouter(&fakeSearchService{})

	req := httptest.NewRequest(http.MethodGet, "/search/recent", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetRecentSearchesReturnsSessionHistory(t *testing.T) {
	fakeService := &fakeSearchService{recent: []string{"laptop", "monitor"}}
	router := newSearchRouter(fakeService)

	req := httptest.NewRequest(http.MethodGet, "/search/recent", nil)
	req.Header.Set(SessionHeader, "session-9")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if fakeService.lastSession != "session-9" {
		t.Fatalf("expected session-9, got %q", fakeService.lastSession)
	}

	var body struct {
		Searches []string `json:"searches"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Searches) != 2 || body.Searches[0] != "laptop" {
		t.Fatalf("unexpected searches payload: %v", body.Searches)
	}
}

func TestGetRecentSearchesDegradesReadFailures(t *testing.T) {
	fakeService := &fakeSearchService{recentErr: errors.New("redis down")}
	router := newSearchRouter(fakeService)

	req := httptest.NewRequest(http.MethodGet, "/search/recent", nil)
	req.Header.Set(SessionHeader, "session-9")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var body struct {
		Searches []string `json:"searches"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Searches) != 0 {
		t.Fatalf("expected an empty list, got %v", body.Searches)
	}
}

func TestClearRecentSearches(t *testing.T) {
	fakeService := &fakeSearchService{}
	router := newSearchRouter(fakeService)

	req := httptest.NewRequest(http.MethodDelete, "/search/recent", nil)
	req.Header.Set(SessionHeader, "session-3")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if len(fakeService.cleared) != 1 || fakeService.cleared[0] != "session-3" {
		t.Fatalf("expected clear for session-3, got %v", fakeService.cleared)
	}
}
