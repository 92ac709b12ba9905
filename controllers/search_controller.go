package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchController serves the search results page, live suggestions and
// the recent-search history. The `q` parameter carries the raw user
// query; normalization happens inside the lookup, never in the URL.
type SearchController struct {
	search    SearchServiceAPI
	validator *RequestValidator
}

func NewSearchController(search SearchServiceAPI) *SearchController {
	return &SearchController{
		search:    search,
		validator: NewRequestValidator(),
	}
}

// Search runs a catalog search with pipeline filters on the hits. A
// blank query is a valid request that matches nothing.
func (sc *SearchController) Search(c *gin.Context) {
	query := c.Query("q")

	filters, err := sc.validator.ParseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := c.GetHeader(SessionHeader)
	results, err := sc.search.Search(c.Request.Context(), sessionID, query, filters)
	if err != nil {
		zap.L().Error("Search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"products": results,
		"total":    len(results),
	})
}

// Suggest returns capped live suggestions for the search dropdown.
func (sc *SearchController) Suggest(c *gin.Context) {
	query := c.Query("q")

	limit, err := sc.validator.ParseSuggestLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := sc.search.Suggest(c.Request.Context(), query, limit)
	if err != nil {
		zap.L().Error("Suggestions failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// GetRecentSearches returns the session's saved queries, newest first.
func (sc *SearchController) GetRecentSearches(c *gin.Context) {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + SessionHeader + " header"})
		return
	}

	searches, err := sc.search.RecentSearches(c.Request.Context(), sessionID)
	if err != nil {
		zap.L().Warn("Failed to load recent searches", zap.Error(err))
		searches = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"searches": searches})
}

// ClearRecentSearches drops the session's saved queries.
func (sc *SearchController) ClearRecentSearches(c *gin.Context) {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + SessionHeader + " header"})
		return
	}

	if err := sc.search.ClearRecentSearches(c.Request.Context(), sessionID); err != nil {
		zap.L().Error("Failed to clear recent searches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear recent searches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recent searches cleared"})
}
