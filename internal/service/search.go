package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soupmate/soupmate-api/internal/ai"
	"github.com/soupmate/soupmate-api/internal/errs"
	"github.com/soupmate/soupmate-api/internal/kv"
	"github.com/soupmate/soupmate-api/internal/logger"
	"github.com/soupmate/soupmate-api/internal/models"
	"go.uber.org/zap"
)

// SearchService is the business logic layer for recipe search.
type SearchService struct {
	Searcher ai.Searcher
	Store    kv.Store
}

// SearchResponse is the response object for a search, echoing the query and
// filter state alongside the results.
type SearchResponse struct {
	Recipes []models.Recipe `json:"recipes"`
	Query   string          `json:"query"`
	Filters models.Filters  `json:"filters"`
}

// NewSearchService is the constructor function for initializing a new SearchService.
func NewSearchService(searcher ai.Searcher, store kv.Store) *SearchService {
	return &SearchService{
		Searcher: searcher,
		Store:    store,
	}
}

// Search validates the query, delegates to the configured searcher and writes
// the audit record. The audit write never fails a successful search; a store
// failure there is logged and dropped.
func (s *SearchService) Search(ctx context.Context, query string, filters models.Filters) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.ValidationError{Message: "Search query is required"}
	}

	recipes, err := s.Searcher.Search(ctx, query, filters)
	if err != nil {
		return nil, err
	}

	record := models.SearchRecord{
		Query:     query,
		Filters:   filters,
		Results:   recipes,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Store.Set(ctx, searchRecordKey(), record); err != nil {
		logger.Get().Warn("failed to persist search record", zap.String("query", query), zap.Error(err))
	}

	return &SearchResponse{
		Recipes: recipes,
		Query:   query,
		Filters: filters,
	}, nil
}

// searchRecordKey builds a collision-resistant key for one audit record:
// millisecond timestamp plus a short random suffix. No uniqueness guarantee
// beyond very low collision probability is needed for a write-only log.
func searchRecordKey() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("search_%d_%s", time.Now().UnixMilli(), suffix)
}
