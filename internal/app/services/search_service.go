package services

import (
	"context"
	"strings"
	"time"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/repositories"
	"github.com/devrim/examforge/internal/cache"
	"github.com/devrim/examforge/internal/pkg/logger"
)

// searchLimit caps how many courses one query returns.
const searchLimit = 10

// searchCacheTTL bounds how stale a cached result set may get.
const searchCacheTTL = 5 * time.Minute

// SearchService answers the public course search, with a read-through cache
// in front of the database.
type SearchService struct {
	courseRepo repositories.CourseRepository
	cache      *cache.Cache
}

// NewSearchService creates a new search service instance.
func NewSearchService(courseRepo repositories.CourseRepository, c *cache.Cache) *SearchService {
	return &SearchService{
		courseRepo: courseRepo,
		cache:      c,
	}
}

// SearchCourses matches courses whose code or name contains the query,
// case-insensitively, capped at ten hits. An empty query returns an empty
// result without touching storage.
func (s *SearchService) SearchCourses(ctx context.Context, query string) ([]dto.CourseSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []dto.CourseSearchResult{}, nil
	}

	cacheKey := strings.ToLower(query)
	var cached []dto.CourseSearchResult
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	results, err := s.courseRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	// Cache failures only cost the next lookup a database round trip.
	if err := s.cache.Set(ctx, cacheKey, results, searchCacheTTL); err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("Failed to cache search results")
	}

	return results, nil
}

// InvalidateCache drops all cached search result sets. Called after writes
// that change what a search could return.
func (s *SearchService) InvalidateCache(ctx context.Context) {
	if err := s.cache.DeleteByPrefix(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate search cache")
	}
}
