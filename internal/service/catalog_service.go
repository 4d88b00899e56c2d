package service

import (
	"context"
	"fmt"
	"strings"

	"dicefit-api/internal/core"
	"dicefit-api/internal/metrics"
	"dicefit-api/internal/models"

	"github.com/rs/zerolog"
)

const (
	plansCacheKey        = "plans"
	allExercisesCacheKey = "exercises:all"
)

func exercisesCacheKey(exerciseType string) string {
	if exerciseType == "" {
		return allExercisesCacheKey
	}
	return "exercises:type:" + exerciseType
}

// CatalogService serves reference data through a read-through cache. Cache
// failures are logged and never fail a request.
type CatalogService struct {
	repo   core.CatalogRepository
	cache  core.Cache
	logger zerolog.Logger
}

func NewCatalogService(repo core.CatalogRepository, cache core.Cache, logger zerolog.Logger) core.CatalogService {
	return &CatalogService{
		repo:   repo,
		cache:  cache,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

func (s *CatalogService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	var cached []models.Plan
	if s.lookup(ctx, plansCacheKey, &cached) {
		return cached, nil
	}

	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	s.store(ctx, plansCacheKey, plans)
	return plans, nil
}

// ListExercises returns every exercise when exerciseType is empty or
// "Todos" (any case), otherwise only exercises of that type.
func (s *CatalogService) ListExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error) {
	exerciseType = strings.TrimSpace(exerciseType)
	if strings.EqualFold(exerciseType, models.AllExerciseTypes) {
		exerciseType = ""
	}

	key := exercisesCacheKey(exerciseType)
	var cached []models.Exercise
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	exercises, err := s.repo.ListExercises(ctx, exerciseType)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	s.store(ctx, key, exercises)
	return exercises, nil
}

// Refresh evicts the plan list, the full exercise list and one entry per
// exercise type currently in the store.
func (s *CatalogService) Refresh(ctx context.Context) error {
	exercises, err := s.repo.ListExercises(ctx, "")
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}

	keys := []string{plansCacheKey, allExercisesCacheKey}
	seen := make(map[string]bool)
	for _, e := range exercises {
		if e.Type == "" || seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		keys = append(keys, exercisesCacheKey(e.Type))
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	s.logger.Info().Int("keys", len(keys)).Msg("Catalog cache refreshed")
	return nil
}

func (s *CatalogService) lookup(ctx context.Context, key string, dest any) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed, falling back to database")
		return false
	case hit:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return true
	default:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return false
	}
}

// store caches non-empty results only, so unknown filters never fill the cache.
func (s *CatalogService) store(ctx context.Context, key string, value any) {
	switch v := value.(type) {
	case []models.Plan:
		if len(v) == 0 {
			return
		}
	case []models.Exercise:
		if len(v) == 0 {
			return
		}
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}
