package service

import (
	"context"

	"maturiq/internal/cache"
	"maturiq/internal/model"
	"maturiq/internal/repository"
)

// CatalogService serves catalog reference data, caching lookups in Redis
type CatalogService struct {
	catalogRepo  repository.CatalogRepo
	catalogCache cache.CatalogCache
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepo, catalogCache cache.CatalogCache) *CatalogService {
	return &CatalogService{
		catalogRepo:  catalogRepo,
		catalogCache: catalogCache,
	}
}

// GetQuestion returns a catalog question by id, cache first
func (s *CatalogService) GetQuestion(ctx context.Context, id string) (*model.Question, error) {
	if s.catalogCache != nil {
		question, err := s.catalogCache.GetQuestion(ctx, id)
		if err == nil && question != nil {
			return question, nil
		}
	}

	question, err := s.catalogRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question != nil && s.catalogCache != nil {
		// Best effort: a cache write failure never fails the lookup
		s.catalogCache.SetQuestion(ctx, question)
	}
	return question, nil
}

// ActiveCategories returns the ordered active category list
func (s *CatalogService) ActiveCategories(ctx context.Context) ([]*model.Category, error) {
	if s.catalogCache != nil {
		categories, err := s.catalogCache.GetCategories(ctx)
		if err == nil && categories != nil {
			return categories, nil
		}
	}

	categories, err := s.catalogRepo.ListActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	if s.catalogCache != nil {
		s.catalogCache.SetCategories(ctx, categories)
	}
	return categories, nil
}

// ListQuestions returns the active questions for an assessment type: the
// full catalog for quick mode, deep-eligible questions for deep mode.
func (s *CatalogService) ListQuestions(ctx context.Context, mode model.AssessmentType) ([]*model.Question, error) {
	if mode == model.AssessmentTypeDeep {
		return s.catalogRepo.ListDeepQuestions(ctx)
	}
	return s.catalogRepo.ListActiveQuestions(ctx)
}

// RefreshCache drops all cached catalog entries so the next reads hit the
// repository. Called after catalog edits.
func (s *CatalogService) RefreshCache(ctx context.Context) error {
	if s.catalogCache == nil {
		return nil
	}
	return s.catalogCache.Invalidate(ctx)
}

// QuestionTotalsByCategory counts active catalog questions per category,
// feeding the answered/total counters of quick aggregation.
func (s *CatalogService) QuestionTotalsByCategory(ctx context.Context) (map[string]int, error) {
	questions, err := s.catalogRepo.ListActiveQuestions(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int, len(questions))
	for _, q := range questions {
		totals[q.CategoryID]++
	}
	return totals, nil
}
