package services

import (
	"context"
	"fmt"

	"github.com/ghuser/gocatalog/services/catalog/domain"
	"github.com/ghuser/gocatalog/services/catalog/domain/models"
	"github.com/ghuser/gocatalog/services/catalog/domain/repositories"
)

// CategoryService exposes plain CRUD over catalog categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService returns a CategoryService backed by the given repository.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create persists a new category and returns it with the assigned id.
func (s *CategoryService) Create(ctx context.Context, label string) (*models.Category, error) {
	category := &models.Category{Label: label}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// GetByID returns a category or domain.ErrCategoryNotFound.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidID, id)
	}
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// List returns all categories ordered by ascending id.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Delete removes a category by id. Returns domain.ErrCategoryNotFound when
// no row exists.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidID, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
