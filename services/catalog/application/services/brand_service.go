package services

import (
	"context"
	"fmt"

	"github.com/ghuser/gocatalog/services/catalog/domain"
	"github.com/ghuser/gocatalog/services/catalog/domain/models"
	"github.com/ghuser/gocatalog/services/catalog/domain/repositories"
)

// BrandService exposes plain CRUD over catalog brands. No events, no cache.
type BrandService struct {
	repo repositories.BrandRepository
}

// NewBrandService returns a BrandService backed by the given repository.
func NewBrandService(repo repositories.BrandRepository) *BrandService {
	return &BrandService{repo: repo}
}

// Create persists a new brand and returns it with the assigned id.
func (s *BrandService) Create(ctx context.Context, label string) (*models.Brand, error) {
	brand := &models.Brand{Label: label}
	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return brand, nil
}

// GetByID returns a brand or domain.ErrBrandNotFound.
func (s *BrandService) GetByID(ctx context.Context, id int64) (*models.Brand, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidID, id)
	}
	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return brand, nil
}

// List returns all brands ordered by ascending id.
func (s *BrandService) List(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	if brands == nil {
		brands = []models.Brand{}
	}
	return brands, nil
}

// Delete removes a brand by id. Returns domain.ErrBrandNotFound when no row
// exists.
func (s *BrandService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidID, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
