package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/gocatalog/pkg/cache"
	"github.com/ghuser/gocatalog/pkg/logger"
	"github.com/ghuser/gocatalog/services/catalog/domain"
	"github.com/ghuser/gocatalog/services/catalog/domain/models"
	"github.com/ghuser/gocatalog/services/catalog/domain/repositories"
)

// ItemService orchestrates the catalog item workflows. Event publishing is
// handled by the repository layer (outbox pattern); reads are served from
// Redis cache when available.
type ItemService struct {
	items      repositories.ItemRepository
	brands     repositories.BrandRepository
	categories repositories.CategoryRepository
	cache      *pkgcache.ItemCache
	log        logger.Logger
}

// NewItemService returns an ItemService wired with the given repositories
// and cache.
func NewItemService(
	items repositories.ItemRepository,
	brands repositories.BrandRepository,
	categories repositories.CategoryRepository,
	itemCache *pkgcache.ItemCache,
	log logger.Logger,
) *ItemService {
	return &ItemService{
		items:      items,
		brands:     brands,
		categories: categories,
		cache:      itemCache,
		log:        log,
	}
}

// Create validates references, checks slug uniqueness and persists a new
// item. The repository publishes ItemAddedEvent in the same transaction as
// the insert, and the unique index on slug remains the authoritative guard
// against a concurrent writer slipping past the pre-check.
func (s *ItemService) Create(ctx context.Context, name, description string, brandID, categoryID int64, maxStockThreshold int, price float64) (*models.ItemProjection, error) {
	if err := s.checkReferences(ctx, brandID, categoryID); err != nil {
		return nil, err
	}

	slug := models.Slugify(name)
	taken, err := s.items.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, slug)
	}

	item := models.NewItem(name, description, maxStockThreshold, brandID, categoryID, price)
	proj, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return proj, nil
}

// Update rewrites name, description, brand and category of an existing item
// and recomputes its slug. Price and stock fields are untouched. The
// repository publishes ItemChangedEvent in the same transaction.
func (s *ItemService) Update(ctx context.Context, id int64, name, description string, brandID, categoryID int64) (*models.ItemProjection, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find item: %w", err)
	}

	if err := s.checkReferences(ctx, brandID, categoryID); err != nil {
		return nil, err
	}

	slug := models.Slugify(name)
	taken, err := s.items.SlugExists(ctx, slug, id)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, slug)
	}

	item.Update(name, description, brandID, categoryID)
	proj, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.invalidate(id)
	return proj, nil
}

// UpdateMaxStockThreshold assigns a new stock ceiling to an existing item
// and persists it. No event is published.
func (s *ItemService) UpdateMaxStockThreshold(ctx context.Context, id int64, threshold int) (*models.ItemProjection, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find item: %w", err)
	}

	item.SetMaxStockThreshold(threshold)
	if err := s.items.UpdateMaxStockThreshold(ctx, item); err != nil {
		return nil, fmt.Errorf("update threshold: %w", err)
	}

	s.invalidate(id)

	proj, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload item: %w", err)
	}
	return proj, nil
}

// Delete removes an item by id. Returns domain.ErrInvalidID for
// non-positive ids without touching the store, domain.ErrItemNotFound when
// no row exists.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidID, id)
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.invalidate(id)
	return nil
}

// GetByID retrieves an item projection using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.ItemProjection, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidID, id)
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return projectionFromCache(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	proj, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), cachedFromProjection(proj))
		}()
	}

	return proj, nil
}

// List returns every item projection ordered by ascending id. An empty
// store yields an empty slice, never nil.
func (s *ItemService) List(ctx context.Context) ([]models.ItemProjection, error) {
	projs, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if projs == nil {
		projs = []models.ItemProjection{}
	}
	return projs, nil
}

// checkReferences verifies that both the brand and the category rows exist
// before any write. Category is checked first to keep error precedence
// stable.
func (s *ItemService) checkReferences(ctx context.Context, brandID, categoryID int64) error {
	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrInvalidCategoryRef, categoryID)
	}

	ok, err = s.brands.Exists(ctx, brandID)
	if err != nil {
		return fmt.Errorf("check brand: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrInvalidBrandRef, brandID)
	}
	return nil
}

// invalidate drops the cached projection for id. Best effort: a stale entry
// expires on its own TTL anyway.
func (s *ItemService) invalidate(id int64) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(context.Background(), id)
}

func projectionFromCache(c *pkgcache.CachedItem) *models.ItemProjection {
	return &models.ItemProjection{
		ID:                c.ID,
		Name:              c.Name,
		Slug:              c.Slug,
		Description:       c.Description,
		BrandID:           c.BrandID,
		BrandLabel:        c.BrandLabel,
		CategoryID:        c.CategoryID,
		CategoryLabel:     c.CategoryLabel,
		Price:             c.Price,
		AvailableStock:    c.AvailableStock,
		MaxStockThreshold: c.MaxStockThreshold,
	}
}

func cachedFromProjection(p *models.ItemProjection) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		BrandID:           p.BrandID,
		BrandLabel:        p.BrandLabel,
		CategoryID:        p.CategoryID,
		CategoryLabel:     p.CategoryLabel,
		Price:             p.Price,
		AvailableStock:    p.AvailableStock,
		MaxStockThreshold: p.MaxStockThreshold,
	}
}
