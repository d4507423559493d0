package repositories

import (
	"context"

	"github.com/ghuser/gocatalog/services/catalog/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Create and Update run insert/update, projection re-read and integration
// event publish inside a single store transaction, so a returned projection
// means the event is committed alongside the row. Both convert a slug
// unique-constraint violation into domain.ErrDuplicateSlug.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) (*models.ItemProjection, error)
	Update(ctx context.Context, item *models.Item) (*models.ItemProjection, error)

	// UpdateMaxStockThreshold persists only the stock ceiling of an
	// existing item. No event is published.
	UpdateMaxStockThreshold(ctx context.Context, item *models.Item) error

	// FindByID loads the raw aggregate for mutation.
	// Returns domain.ErrItemNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*models.Item, error)

	// GetByID returns the flattened projection with resolved labels.
	GetByID(ctx context.Context, id int64) (*models.ItemProjection, error)

	// List returns all projections ordered by ascending id.
	List(ctx context.Context) ([]models.ItemProjection, error)

	// Delete hard-deletes an item. Returns domain.ErrItemNotFound when no
	// row was removed.
	Delete(ctx context.Context, id int64) error

	// SlugExists reports whether any item other than excludeID owns slug.
	// Pass excludeID 0 for create-time checks.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// BrandRepository is the persistence interface for brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id int64) (*models.Brand, error)
	List(ctx context.Context) ([]models.Brand, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// CategoryRepository is the persistence interface for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
