package services

import (
	"github.com/ghuser/gocatalog/pkg/app"
	"github.com/ghuser/gocatalog/pkg/cache"
	"github.com/ghuser/gocatalog/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the catalog
// bounded context. It wires domain services with their infrastructure
// implementations.
type Services struct {
	Item     *ItemService
	Brand    *BrandService
	Category *CategoryService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	brands := postgres.NewBrandRepository(a.Db)
	categories := postgres.NewCategoryRepository(a.Db)
	itemCache := cache.NewItemCache(a.Redis)
	return &Services{
		Item:     NewItemService(items, brands, categories, itemCache, a.Logger),
		Brand:    NewBrandService(brands),
		Category: NewCategoryService(categories),
	}
}
