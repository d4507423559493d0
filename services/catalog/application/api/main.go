package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gocatalog/pkg/app"
	"github.com/ghuser/gocatalog/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/gocatalog/services/catalog/application/services"
)

// CatalogRoutes registers the catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
			r.Patch("/MaxStockThreshold", handlers.NewPatchItemThresholdHandler(svcs).Execute)
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})

		brands := handlers.NewBrandHandlers(svcs)
		r.Route("/brands", func(r chi.Router) {
			r.Post("/", brands.Create)
			r.Get("/", brands.List)
			r.Get("/{id}", brands.Get)
			r.Delete("/{id}", brands.Delete)
		})

		categories := handlers.NewCategoryHandlers(svcs)
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categories.Create)
			r.Get("/", categories.List)
			r.Get("/{id}", categories.Get)
			r.Delete("/{id}", categories.Delete)
		})
	})
}
