package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/gocatalog/pkg/errhttp"
	"github.com/ghuser/gocatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/gocatalog/pkg/validator"
	appsvcs "github.com/ghuser/gocatalog/services/catalog/application/services"
	"github.com/ghuser/gocatalog/services/catalog/domain/models"
)

// CreateCategoryRequest is the request body for POST /categories.
type CreateCategoryRequest struct {
	Label string `json:"label" validate:"required,max=100" example:"Jackets"`
} // @name CreateCategoryRequest

// CategoryResponse is the category read model.
type CategoryResponse struct {
	ID    int64  `json:"id"    example:"3"`
	Label string `json:"label" example:"Jackets"`
} // @name CategoryResponse

func newCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Label: c.Label}
}

// CategoryHandlers bundles the category CRUD endpoints.
type CategoryHandlers struct {
	svc *appsvcs.Services
}

// NewCategoryHandlers returns CategoryHandlers backed by the given services.
func NewCategoryHandlers(svc *appsvcs.Services) *CategoryHandlers {
	return &CategoryHandlers{svc: svc}
}

// Create adds a new category.
//
//	@Summary		Create category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCategoryRequest	true	"Category creation request"
//	@Success		201		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/categories [post]
func (h *CategoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.svc.Category.Create(r.Context(), req.Label)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Created(w, fmt.Sprintf("/api/v1/categories/%d", category.ID), newCategoryResponse(category))
}

// Get returns a single category.
//
//	@Summary		Get category
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"Category id"
//	@Success		200	{object}	CategoryResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [get]
func (h *CategoryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	category, err := h.svc.Category.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newCategoryResponse(category))
}

// List returns all categories ordered by ascending id.
//
//	@Summary		List categories
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}	CategoryResponse
//	@Router			/categories [get]
func (h *CategoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Category.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]CategoryResponse, len(categories))
	for i := range categories {
		resp[i] = newCategoryResponse(&categories[i])
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Delete removes a category.
//
//	@Summary		Delete category
//	@Tags			categories
//	@Produce		json
//	@Param			id	path	int	true	"Category id"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [delete]
func (h *CategoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := h.svc.Category.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
