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

// CreateBrandRequest is the request body for POST /brands.
type CreateBrandRequest struct {
	Label string `json:"label" validate:"required,max=100" example:"Daybird"`
} // @name CreateBrandRequest

// BrandResponse is the brand read model.
type BrandResponse struct {
	ID    int64  `json:"id"    example:"2"`
	Label string `json:"label" example:"Daybird"`
} // @name BrandResponse

func newBrandResponse(b *models.Brand) BrandResponse {
	return BrandResponse{ID: b.ID, Label: b.Label}
}

// BrandHandlers bundles the brand CRUD endpoints.
type BrandHandlers struct {
	svc *appsvcs.Services
}

// NewBrandHandlers returns BrandHandlers backed by the given services.
func NewBrandHandlers(svc *appsvcs.Services) *BrandHandlers {
	return &BrandHandlers{svc: svc}
}

// Create adds a new brand.
//
//	@Summary		Create brand
//	@Tags			brands
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateBrandRequest	true	"Brand creation request"
//	@Success		201		{object}	BrandResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/brands [post]
func (h *BrandHandlers) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateBrandRequest](w, r)
	if !ok {
		return
	}

	brand, err := h.svc.Brand.Create(r.Context(), req.Label)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Created(w, fmt.Sprintf("/api/v1/brands/%d", brand.ID), newBrandResponse(brand))
}

// Get returns a single brand.
//
//	@Summary		Get brand
//	@Tags			brands
//	@Produce		json
//	@Param			id	path		int	true	"Brand id"
//	@Success		200	{object}	BrandResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/brands/{id} [get]
func (h *BrandHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	brand, err := h.svc.Brand.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newBrandResponse(brand))
}

// List returns all brands ordered by ascending id.
//
//	@Summary		List brands
//	@Tags			brands
//	@Produce		json
//	@Success		200	{array}	BrandResponse
//	@Router			/brands [get]
func (h *BrandHandlers) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.svc.Brand.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]BrandResponse, len(brands))
	for i := range brands {
		resp[i] = newBrandResponse(&brands[i])
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Delete removes a brand.
//
//	@Summary		Delete brand
//	@Tags			brands
//	@Produce		json
//	@Param			id	path	int	true	"Brand id"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/brands/{id} [delete]
func (h *BrandHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := h.svc.Brand.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
