package handlers

import (
	"net/http"

	"github.com/ghuser/gocatalog/pkg/errhttp"
	"github.com/ghuser/gocatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/gocatalog/pkg/validator"
	appsvcs "github.com/ghuser/gocatalog/services/catalog/application/services"
	"github.com/ghuser/gocatalog/services/catalog/domain/events"
)

// UpdateItemRequest is the request body for PUT /items. Price and stock are
// not updatable through this endpoint.
type UpdateItemRequest struct {
	ID          int64  `json:"id"          validate:"required,gt=0"    example:"1"`
	Name        string `json:"name"        validate:"required,max=255" example:"Alpine Peak Jacket"`
	Description string `json:"description" validate:"max=2000"         example:"Waterproof shell jacket"`
	BrandID     int64  `json:"brandId"     validate:"required,gt=0"    example:"2"`
	CategoryID  int64  `json:"categoryId"  validate:"required,gt=0"    example:"3"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute rewrites an existing catalog item and recomputes its slug.
//
//	@Summary		Update item
//	@Description	Rewrites name, description, brand and category of an existing item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/items [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	proj, err := h.svc.Item.Update(r.Context(),
		req.ID, req.Name, req.Description, req.BrandID, req.CategoryID,
	)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Created(w, events.ItemLocator(proj.ID), NewItemResponse(proj))
}
