package handlers

import (
	"net/http"

	"github.com/ghuser/gocatalog/pkg/errhttp"
	"github.com/ghuser/gocatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/gocatalog/pkg/validator"
	appsvcs "github.com/ghuser/gocatalog/services/catalog/application/services"
	"github.com/ghuser/gocatalog/services/catalog/domain/events"
)

// CreateItemRequest is the request body for POST /items. Price is optional
// and defaults to zero; stock always starts at zero.
type CreateItemRequest struct {
	Name              string   `json:"name"              validate:"required,max=255" example:"Alpine Peak Jacket"`
	Description       string   `json:"description"       validate:"max=2000"         example:"Waterproof shell jacket"`
	BrandID           int64    `json:"brandId"           validate:"required,gt=0"    example:"2"`
	CategoryID        int64    `json:"categoryId"        validate:"required,gt=0"    example:"3"`
	MaxStockThreshold int      `json:"maxStockThreshold" validate:"required,gt=0"    example:"100"`
	Price             *float64 `json:"price"             validate:"omitempty,gte=0"  example:"199.99"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new catalog item.
//
//	@Summary		Create item
//	@Description	Creates a new catalog item; the Location header carries the resource locator
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	price := 0.0
	if req.Price != nil {
		price = *req.Price
	}

	proj, err := h.svc.Item.Create(r.Context(),
		req.Name, req.Description, req.BrandID, req.CategoryID,
		req.MaxStockThreshold, price,
	)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Created(w, events.ItemLocator(proj.ID), NewItemResponse(proj))
}
