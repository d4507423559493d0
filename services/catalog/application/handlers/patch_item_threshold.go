package handlers

import (
	"net/http"

	"github.com/ghuser/gocatalog/pkg/errhttp"
	"github.com/ghuser/gocatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/gocatalog/pkg/validator"
	appsvcs "github.com/ghuser/gocatalog/services/catalog/application/services"
	"github.com/ghuser/gocatalog/services/catalog/domain/events"
)

// UpdateThresholdRequest is the request body for
// PATCH /items/MaxStockThreshold.
type UpdateThresholdRequest struct {
	ID                int64 `json:"id"                validate:"required,gt=0" example:"1"`
	MaxStockThreshold int   `json:"maxStockThreshold" validate:"required,gt=0" example:"150"`
} // @name UpdateThresholdRequest

// PatchItemThresholdHandler handles PATCH /items/MaxStockThreshold requests.
type PatchItemThresholdHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemThresholdHandler returns a PatchItemThresholdHandler backed by
// the given services.
func NewPatchItemThresholdHandler(svc *appsvcs.Services) *PatchItemThresholdHandler {
	return &PatchItemThresholdHandler{svc: svc}
}

// Execute assigns a new max stock threshold to an existing item.
//
//	@Summary		Update item stock threshold
//	@Description	Assigns a new max stock threshold; other fields are untouched
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateThresholdRequest	true	"Threshold update request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/MaxStockThreshold [patch]
func (h *PatchItemThresholdHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateThresholdRequest](w, r)
	if !ok {
		return
	}

	proj, err := h.svc.Item.UpdateMaxStockThreshold(r.Context(), req.ID, req.MaxStockThreshold)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Created(w, events.ItemLocator(proj.ID), NewItemResponse(proj))
}
