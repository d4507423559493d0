package handlers

import (
	"net/http"

	"github.com/ghuser/gocatalog/pkg/errhttp"
	"github.com/ghuser/gocatalog/pkg/httpx"
	appsvcs "github.com/ghuser/gocatalog/services/catalog/application/services"
)

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute returns every item projection ordered by ascending id.
//
//	@Summary		List items
//	@Description	Returns all item projections ordered by ascending id
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	projs, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ItemResponse, len(projs))
	for i := range projs {
		resp[i] = NewItemResponse(&projs[i])
	}
	httpx.JSON(w, http.StatusOK, resp)
}
