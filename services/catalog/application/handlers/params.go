package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gocatalog/services/catalog/domain"
)

// idParam parses the {id} URL parameter as a positive integer. Non-numeric
// input maps to domain.ErrInvalidID; the positivity check lives in the
// service layer.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}
