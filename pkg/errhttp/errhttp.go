// Package errhttp maps catalog domain sentinel errors to HTTP status
// codes. Add a case to mapErrorToStatus for each new sentinel.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/gocatalog/pkg/httpx"
	catalogdomain "github.com/ghuser/gocatalog/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error
// response. Uses errors.Is() so wrapped sentinels match. Unrecognized
// errors become 500 with the message masked.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	httpx.JSONError(w, status, msg)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, catalogdomain.ErrBrandNotFound),
		errors.Is(err, catalogdomain.ErrCategoryNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrDuplicateSlug):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrInvalidBrandRef),
		errors.Is(err, catalogdomain.ErrInvalidCategoryRef),
		errors.Is(err, catalogdomain.ErrInvalidID):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
