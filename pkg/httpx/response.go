package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options are set automatically; encoding errors are
// discarded, so use this for handler responses, not streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Created writes a 201 with the Location header set to locator and v as body.
func Created(w http.ResponseWriter, locator string, v any) {
	w.Header().Set("Location", locator)
	JSON(w, http.StatusCreated, v)
}

// SafeError returns the error message for client responses. In production,
// 5xx messages are replaced with the generic status text so store internals
// never leak.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
