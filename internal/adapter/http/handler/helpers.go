package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iho/stockval/internal/adapter/http/dto"
	"github.com/iho/stockval/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidWindow):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter. An absent
// parameter returns (nil, nil); a malformed one returns an error.
func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", val, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q, want YYYY-MM-DD", key, val)
	}
	return &t, nil
}

// parseBoolQuery parses a boolean query parameter, defaulting when absent
// or malformed.
func parseBoolQuery(r *http.Request, key string, defaultValue bool) bool {
	switch r.URL.Query().Get(key) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

// parseWindow builds the reporting window from the from/to query parameters.
func parseWindow(r *http.Request) (domain.Window, error) {
	from, err := parseDateQuery(r, "from")
	if err != nil {
		return domain.Window{}, err
	}
	to, err := parseDateQuery(r, "to")
	if err != nil {
		return domain.Window{}, err
	}

	w := domain.NewWindow(from, to)
	if !w.Valid() {
		return domain.Window{}, domain.ErrInvalidWindow
	}
	return w, nil
}
