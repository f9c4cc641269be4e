package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mrivas/bancario/internal/adapter/http/dto"
	"github.com/mrivas/bancario/internal/domain"
)

const dateLayout = "2006-01-02"

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
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrMovementNotFound),
		errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidMovementKind),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrAccountExists),
		errors.Is(err, domain.ErrCustomerExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// parseDateQuery parses a yyyy-mm-dd query parameter.
func parseDateQuery(r *http.Request, key string) (time.Time, error) {
	return time.Parse(dateLayout, r.URL.Query().Get(key))
}
