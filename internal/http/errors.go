// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/graph"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// writeDomainError maps pipeline errors onto HTTP statuses. Unknown-id
// errors become 404; anything else is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var nf *graph.NotFoundError
	if errors.As(err, &nf) {
		WriteJSONError(w, http.StatusNotFound, "not_found", nf.Error())
		return
	}
	WriteJSONError(w, http.StatusInternalServerError, "internal_error", err.Error())
}
