package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"expander-core-shopify-layer/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondWithError maps the domain error taxonomy to HTTP statuses:
// validation and invalid-operation errors are the caller's fault (400),
// missing shops/documents are 404, everything else is a 500.
func respondWithError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var invalidOpErr *domain.InvalidOperationError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &invalidOpErr):
		respondError(w, http.StatusBadRequest, invalidOpErr.Error())
	case errors.As(err, &notFoundErr):
		respondError(w, http.StatusNotFound, notFoundErr.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
