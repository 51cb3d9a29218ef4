package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/moodgarden/backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is logged and surfaced as an opaque 500.
func writeServiceError(w http.ResponseWriter, component string, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrAccountExists):
		writeError(w, http.StatusConflict, domain.ErrAccountExists.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, domain.ErrAccountNotFound.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, domain.ErrInvalidToken.Error())
	default:
		log.Printf("ERROR [%s] %v", component, err)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
