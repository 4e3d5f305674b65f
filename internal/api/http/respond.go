package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service-layer errors onto HTTP statuses. Raw
// internal errors are logged but never echoed to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidWindow),
		errors.Is(err, service.ErrPriceNotConfigured),
		errors.Is(err, service.ErrNegativeAmount),
		errors.Is(err, service.ErrNegativeRate),
		errors.Is(err, storage.ErrInvalidDataURI):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, security.ErrWrongTokenType):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
