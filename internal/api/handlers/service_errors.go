package handlers

import (
	"errors"
	"net/http"

	"condoadmin/internal/services"
	"condoadmin/pkg/utils"
)

// WriteServiceError maps the core's typed errors onto HTTP statuses:
// NotFound -> 404, InvalidState/Validation -> 400, store failures -> 500.
func WriteServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	var serr *services.StoreError

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.WriteError(w, "record not found", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidState):
		utils.WriteError(w, "operation not allowed in the current state", http.StatusBadRequest)
	case errors.As(err, &verr):
		utils.WriteError(w, verr.Error(), http.StatusBadRequest)
	case errors.As(err, &serr):
		utils.Logger.Errorf("store failure: %v", serr)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.Logger.Errorf("unexpected error: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
