package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mallkit/cart-service/internal/models"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps domain error kinds to status codes; anything unrecognized
// is a storage/infrastructure failure and surfaces as 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, models.ErrNotFound):
		status, message = http.StatusNotFound, models.ErrNotFound.Error()
	case errors.Is(err, models.ErrNotOwner):
		status, message = http.StatusForbidden, models.ErrNotOwner.Error()
	case errors.Is(err, models.ErrAuthentication):
		status, message = http.StatusUnauthorized, models.ErrAuthentication.Error()
	case errors.Is(err, models.ErrInvalidCartItems):
		status, message = http.StatusBadRequest, models.ErrInvalidCartItems.Error()
	case errors.Is(err, models.ErrInvalidQuantity):
		status, message = http.StatusBadRequest, models.ErrInvalidQuantity.Error()
	case errors.Is(err, models.ErrAlreadyIssued):
		status, message = http.StatusConflict, models.ErrAlreadyIssued.Error()
	case errors.Is(err, models.ErrAlreadyUsed):
		status, message = http.StatusConflict, models.ErrAlreadyUsed.Error()
	case errors.Is(err, models.ErrNameTaken):
		status, message = http.StatusConflict, models.ErrNameTaken.Error()
	}

	writeJSON(w, status, map[string]string{"error": message})
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
