package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"spendwise-backend/internal/log"
	"spendwise-backend/internal/services"
	"spendwise-backend/internal/utils"
)

// writeServiceError maps service errors onto status codes. Unexpected errors
// are logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", ve.Error())
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "User already exists", "Email already registered")
	case errors.Is(err, services.ErrInvalidCredential):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid credentials", "Email or password is incorrect")
	case errors.Is(err, services.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "User not found")
	default:
		log.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String(log.FieldMethod, r.Method),
			slog.String(log.FieldPath, r.URL.Path),
			slog.String(log.FieldError, err.Error()))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}
	return id, ok
}
