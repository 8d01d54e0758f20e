package handlers

import (
	"errors"
	"net/http"

	"exam-platform-backend/internal/models"
	"exam-platform-backend/internal/services"
)

// Type aliases so swag can resolve models in annotations.
type User = models.User
type Result = models.Result

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// statusFromError maps service errors onto the HTTP taxonomy:
// NotFound → 404, invalid input and expired deadlines → 400,
// everything else is a server fault.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrRegNumberTaken),
		errors.Is(err, services.ErrDeadlineExceeded):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
