package handlers

import (
	"net/http"

	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service errors onto HTTP status codes. Every handler
// funnels errors through here so the status mapping stays in one place.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
