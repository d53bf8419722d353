package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Kumarankit101/Forms/internal/models"
	"github.com/Kumarankit101/Forms/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Message string            `json:"message" example:"something went wrong"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Form = models.Form
type Question = models.Question
type Response = models.Response
type User = models.User

// respondError maps service errors onto the API's status codes.
// Unexpected failures are logged here and surface as a generic 500;
// the caller never sees the detail.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid input", Errors: verr.Fields})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "you don't have permission to access this resource"})
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	}
}
