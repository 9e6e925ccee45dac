package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors to their status codes. Anything unmapped
// is logged and reported as a 500 with the given message.
func respondError(c *gin.Context, log *zap.Logger, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		status, message = http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserAlreadyExists):
		status, message = http.StatusConflict, "user already exists, please login"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, message = http.StatusBadRequest, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = http.StatusBadRequest, "invalid input"
	default:
		log.Error(message,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	c.JSON(status, ErrorResponse{Error: message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
