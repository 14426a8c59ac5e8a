package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/meditrack/internal/app"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
			Field:   "",
		})

		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"path", c.Request.URL.Path,
		"error", err,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
		Field:   "",
	})
}

func handleBindError(c *gin.Context, err error) {
	slog.Warn("request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
		Field:   "",
	})
}
