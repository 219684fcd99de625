package handler

import (
	"errors"
	"net/http"

	"gamecatalog/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// MsgGameNotFound is the body of every 404 the games routes return.
const MsgGameNotFound = "Jogo não encontrado"

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Jogo não encontrado"`
}

// ValidationErrorResponse lists every rule a payload violated.
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"title is required"`
}

// writeError maps catalog errors to HTTP responses.
func (h *GameHandler) writeError(c *gin.Context, operation string, err error) {
	var validationErr *catalog.ValidationError
	var malformedErr *catalog.MalformedError

	switch {
	case errors.As(err, &validationErr):
		h.metrics.RecordValidationFailure(operation)
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: validationErr.Errors})
	case errors.As(err, &malformedErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "JSON inválido: " + malformedErr.Err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgGameNotFound})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno do servidor"})
	}
}
