package http

import (
	"errors"
	"net/http"

	"github.com/Matt-PMCT/todo-me-sub007/internal/parser"
	"github.com/Matt-PMCT/todo-me-sub007/pkg/response"
)

// mapError translates use-case errors into HTTP errors. Unknown errors
// collapse to a generic 500 so repository internals never leak to clients.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, parser.ErrInvalidSettings):
		return response.NewHTTPError(http.StatusBadRequest, "invalid parser settings")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
