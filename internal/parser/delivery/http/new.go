package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser"
	"github.com/Matt-PMCT/todo-me-sub007/pkg/log"
)

// Handler is the public interface for the parser HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       parser.UseCase
	defaults model.UserSettings
}

// New creates a new HTTP handler for the parser domain. defaults are
// the service-level user settings applied when a request does not
// override them.
func New(l log.Logger, uc parser.UseCase, defaults model.UserSettings) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		defaults: defaults,
	}
}
