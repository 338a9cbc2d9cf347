package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Parser domain
	parserDefaults model.UserSettings
	seedProjects   []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// ParserDefaults are the user settings applied when a parse request
	// does not override them.
	ParserDefaults model.UserSettings

	// SeedProjects are project paths created in the store at startup so
	// a fresh instance resolves common references out of the box.
	SeedProjects []string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		parserDefaults: cfg.ParserDefaults,
		seedProjects:   cfg.SeedProjects,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
