package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	parserHTTP "github.com/Matt-PMCT/todo-me-sub007/internal/parser/delivery/http"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository/inmem"
	parserUC "github.com/Matt-PMCT/todo-me-sub007/internal/parser/usecase"
)

// setupParserDomain initializes the parser domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv HTTPServer) setupParserDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := inmem.New(srv.l)

	for _, path := range srv.seedProjects {
		if _, err := repo.EnsurePath(ctx, parserHTTP.DefaultUserID, path, ""); err != nil {
			return err
		}
	}
	if len(srv.seedProjects) > 0 {
		srv.l.Infof(ctx, "Seeded %d project paths", len(srv.seedProjects))
	}

	// 2. UseCase
	uc := parserUC.New(srv.l, repo, nil)

	// 3. HTTP Handler
	h := parserHTTP.New(srv.l, uc, srv.parserDefaults)

	// 4. Routes: registers /api/v1/parse
	parserHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Parser domain registered")
	return nil
}
