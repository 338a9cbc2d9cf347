package repository

import (
	"context"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
)

// Repository is the composed interface for the lookups the parser
// consumes. The parser never writes projects; tags are find-or-create.
type Repository interface {
	ProjectRepository
	TagRepository
}

// ProjectRepository resolves #project references. Lookups are
// case-insensitive and owner-scoped. A missing project is not an
// error: the zero model.Project is returned with a nil error.
type ProjectRepository interface {
	GetProjectByName(ctx context.Context, opt GetProjectByNameOptions) (model.Project, error)
	GetProjectByPath(ctx context.Context, opt GetProjectByPathOptions) (model.Project, error)
}

// TagRepository resolves @tag references. FindOrCreateTag returns the
// existing tag matching the name case-insensitively or creates a new
// one; the bool reports whether a tag was created.
type TagRepository interface {
	FindOrCreateTag(ctx context.Context, opt FindOrCreateTagOptions) (model.Tag, bool, error)
}
