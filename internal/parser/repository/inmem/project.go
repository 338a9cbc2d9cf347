package inmem

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository"
)

// CreateProject inserts a project under the given parent. Sibling names
// must be unique per owner, case-insensitively.
func (r *Repo) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fullPath := opt.Name
	if opt.ParentID != "" {
		parent, ok := r.projects[opt.ParentID]
		if !ok || parent.OwnerID != opt.OwnerID {
			return model.Project{}, fmt.Errorf("%w: parent %q not found", repository.ErrFailedToCreate, opt.ParentID)
		}
		fullPath = parent.FullPath + "/" + opt.Name
	}

	for _, p := range r.projects {
		if p.OwnerID == opt.OwnerID && p.ParentID == opt.ParentID && strings.EqualFold(p.Name, opt.Name) {
			return model.Project{}, fmt.Errorf("%w: duplicate name %q", repository.ErrFailedToCreate, opt.Name)
		}
	}

	project := model.Project{
		ID:       uuid.NewString(),
		OwnerID:  opt.OwnerID,
		Name:     opt.Name,
		ParentID: opt.ParentID,
		FullPath: fullPath,
		Color:    opt.Color,
	}
	r.projects[project.ID] = project
	return project, nil
}

// EnsurePath creates every missing segment of a slash-separated path
// and returns the leaf project. Used for seeding.
func (r *Repo) EnsurePath(ctx context.Context, ownerID, path, color string) (model.Project, error) {
	var current model.Project
	parentID := ""

	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			return model.Project{}, fmt.Errorf("%w: empty segment in path %q", repository.ErrFailedToCreate, path)
		}

		child, ok := r.childByName(ownerID, parentID, segment)
		if !ok {
			created, err := r.CreateProject(ctx, repository.CreateProjectOptions{
				OwnerID:  ownerID,
				Name:     segment,
				ParentID: parentID,
				Color:    color,
			})
			if err != nil {
				return model.Project{}, err
			}
			child = created
		}
		current = child
		parentID = child.ID
	}
	return current, nil
}

// GetProjectByName resolves a single-segment reference. Returns the
// zero project with a nil error when nothing matches.
func (r *Repo) GetProjectByName(ctx context.Context, opt repository.GetProjectByNameOptions) (model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.projects {
		if p.OwnerID == opt.OwnerID && strings.EqualFold(p.Name, opt.Name) {
			return p, nil
		}
	}
	return model.Project{}, nil
}

// GetProjectByPath resolves a multi-segment reference by walking the
// tree parent to child. Resolved paths are cached.
func (r *Repo) GetProjectByPath(ctx context.Context, opt repository.GetProjectByPathOptions) (model.Project, error) {
	key := opt.OwnerID + "\x00" + strings.ToLower(opt.Path)

	if id, ok := r.paths.Get(key); ok {
		r.mu.RLock()
		p, live := r.projects[id]
		r.mu.RUnlock()
		if live {
			return p, nil
		}
	}

	var current model.Project
	parentID := ""
	for _, segment := range strings.Split(opt.Path, "/") {
		child, ok := r.childByName(opt.OwnerID, parentID, segment)
		if !ok {
			return model.Project{}, nil
		}
		current = child
		parentID = child.ID
	}

	r.paths.Add(key, current.ID)
	return current, nil
}

func (r *Repo) childByName(ownerID, parentID, name string) (model.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.projects {
		if p.OwnerID == ownerID && p.ParentID == parentID && strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return model.Project{}, false
}
