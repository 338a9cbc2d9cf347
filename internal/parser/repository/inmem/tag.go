package inmem

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository"
)

// defaultTagColor is applied to tags the parser auto-creates; users
// recolor them later through the (out of scope) tag endpoints.
const defaultTagColor = "#6b7280"

// FindOrCreateTag returns the owner's tag matching the name
// case-insensitively, creating it when absent. The bool reports
// whether a new tag was created.
func (r *Repo) FindOrCreateTag(ctx context.Context, opt repository.FindOrCreateTagOptions) (model.Tag, bool, error) {
	key := strings.ToLower(opt.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, ok := r.tags[opt.OwnerID]
	if !ok {
		byName = make(map[string]model.Tag)
		r.tags[opt.OwnerID] = byName
	}

	if tag, ok := byName[key]; ok {
		return tag, false, nil
	}

	tag := model.Tag{
		ID:      uuid.NewString(),
		OwnerID: opt.OwnerID,
		Name:    opt.Name,
		Color:   defaultTagColor,
	}
	byName[key] = tag
	return tag, true, nil
}
